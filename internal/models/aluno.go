package models

import "strings"

// Aluno represents a student registered in the backend.
// The id is backend-assigned and immutable; Cursos is only populated on
// list responses and reflects the student's current enrollments.
type Aluno struct {
	ID        int     `json:"id"`
	Nome      string  `json:"nome"`
	Email     string  `json:"email"`
	Matricula string  `json:"matricula"`
	Cursos    []Curso `json:"cursos,omitempty"`
}

// CursoNomes joins the names of the student's enrolled courses for display.
func (a Aluno) CursoNomes() string {
	if len(a.Cursos) == 0 {
		return "Nenhum"
	}
	nomes := make([]string, len(a.Cursos))
	for i, c := range a.Cursos {
		nomes[i] = c.Nome
	}
	return strings.Join(nomes, ", ")
}
