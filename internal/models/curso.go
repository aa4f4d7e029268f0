package models

// Curso represents a course offered by the institution.
// Alunos is only populated on list responses.
type Curso struct {
	ID           int     `json:"id"`
	Nome         string  `json:"nome"`
	CargaHoraria int     `json:"cargaHoraria"`
	Alunos       []Aluno `json:"alunos,omitempty"`
}
