package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fernandarrocha/AV2-faculdade/internal/models"
)

// AlunoPayload is the wire body for creating and updating students.
type AlunoPayload struct {
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Matricula string `json:"matricula"`
}

// ListAlunos fetches the full student collection.
func (c *Client) ListAlunos(ctx context.Context, auth string) ([]models.Aluno, error) {
	return c.alunos.list(ctx, auth)
}

// CreateAluno registers a new student.
func (c *Client) CreateAluno(ctx context.Context, auth string, payload AlunoPayload) (*models.Aluno, error) {
	return c.alunos.create(ctx, auth, payload)
}

// UpdateAluno replaces the editable fields of an existing student.
func (c *Client) UpdateAluno(ctx context.Context, auth string, id int, payload AlunoPayload) (*models.Aluno, error) {
	return c.alunos.update(ctx, auth, id, payload)
}

// DeleteAluno removes a student.
func (c *Client) DeleteAluno(ctx context.Context, auth string, id int) error {
	return c.alunos.delete(ctx, auth, id)
}

// Matricular enrolls a student in a course. Both ids travel in the path;
// the request carries no body.
func (c *Client) Matricular(ctx context.Context, auth string, alunoID, cursoID int) error {
	path := fmt.Sprintf("/alunos/%d/matricular/%d", alunoID, cursoID)
	return c.do(ctx, http.MethodPost, path, auth, nil, nil)
}
