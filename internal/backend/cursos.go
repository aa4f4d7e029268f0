package backend

import (
	"context"

	"github.com/fernandarrocha/AV2-faculdade/internal/models"
)

// CursoPayload is the wire body for creating and updating courses.
type CursoPayload struct {
	Nome         string `json:"nome"`
	CargaHoraria int    `json:"cargaHoraria"`
}

// ListCursos fetches the full course catalog.
func (c *Client) ListCursos(ctx context.Context, auth string) ([]models.Curso, error) {
	return c.cursos.list(ctx, auth)
}

// CreateCurso registers a new course.
func (c *Client) CreateCurso(ctx context.Context, auth string, payload CursoPayload) (*models.Curso, error) {
	return c.cursos.create(ctx, auth, payload)
}

// UpdateCurso replaces the editable fields of an existing course.
func (c *Client) UpdateCurso(ctx context.Context, auth string, id int, payload CursoPayload) (*models.Curso, error) {
	return c.cursos.update(ctx, auth, id, payload)
}

// DeleteCurso removes a course.
func (c *Client) DeleteCurso(ctx context.Context, auth string, id int) error {
	return c.cursos.delete(ctx, auth, id)
}
