package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fernandarrocha/AV2-faculdade/internal/backend"
	"github.com/fernandarrocha/AV2-faculdade/internal/models"
	appErrors "github.com/fernandarrocha/AV2-faculdade/pkg/errors"
)

type cursoBackend interface {
	ListCursos(ctx context.Context, auth string) ([]models.Curso, error)
	CreateCurso(ctx context.Context, auth string, payload backend.CursoPayload) (*models.Curso, error)
	UpdateCurso(ctx context.Context, auth string, id int, payload backend.CursoPayload) (*models.Curso, error)
	DeleteCurso(ctx context.Context, auth string, id int) error
}

// CursoForm holds the create/edit form draft for a course. CargaHoraria is
// coerced from the text input by form binding.
type CursoForm struct {
	Nome         string `form:"nome" validate:"required"`
	CargaHoraria int    `form:"cargaHoraria" validate:"required,gt=0"`
}

// CursoService handles the course screen's use-cases.
type CursoService struct {
	backend   cursoBackend
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCursoService constructs the course service.
func NewCursoService(b cursoBackend, validate *validator.Validate, logger *zap.Logger) *CursoService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CursoService{backend: b, validator: validate, logger: logger}
}

// List returns the current course catalog.
func (s *CursoService) List(ctx context.Context, auth string) ([]models.Curso, error) {
	return s.backend.ListCursos(ctx, auth)
}

// Create registers a new course from the form draft.
func (s *CursoService) Create(ctx context.Context, auth string, form CursoForm) error {
	if err := s.validator.Struct(form); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "dados do curso inválidos")
	}
	_, err := s.backend.CreateCurso(ctx, auth, backend.CursoPayload{
		Nome:         form.Nome,
		CargaHoraria: form.CargaHoraria,
	})
	return err
}

// Update replaces the editable fields of an existing course.
func (s *CursoService) Update(ctx context.Context, auth string, id int, form CursoForm) error {
	if err := s.validator.Struct(form); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "dados do curso inválidos")
	}
	_, err := s.backend.UpdateCurso(ctx, auth, id, backend.CursoPayload{
		Nome:         form.Nome,
		CargaHoraria: form.CargaHoraria,
	})
	return err
}

// Delete removes a course.
func (s *CursoService) Delete(ctx context.Context, auth string, id int) error {
	return s.backend.DeleteCurso(ctx, auth, id)
}
