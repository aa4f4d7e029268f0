package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fernandarrocha/AV2-faculdade/internal/backend"
	"github.com/fernandarrocha/AV2-faculdade/internal/models"
	appErrors "github.com/fernandarrocha/AV2-faculdade/pkg/errors"
)

type alunoBackend interface {
	ListAlunos(ctx context.Context, auth string) ([]models.Aluno, error)
	CreateAluno(ctx context.Context, auth string, payload backend.AlunoPayload) (*models.Aluno, error)
	UpdateAluno(ctx context.Context, auth string, id int, payload backend.AlunoPayload) (*models.Aluno, error)
	DeleteAluno(ctx context.Context, auth string, id int) error
	Matricular(ctx context.Context, auth string, alunoID, cursoID int) error
}

// AlunoForm holds the create/edit form draft for a student.
type AlunoForm struct {
	Nome      string `form:"nome" validate:"required"`
	Email     string `form:"email" validate:"required,email"`
	Matricula string `form:"matricula" validate:"required"`
}

// AlunoService handles the student screen's use-cases.
type AlunoService struct {
	backend   alunoBackend
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAlunoService constructs the student service.
func NewAlunoService(b alunoBackend, validate *validator.Validate, logger *zap.Logger) *AlunoService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AlunoService{backend: b, validator: validate, logger: logger}
}

// List returns the current student collection.
func (s *AlunoService) List(ctx context.Context, auth string) ([]models.Aluno, error) {
	return s.backend.ListAlunos(ctx, auth)
}

// Create registers a new student from the form draft.
func (s *AlunoService) Create(ctx context.Context, auth string, form AlunoForm) error {
	if err := s.validator.Struct(form); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "dados do aluno inválidos")
	}
	_, err := s.backend.CreateAluno(ctx, auth, backend.AlunoPayload{
		Nome:      form.Nome,
		Email:     form.Email,
		Matricula: form.Matricula,
	})
	return err
}

// Update replaces the editable fields of an existing student.
func (s *AlunoService) Update(ctx context.Context, auth string, id int, form AlunoForm) error {
	if err := s.validator.Struct(form); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "dados do aluno inválidos")
	}
	_, err := s.backend.UpdateAluno(ctx, auth, id, backend.AlunoPayload{
		Nome:      form.Nome,
		Email:     form.Email,
		Matricula: form.Matricula,
	})
	return err
}

// Delete removes a student.
func (s *AlunoService) Delete(ctx context.Context, auth string, id int) error {
	return s.backend.DeleteAluno(ctx, auth, id)
}

// Matricular enrolls a student in a course. An empty selection is rejected
// locally; no request reaches the backend.
func (s *AlunoService) Matricular(ctx context.Context, auth string, alunoID, cursoID int) error {
	if cursoID <= 0 {
		return appErrors.ErrEmptySelection
	}
	return s.backend.Matricular(ctx, auth, alunoID, cursoID)
}
