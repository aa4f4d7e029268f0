package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fernandarrocha/AV2-faculdade/internal/backend"
	"github.com/fernandarrocha/AV2-faculdade/internal/models"
	appErrors "github.com/fernandarrocha/AV2-faculdade/pkg/errors"
)

type mockAlunoBackend struct {
	alunos      []models.Aluno
	created     []backend.AlunoPayload
	updated     map[int]backend.AlunoPayload
	deleted     []int
	enrollments map[int][]int
	err         error
}

func (m *mockAlunoBackend) ListAlunos(ctx context.Context, auth string) ([]models.Aluno, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.alunos, nil
}

func (m *mockAlunoBackend) CreateAluno(ctx context.Context, auth string, payload backend.AlunoPayload) (*models.Aluno, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, payload)
	return &models.Aluno{ID: len(m.created), Nome: payload.Nome, Email: payload.Email, Matricula: payload.Matricula}, nil
}

func (m *mockAlunoBackend) UpdateAluno(ctx context.Context, auth string, id int, payload backend.AlunoPayload) (*models.Aluno, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.updated == nil {
		m.updated = make(map[int]backend.AlunoPayload)
	}
	m.updated[id] = payload
	return &models.Aluno{ID: id, Nome: payload.Nome, Email: payload.Email, Matricula: payload.Matricula}, nil
}

func (m *mockAlunoBackend) DeleteAluno(ctx context.Context, auth string, id int) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockAlunoBackend) Matricular(ctx context.Context, auth string, alunoID, cursoID int) error {
	if m.err != nil {
		return m.err
	}
	if m.enrollments == nil {
		m.enrollments = make(map[int][]int)
	}
	m.enrollments[alunoID] = append(m.enrollments[alunoID], cursoID)
	return nil
}

func TestAlunoServiceCreate(t *testing.T) {
	mock := &mockAlunoBackend{}
	svc := NewAlunoService(mock, validator.New(), zap.NewNop())

	err := svc.Create(context.Background(), "Basic x", AlunoForm{
		Nome:      "Ana Silva",
		Email:     "ana@example.com",
		Matricula: "2024001",
	})
	require.NoError(t, err)
	require.Len(t, mock.created, 1)
	assert.Equal(t, "Ana Silva", mock.created[0].Nome)
}

func TestAlunoServiceCreateValidationNeverReachesBackend(t *testing.T) {
	tests := []struct {
		name string
		form AlunoForm
	}{
		{"missing nome", AlunoForm{Email: "ana@example.com", Matricula: "1"}},
		{"invalid email", AlunoForm{Nome: "Ana", Email: "not-an-email", Matricula: "1"}},
		{"missing matricula", AlunoForm{Nome: "Ana", Email: "ana@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAlunoBackend{}
			svc := NewAlunoService(mock, validator.New(), zap.NewNop())

			err := svc.Create(context.Background(), "Basic x", tt.form)
			require.Error(t, err)
			assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
			assert.Empty(t, mock.created)
		})
	}
}

func TestAlunoServiceUpdate(t *testing.T) {
	mock := &mockAlunoBackend{}
	svc := NewAlunoService(mock, validator.New(), zap.NewNop())

	err := svc.Update(context.Background(), "Basic x", 4, AlunoForm{
		Nome:      "Ana Souza",
		Email:     "ana@example.com",
		Matricula: "2024001",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", mock.updated[4].Nome)
}

func TestAlunoServiceDelete(t *testing.T) {
	mock := &mockAlunoBackend{}
	svc := NewAlunoService(mock, validator.New(), zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), "Basic x", 4))
	assert.Equal(t, []int{4}, mock.deleted)
}

func TestAlunoServiceMatricular(t *testing.T) {
	mock := &mockAlunoBackend{}
	svc := NewAlunoService(mock, validator.New(), zap.NewNop())

	require.NoError(t, svc.Matricular(context.Background(), "Basic x", 2, 9))
	assert.Equal(t, []int{9}, mock.enrollments[2])
}

func TestAlunoServiceMatricularEmptySelection(t *testing.T) {
	mock := &mockAlunoBackend{}
	svc := NewAlunoService(mock, validator.New(), zap.NewNop())

	err := svc.Matricular(context.Background(), "Basic x", 2, 0)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrEmptySelection))
	assert.Empty(t, mock.enrollments)
}
