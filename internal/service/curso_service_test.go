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

type mockCursoBackend struct {
	cursos  []models.Curso
	created []backend.CursoPayload
	updated map[int]backend.CursoPayload
	deleted []int
	err     error
}

func (m *mockCursoBackend) ListCursos(ctx context.Context, auth string) ([]models.Curso, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cursos, nil
}

func (m *mockCursoBackend) CreateCurso(ctx context.Context, auth string, payload backend.CursoPayload) (*models.Curso, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, payload)
	return &models.Curso{ID: len(m.created), Nome: payload.Nome, CargaHoraria: payload.CargaHoraria}, nil
}

func (m *mockCursoBackend) UpdateCurso(ctx context.Context, auth string, id int, payload backend.CursoPayload) (*models.Curso, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.updated == nil {
		m.updated = make(map[int]backend.CursoPayload)
	}
	m.updated[id] = payload
	return &models.Curso{ID: id, Nome: payload.Nome, CargaHoraria: payload.CargaHoraria}, nil
}

func (m *mockCursoBackend) DeleteCurso(ctx context.Context, auth string, id int) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func TestCursoServiceCreate(t *testing.T) {
	mock := &mockCursoBackend{}
	svc := NewCursoService(mock, validator.New(), zap.NewNop())

	err := svc.Create(context.Background(), "Basic x", CursoForm{Nome: "Cálculo I", CargaHoraria: 60})
	require.NoError(t, err)
	require.Len(t, mock.created, 1)
	assert.Equal(t, 60, mock.created[0].CargaHoraria)
}

func TestCursoServiceRejectsNonPositiveHours(t *testing.T) {
	for _, horas := range []int{0, -10} {
		mock := &mockCursoBackend{}
		svc := NewCursoService(mock, validator.New(), zap.NewNop())

		err := svc.Create(context.Background(), "Basic x", CursoForm{Nome: "Cálculo I", CargaHoraria: horas})
		require.Error(t, err)
		assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
		assert.Empty(t, mock.created)
	}
}

func TestCursoServiceUpdate(t *testing.T) {
	mock := &mockCursoBackend{}
	svc := NewCursoService(mock, validator.New(), zap.NewNop())

	err := svc.Update(context.Background(), "Basic x", 3, CursoForm{Nome: "Cálculo II", CargaHoraria: 80})
	require.NoError(t, err)
	assert.Equal(t, "Cálculo II", mock.updated[3].Nome)
}

func TestCursoServiceDelete(t *testing.T) {
	mock := &mockCursoBackend{}
	svc := NewCursoService(mock, validator.New(), zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), "Basic x", 3))
	assert.Equal(t, []int{3}, mock.deleted)
}
