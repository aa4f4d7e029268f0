package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/fernandarrocha/AV2-faculdade/pkg/errors"
)

func TestClientListAlunosAttachesAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"nome":"Ana Silva","email":"ana@example.com","matricula":"2024001"}]`))
	}))
	defer srv.Close()

	client := New(srv.URL, zap.NewNop())
	alunos, err := client.ListAlunos(context.Background(), "Basic YWRtaW46YWRtaW4=")
	require.NoError(t, err)
	require.Len(t, alunos, 1)
	assert.Equal(t, "Ana Silva", alunos[0].Nome)
	assert.Equal(t, "2024001", alunos[0].Matricula)
	assert.Empty(t, alunos[0].Cursos)
	assert.Equal(t, "Basic YWRtaW46YWRtaW4=", gotAuth)
}

func TestClientCreateAlunoSendsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/alunos", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload AlunoPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Ana Silva", payload.Nome)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"nome":"Ana Silva","email":"ana@example.com","matricula":"2024001"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, zap.NewNop())
	created, err := client.CreateAluno(context.Background(), "Basic x", AlunoPayload{
		Nome:      "Ana Silva",
		Email:     "ana@example.com",
		Matricula: "2024001",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
}

func TestClientUpdateAndDeleteBuildIDPaths(t *testing.T) {
	var paths []string
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		methods = append(methods, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":3,"nome":"Cálculo I","cargaHoraria":60}`))
	}))
	defer srv.Close()

	client := New(srv.URL, zap.NewNop())

	_, err := client.UpdateCurso(context.Background(), "Basic x", 3, CursoPayload{Nome: "Cálculo I", CargaHoraria: 60})
	require.NoError(t, err)
	require.NoError(t, client.DeleteCurso(context.Background(), "Basic x", 3))

	assert.Equal(t, []string{"/cursos/3", "/cursos/3"}, paths)
	assert.Equal(t, []string{http.MethodPut, http.MethodDelete}, methods)
}

func TestClientMatricularUsesBothIDsInPath(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(srv.URL, zap.NewNop())
	require.NoError(t, client.Matricular(context.Background(), "Basic x", 5, 9))
	assert.Equal(t, "/alunos/5/matricular/9", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
}

func TestClientNonSuccessStatusIsRequestFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, zap.NewNop())
	_, err := client.ListAlunos(context.Background(), "Basic x")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrRequestFailed))
}

func TestClientConnectionFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := New(srv.URL, zap.NewNop())
	err := client.Ping(context.Background(), "Basic x")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrTransport))
}

func TestClientPingProbesStudentCollection(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL, zap.NewNop())
	require.NoError(t, client.Ping(context.Background(), "Basic x"))
	assert.Equal(t, "/alunos", gotPath)
}
