package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fernandarrocha/AV2-faculdade/internal/middleware"
	"github.com/fernandarrocha/AV2-faculdade/internal/models"
	"github.com/fernandarrocha/AV2-faculdade/internal/service"
	"github.com/fernandarrocha/AV2-faculdade/internal/session"
	appErrors "github.com/fernandarrocha/AV2-faculdade/pkg/errors"
)

// AlunosPageData feeds the student screen template.
type AlunosPageData struct {
	Page
	Alunos []models.Aluno
	Cursos []models.Curso

	Form      service.AlunoForm
	FormOpen  bool
	FormEdit  bool
	EditingID int

	MatriculaOpen    bool
	MatriculaAlunoID int
	MatriculaAluno   string
}

// AlunoHandler serves the student screen and its mutations.
type AlunoHandler struct {
	alunos   *service.AlunoService
	cursos   *service.CursoService
	sessions *session.Manager
	metrics  *service.MetricsService
	logger   *zap.Logger
}

// NewAlunoHandler constructs AlunoHandler.
func NewAlunoHandler(alunos *service.AlunoService, cursos *service.CursoService, sessions *session.Manager, metrics *service.MetricsService, logger *zap.Logger) *AlunoHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AlunoHandler{alunos: alunos, cursos: cursos, sessions: sessions, metrics: metrics, logger: logger}
}

// alunoViewState captures which dialog is open and the form draft carried
// into a render. A failed mutation re-renders with the draft intact so the
// user may retry.
type alunoViewState struct {
	form        service.AlunoForm
	formOpen    bool
	formEdit    bool
	editingID   int
	prefill     bool
	matriculaID int
	inlineError string
}

// Index lists students plus the course catalog for the enrollment
// selector. Query parameters reopen the create form (novo), the edit form
// (editar=<id>) or the enrollment selector (matricular=<id>).
func (h *AlunoHandler) Index(c *gin.Context) {
	st := alunoViewState{}
	if _, ok := c.GetQuery("novo"); ok {
		st.formOpen = true
	}
	if id, err := strconv.Atoi(c.Query("editar")); err == nil {
		st.formOpen = true
		st.formEdit = true
		st.editingID = id
		st.prefill = true
	}
	if id, err := strconv.Atoi(c.Query("matricular")); err == nil {
		st.matriculaID = id
	}
	h.render(c, st)
}

// Create registers a new student; on failure the form stays open with the
// submitted draft.
func (h *AlunoHandler) Create(c *gin.Context) {
	var form service.AlunoForm
	_ = c.ShouldBind(&form)

	auth := middleware.CurrentSession(c).Credentials
	if err := h.alunos.Create(c.Request.Context(), auth, form); err != nil {
		h.observeFailure("aluno_create", err)
		h.render(c, alunoViewState{form: form, formOpen: true, inlineError: noticeFor(err, "Erro ao salvar aluno")})
		return
	}
	h.sessions.Success(c.Request, c.Writer, "Aluno criado com sucesso!")
	c.Redirect(http.StatusSeeOther, "/alunos")
}

// Update edits an existing student; on failure the edit form stays open.
func (h *AlunoHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.sessions.Error(c.Request, c.Writer, "Aluno inválido")
		c.Redirect(http.StatusSeeOther, "/alunos")
		return
	}

	var form service.AlunoForm
	_ = c.ShouldBind(&form)

	auth := middleware.CurrentSession(c).Credentials
	if err := h.alunos.Update(c.Request.Context(), auth, id, form); err != nil {
		h.observeFailure("aluno_update", err)
		h.render(c, alunoViewState{form: form, formOpen: true, formEdit: true, editingID: id, inlineError: noticeFor(err, "Erro ao salvar aluno")})
		return
	}
	h.sessions.Success(c.Request, c.Writer, "Aluno atualizado com sucesso!")
	c.Redirect(http.StatusSeeOther, "/alunos")
}

// Delete removes a student. The confirmation prompt lives in the template;
// a declined prompt never reaches this handler.
func (h *AlunoHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.sessions.Error(c.Request, c.Writer, "Aluno inválido")
		c.Redirect(http.StatusSeeOther, "/alunos")
		return
	}

	auth := middleware.CurrentSession(c).Credentials
	if err := h.alunos.Delete(c.Request.Context(), auth, id); err != nil {
		h.observeFailure("aluno_delete", err)
		h.sessions.Error(c.Request, c.Writer, "Erro ao excluir aluno")
	} else {
		h.sessions.Success(c.Request, c.Writer, "Aluno excluído com sucesso!")
	}
	c.Redirect(http.StatusSeeOther, "/alunos")
}

// Matricular enrolls a student in the selected course. An empty selection
// is rejected before any request is sent and the selector stays open.
func (h *AlunoHandler) Matricular(c *gin.Context) {
	alunoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.sessions.Error(c.Request, c.Writer, "Aluno inválido")
		c.Redirect(http.StatusSeeOther, "/alunos")
		return
	}

	cursoID, _ := strconv.Atoi(c.PostForm("cursoId"))

	auth := middleware.CurrentSession(c).Credentials
	if err := h.alunos.Matricular(c.Request.Context(), auth, alunoID, cursoID); err != nil {
		if !appErrors.Is(err, appErrors.ErrEmptySelection) {
			h.observeFailure("aluno_matricular", err)
		}
		h.render(c, alunoViewState{matriculaID: alunoID, inlineError: noticeFor(err, "Erro ao matricular aluno")})
		return
	}
	h.sessions.Success(c.Request, c.Writer, "Aluno matriculado com sucesso!")
	c.Redirect(http.StatusSeeOther, "/alunos")
}

func (h *AlunoHandler) render(c *gin.Context, st alunoViewState) {
	current := middleware.CurrentSession(c)
	auth := current.Credentials
	ctx := c.Request.Context()

	data := AlunosPageData{
		Page: Page{Title: "Alunos", Active: "/alunos", User: current.User},
	}

	alunos, err := h.alunos.List(ctx, auth)
	if err != nil {
		h.observeFailure("alunos_list", err)
		data.Errors = append(data.Errors, "Erro ao carregar alunos")
	}
	data.Alunos = alunos

	cursos, err := h.cursos.List(ctx, auth)
	if err != nil {
		// The catalog only feeds the enrollment selector; a failure here is
		// diagnostic, not user-facing.
		h.logger.Warn("failed to load course catalog", zap.Error(err))
	}
	data.Cursos = cursos

	data.Form = st.form
	data.FormOpen = st.formOpen
	data.FormEdit = st.formEdit
	data.EditingID = st.editingID
	if st.prefill {
		for _, a := range alunos {
			if a.ID == st.editingID {
				data.Form = service.AlunoForm{Nome: a.Nome, Email: a.Email, Matricula: a.Matricula}
				break
			}
		}
	}

	if st.matriculaID > 0 {
		data.MatriculaOpen = true
		data.MatriculaAlunoID = st.matriculaID
		for _, a := range alunos {
			if a.ID == st.matriculaID {
				data.MatriculaAluno = a.Nome
				break
			}
		}
	}

	successes, errors := h.sessions.Notices(c.Request, c.Writer)
	data.Successes = append(data.Successes, successes...)
	data.Errors = append(data.Errors, errors...)
	if st.inlineError != "" {
		data.Errors = append(data.Errors, st.inlineError)
	}

	c.HTML(http.StatusOK, "alunos.html", data)
}

func (h *AlunoHandler) observeFailure(action string, err error) {
	h.logger.Warn("action failed", zap.String("action", action), zap.Error(err))
	if h.metrics != nil {
		h.metrics.ObserveBackendFailure(action)
	}
}
