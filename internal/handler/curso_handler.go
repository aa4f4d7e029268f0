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
)

// CursosPageData feeds the course screen template.
type CursosPageData struct {
	Page
	Cursos []models.Curso

	Form      service.CursoForm
	FormOpen  bool
	FormEdit  bool
	EditingID int
}

// CursoHandler serves the course screen and its mutations.
type CursoHandler struct {
	cursos   *service.CursoService
	sessions *session.Manager
	metrics  *service.MetricsService
	logger   *zap.Logger
}

// NewCursoHandler constructs CursoHandler.
func NewCursoHandler(cursos *service.CursoService, sessions *session.Manager, metrics *service.MetricsService, logger *zap.Logger) *CursoHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CursoHandler{cursos: cursos, sessions: sessions, metrics: metrics, logger: logger}
}

type cursoViewState struct {
	form        service.CursoForm
	formOpen    bool
	formEdit    bool
	editingID   int
	prefill     bool
	inlineError string
}

// Index lists courses. Query parameters reopen the create form (novo) or
// the edit form (editar=<id>).
func (h *CursoHandler) Index(c *gin.Context) {
	st := cursoViewState{}
	if _, ok := c.GetQuery("novo"); ok {
		st.formOpen = true
	}
	if id, err := strconv.Atoi(c.Query("editar")); err == nil {
		st.formOpen = true
		st.formEdit = true
		st.editingID = id
		st.prefill = true
	}
	h.render(c, st)
}

// Create registers a new course; on failure the form stays open with the
// submitted draft.
func (h *CursoHandler) Create(c *gin.Context) {
	var form service.CursoForm
	_ = c.ShouldBind(&form)

	auth := middleware.CurrentSession(c).Credentials
	if err := h.cursos.Create(c.Request.Context(), auth, form); err != nil {
		h.observeFailure("curso_create", err)
		h.render(c, cursoViewState{form: form, formOpen: true, inlineError: noticeFor(err, "Erro ao salvar curso")})
		return
	}
	h.sessions.Success(c.Request, c.Writer, "Curso criado com sucesso!")
	c.Redirect(http.StatusSeeOther, "/cursos")
}

// Update edits an existing course; on failure the edit form stays open.
func (h *CursoHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.sessions.Error(c.Request, c.Writer, "Curso inválido")
		c.Redirect(http.StatusSeeOther, "/cursos")
		return
	}

	var form service.CursoForm
	_ = c.ShouldBind(&form)

	auth := middleware.CurrentSession(c).Credentials
	if err := h.cursos.Update(c.Request.Context(), auth, id, form); err != nil {
		h.observeFailure("curso_update", err)
		h.render(c, cursoViewState{form: form, formOpen: true, formEdit: true, editingID: id, inlineError: noticeFor(err, "Erro ao salvar curso")})
		return
	}
	h.sessions.Success(c.Request, c.Writer, "Curso atualizado com sucesso!")
	c.Redirect(http.StatusSeeOther, "/cursos")
}

// Delete removes a course after the template-side confirmation.
func (h *CursoHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.sessions.Error(c.Request, c.Writer, "Curso inválido")
		c.Redirect(http.StatusSeeOther, "/cursos")
		return
	}

	auth := middleware.CurrentSession(c).Credentials
	if err := h.cursos.Delete(c.Request.Context(), auth, id); err != nil {
		h.observeFailure("curso_delete", err)
		h.sessions.Error(c.Request, c.Writer, "Erro ao excluir curso")
	} else {
		h.sessions.Success(c.Request, c.Writer, "Curso excluído com sucesso!")
	}
	c.Redirect(http.StatusSeeOther, "/cursos")
}

func (h *CursoHandler) render(c *gin.Context, st cursoViewState) {
	current := middleware.CurrentSession(c)
	ctx := c.Request.Context()

	data := CursosPageData{
		Page: Page{Title: "Cursos", Active: "/cursos", User: current.User},
	}

	cursos, err := h.cursos.List(ctx, current.Credentials)
	if err != nil {
		h.observeFailure("cursos_list", err)
		data.Errors = append(data.Errors, "Erro ao carregar cursos")
	}
	data.Cursos = cursos

	data.Form = st.form
	data.FormOpen = st.formOpen
	data.FormEdit = st.formEdit
	data.EditingID = st.editingID
	if st.prefill {
		for _, curso := range cursos {
			if curso.ID == st.editingID {
				data.Form = service.CursoForm{Nome: curso.Nome, CargaHoraria: curso.CargaHoraria}
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

	c.HTML(http.StatusOK, "cursos.html", data)
}

func (h *CursoHandler) observeFailure(action string, err error) {
	h.logger.Warn("action failed", zap.String("action", action), zap.Error(err))
	if h.metrics != nil {
		h.metrics.ObserveBackendFailure(action)
	}
}
