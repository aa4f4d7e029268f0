package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fernandarrocha/AV2-faculdade/internal/middleware"
	"github.com/fernandarrocha/AV2-faculdade/internal/service"
	"github.com/fernandarrocha/AV2-faculdade/internal/session"
	"github.com/fernandarrocha/AV2-faculdade/pkg/export"
)

// ExportHandler renders the roster screens as downloadable CSV or PDF.
type ExportHandler struct {
	alunos   *service.AlunoService
	cursos   *service.CursoService
	sessions *session.Manager
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(alunos *service.AlunoService, cursos *service.CursoService, sessions *session.Manager, logger *zap.Logger) *ExportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportHandler{
		alunos:   alunos,
		cursos:   cursos,
		sessions: sessions,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// Alunos exports the student roster (?formato=csv|pdf, default csv).
func (h *ExportHandler) Alunos(c *gin.Context) {
	auth := middleware.CurrentSession(c).Credentials
	alunos, err := h.alunos.List(c.Request.Context(), auth)
	if err != nil {
		h.fail(c, "/alunos", "Erro ao carregar alunos")
		return
	}

	data := export.Dataset{Headers: []string{"Matrícula", "Nome", "Email", "Cursos"}}
	for _, a := range alunos {
		data.Rows = append(data.Rows, []string{a.Matricula, a.Nome, a.Email, a.CursoNomes()})
	}
	h.serve(c, "/alunos", data, "alunos", "Lista de Alunos")
}

// Cursos exports the course roster (?formato=csv|pdf, default csv).
func (h *ExportHandler) Cursos(c *gin.Context) {
	auth := middleware.CurrentSession(c).Credentials
	cursos, err := h.cursos.List(c.Request.Context(), auth)
	if err != nil {
		h.fail(c, "/cursos", "Erro ao carregar cursos")
		return
	}

	data := export.Dataset{Headers: []string{"Nome", "Carga Horária", "Alunos Matriculados"}}
	for _, curso := range cursos {
		data.Rows = append(data.Rows, []string{curso.Nome, strconv.Itoa(curso.CargaHoraria), strconv.Itoa(len(curso.Alunos))})
	}
	h.serve(c, "/cursos", data, "cursos", "Lista de Cursos")
}

func (h *ExportHandler) serve(c *gin.Context, backTo string, data export.Dataset, name, title string) {
	switch c.DefaultQuery("formato", "csv") {
	case "pdf":
		rendered, err := h.pdf.Render(data, title)
		if err != nil {
			h.logger.Error("pdf export failed", zap.Error(err))
			h.fail(c, backTo, "Erro ao exportar")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", name))
		c.Data(http.StatusOK, "application/pdf", rendered)
	default:
		rendered, err := h.csv.Render(data)
		if err != nil {
			h.logger.Error("csv export failed", zap.Error(err))
			h.fail(c, backTo, "Erro ao exportar")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", name))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", rendered)
	}
}

func (h *ExportHandler) fail(c *gin.Context, backTo, message string) {
	h.sessions.Error(c.Request, c.Writer, message)
	c.Redirect(http.StatusSeeOther, backTo)
}
