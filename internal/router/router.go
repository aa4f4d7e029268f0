package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fernandarrocha/AV2-faculdade/internal/handler"
	"github.com/fernandarrocha/AV2-faculdade/internal/middleware"
	"github.com/fernandarrocha/AV2-faculdade/internal/service"
	"github.com/fernandarrocha/AV2-faculdade/internal/session"
	"github.com/fernandarrocha/AV2-faculdade/internal/view"
	"github.com/fernandarrocha/AV2-faculdade/pkg/config"
	"github.com/fernandarrocha/AV2-faculdade/pkg/logger"
	reqidmiddleware "github.com/fernandarrocha/AV2-faculdade/pkg/middleware/requestid"
)

// Handlers bundles the screen handlers wired into the router.
type Handlers struct {
	Auth    *handler.AuthHandler
	Alunos  *handler.AlunoHandler
	Cursos  *handler.CursoHandler
	Exports *handler.ExportHandler
}

// New assembles the Gin engine: middleware chain, templates and routes.
func New(cfg *config.Config, logr *zap.Logger, sessions *session.Manager, metricsSvc *service.MetricsService, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.SetHTMLTemplate(view.Templates())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	r.GET("/login", h.Auth.LoginPage)
	r.POST("/login", h.Auth.Login)

	authorized := r.Group("/", middleware.RequireSession(sessions))
	authorized.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/alunos")
	})
	authorized.POST("/logout", h.Auth.Logout)

	authorized.GET("/alunos", h.Alunos.Index)
	authorized.POST("/alunos", h.Alunos.Create)
	authorized.POST("/alunos/:id", h.Alunos.Update)
	authorized.POST("/alunos/:id/excluir", h.Alunos.Delete)
	authorized.POST("/alunos/:id/matricular", h.Alunos.Matricular)

	authorized.GET("/cursos", h.Cursos.Index)
	authorized.POST("/cursos", h.Cursos.Create)
	authorized.POST("/cursos/:id", h.Cursos.Update)
	authorized.POST("/cursos/:id/excluir", h.Cursos.Delete)

	if cfg.Exports.Enabled {
		authorized.GET("/alunos/exportar", h.Exports.Alunos)
		authorized.GET("/cursos/exportar", h.Exports.Cursos)
	}

	return r
}
