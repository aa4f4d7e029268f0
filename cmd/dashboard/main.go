package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fernandarrocha/AV2-faculdade/internal/backend"
	"github.com/fernandarrocha/AV2-faculdade/internal/handler"
	"github.com/fernandarrocha/AV2-faculdade/internal/router"
	"github.com/fernandarrocha/AV2-faculdade/internal/service"
	"github.com/fernandarrocha/AV2-faculdade/internal/session"
	"github.com/fernandarrocha/AV2-faculdade/pkg/config"
	"github.com/fernandarrocha/AV2-faculdade/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	client := backend.New(cfg.Backend.BaseURL, logr)
	validate := validator.New()

	alunoSvc := service.NewAlunoService(client, validate, logr)
	cursoSvc := service.NewCursoService(client, validate, logr)
	metricsSvc := service.NewMetricsService()
	sessions := session.NewManager(cfg.Session, client, logr)

	r := router.New(cfg, logr, sessions, metricsSvc, router.Handlers{
		Auth:    handler.NewAuthHandler(sessions, logr),
		Alunos:  handler.NewAlunoHandler(alunoSvc, cursoSvc, sessions, metricsSvc, logr),
		Cursos:  handler.NewCursoHandler(cursoSvc, sessions, metricsSvc, logr),
		Exports: handler.NewExportHandler(alunoSvc, cursoSvc, sessions, logr),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("dashboard starting", "addr", addr, "env", cfg.Env, "backend", cfg.Backend.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
