package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"quantiri/quantiri/config"
	"quantiri/quantiri/controllers"
	"quantiri/quantiri/routes"
	"quantiri/quantiri/services/llm"
	"quantiri/quantiri/services/mail"
	"quantiri/quantiri/services/prompt"
	"quantiri/quantiri/services/verification"
	"quantiri/quantiri/sources/psql"
	"quantiri/quantiri/sources/psql/dao"
	"quantiri/quantiri/sources/storage"
	"quantiri/quantiri/utils/logging"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	userDAO := dao.NewUserDAO(db.DB)
	datasetDAO := dao.NewDatasetDAO(db.DB)
	tokenDAO := dao.NewVerificationTokenDAO(db.DB)
	chatDAO := dao.NewChatMessageDAO(db.DB)

	var mailer mail.Mailer = mail.LogMailer{}
	if cfg.SMTPHost != "" {
		mailer = mail.NewSMTPMailer(cfg)
	}

	// Archive is optional: without an endpoint only the DB preview is kept.
	var archive *storage.MinIOClient
	if cfg.MinIOEndpoint != "" {
		archive, err = storage.NewMinIOClient(cfg)
		if err != nil {
			logging.ErrorLogger.Error("minio connection error", zap.Error(err))
			os.Exit(1)
		}
	}

	prompts := prompt.LoadPrompts(cfg.PromptsPath)
	groq := llm.NewGroqClient(cfg.GroqAPIKey)
	verifier := verification.NewService(userDAO, tokenDAO, mailer, cfg.BaseURL)

	authCtrl := controllers.NewAuthController(userDAO, verifier, cfg)
	userCtrl := controllers.NewUserController(userDAO)
	datasetCtrl := controllers.NewDatasetController(datasetDAO, archive)
	chatCtrl := controllers.NewChatController(datasetDAO, chatDAO, groq, prompts, cfg)
	insightsCtrl := controllers.NewInsightsController(groq, prompts, cfg)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/health", routes.HealthRoutes(healthCtrl))
	r.Mount("/auth", routes.AuthRoutes(authCtrl))
	r.Mount("/users", routes.UserRoutes(userCtrl, cfg))
	r.Mount("/datasets", routes.DatasetRoutes(datasetCtrl, cfg))
	r.Mount("/chat", routes.ChatRoutes(chatCtrl, cfg))
	r.Mount("/insights", routes.InsightsRoutes(insightsCtrl, cfg))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
