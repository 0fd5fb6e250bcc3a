package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dropDatabas3/courrier/internal/config"
	"github.com/dropDatabas3/courrier/internal/email"
	httpserver "github.com/dropDatabas3/courrier/internal/http"
	notifCtrl "github.com/dropDatabas3/courrier/internal/http/controllers/notifications"
	notifSvc "github.com/dropDatabas3/courrier/internal/http/services/notifications"
	"github.com/dropDatabas3/courrier/internal/metrics"
	"github.com/dropDatabas3/courrier/internal/observability/logger"
)

const version = "0.3.0"

func main() {
	// .env es opcional; en producción las variables vienen del entorno.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic(err)
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       os.Getenv("LOG_LEVEL"),
		ServiceName: "courrier",
		Version:     version,
	})
	defer func() { _ = logger.Sync() }()

	log := logger.L().With(logger.Component("bootstrap"))

	store := email.NewStore(cfg.Email.TemplatesDir)
	renderer := email.NewRenderer(store, cfg.Email.BaseURL)
	sender := &email.SMTPSender{
		Host:               cfg.SMTP.Host,
		Port:               cfg.SMTP.Port,
		From:               cfg.SMTP.From,
		FromName:           cfg.SMTP.FromName,
		User:               cfg.SMTP.Username,
		Pass:               cfg.SMTP.Password,
		TLSMode:            cfg.SMTP.TLS,
		InsecureSkipVerify: cfg.SMTP.InsecureSkipVerify,
	}
	dispatcher := email.NewService(email.ServiceConfig{
		Renderer: renderer,
		Sender:   sender,
		TestMode: cfg.TestMode(),
	})

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		if err := metrics.RegisterEmail(prometheus.DefaultRegisterer); err != nil {
			log.Error("metrics registration failed", logger.Err(err))
			os.Exit(1)
		}
		metricsHandler, err = httpserver.RegisterMetrics(prometheus.DefaultRegisterer)
		if err != nil {
			log.Error("metrics registration failed", logger.Err(err))
			os.Exit(1)
		}
	}

	controller := notifCtrl.NewController(notifSvc.NewService(dispatcher))

	handler := httpserver.NewRouter(httpserver.RouterDeps{
		Config:         cfg,
		Notifications:  controller,
		MetricsHandler: metricsHandler,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server listening",
			logger.String("addr", cfg.Server.Addr),
			logger.String("env", cfg.App.Env),
			logger.String("mode", emailMode(cfg)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", logger.Err(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", logger.Err(err))
		return
	}
	log.Info("server stopped cleanly")
}

func emailMode(cfg *config.Config) string {
	if cfg.TestMode() {
		return "test"
	}
	return "smtp"
}
