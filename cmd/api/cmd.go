package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/config"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/handlers"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/mockdata"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/response"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/router"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/services"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/upstream"
	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	log := logger.New(cfg.LogLevel, func(level slog.Level) slog.Handler {
		return logger.NewJSONHandler(level)
	})

	// data-access layer
	client := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	mock := mockdata.New(cfg.MockSeed)
	dsvc := services.NewDashboardService(client, mock)

	// response handler
	rh := response.New(log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = log
	deps.ResponseHandler = rh
	deps.DashboardSvc = dsvc

	// router
	r := router.NewRouter(deps, cfg.AllowedOrigins)
	log.Info("starting dashboard api", "port", cfg.Port, "upstream", cfg.UpstreamBaseURL)
	err := http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, log)
}
