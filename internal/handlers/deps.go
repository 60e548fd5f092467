package handlers

import (
	"log/slog"

	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	DashboardSvc    DashboardService
}
