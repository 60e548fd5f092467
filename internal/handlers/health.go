package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shruti-lab/Transaction-Monitoring-Dashboard/internal/response"
)

type healthHandlers struct {
	ResponseHandler response.ResponseHandler
}

func NewHealthHandlers(deps *Deps) *healthHandlers {
	return &healthHandlers{ResponseHandler: deps.ResponseHandler}
}

func (h *healthHandlers) HealthRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Health)
	return r
}

// Health reports liveness of the dashboard process itself. Backend
// reachability is deliberately not probed here: reads degrade to generated
// data, so an unreachable backend does not make the dashboard unhealthy.
func (h *healthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
