package httpx

import (
	"log/slog"
	"net/http"

	"github.com/jobtrackr/jobtrackr-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Apps     *service.JobApplicationService
	Tags     *service.TagService
	Identity Authenticator
	Logger   *slog.Logger
}

// NewRouter creates and configures the HTTP router. Every /api route requires
// a bearer token; health endpoints do not.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	appHandlers := &JobApplicationHandlers{Svc: services.Apps}
	tagHandlers := &TagHandlers{Svc: services.Tags}

	requireAuth := RequireAuth(services.Identity)
	registerJobApplicationRoutes(mux, appHandlers, requireAuth)
	registerTagRoutes(mux, tagHandlers, requireAuth)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return Logging(logger)(Recover(logger)(mux))
}

func registerJobApplicationRoutes(
	mux *http.ServeMux,
	h *JobApplicationHandlers,
	requireAuth func(http.Handler) http.Handler,
) {
	mux.Handle("GET /api/applications", requireAuth(http.HandlerFunc(h.List)))
	mux.Handle("POST /api/applications", requireAuth(http.HandlerFunc(h.Create)))
	// Literal segment, registered before the {id} wildcard matters for readers,
	// not the mux: ServeMux prefers the more specific pattern.
	mux.Handle("PUT /api/applications/reorder", requireAuth(http.HandlerFunc(h.Reorder)))
	mux.Handle("GET /api/applications/{id}", requireAuth(http.HandlerFunc(h.Get)))
	mux.Handle("PUT /api/applications/{id}/status", requireAuth(http.HandlerFunc(h.ChangeStatus)))
	mux.Handle("GET /api/applications/{id}/history", requireAuth(http.HandlerFunc(h.History)))
	mux.Handle("DELETE /api/applications/{id}", requireAuth(http.HandlerFunc(h.Delete)))
}

func registerTagRoutes(mux *http.ServeMux, h *TagHandlers, requireAuth func(http.Handler) http.Handler) {
	mux.Handle("GET /api/tags", requireAuth(http.HandlerFunc(h.List)))
	mux.Handle("POST /api/tags", requireAuth(http.HandlerFunc(h.Create)))
}
