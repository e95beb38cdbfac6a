package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/store"
)

// RouterOptions carries the externally configured router behaviour.
type RouterOptions struct {
	AllowedOrigins []string
	RateLimitRPM   int
}

// API holds the handler dependencies.
type API struct {
	store *store.Store
}

// New wires the API layer around the store.
func New(st *store.Store) *API {
	return &API{store: st}
}

// Routes builds the HTTP router: CORS for the browser dev origin,
// request limiting, health/readiness, metrics, and the /api surface.
func (a *API) Routes(opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	allowed := opts.AllowedOrigins
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         int((10 * time.Minute).Seconds()),
	}))

	if opts.RateLimitRPM > 0 {
		r.Use(httprate.Limit(opts.RateLimitRPM, time.Minute))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if err := a.store.Ping(req.Context()); err != nil {
			respondError(w, http.StatusServiceUnavailable, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/roles", func(r chi.Router) {
			r.Get("/", a.handleListRoles)
			r.Post("/", a.handleCreateRole)
			r.Get("/{roleName}/users", a.handleListUsersByRole)
		})
		r.Route("/users", func(r chi.Router) {
			r.Get("/", a.handleListUsers)
			r.Post("/", a.handleCreateUser)
			r.Delete("/{id}", a.handleDeleteUser)
			r.Get("/{userID}/roles", a.handleListRolesOfUser)
			r.Post("/{userID}/roles/{roleID}", a.handleAssignRole)
			r.Delete("/{userID}/roles/{roleID}", a.handleUnassignRole)
		})
	})

	return r
}
