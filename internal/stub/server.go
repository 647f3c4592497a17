// Package stub is a small in-memory stand-in for the management backend.
// It reproduces the backend's inconsistent response envelopes on purpose:
// products answer success-wrapped with meta, licenses as a resource-named
// list with pagination, notifications as a bare array, audit logs as
// data+pagination. The client's normalization layer is tested against it.
package stub

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"licboard/internal/core"
)

// Server holds the in-memory datasets. All access goes through mu; the stub
// favors simplicity over granular locking.
type Server struct {
	mu    sync.Mutex
	token string // empty disables auth

	products      map[string]core.Product
	versions      map[string]core.Version
	customers     map[string]core.Customer
	licenses      map[string]core.License
	allocations   map[string]core.LicenseAllocation
	notifications map[string]core.Notification
	auditLogs     map[string]core.AuditLog
	deployments   map[string]core.Deployment
	pending       map[string]core.PendingUpdate
	rollouts      map[string]core.UpdateRollout
	packages      map[string]core.Package
}

func NewServer(token string) *Server {
	s := &Server{
		token:         token,
		products:      map[string]core.Product{},
		versions:      map[string]core.Version{},
		customers:     map[string]core.Customer{},
		licenses:      map[string]core.License{},
		allocations:   map[string]core.LicenseAllocation{},
		notifications: map[string]core.Notification{},
		auditLogs:     map[string]core.AuditLog{},
		deployments:   map[string]core.Deployment{},
		pending:       map[string]core.PendingUpdate{},
		rollouts:      map[string]core.UpdateRollout{},
		packages:      map[string]core.Package{},
	}
	s.seed()
	return s
}

// Router builds the versioned API surface under /api/v1.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.bearerAuth)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.listProducts)
			r.Post("/", s.createProduct)
			r.Get("/{id}", s.getProduct)
			r.Put("/{id}", s.updateProduct)
			r.Delete("/{id}", s.deleteProduct)
		})

		r.Route("/versions", func(r chi.Router) {
			r.Get("/", s.listVersions)
			r.Post("/", s.createVersion)
			r.Get("/{id}", s.getVersion)
			r.Post("/{id}/submit-for-review", s.versionAction(core.VersionPendingReview))
			r.Post("/{id}/approve", s.versionAction(core.VersionApproved))
			r.Post("/{id}/release", s.versionAction(core.VersionReleased))
			r.Post("/{id}/deprecate", s.versionAction(core.VersionDeprecated))
			r.Post("/{id}/eol", s.versionAction(core.VersionEOL))
			r.Post("/{id}/packages", s.uploadPackage)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", s.listCustomers)
			r.Get("/{id}", s.getCustomer)
		})

		r.Route("/licenses", func(r chi.Router) {
			r.Get("/", s.listLicenses)
			r.Get("/{id}", s.getLicense)
			r.Post("/{id}/allocate", s.allocateLicense)
			r.Get("/{id}/allocations", s.listLicenseAllocations)
			r.Post("/{id}/block", s.blockLicense)
		})

		r.Get("/notifications", s.listNotifications)
		r.Get("/audit-logs", s.listAuditLogs)

		r.Route("/deployments", func(r chi.Router) {
			r.Get("/", s.listDeployments)
			r.Get("/{id}", s.getDeployment)
			r.Get("/{id}/pending-updates", s.listPendingUpdates)
		})

		r.Route("/update-rollouts", func(r chi.Router) {
			r.Get("/", s.listRollouts)
			r.Get("/{id}", s.getRollout)
			r.Post("/{id}/pause", s.rolloutAction(core.RolloutPaused))
			r.Post("/{id}/resume", s.rolloutAction(core.RolloutRunning))
		})

		r.Get("/packages", s.listPackages)
	})

	return r
}

// bearerAuth rejects requests without the configured token, answering with
// the backend's success-wrapped error envelope.
func (s *Server) bearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.token == "" {
			next.ServeHTTP(w, r)
			return
		}
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") != s.token {
			writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "missing or invalid bearer token")
			return
		}
		next.ServeHTTP(w, r)
	})
}
