/**
 * @description
 * This file sets up the HTTP router for the portal using the go-chi/chi
 * router. It defines the screen and session routes, applies middleware for
 * logging, CORS, and portal session resolution, and guards the admin
 * routes behind the session's role.
 */
package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
)

// NewRouter creates a new Chi router and registers the portal routes.
func NewRouter(h *Handler, m *Manager) *chi.Mux {
	r := chi.NewRouter()

	// Setup middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any major browsers
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Portal frontend is healthy"))
	})

	r.Get("/login", h.handleLogin)

	// Routes bound to a portal session
	r.Group(func(r chi.Router) {
		r.Use(m.WithSession)

		r.Get("/session", h.handleSession)
		r.Post("/session/refresh", h.handleRefreshSession)
		r.Post("/logout", h.handleLogout)

		r.Route("/marketplace", func(r chi.Router) {
			r.Get("/", h.handleMarketplace)
			r.Put("/filter", h.handleMarketplaceFilter)
			r.Post("/{id}/purchase", h.handleMarketplacePurchase)
			r.Post("/checkout", h.handleMarketplaceCheckout)
			r.Post("/close", h.handleMarketplaceClose)
		})

		r.Route("/my-policies", func(r chi.Router) {
			r.Get("/", h.handleMyPolicies)
			r.Post("/{id}/cancel", h.handleMyPolicyCancel)
			r.Post("/cancel/confirm", h.handleMyPolicyCancelConfirm)
			r.Post("/cancel/close", h.handleMyPolicyCancelClose)
		})

		r.Get("/my-claims", h.handleMyClaims)

		r.Route("/submit-claim", func(r chi.Router) {
			r.Get("/", h.handleSubmitClaimScreen)
			r.Put("/form", h.handleSubmitClaimForm)
			r.Post("/", h.handleSubmitClaim)
			r.Post("/clear", h.handleSubmitClaimClear)
		})

		// Admin-only screens
		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAdmin)

			r.Get("/overview", h.handleAdminOverview)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.handleAdminUsers)
				r.Put("/search", h.handleAdminUserSearch)
				r.Put("/filter", h.handleAdminUserFilter)
				r.Put("/form", h.handleAdminUserForm)
				r.Post("/modal/create", h.handleAdminUserOpenCreate)
				r.Post("/modal/close", h.handleAdminUserClose)
				r.Post("/{id}/modal/deactivate", h.handleAdminUserOpenDeactivate)
				r.Post("/", h.handleAdminUserCreate)
				r.Post("/deactivate/confirm", h.handleAdminUserDeactivate)
			})

			r.Route("/policies", func(r chi.Router) {
				r.Get("/", h.handleAdminPolicies)
				r.Put("/filter", h.handleAdminPolicyFilter)
				r.Put("/form", h.handleAdminPolicyForm)
				r.Post("/modal/create", h.handleAdminPolicyOpenCreate)
				r.Post("/modal/close", h.handleAdminPolicyClose)
				r.Post("/{id}/modal/edit", h.handleAdminPolicyOpenEdit)
				r.Post("/{id}/modal/delete", h.handleAdminPolicyOpenDelete)
				r.Post("/", h.handleAdminPolicyCreate)
				r.Put("/edit", h.handleAdminPolicyEdit)
				r.Post("/delete/confirm", h.handleAdminPolicyDelete)
				r.Post("/{id}/toggle", h.handleAdminPolicyToggle)
			})

			r.Route("/claims", func(r chi.Router) {
				r.Get("/", h.handleAdminClaims)
				r.Put("/filter", h.handleAdminClaimFilter)
				r.Post("/{id}/review", h.handleAdminClaimStartReview)
				r.Put("/review/notes", h.handleAdminClaimReviewNotes)
				r.Post("/review/cancel", h.handleAdminClaimCancelReview)
				r.Post("/{id}/review/approve", h.handleAdminClaimReview(domain.ClaimApproved))
				r.Post("/{id}/review/reject", h.handleAdminClaimReview(domain.ClaimRejected))
			})
		})
	})

	return r
}

// requireAdmin rejects requests whose session identity is missing or not an
// admin. Unauthenticated callers go to the login route; authenticated
// non-admins get a 403.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFrom(r.Context())
		if sess == nil || !sess.Store.IsAuthenticated() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if !sess.Store.IsAdmin() {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
