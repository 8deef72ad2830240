/**
 * @description
 * This file contains the HTTP handler functions for the portal. Handlers
 * are deliberately thin: they parse the request, call into the session's
 * screen controller, and render the controller's snapshot as JSON. A 401
 * flagged by the request interceptor turns the response into a redirect to
 * the login route instead.
 */
package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bobijackrussel/e-insurance-microservice/internal/controller"
	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
)

// Handler holds the session manager and the gateway login target.
type Handler struct {
	manager  *Manager
	loginURL string
}

// NewHandler creates a new Handler.
func NewHandler(manager *Manager, loginURL string) *Handler {
	return &Handler{manager: manager, loginURL: loginURL}
}

// respond renders a controller snapshot, unless an outbound call during
// this request hit a 401, in which case the browser is sent to the login
// route and the snapshot is discarded.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, payload any) {
	if LoginRedirectRequested(r.Context()) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	respondWithJSON(w, http.StatusOK, payload)
}

func decode(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// respondWithJSON is a helper function to write JSON responses.
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// --- session ---

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"loginUrl": h.loginURL + "/login"})
}

func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	respondWithJSON(w, http.StatusOK, map[string]any{
		"user":            sess.Store.Current(),
		"isAuthenticated": sess.Store.IsAuthenticated(),
		"isAdmin":         sess.Store.IsAdmin(),
	})
}

func (h *Handler) handleRefreshSession(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	sess.Store.Refresh(r.Context())
	h.handleSession(w, r)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	if err := sess.Store.Logout(r.Context()); err != nil {
		h.respond(w, r, map[string]string{"error": "Logout failed. Please try again."})
		return
	}
	h.manager.Drop(sess.ID)
	http.SetCookie(w, &http.Cookie{Name: portalCookieName, Value: "", Path: "/", MaxAge: -1})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// --- marketplace ---

func (h *Handler) handleMarketplace(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	_ = sess.Marketplace.Load(r.Context())
	h.respond(w, r, sess.Marketplace.State())
}

func (h *Handler) handleMarketplaceFilter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type string `json:"type"`
	}
	if !decode(w, r, &req) {
		return
	}
	sess := SessionFrom(r.Context())
	sess.Marketplace.SetFilter(req.Type)
	h.respond(w, r, sess.Marketplace.State())
}

func (h *Handler) handleMarketplacePurchase(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	template, ok := sess.Marketplace.TemplateByID(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "Unknown policy template", http.StatusNotFound)
		return
	}
	sess.Marketplace.OpenPurchase(template)
	h.respond(w, r, sess.Marketplace.State())
}

func (h *Handler) handleMarketplaceCheckout(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	sessionURL, err := sess.Marketplace.BeginCheckout(r.Context())
	if err != nil || sessionURL == "" {
		h.respond(w, r, sess.Marketplace.State())
		return
	}
	// Full-page redirect to the gateway-hosted checkout.
	if LoginRedirectRequested(r.Context()) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, sessionURL, http.StatusSeeOther)
}

func (h *Handler) handleMarketplaceClose(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	_ = sess.Marketplace.ClosePurchase(r.Context())
	h.respond(w, r, sess.Marketplace.State())
}

// --- my policies ---

func (h *Handler) handleMyPolicies(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	_ = sess.MyPolicies.Load(r.Context())
	h.respond(w, r, sess.MyPolicies.State())
}

func (h *Handler) handleMyPolicyCancel(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	policy, ok := sess.MyPolicies.PolicyByID(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "Unknown policy", http.StatusNotFound)
		return
	}
	sess.MyPolicies.OpenCancel(policy)
	h.respond(w, r, sess.MyPolicies.State())
}

func (h *Handler) handleMyPolicyCancelConfirm(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	_ = sess.MyPolicies.ConfirmCancel(r.Context())
	h.respond(w, r, sess.MyPolicies.State())
}

func (h *Handler) handleMyPolicyCancelClose(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	sess.MyPolicies.CloseCancel()
	h.respond(w, r, sess.MyPolicies.State())
}

// --- my claims ---

func (h *Handler) handleMyClaims(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	_ = sess.MyClaims.Load(r.Context())
	h.respond(w, r, sess.MyClaims.State())
}

// --- submit claim ---

func (h *Handler) handleSubmitClaimScreen(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	_ = sess.SubmitClaim.LoadPolicies(r.Context())
	h.respond(w, r, sess.SubmitClaim.State())
}

func (h *Handler) handleSubmitClaimForm(w http.ResponseWriter, r *http.Request) {
	var form controller.ClaimForm
	if !decode(w, r, &form) {
		return
	}
	sess := SessionFrom(r.Context())
	sess.SubmitClaim.SetForm(form)
	h.respond(w, r, sess.SubmitClaim.State())
}

func (h *Handler) handleSubmitClaim(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	_ = sess.SubmitClaim.Submit(r.Context())
	h.respond(w, r, sess.SubmitClaim.State())
}

func (h *Handler) handleSubmitClaimClear(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	sess.SubmitClaim.ClearForm()
	h.respond(w, r, sess.SubmitClaim.State())
}

// --- admin: overview ---

func (h *Handler) handleAdminOverview(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	sess.AdminOverview.Load(r.Context())
	h.respond(w, r, sess.AdminOverview.State())
}

// --- admin: users ---

func (h *Handler) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	_ = sess.UserManagement.Load(r.Context())
	h.respond(w, r, sess.UserManagement.State())
}

func (h *Handler) handleAdminUserSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Q string `json:"q"`
	}
	if !decode(w, r, &req) {
		return
	}
	sess := SessionFrom(r.Context())
	sess.UserManagement.SetSearch(req.Q)
	h.respond(w, r, sess.UserManagement.State())
}

func (h *Handler) handleAdminUserFilter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Role string `json:"role"`
	}
	if !decode(w, r, &req) {
		return
	}
	sess := SessionFrom(r.Context())
	sess.UserManagement.SetFilter(req.Role)
	h.respond(w, r, sess.UserManagement.State())
}

func (h *Handler) handleAdminUserOpenCreate(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	sess.UserManagement.OpenCreate()
	h.respond(w, r, sess.UserManagement.State())
}

func (h *Handler) handleAdminUserForm(w http.ResponseWriter, r *http.Request) {
	var form controller.UserCreateForm
	if !decode(w, r, &form) {
		return
	}
	sess := SessionFrom(r.Context())
	sess.UserManagement.SetForm(form)
	h.respond(w, r, sess.UserManagement.State())
}

func (h *Handler) handleAdminUserCreate(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	_ = sess.UserManagement.SubmitCreate(r.Context())
	h.respond(w, r, sess.UserManagement.State())
}

func (h *Handler) handleAdminUserOpenDeactivate(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	user, ok := sess.UserManagement.UserByID(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "Unknown user", http.StatusNotFound)
		return
	}
	sess.UserManagement.OpenDeactivate(user)
	h.respond(w, r, sess.UserManagement.State())
}

func (h *Handler) handleAdminUserDeactivate(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	_ = sess.UserManagement.ConfirmDeactivate(r.Context())
	h.respond(w, r, sess.UserManagement.State())
}

func (h *Handler) handleAdminUserClose(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	sess.UserManagement.CloseModals()
	h.respond(w, r, sess.UserManagement.State())
}

// --- admin: policy templates ---

func (h *Handler) handleAdminPolicies(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	_ = sess.PolicyManagement.Load(r.Context())
	h.respond(w, r, sess.PolicyManagement.State())
}

func (h *Handler) handleAdminPolicyFilter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type string `json:"type"`
	}
	if !decode(w, r, &req) {
		return
	}
	sess := SessionFrom(r.Context())
	sess.PolicyManagement.SetFilter(req.Type)
	h.respond(w, r, sess.PolicyManagement.State())
}

func (h *Handler) handleAdminPolicyForm(w http.ResponseWriter, r *http.Request) {
	var form controller.PolicyTemplateForm
	if !decode(w, r, &form) {
		return
	}
	sess := SessionFrom(r.Context())
	sess.PolicyManagement.SetForm(form)
	h.respond(w, r, sess.PolicyManagement.State())
}

func (h *Handler) handleAdminPolicyOpenCreate(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	sess.PolicyManagement.OpenCreate()
	h.respond(w, r, sess.PolicyManagement.State())
}

func (h *Handler) handleAdminPolicyOpenEdit(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	template, ok := sess.PolicyManagement.TemplateByID(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "Unknown policy template", http.StatusNotFound)
		return
	}
	sess.PolicyManagement.OpenEdit(template)
	h.respond(w, r, sess.PolicyManagement.State())
}

func (h *Handler) handleAdminPolicyOpenDelete(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	template, ok := sess.PolicyManagement.TemplateByID(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "Unknown policy template", http.StatusNotFound)
		return
	}
	sess.PolicyManagement.OpenDelete(template)
	h.respond(w, r, sess.PolicyManagement.State())
}

func (h *Handler) handleAdminPolicyClose(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	sess.PolicyManagement.CloseModals()
	h.respond(w, r, sess.PolicyManagement.State())
}

func (h *Handler) handleAdminPolicyCreate(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	_ = sess.PolicyManagement.SubmitCreate(r.Context())
	h.respond(w, r, sess.PolicyManagement.State())
}

func (h *Handler) handleAdminPolicyEdit(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	_ = sess.PolicyManagement.SubmitEdit(r.Context())
	h.respond(w, r, sess.PolicyManagement.State())
}

func (h *Handler) handleAdminPolicyDelete(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	_ = sess.PolicyManagement.ConfirmDelete(r.Context())
	h.respond(w, r, sess.PolicyManagement.State())
}

func (h *Handler) handleAdminPolicyToggle(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	template, ok := sess.PolicyManagement.TemplateByID(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "Unknown policy template", http.StatusNotFound)
		return
	}
	_ = sess.PolicyManagement.ToggleActive(r.Context(), template)
	h.respond(w, r, sess.PolicyManagement.State())
}

// --- admin: claims ---

func (h *Handler) handleAdminClaims(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	_ = sess.ClaimManagement.Load(r.Context())
	h.respond(w, r, sess.ClaimManagement.State())
}

func (h *Handler) handleAdminClaimFilter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if !decode(w, r, &req) {
		return
	}
	sess := SessionFrom(r.Context())
	sess.ClaimManagement.SetFilter(req.Status)
	h.respond(w, r, sess.ClaimManagement.State())
}

func (h *Handler) handleAdminClaimStartReview(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	sess.ClaimManagement.StartReview(chi.URLParam(r, "id"))
	h.respond(w, r, sess.ClaimManagement.State())
}

func (h *Handler) handleAdminClaimReviewNotes(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Notes string `json:"notes"`
	}
	if !decode(w, r, &req) {
		return
	}
	sess := SessionFrom(r.Context())
	sess.ClaimManagement.SetReviewNotes(req.Notes)
	h.respond(w, r, sess.ClaimManagement.State())
}

func (h *Handler) handleAdminClaimCancelReview(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r.Context())
	sess.ClaimManagement.CancelReview()
	h.respond(w, r, sess.ClaimManagement.State())
}

func (h *Handler) handleAdminClaimReview(verdict domain.ClaimStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFrom(r.Context())
		claim, ok := sess.ClaimManagement.ClaimByID(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, "Unknown claim", http.StatusNotFound)
			return
		}
		_ = sess.ClaimManagement.SubmitReview(r.Context(), verdict, claim)
		h.respond(w, r, sess.ClaimManagement.State())
	}
}
