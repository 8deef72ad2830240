/**
 * @description
 * This file manages portal sessions: one per signed-in browser, identified
 * by a uuid cookie. A portal session owns the auth session store and one
 * controller per screen, so view state survives across requests instead of
 * being rebuilt on every page load. The backend credential cookie is
 * captured from each inbound
 * request and forwarded on every outbound call via the request context.
 *
 * @notes
 * - Sessions idle out after the configured TTL and are swept periodically;
 *   screen state is cheap to rebuild from the backends.
 * - The periodic refresh keeps the cached identity of long-lived sessions
 *   current without waiting for the next screen load.
 */
package web

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bobijackrussel/e-insurance-microservice/internal/controller"
	"github.com/bobijackrussel/e-insurance-microservice/internal/session"
	"github.com/bobijackrussel/e-insurance-microservice/pkg/apiclient"
	"github.com/bobijackrussel/e-insurance-microservice/pkg/claimclient"
	"github.com/bobijackrussel/e-insurance-microservice/pkg/gatewayclient"
	"github.com/bobijackrussel/e-insurance-microservice/pkg/paymentclient"
	"github.com/bobijackrussel/e-insurance-microservice/pkg/policyclient"
	"github.com/bobijackrussel/e-insurance-microservice/pkg/userclient"
)

const portalCookieName = "PORTAL_SESSION"

// Clients bundles the resource clients shared by every portal session.
type Clients struct {
	Users    *userclient.Client
	Policies *policyclient.Client
	Claims   *claimclient.Client
	Payments *paymentclient.Client
	Gateway  *gatewayclient.Client
}

// PortalSession is the server-side state of one signed-in browser.
type PortalSession struct {
	ID    string
	Store *session.Store

	Marketplace      *controller.Marketplace
	MyPolicies       *controller.MyPolicies
	MyClaims         *controller.MyClaims
	SubmitClaim      *controller.SubmitClaim
	AdminOverview    *controller.AdminOverview
	UserManagement   *controller.UserManagement
	PolicyManagement *controller.PolicyManagement
	ClaimManagement  *controller.ClaimManagement

	mu         sync.Mutex
	credential *http.Cookie
	lastSeen   time.Time
}

// Context returns ctx carrying the session's backend credential, ready for
// outbound calls.
func (s *PortalSession) Context(ctx context.Context) context.Context {
	s.mu.Lock()
	credential := s.credential
	s.mu.Unlock()
	if credential == nil {
		return ctx
	}
	return apiclient.WithSessionCookie(ctx, credential)
}

// touch records activity and the latest backend credential. It reports
// whether the credential differs from the one seen before, which signals a
// re-login under this portal session.
func (s *PortalSession) touch(credential *http.Cookie) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	if credential == nil {
		return false
	}
	changed := s.credential == nil || s.credential.Value != credential.Value
	s.credential = credential
	return changed
}

func (s *PortalSession) expired(ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.lastSeen) > ttl
}

// Manager owns the portal session table.
type Manager struct {
	clients           Clients
	backendCookieName string
	ttl               time.Duration
	logger            *slog.Logger

	mu       sync.Mutex
	sessions map[string]*PortalSession
}

// NewManager creates an empty session manager.
func NewManager(clients Clients, backendCookieName string, ttl time.Duration, logger *slog.Logger) *Manager {
	return &Manager{
		clients:           clients,
		backendCookieName: backendCookieName,
		ttl:               ttl,
		logger:            logger,
		sessions:          make(map[string]*PortalSession),
	}
}

func (m *Manager) newSession() *PortalSession {
	store := session.NewStore(m.clients.Users, m.clients.Gateway)
	return &PortalSession{
		ID:               uuid.NewString(),
		Store:            store,
		Marketplace:      controller.NewMarketplace(m.clients.Policies, m.clients.Payments),
		MyPolicies:       controller.NewMyPolicies(m.clients.Policies),
		MyClaims:         controller.NewMyClaims(m.clients.Claims),
		SubmitClaim:      controller.NewSubmitClaim(m.clients.Policies, m.clients.Claims),
		AdminOverview:    controller.NewAdminOverview(m.clients.Users, m.clients.Policies, m.clients.Claims, m.clients.Payments),
		UserManagement:   controller.NewUserManagement(m.clients.Users),
		PolicyManagement: controller.NewPolicyManagement(m.clients.Policies),
		ClaimManagement:  controller.NewClaimManagement(m.clients.Claims),
		lastSeen:         time.Now(),
	}
}

// Drop removes a portal session, e.g. after logout.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Sweep removes sessions idle beyond the TTL. Wired to the cron scheduler.
func (m *Manager) Sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, sess := range m.sessions {
		if sess.expired(m.ttl) {
			delete(m.sessions, id)
		}
	}
}

// RefreshAll re-fetches the cached identity of every live session. Wired to
// the cron scheduler.
func (m *Manager) RefreshAll() {
	m.mu.Lock()
	sessions := make([]*PortalSession, 0, len(m.sessions))
	for _, sess := range m.sessions {
		sessions = append(sessions, sess)
	}
	m.mu.Unlock()

	for _, sess := range sessions {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		sess.Store.Refresh(sess.Context(ctx))
		cancel()
	}
}

type sessionKey struct{}

// SessionFrom returns the portal session installed by the middleware.
func SessionFrom(ctx context.Context) *PortalSession {
	sess, _ := ctx.Value(sessionKey{}).(*PortalSession)
	return sess
}

// WithSession resolves or creates the portal session for the request,
// captures the backend credential cookie, and installs both the session
// and the login-redirect flag on the request context. The auth store is
// populated on first sight of a session and re-populated when the backend
// credential changes.
func (m *Manager) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, created := m.resolve(r)

		var credential *http.Cookie
		if cookie, err := r.Cookie(m.backendCookieName); err == nil {
			credential = cookie
		}
		credentialChanged := sess.touch(credential)

		if created {
			http.SetCookie(w, &http.Cookie{
				Name:     portalCookieName,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := WithLoginRedirect(sess.Context(r.Context()))
		ctx = context.WithValue(ctx, sessionKey{}, sess)

		// Refresh on first sight and whenever the browser presents a new
		// backend credential, e.g. after a re-login as somebody else.
		if created || credentialChanged {
			sess.Store.Refresh(ctx)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Manager) resolve(r *http.Request) (*PortalSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cookie, err := r.Cookie(portalCookieName); err == nil {
		if sess, ok := m.sessions[cookie.Value]; ok {
			return sess, false
		}
	}
	sess := m.newSession()
	m.sessions[sess.ID] = sess
	m.logger.Info("portal session created", "session_id", sess.ID)
	return sess, true
}
