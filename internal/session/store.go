/**
 * @description
 * This file implements the per-session cache of the authenticated user. It
 * is the single source of truth for "who is logged in": every screen reads
 * identity from here and nothing else issues its own identity check.
 *
 * @notes
 * - Refresh never propagates a failure; an unreachable user-service simply
 *   caches "no user" so the portal degrades to signed-out behavior.
 * - Logout clears the cache only after the gateway call succeeds, so a
 *   failed logout leaves the session intact and retryable.
 * - Subscribers get one notification per cache update. Sends never block; a
 *   subscriber that has fallen behind sees the latest value, not every
 *   intermediate one.
 */
package session

import (
	"context"
	"sync"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
)

// IdentityAPI is the slice of the user-service the store depends on.
type IdentityAPI interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// LogoutAPI is the slice of the gateway the store depends on.
type LogoutAPI interface {
	Logout(ctx context.Context) error
}

// Store caches the current authenticated user and notifies subscribers on
// every update. Single writer (its own methods), many readers.
type Store struct {
	identity IdentityAPI
	gateway  LogoutAPI

	mu      sync.RWMutex
	current *domain.User
	subs    map[int]chan *domain.User
	nextSub int
}

// NewStore creates an empty store. Call Refresh to populate it from the
// ambient session.
func NewStore(identity IdentityAPI, gateway LogoutAPI) *Store {
	return &Store{
		identity: identity,
		gateway:  gateway,
		subs:     make(map[int]chan *domain.User),
	}
}

// Current returns the cached user, or nil when signed out.
func (s *Store) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// IsAuthenticated reports whether a user is cached.
func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

// IsAdmin reports whether the cached user holds the ADMIN role.
func (s *Store) IsAdmin() bool {
	return s.Current().IsAdmin()
}

// Refresh re-fetches the current user. A failed fetch caches nil and is not
// surfaced; the 401 path is already handled by the request interceptor.
func (s *Store) Refresh(ctx context.Context) {
	user, err := s.identity.CurrentUser(ctx)
	if err != nil {
		s.set(nil)
		return
	}
	s.set(user)
}

// Logout terminates the backend session and then clears the cache. The
// cache is left untouched when the gateway call fails.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.gateway.Logout(ctx); err != nil {
		return err
	}
	s.set(nil)
	return nil
}

// Subscribe registers for cache updates. The returned channel receives the
// new value once per update; Unsubscribe releases it.
func (s *Store) Subscribe() (int, <-chan *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan *domain.User, 1)
	s.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a subscriber registered with Subscribe.
func (s *Store) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.subs[id]; ok {
		delete(s.subs, id)
		close(ch)
	}
}

func (s *Store) set(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = user
	for _, ch := range s.subs {
		select {
		case ch <- user:
		default:
			// Drop the stale value so the latest one is always deliverable.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- user:
			default:
			}
		}
	}
}
