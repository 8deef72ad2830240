package session

import (
	"context"
	"errors"
	"testing"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
)

type fakeIdentity struct {
	user  *domain.User
	err   error
	calls int
}

func (f *fakeIdentity) CurrentUser(ctx context.Context) (*domain.User, error) {
	f.calls++
	return f.user, f.err
}

type fakeGateway struct {
	err   error
	calls int
}

func (f *fakeGateway) Logout(ctx context.Context) error {
	f.calls++
	return f.err
}

func adminUser() *domain.User {
	return &domain.User{ID: "u1", Email: "admin@example.com", Role: domain.RoleAdmin}
}

func TestStoreStartsSignedOut(t *testing.T) {
	store := NewStore(&fakeIdentity{}, &fakeGateway{})

	if store.Current() != nil {
		t.Fatal("expected no cached user before the first refresh")
	}
	if store.IsAuthenticated() {
		t.Fatal("expected unauthenticated state before the first refresh")
	}
	if store.IsAdmin() {
		t.Fatal("expected non-admin state before the first refresh")
	}
}

func TestRefreshCachesTheFetchedUser(t *testing.T) {
	identity := &fakeIdentity{user: adminUser()}
	store := NewStore(identity, &fakeGateway{})

	store.Refresh(context.Background())

	if got := store.Current(); got == nil || got.ID != "u1" {
		t.Fatalf("expected cached user u1, got %+v", got)
	}
	if !store.IsAuthenticated() {
		t.Fatal("expected authenticated state after refresh")
	}
	if !store.IsAdmin() {
		t.Fatal("expected admin state for the ADMIN role")
	}
}

func TestRefreshFailureCachesSignedOut(t *testing.T) {
	identity := &fakeIdentity{user: adminUser()}
	store := NewStore(identity, &fakeGateway{})
	store.Refresh(context.Background())

	identity.user = nil
	identity.err = errors.New("user-service unreachable")
	store.Refresh(context.Background())

	if store.Current() != nil {
		t.Fatal("expected a failed refresh to cache signed-out state")
	}
}

func TestLogoutClearsCacheOnlyOnGatewaySuccess(t *testing.T) {
	identity := &fakeIdentity{user: adminUser()}
	gateway := &fakeGateway{err: errors.New("gateway down")}
	store := NewStore(identity, gateway)
	store.Refresh(context.Background())

	if err := store.Logout(context.Background()); err == nil {
		t.Fatal("expected the gateway failure to surface")
	}
	if store.Current() == nil {
		t.Fatal("expected the session to survive a failed logout")
	}

	gateway.err = nil
	if err := store.Logout(context.Background()); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if store.Current() != nil {
		t.Fatal("expected the cache to clear after a successful logout")
	}
	if gateway.calls != 2 {
		t.Fatalf("expected two gateway calls, got %d", gateway.calls)
	}
}

func TestSubscribersSeeTheLatestValue(t *testing.T) {
	identity := &fakeIdentity{user: adminUser()}
	store := NewStore(identity, &fakeGateway{})

	id, ch := store.Subscribe()
	defer store.Unsubscribe(id)

	store.Refresh(context.Background())
	identity.user = nil
	identity.err = errors.New("unreachable")
	store.Refresh(context.Background())

	// The subscriber never drained, so only the newest value remains.
	select {
	case got := <-ch:
		if got != nil {
			t.Fatalf("expected the latest (signed-out) value, got %+v", got)
		}
	default:
		t.Fatal("expected a pending notification")
	}
}

func TestUnsubscribeClosesTheChannel(t *testing.T) {
	store := NewStore(&fakeIdentity{}, &fakeGateway{})

	id, ch := store.Subscribe()
	store.Unsubscribe(id)

	if _, open := <-ch; open {
		t.Fatal("expected the channel to be closed after unsubscribe")
	}
}
