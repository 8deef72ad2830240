/**
 * @description
 * This file implements the my-claims screen, a read-only listing of the
 * caller's claims.
 */
package controller

import (
	"context"
	"log"
	"sync"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
)

// MyClaims is the view-state controller for the my-claims screen.
type MyClaims struct {
	mu     sync.Mutex
	view   listView[domain.Claim]
	claims ClaimAPI
}

// MyClaimsState is the renderable snapshot of the screen.
type MyClaimsState struct {
	Claims []domain.Claim `json:"claims"`
	State  LoadState      `json:"state"`
	Error  string         `json:"error,omitempty"`
}

// NewMyClaims creates the controller in its idle state.
func NewMyClaims(claims ClaimAPI) *MyClaims {
	return &MyClaims{
		view:   listView[domain.Claim]{state: StateIdle},
		claims: claims,
	}
}

// Load fetches the caller's claims.
func (c *MyClaims) Load(ctx context.Context) error {
	err := loadInto(ctx, &c.mu, &c.view, c.claims.MyClaims,
		"Unable to load your claims.", nil)
	if err != nil {
		log.Printf("Error loading claims: %v", err)
	}
	return err
}

// State returns a renderable snapshot of the screen.
func (c *MyClaims) State() MyClaimsState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return MyClaimsState{
		Claims: append([]domain.Claim(nil), c.view.filtered...),
		State:  c.view.state,
		Error:  c.view.loadError,
	}
}
