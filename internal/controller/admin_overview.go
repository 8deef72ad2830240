/**
 * @description
 * This file implements the admin overview screen: four statistics fetches
 * issued concurrently and joined all-or-nothing, plus a short recent-claims
 * list. When any statistics fetch fails none of the four results are
 * applied and a single aggregate error is shown; partial dashboards are
 * deliberately not rendered.
 */
package controller

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
)

const recentClaimCount = 5

// AdminOverview is the view-state controller for the admin overview
// screen.
type AdminOverview struct {
	mu       sync.Mutex
	users    UserAPI
	policies PolicyAPI
	claims   ClaimAPI
	payments PaymentAPI

	statsState LoadState
	statsError string
	statsGen   uint64

	userStats    *domain.UserStatistics
	policyStats  *domain.PolicyStatistics
	claimStats   *domain.ClaimStatistics
	paymentStats *domain.TransactionStatistics

	recent listView[domain.Claim]
}

// AdminOverviewState is the renderable snapshot of the screen.
type AdminOverviewState struct {
	StatsState   LoadState                     `json:"statsState"`
	StatsError   string                        `json:"statsError,omitempty"`
	UserStats    *domain.UserStatistics        `json:"userStats,omitempty"`
	PolicyStats  *domain.PolicyStatistics      `json:"policyStats,omitempty"`
	ClaimStats   *domain.ClaimStatistics       `json:"claimStats,omitempty"`
	PaymentStats *domain.TransactionStatistics `json:"paymentStats,omitempty"`
	RecentClaims []domain.Claim                `json:"recentClaims"`
	ClaimsState  LoadState                     `json:"claimsState"`
	ClaimsError  string                        `json:"claimsError,omitempty"`
}

// NewAdminOverview creates the controller in its idle state.
func NewAdminOverview(users UserAPI, policies PolicyAPI, claims ClaimAPI, payments PaymentAPI) *AdminOverview {
	return &AdminOverview{
		users:      users,
		policies:   policies,
		claims:     claims,
		payments:   payments,
		statsState: StateIdle,
		recent:     listView[domain.Claim]{state: StateIdle},
	}
}

// Load refreshes the whole screen.
func (c *AdminOverview) Load(ctx context.Context) {
	c.LoadStatistics(ctx)
	c.LoadRecentClaims(ctx)
}

// LoadStatistics fetches the four aggregates concurrently and applies them
// only when every fetch succeeded.
func (c *AdminOverview) LoadStatistics(ctx context.Context) error {
	c.mu.Lock()
	c.statsGen++
	gen := c.statsGen
	c.statsState = StateLoading
	c.statsError = ""
	c.mu.Unlock()

	var (
		userStats    *domain.UserStatistics
		policyStats  *domain.PolicyStatistics
		claimStats   *domain.ClaimStatistics
		paymentStats *domain.TransactionStatistics
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		userStats, err = c.users.Statistics(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		policyStats, err = c.policies.Statistics(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		claimStats, err = c.claims.Statistics(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		paymentStats, err = c.payments.Statistics(groupCtx)
		return err
	})
	err := group.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.statsGen {
		return nil
	}
	if err != nil {
		log.Printf("Error loading statistics: %v", err)
		c.statsState = StateLoadError
		c.statsError = "Unable to load dashboard statistics right now."
		return err
	}
	c.userStats = userStats
	c.policyStats = policyStats
	c.claimStats = claimStats
	c.paymentStats = paymentStats
	c.statsState = StateLoaded
	return nil
}

// LoadRecentClaims fetches the first page of claims for the recent list.
func (c *AdminOverview) LoadRecentClaims(ctx context.Context) error {
	err := loadInto(ctx, &c.mu, &c.recent, func(ctx context.Context) ([]domain.Claim, error) {
		resp, err := c.claims.List(ctx, 0, recentClaimCount)
		if err != nil {
			return nil, err
		}
		return resp.Content, nil
	}, "Unable to load recent claims.", nil)
	if err != nil {
		log.Printf("Error loading recent claims: %v", err)
	}
	return err
}

// State returns a renderable snapshot of the screen.
func (c *AdminOverview) State() AdminOverviewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return AdminOverviewState{
		StatsState:   c.statsState,
		StatsError:   c.statsError,
		UserStats:    c.userStats,
		PolicyStats:  c.policyStats,
		ClaimStats:   c.claimStats,
		PaymentStats: c.paymentStats,
		RecentClaims: append([]domain.Claim(nil), c.recent.filtered...),
		ClaimsState:  c.recent.state,
		ClaimsError:  c.recent.loadError,
	}
}
