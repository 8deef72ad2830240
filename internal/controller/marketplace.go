/**
 * @description
 * This file implements the policy marketplace screen: the active template
 * listing with a client-side type filter and the purchase modal, which
 * hands off to an external gateway-hosted checkout page via a checkout
 * session URL.
 */
package controller

import (
	"context"
	"log"
	"sync"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
)

// Marketplace is the view-state controller for the policy marketplace.
type Marketplace struct {
	mu       sync.Mutex
	view     listView[domain.PolicyTemplate]
	policies PolicyAPI
	payments PaymentAPI

	filterType string
	selected   *domain.PolicyTemplate
	processing bool
}

// MarketplaceState is the renderable snapshot of the screen.
type MarketplaceState struct {
	Policies   []domain.PolicyTemplate `json:"policies"`
	State      LoadState               `json:"state"`
	Error      string                  `json:"error,omitempty"`
	FilterType string                  `json:"filterType"`
	Mode       Mode                    `json:"mode"`
	Selected   *domain.PolicyTemplate  `json:"selected,omitempty"`
	Processing bool                    `json:"processing"`
	Feedback   string                  `json:"feedback,omitempty"`
}

// NewMarketplace creates the controller in its idle state.
func NewMarketplace(policies PolicyAPI, payments PaymentAPI) *Marketplace {
	return &Marketplace{
		view:       listView[domain.PolicyTemplate]{state: StateIdle},
		policies:   policies,
		payments:   payments,
		filterType: FilterAll,
	}
}

// Load fetches the active templates and re-derives the filtered view.
func (c *Marketplace) Load(ctx context.Context) error {
	err := loadInto(ctx, &c.mu, &c.view, c.policies.ActiveTemplates,
		"Unable to load the marketplace.", c.pred)
	if err != nil {
		log.Printf("Error loading policies: %v", err)
	}
	return err
}

// SetFilter applies a type filter over the loaded templates without
// re-fetching.
func (c *Marketplace) SetFilter(filterType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filterType = filterType
	c.view.refilter(c.pred())
}

func (c *Marketplace) pred() func(domain.PolicyTemplate) bool {
	filter := c.filterType
	if filter == FilterAll {
		return nil
	}
	return func(t domain.PolicyTemplate) bool { return string(t.Type) == filter }
}

// TemplateByID returns the loaded template with the given id.
func (c *Marketplace) TemplateByID(id string) (domain.PolicyTemplate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, template := range c.view.items {
		if template.ID == id {
			return template, true
		}
	}
	return domain.PolicyTemplate{}, false
}

// OpenPurchase opens the payment modal for a template.
func (c *Marketplace) OpenPurchase(template domain.PolicyTemplate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = &template
	c.view.openModal(ModePurchase)
}

// ClosePurchase dismisses the payment modal and reloads the marketplace, so
// a completed purchase is reflected on return from checkout.
func (c *Marketplace) ClosePurchase(ctx context.Context) error {
	c.mu.Lock()
	c.selected = nil
	c.processing = false
	c.view.closeModal()
	c.mu.Unlock()
	return c.Load(ctx)
}

// BeginCheckout requests a hosted checkout session for the selected
// template and returns the external URL to redirect the user to. On failure
// the modal stays open for a retry.
func (c *Marketplace) BeginCheckout(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.view.mode != ModePurchase || c.selected == nil || c.processing {
		c.mu.Unlock()
		return "", nil
	}
	templateID := c.selected.ID
	c.processing = true
	c.mu.Unlock()

	resp, err := c.payments.CreateCheckoutSession(ctx, domain.CheckoutSessionRequest{
		PolicyTemplateID: templateID,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		log.Printf("Payment error: %v", err)
		c.processing = false
		c.view.feedback = "Payment failed. Please try again."
		return "", err
	}
	// The user leaves for the gateway-hosted page now; processing stays set
	// until the modal is closed on return.
	return resp.SessionURL, nil
}

// State returns a renderable snapshot of the screen.
func (c *Marketplace) State() MarketplaceState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return MarketplaceState{
		Policies:   append([]domain.PolicyTemplate(nil), c.view.filtered...),
		State:      c.view.state,
		Error:      c.view.loadError,
		FilterType: c.filterType,
		Mode:       c.view.mode,
		Selected:   c.selected,
		Processing: c.processing,
		Feedback:   c.view.feedback,
	}
}
