/**
 * @description
 * This file defines the policy records exchanged with the policy-service:
 * templates offered in the marketplace and the customer policies purchased
 * from them. Status transitions are backend-authoritative; the portal only
 * ever requests cancellation of an ACTIVE or PENDING policy.
 */
package domain

// PolicyType is the product category of a policy template.
type PolicyType string

const (
	PolicyLife     PolicyType = "LIFE"
	PolicyTravel   PolicyType = "TRAVEL"
	PolicyProperty PolicyType = "PROPERTY"
	PolicyHealth   PolicyType = "HEALTH"
)

// PolicyTypes lists every known policy type, in marketplace display order.
var PolicyTypes = []PolicyType{PolicyLife, PolicyTravel, PolicyProperty, PolicyHealth}

// Valid reports whether the type is one of the known values.
func (t PolicyType) Valid() bool {
	switch t {
	case PolicyLife, PolicyTravel, PolicyProperty, PolicyHealth:
		return true
	}
	return false
}

// PolicyStatus is the lifecycle state of a customer policy.
type PolicyStatus string

const (
	PolicyActive    PolicyStatus = "ACTIVE"
	PolicyPending   PolicyStatus = "PENDING"
	PolicyCancelled PolicyStatus = "CANCELLED"
	PolicyExpired   PolicyStatus = "EXPIRED"
)

// Cancellable reports whether the portal may request cancellation for a
// policy in this status.
func (s PolicyStatus) Cancellable() bool {
	return s == PolicyActive || s == PolicyPending
}

// PolicyTemplate is a product offering managed by administrators and
// browsed in the marketplace. Price is strictly positive.
type PolicyTemplate struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        PolicyType `json:"type"`
	Description string     `json:"description"`
	Coverage    string     `json:"coverage"`
	Price       float64    `json:"price"`
	Duration    string     `json:"duration"`
	Active      bool       `json:"active"`
}

// PolicyTemplateInput is the partial payload for creating or updating a
// template. Pointer fields distinguish "unset" from zero values so the
// active toggle can send a single-field update.
type PolicyTemplateInput struct {
	Name        string     `json:"name,omitempty"`
	Type        PolicyType `json:"type,omitempty"`
	Description string     `json:"description,omitempty"`
	Coverage    string     `json:"coverage,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Duration    string     `json:"duration,omitempty"`
	Active      *bool      `json:"active,omitempty"`
}

// CustomerPolicy is a policy owned by a user, instantiated from a template.
type CustomerPolicy struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	TemplateID   string         `json:"templateId"`
	PolicyNumber string         `json:"policyNumber"`
	Status       PolicyStatus   `json:"status"`
	StartDate    string         `json:"startDate"`
	EndDate      string         `json:"endDate"`
	Premium      float64        `json:"premium"`
	Template     PolicyTemplate `json:"template"`
}

// PolicyPurchaseRequest initiates a policy purchase from a template.
type PolicyPurchaseRequest struct {
	PolicyTemplateID string `json:"policyTemplateId"`
}

// PolicyStatistics is the admin overview aggregate from the policy-service.
type PolicyStatistics struct {
	TotalPolicies     int64   `json:"totalPolicies"`
	ActivePolicies    int64   `json:"activePolicies"`
	PendingPolicies   int64   `json:"pendingPolicies"`
	CancelledPolicies int64   `json:"cancelledPolicies"`
	TotalRevenue      float64 `json:"totalRevenue"`
}
