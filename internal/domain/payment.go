/**
 * @description
 * This file defines the payment records exchanged with the payment-service.
 * Checkout itself happens on an external gateway-hosted page; the portal only
 * requests a checkout session and redirects the user to its URL.
 */
package domain

// PaymentStatus is the settlement state of a transaction.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Transaction is a payment record tied to a user and, for policy purchases,
// a customer policy.
type Transaction struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"`
	PolicyID        string        `json:"policyId,omitempty"`
	Amount          float64       `json:"amount"`
	Status          PaymentStatus `json:"status"`
	PaymentMethod   string        `json:"paymentMethod"`
	StripeSessionID string        `json:"stripeSessionId,omitempty"`
	TransactionDate string        `json:"transactionDate"`
}

// CheckoutSessionRequest asks the payment-service for a hosted checkout
// session for a policy template purchase.
type CheckoutSessionRequest struct {
	PolicyTemplateID string `json:"policyTemplateId"`
}

// CheckoutSessionResponse carries the hosted checkout session. SessionURL is
// the external page the user is redirected to; the portal has no further
// involvement until the user returns.
type CheckoutSessionResponse struct {
	SessionID  string `json:"sessionId"`
	SessionURL string `json:"sessionUrl"`
}

// TransactionStatistics is the admin overview aggregate from the
// payment-service.
type TransactionStatistics struct {
	TotalTransactions     int64   `json:"totalTransactions"`
	CompletedTransactions int64   `json:"completedTransactions"`
	FailedTransactions    int64   `json:"failedTransactions"`
	TotalRevenue          float64 `json:"totalRevenue"`
}
