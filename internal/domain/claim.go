/**
 * @description
 * This file defines the claim records exchanged with the claims-service.
 * Claim status is a one-way progression driven by admin review; the portal
 * submits claims and review verdicts but never advances status itself.
 */
package domain

// ClaimStatus is the review state of a claim.
type ClaimStatus string

const (
	ClaimPending     ClaimStatus = "PENDING"
	ClaimUnderReview ClaimStatus = "UNDER_REVIEW"
	ClaimApproved    ClaimStatus = "APPROVED"
	ClaimRejected    ClaimStatus = "REJECTED"
	ClaimPaid        ClaimStatus = "PAID"
)

// ClaimStatuses lists every known claim status, in review order.
var ClaimStatuses = []ClaimStatus{ClaimPending, ClaimUnderReview, ClaimApproved, ClaimRejected, ClaimPaid}

// Valid reports whether the status is one of the known values.
func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimPending, ClaimUnderReview, ClaimApproved, ClaimRejected, ClaimPaid:
		return true
	}
	return false
}

// Claim is an insurance claim filed against a customer policy. Amount is
// strictly positive and the incident date never follows the submission date.
type Claim struct {
	ID            string         `json:"id"`
	UserID        string         `json:"userId"`
	PolicyID      string         `json:"policyId"`
	ClaimNumber   string         `json:"claimNumber"`
	Description   string         `json:"description"`
	Amount        float64        `json:"amount"`
	Status        ClaimStatus    `json:"status"`
	SubmittedDate string         `json:"submittedDate"`
	ReviewedDate  string         `json:"reviewedDate,omitempty"`
	ReviewNotes   string         `json:"reviewNotes,omitempty"`
	IncidentDate  string         `json:"incidentDate"`
	Policy        CustomerPolicy `json:"policy"`
}

// ClaimSubmitRequest files a new claim against one of the caller's policies.
type ClaimSubmitRequest struct {
	CustomerPolicyID string  `json:"customerPolicyId"`
	Amount           float64 `json:"amount"`
	Description      string  `json:"description"`
	IncidentDate     string  `json:"incidentDate"`
}

// ClaimReviewRequest records an admin verdict. Status is APPROVED or
// REJECTED only; the remaining transitions belong to the backend.
type ClaimReviewRequest struct {
	Status     ClaimStatus `json:"status"`
	AdminNotes string      `json:"adminNotes"`
}

// ClaimStatistics is the admin overview aggregate from the claims-service.
type ClaimStatistics struct {
	TotalClaims      int64   `json:"totalClaims"`
	PendingClaims    int64   `json:"pendingClaims"`
	ApprovedClaims   int64   `json:"approvedClaims"`
	RejectedClaims   int64   `json:"rejectedClaims"`
	TotalClaimAmount float64 `json:"totalClaimAmount"`
}
