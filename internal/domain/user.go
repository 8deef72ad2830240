/**
 * @description
 * This file defines the user records exchanged with the user-service. The
 * portal never mutates these locally; they are fetched per screen and
 * replaced wholesale on reload.
 */
package domain

// UserRole identifies the portal role of a user. A user holds exactly one
// role at a time.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is a customer or administrator account as returned by the
// user-service.
type User struct {
	ID             string   `json:"id"`
	KeycloakID     string   `json:"keycloakId,omitempty"`
	Email          string   `json:"email"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Phone          string   `json:"phone,omitempty"`
	Address        string   `json:"address,omitempty"`
	DateOfBirth    string   `json:"dateOfBirth,omitempty"`
	Role           UserRole `json:"role"`
	Active         bool     `json:"active"`
	RegisteredDate string   `json:"registeredDate"`
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserRegistrationRequest is the payload for registering a new user account.
// The identity itself already exists in Keycloak; this links it to a portal
// profile.
type UserRegistrationRequest struct {
	KeycloakID  string `json:"keycloakId"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}

// UserUpdate carries the editable profile fields for a profile update. Empty
// fields are omitted from the payload and left untouched by the backend.
type UserUpdate struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}

// UserStatistics is the admin overview aggregate from the user-service.
type UserStatistics struct {
	TotalUsers        int64 `json:"totalUsers"`
	ActiveUsers       int64 `json:"activeUsers"`
	InactiveUsers     int64 `json:"inactiveUsers"`
	NewUsersThisMonth int64 `json:"newUsersThisMonth"`
}
