/**
 * @description
 * This file implements the admin user management screen: a paged user
 * listing with a role filter combined with a case-insensitive substring
 * search over email and name, a create-user modal, and a deactivate
 * confirmation.
 */
package controller

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
)

const userPageSize = 50

// UserCreateForm is the working form for registering a user from the admin
// screen.
type UserCreateForm struct {
	KeycloakID string `json:"keycloakId"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Phone      string `json:"phone"`
	formState
}

var userCreateFormFields = []string{"keycloakId", "email", "firstName", "lastName", "phone"}

// validate checks the structural rules; phone is optional.
func (f *UserCreateForm) validate() bool {
	f.Errors = nil
	f.checkRequired("keycloakId", f.KeycloakID)
	f.checkEmail("email", f.Email)
	f.checkRequired("firstName", f.FirstName)
	f.checkRequired("lastName", f.LastName)
	if f.invalid() {
		f.touchAll(userCreateFormFields...)
		return false
	}
	return true
}

// UserManagement is the view-state controller for the admin users screen.
type UserManagement struct {
	mu    sync.Mutex
	view  listView[domain.User]
	users UserAPI

	searchTerm string
	filterRole string
	selected   *domain.User
	form       UserCreateForm
}

// UserManagementState is the renderable snapshot of the screen.
type UserManagementState struct {
	Users      []domain.User  `json:"users"`
	State      LoadState      `json:"state"`
	Error      string         `json:"error,omitempty"`
	SearchTerm string         `json:"searchTerm"`
	FilterRole string         `json:"filterRole"`
	Mode       Mode           `json:"mode"`
	Selected   *domain.User   `json:"selected,omitempty"`
	Form       UserCreateForm `json:"form"`
	Submitting bool           `json:"submitting"`
	Feedback   string         `json:"feedback,omitempty"`
}

// NewUserManagement creates the controller in its idle state.
func NewUserManagement(users UserAPI) *UserManagement {
	return &UserManagement{
		view:       listView[domain.User]{state: StateIdle},
		users:      users,
		filterRole: FilterAll,
	}
}

// Load fetches all users and re-derives the filtered view.
func (c *UserManagement) Load(ctx context.Context) error {
	err := loadInto(ctx, &c.mu, &c.view, func(ctx context.Context) ([]domain.User, error) {
		resp, err := c.users.List(ctx, 0, userPageSize)
		if err != nil {
			return nil, err
		}
		return resp.Content, nil
	}, "Unable to load users.", c.pred)
	if err != nil {
		log.Printf("Error loading users: %v", err)
	}
	return err
}

// SetSearch applies a free-text search over the loaded users without
// re-fetching.
func (c *UserManagement) SetSearch(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchTerm = term
	c.view.refilter(c.pred())
}

// SetFilter applies a role filter over the loaded users without
// re-fetching.
func (c *UserManagement) SetFilter(role string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filterRole = role
	c.view.refilter(c.pred())
}

func (c *UserManagement) pred() func(domain.User) bool {
	role := c.filterRole
	term := strings.ToLower(strings.TrimSpace(c.searchTerm))
	if role == FilterAll && term == "" {
		return nil
	}
	return func(user domain.User) bool {
		if role != FilterAll && string(user.Role) != role {
			return false
		}
		if term == "" {
			return true
		}
		for _, value := range []string{user.Email, user.FirstName, user.LastName} {
			if value != "" && strings.Contains(strings.ToLower(value), term) {
				return true
			}
		}
		return false
	}
}

// UserByID returns the loaded user with the given id.
func (c *UserManagement) UserByID(id string) (domain.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, user := range c.view.items {
		if user.ID == id {
			return user, true
		}
	}
	return domain.User{}, false
}

// OpenCreate opens the create-user modal with an empty form.
func (c *UserManagement) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = UserCreateForm{}
	c.view.openModal(ModeCreate)
}

// OpenDeactivate opens the deactivate confirmation for a user.
func (c *UserManagement) OpenDeactivate(user domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = &user
	c.view.openModal(ModeDeleteConfirm)
}

// CloseModals dismisses any open modal.
func (c *UserManagement) CloseModals() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
	c.view.closeModal()
}

// SetForm replaces the working form fields with the user's latest input.
func (c *UserManagement) SetForm(form UserCreateForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	form.formState = formState{}
	c.form = form
}

// SubmitCreate validates the form and registers the user. Validation
// failures block the network call entirely.
func (c *UserManagement) SubmitCreate(ctx context.Context) error {
	c.mu.Lock()
	if c.view.mode != ModeCreate || c.view.submitting {
		c.mu.Unlock()
		return nil
	}
	if !c.form.validate() {
		c.mu.Unlock()
		return nil
	}
	req := domain.UserRegistrationRequest{
		KeycloakID: strings.TrimSpace(c.form.KeycloakID),
		Email:      strings.TrimSpace(c.form.Email),
		FirstName:  strings.TrimSpace(c.form.FirstName),
		LastName:   strings.TrimSpace(c.form.LastName),
		Phone:      strings.TrimSpace(c.form.Phone),
	}
	c.view.submitting = true
	c.mu.Unlock()

	_, err := c.users.Register(ctx, req)

	c.mu.Lock()
	c.view.submitting = false
	if err != nil {
		log.Printf("Error creating user: %v", err)
		c.view.feedback = "Failed to create user."
		c.mu.Unlock()
		return err
	}
	c.view.feedback = "User created successfully."
	c.view.closeModal()
	c.selected = nil
	c.form = UserCreateForm{}
	c.mu.Unlock()
	return c.Load(ctx)
}

// ConfirmDeactivate deactivates the selected user.
func (c *UserManagement) ConfirmDeactivate(ctx context.Context) error {
	c.mu.Lock()
	if c.view.mode != ModeDeleteConfirm || c.view.submitting || c.selected == nil {
		c.mu.Unlock()
		return nil
	}
	selected := *c.selected
	c.view.submitting = true
	c.mu.Unlock()

	err := c.users.Deactivate(ctx, selected.ID)

	c.mu.Lock()
	c.view.submitting = false
	if err != nil {
		log.Printf("Error deactivating user: %v", err)
		c.view.feedback = "Failed to deactivate user."
		c.mu.Unlock()
		return err
	}
	c.view.feedback = fmt.Sprintf("User %s deactivated.", selected.Email)
	c.view.closeModal()
	c.selected = nil
	c.mu.Unlock()
	return c.Load(ctx)
}

// State returns a renderable snapshot of the screen.
func (c *UserManagement) State() UserManagementState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return UserManagementState{
		Users:      append([]domain.User(nil), c.view.filtered...),
		State:      c.view.state,
		Error:      c.view.loadError,
		SearchTerm: c.searchTerm,
		FilterRole: c.filterRole,
		Mode:       c.view.mode,
		Selected:   c.selected,
		Form:       c.form,
		Submitting: c.view.submitting,
		Feedback:   c.view.feedback,
	}
}
