/**
 * @description
 * This file implements the admin policy-template management screen: a paged
 * template listing with a client-side type filter, create/edit modals backed
 * by a working form, a delete confirmation, and the active toggle. Every
 * successful mutation triggers a full reload so the screen always reflects
 * backend-authoritative state.
 */
package controller

import (
	"context"
	"log"
	"sync"

	"github.com/bobijackrussel/e-insurance-microservice/internal/domain"
)

const policyTemplatePageSize = 100

// FilterAll is the filter value that disables a screen's filter.
const FilterAll = "ALL"

// PolicyTemplateForm is the working form for creating or editing a
// template. Price stays a string until validation parses it.
type PolicyTemplateForm struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Coverage    string `json:"coverage"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
	formState
}

var policyTemplateFormFields = []string{"name", "type", "description", "coverage", "price", "duration"}

func newPolicyTemplateForm() PolicyTemplateForm {
	return PolicyTemplateForm{Type: string(domain.PolicyLife)}
}

// validate checks the structural rules and returns the parsed price. On
// failure every field is marked touched and the zero price is meaningless.
func (f *PolicyTemplateForm) validate() (float64, bool) {
	f.Errors = nil
	f.checkRequired("name", f.Name)
	if !domain.PolicyType(f.Type).Valid() {
		f.fail("type", markerRequired)
	}
	f.checkMinLength("description", f.Description, 10)
	f.checkRequired("coverage", f.Coverage)
	f.checkRequired("price", f.Price)
	f.checkRequired("duration", f.Duration)
	price := f.parsePositiveAmount("price", f.Price, markerInvalidPrice)
	if f.invalid() {
		f.touchAll(policyTemplateFormFields...)
		return 0, false
	}
	return price, true
}

// PolicyManagement is the view-state controller for the admin policy
// templates screen.
type PolicyManagement struct {
	mu       sync.Mutex
	view     listView[domain.PolicyTemplate]
	policies PolicyAPI

	filterType string
	selected   *domain.PolicyTemplate
	form       PolicyTemplateForm
}

// PolicyManagementState is the renderable snapshot of the screen.
type PolicyManagementState struct {
	Policies   []domain.PolicyTemplate `json:"policies"`
	State      LoadState               `json:"state"`
	Error      string                  `json:"error,omitempty"`
	FilterType string                  `json:"filterType"`
	Mode       Mode                    `json:"mode"`
	Selected   *domain.PolicyTemplate  `json:"selected,omitempty"`
	Form       PolicyTemplateForm      `json:"form"`
	Submitting bool                    `json:"submitting"`
	Feedback   string                  `json:"feedback,omitempty"`
}

// NewPolicyManagement creates the controller in its idle state.
func NewPolicyManagement(policies PolicyAPI) *PolicyManagement {
	return &PolicyManagement{
		view:       listView[domain.PolicyTemplate]{state: StateIdle},
		policies:   policies,
		filterType: FilterAll,
		form:       newPolicyTemplateForm(),
	}
}

// Load fetches all templates and re-derives the filtered view.
func (c *PolicyManagement) Load(ctx context.Context) error {
	err := loadInto(ctx, &c.mu, &c.view, func(ctx context.Context) ([]domain.PolicyTemplate, error) {
		resp, err := c.policies.ListTemplates(ctx, 0, policyTemplatePageSize)
		if err != nil {
			return nil, err
		}
		return resp.Content, nil
	}, "Unable to load policy templates.", c.pred)
	if err != nil {
		log.Printf("Error loading policies: %v", err)
	}
	return err
}

// SetFilter applies a type filter over the loaded templates without
// re-fetching.
func (c *PolicyManagement) SetFilter(filterType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filterType = filterType
	c.view.refilter(c.pred())
}

func (c *PolicyManagement) pred() func(domain.PolicyTemplate) bool {
	filter := c.filterType
	if filter == FilterAll {
		return nil
	}
	return func(t domain.PolicyTemplate) bool { return string(t.Type) == filter }
}

// TemplateByID returns the loaded template with the given id.
func (c *PolicyManagement) TemplateByID(id string) (domain.PolicyTemplate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, template := range c.view.items {
		if template.ID == id {
			return template, true
		}
	}
	return domain.PolicyTemplate{}, false
}

// OpenCreate opens the create modal with a defaulted form.
func (c *PolicyManagement) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
	c.form = newPolicyTemplateForm()
	c.view.openModal(ModeCreate)
}

// OpenEdit opens the edit modal seeded from the selected template.
func (c *PolicyManagement) OpenEdit(template domain.PolicyTemplate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = &template
	c.form = PolicyTemplateForm{
		Name:        template.Name,
		Type:        string(template.Type),
		Description: template.Description,
		Coverage:    template.Coverage,
		Price:       formatAmount(template.Price),
		Duration:    template.Duration,
	}
	c.view.openModal(ModeEdit)
}

// OpenDelete opens the delete confirmation for a template.
func (c *PolicyManagement) OpenDelete(template domain.PolicyTemplate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = &template
	c.view.openModal(ModeDeleteConfirm)
}

// CloseModals dismisses any open modal and resets the working form.
func (c *PolicyManagement) CloseModals() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
	c.form = newPolicyTemplateForm()
	c.view.closeModal()
}

// SetForm replaces the working form fields with the user's latest input.
func (c *PolicyManagement) SetForm(form PolicyTemplateForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	form.formState = formState{}
	c.form = form
}

// SubmitCreate validates the form and creates the template. Validation
// failures block the network call entirely.
func (c *PolicyManagement) SubmitCreate(ctx context.Context) error {
	c.mu.Lock()
	if c.view.mode != ModeCreate || c.view.submitting {
		c.mu.Unlock()
		return nil
	}
	price, ok := c.form.validate()
	if !ok {
		c.mu.Unlock()
		return nil
	}
	active := true
	input := domain.PolicyTemplateInput{
		Name:        c.form.Name,
		Type:        domain.PolicyType(c.form.Type),
		Description: c.form.Description,
		Coverage:    c.form.Coverage,
		Price:       &price,
		Duration:    c.form.Duration,
		Active:      &active,
	}
	c.view.submitting = true
	c.mu.Unlock()

	_, err := c.policies.CreateTemplate(ctx, input)
	return c.finishMutation(ctx, err, "Policy template created successfully.", "Failed to create policy template.")
}

// SubmitEdit validates the form and updates the selected template.
func (c *PolicyManagement) SubmitEdit(ctx context.Context) error {
	c.mu.Lock()
	if c.view.mode != ModeEdit || c.view.submitting || c.selected == nil {
		c.mu.Unlock()
		return nil
	}
	price, ok := c.form.validate()
	if !ok {
		c.mu.Unlock()
		return nil
	}
	id := c.selected.ID
	input := domain.PolicyTemplateInput{
		Name:        c.form.Name,
		Type:        domain.PolicyType(c.form.Type),
		Description: c.form.Description,
		Coverage:    c.form.Coverage,
		Price:       &price,
		Duration:    c.form.Duration,
	}
	c.view.submitting = true
	c.mu.Unlock()

	_, err := c.policies.UpdateTemplate(ctx, id, input)
	return c.finishMutation(ctx, err, "Policy template updated successfully.", "Failed to update policy template.")
}

// ConfirmDelete deletes the selected template.
func (c *PolicyManagement) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	if c.view.mode != ModeDeleteConfirm || c.view.submitting || c.selected == nil {
		c.mu.Unlock()
		return nil
	}
	id := c.selected.ID
	c.view.submitting = true
	c.mu.Unlock()

	err := c.policies.DeleteTemplate(ctx, id)
	return c.finishMutation(ctx, err, "Policy template deleted successfully.", "Failed to delete policy template.")
}

// ToggleActive flips a template's active flag. Like every other mutation it
// re-fetches afterwards instead of patching the local copy.
func (c *PolicyManagement) ToggleActive(ctx context.Context, template domain.PolicyTemplate) error {
	active := !template.Active
	_, err := c.policies.UpdateTemplate(ctx, template.ID, domain.PolicyTemplateInput{Active: &active})
	c.mu.Lock()
	if err != nil {
		log.Printf("Error updating policy: %v", err)
		c.view.feedback = "Failed to update policy template status."
		c.mu.Unlock()
		return err
	}
	if active {
		c.view.feedback = "Policy template activated successfully."
	} else {
		c.view.feedback = "Policy template deactivated successfully."
	}
	c.mu.Unlock()
	return c.Load(ctx)
}

// finishMutation applies the shared submit-success/failure policy: success
// closes the modal, clears the form and reloads; failure keeps the modal
// open for a retry.
func (c *PolicyManagement) finishMutation(ctx context.Context, err error, okMessage, failMessage string) error {
	c.mu.Lock()
	c.view.submitting = false
	if err != nil {
		log.Printf("Error saving policy template: %v", err)
		c.view.feedback = failMessage
		c.mu.Unlock()
		return err
	}
	c.view.feedback = okMessage
	c.view.closeModal()
	c.selected = nil
	c.form = newPolicyTemplateForm()
	c.mu.Unlock()
	return c.Load(ctx)
}

// State returns a renderable snapshot of the screen.
func (c *PolicyManagement) State() PolicyManagementState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return PolicyManagementState{
		Policies:   append([]domain.PolicyTemplate(nil), c.view.filtered...),
		State:      c.view.state,
		Error:      c.view.loadError,
		FilterType: c.filterType,
		Mode:       c.view.mode,
		Selected:   c.selected,
		Form:       c.form,
		Submitting: c.view.submitting,
		Feedback:   c.view.feedback,
	}
}
