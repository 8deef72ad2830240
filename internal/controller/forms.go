/**
 * @description
 * This file implements the working-form machinery shared by the create/edit
 * and claim-submission screens: string-valued fields as entered by the user,
 * per-field validation markers, and the touched set used to highlight every
 * offending field when a submit is blocked.
 */
package controller

import (
	"net/mail"
	"strconv"
	"strings"
)

// Validation markers attached to individual form fields.
const (
	markerRequired      = "required"
	markerMinLength     = "minLength"
	markerInvalidEmail  = "invalidEmail"
	markerInvalidPrice  = "invalidPrice"
	markerInvalidAmount = "invalidAmount"
)

// FieldErrors maps a field name to its validation marker.
type FieldErrors map[string]string

// formState carries the validation outcome of a working form. It is
// embedded in every concrete form.
type formState struct {
	Errors  FieldErrors     `json:"errors,omitempty"`
	Touched map[string]bool `json:"touched,omitempty"`
}

// resetState clears markers and touch state, e.g. when a modal opens.
func (f *formState) resetState() {
	f.Errors = nil
	f.Touched = nil
}

// fail records a marker for a field, keeping the first one per field.
func (f *formState) fail(field, marker string) {
	if f.Errors == nil {
		f.Errors = FieldErrors{}
	}
	if _, exists := f.Errors[field]; !exists {
		f.Errors[field] = marker
	}
}

// touchAll marks every named field touched, mirroring markAllAsTouched on a
// blocked submit.
func (f *formState) touchAll(fields ...string) {
	if f.Touched == nil {
		f.Touched = make(map[string]bool, len(fields))
	}
	for _, field := range fields {
		f.Touched[field] = true
	}
}

// invalid reports whether any marker is set.
func (f *formState) invalid() bool {
	return len(f.Errors) > 0
}

// checkRequired records a required marker when the trimmed value is empty.
func (f *formState) checkRequired(field, value string) {
	if strings.TrimSpace(value) == "" {
		f.fail(field, markerRequired)
	}
}

// checkMinLength records markers for an empty value or one shorter than min.
func (f *formState) checkMinLength(field, value string, min int) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		f.fail(field, markerRequired)
		return
	}
	if len(trimmed) < min {
		f.fail(field, markerMinLength)
	}
}

// checkEmail records markers for a missing or malformed email address.
func (f *formState) checkEmail(field, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		f.fail(field, markerRequired)
		return
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		f.fail(field, markerInvalidEmail)
	}
}

// formatAmount renders an amount back into a form field, without trailing
// zeros.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parsePositiveAmount parses a strictly positive decimal, recording marker
// on the field otherwise. The parsed value is only meaningful when no marker
// was recorded.
func (f *formState) parsePositiveAmount(field, value, marker string) float64 {
	if _, exists := f.Errors[field]; exists {
		return 0
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || amount <= 0 {
		f.fail(field, marker)
		return 0
	}
	return amount
}
