package service

import "strings"

// RegisterParams is the full registration form payload, both wizard steps.
type RegisterParams struct {
	Name          string
	Email         string
	Secret        string
	ConfirmSecret string
	AcceptTerms   bool
}

// ValidationError is a rejected form field. It maps to a 400 at the HTTP
// layer, distinct from the directory conflict error.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// validateRegistration applies the form rules in wizard order: step one
// (name, email present) before step two (confirmation, strength, terms).
func validateRegistration(p RegisterParams) error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Email) == "" {
		return &ValidationError{Reason: "please fill in all fields"}
	}
	if p.Secret != p.ConfirmSecret {
		return &ValidationError{Reason: "passwords do not match"}
	}
	if StrengthScore(p.Secret) < MinStrengthScore {
		return &ValidationError{Reason: "please create a stronger password"}
	}
	if !p.AcceptTerms {
		return &ValidationError{Reason: "please accept the terms and conditions"}
	}
	return nil
}
