package scheduler

import (
	"regexp"
	"strings"
)

// contactPattern is the address shape required for the tenant contact.
// The prompt UI applies the same pattern before submitting; the scheduler
// re-validates regardless.
var contactPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateTitle requires a non-empty event title
func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrInvalidTitle
	}
	return nil
}

// validateContact requires a well-formed e-mail address
func validateContact(contact string) error {
	if !contactPattern.MatchString(contact) {
		return ErrInvalidContact
	}
	return nil
}
