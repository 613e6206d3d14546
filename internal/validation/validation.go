// Package validation holds the field-scoped input checks that run before any
// storage call. A validation failure never reaches the store.
package validation

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	amountPattern        = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	venmoUsernamePattern = regexp.MustCompile(`^@?[A-Za-z0-9_-]{3,30}$`)
)

// EventForm is the raw user input for creating an event.
type EventForm struct {
	EventName string
	Amount    string
}

// EventFormResult carries per-field error messages and, when the amount
// field validated, its parsed value.
type EventFormResult struct {
	// FieldErrors maps field name ("eventName", "amount") to a user-visible
	// message. Empty when the form is valid.
	FieldErrors map[string]string

	// ParsedAmount is the amount as a number; meaningful only when Valid.
	ParsedAmount float64
}

// Valid reports whether the form passed all field checks.
func (r EventFormResult) Valid() bool {
	return len(r.FieldErrors) == 0
}

// ValidateEventForm checks the event name and amount fields. The amount must
// be a positive number with at most two decimal places.
func ValidateEventForm(form EventForm) EventFormResult {
	result := EventFormResult{FieldErrors: map[string]string{}}

	if strings.TrimSpace(form.EventName) == "" {
		result.FieldErrors["eventName"] = "Event name is required."
	}

	rawAmount := strings.TrimSpace(form.Amount)
	switch {
	case rawAmount == "":
		result.FieldErrors["amount"] = "Amount is required."
	case !amountPattern.MatchString(rawAmount):
		result.FieldErrors["amount"] = "Amount must be a valid number with up to 2 decimals."
	default:
		parsed, err := strconv.ParseFloat(rawAmount, 64)
		if err != nil || parsed <= 0 {
			result.FieldErrors["amount"] = "Amount must be greater than 0."
		} else {
			result.ParsedAmount = parsed
		}
	}

	return result
}

// NormalizeVenmoUsername trims, strips leading "@"s, and lowercases a Venmo
// handle. The normalized form is for matching; display keeps the raw value.
func NormalizeVenmoUsername(input string) string {
	trimmed := strings.TrimSpace(input)
	return strings.ToLower(strings.TrimLeft(trimmed, "@"))
}

// ValidateVenmoUsername returns a user-visible message when the handle is
// missing or malformed, and "" when it is acceptable. Handles are 3-30
// letters, numbers, underscores, or hyphens, with an optional leading "@".
func ValidateVenmoUsername(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "Venmo username is required."
	}
	if !venmoUsernamePattern.MatchString(trimmed) {
		return "Use 3-30 letters, numbers, underscores, or hyphens."
	}
	return ""
}

// ValidateParticipantName returns a user-visible message when the name is
// blank, and "" otherwise.
func ValidateParticipantName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Please enter your name."
	}
	return ""
}

// ToSafeRelativePath restricts a post-auth redirect target to a same-site
// relative path. Anything absolute, empty, or scheme-relative ("//host")
// collapses to "/".
func ToSafeRelativePath(path string) string {
	if path == "" || !strings.HasPrefix(path, "/") {
		return "/"
	}
	if strings.HasPrefix(path, "//") {
		return "/"
	}
	return path
}
