// Package passwords implements the account password policy.
package passwords

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinLength = 5
	MaxLength = 10
)

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	specialRe = regexp.MustCompile("[!@#$%^&*(),.?\":{}|<>_\\-+=\\[\\]\\\\/`~;]")
)

// Validate checks password against the policy rules in a fixed order and
// reports the first violated rule's message. Later rules are not evaluated,
// so a too-short password is reported as too short even when it also lacks a
// required character class.
func Validate(password string) (bool, string) {
	if strings.TrimSpace(password) == "" {
		return false, "password is required"
	}

	length := utf8.RuneCountInString(password)
	if length < MinLength {
		return false, fmt.Sprintf("password must be at least %d characters", MinLength)
	}
	if length > MaxLength {
		return false, fmt.Sprintf("password must be at most %d characters", MaxLength)
	}

	if !upperRe.MatchString(password) {
		return false, "password must contain at least one uppercase letter"
	}
	if !specialRe.MatchString(password) {
		return false, "password must contain at least one special character (!@#$%^&*...)"
	}

	return true, ""
}

// Requirements describes the policy for user-facing help text.
func Requirements() string {
	return fmt.Sprintf("password must be between %d and %d characters, with at least one uppercase letter and one special character (!@#$%%^&*...)",
		MinLength, MaxLength)
}
