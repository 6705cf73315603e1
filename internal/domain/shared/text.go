// Package shared holds small helpers used by several aggregates.
package shared

import (
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/tripline/tripline/internal/shared/constants"
	"github.com/tripline/tripline/internal/shared/errors"
)

// NormalizeText trims surrounding whitespace and converts to NFC so that
// visually identical titles compare equal regardless of input method.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// RequireText normalises s and checks it is non-empty and at most maxRunes
// characters long.
func RequireText(field, s string, maxRunes int) (string, error) {
	s = NormalizeText(s)
	if s == "" {
		return "", errors.NewValidationError(field + " is required")
	}
	if utf8.RuneCountInString(s) > maxRunes {
		return "", errors.NewValidationError(field + " is too long")
	}
	return s, nil
}

// OptionalText normalises s and checks its length. Empty is allowed.
func OptionalText(field, s string, maxRunes int) (string, error) {
	s = NormalizeText(s)
	if utf8.RuneCountInString(s) > maxRunes {
		return "", errors.NewValidationError(field + " is too long")
	}
	return s, nil
}

// SchedulingHorizon is the latest instant anything may be scheduled at.
func SchedulingHorizon(now time.Time) time.Time {
	return now.AddDate(constants.MaxFutureYears, 0, 0)
}
