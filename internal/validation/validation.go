package validation

import (
	"regexp"
	"strings"
	"time"

	apperrors "hotelier/internal/errors"
)

// DateLayout is the input format for all date text, MM/dd/yyyy.
const DateLayout = "01/02/2006"

// The pattern is deliberately loose: anything before a first "@" and a
// ".com" suffix passes. Multiple "@" signs are accepted.
var emailPattern = regexp.MustCompile(`^[^@]+@.+\.com$`)

// ValidateEmail checks the email against the accepted address pattern.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return apperrors.NewInvalidFormatError("email", email, "enter correct format for email")
	}
	return nil
}

// ValidateDateOrder rejects stays where check-in is on or after check-out.
// The same-day check compares calendar days; the ordering check compares the
// full instants.
func ValidateDateOrder(checkIn, checkOut time.Time) error {
	if sameDay(checkIn, checkOut) {
		return apperrors.NewInvalidRangeError("check-in date cannot be the same as check-out date")
	}
	if checkIn.After(checkOut) {
		return apperrors.NewInvalidRangeError("check-in date must be before check-out date")
	}
	return nil
}

// ValidateNotPast rejects a check-in whose calendar date is before today.
// Time of day is ignored.
func ValidateNotPast(checkIn time.Time) error {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, checkIn.Location())
	if toDay(checkIn).Before(today) {
		return apperrors.NewInvalidRangeError("check-in date cannot be in the past")
	}
	return nil
}

// RequireNonEmpty fails with the field name when the value is blank.
// Callers check their fields in a fixed order so the first missing one is
// the one reported.
func RequireNonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewMissingFieldError(field)
	}
	return nil
}

// ParseDate parses MM/dd/yyyy text into a date at midnight UTC.
func ParseDate(text string) (time.Time, error) {
	parsed, err := time.ParseInLocation(DateLayout, text, time.UTC)
	if err != nil {
		return time.Time{}, apperrors.NewParseError(text, err)
	}
	return parsed, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func toDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
