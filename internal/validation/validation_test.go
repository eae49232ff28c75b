package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "hotelier/internal/errors"
)

func date(t *testing.T, text string) time.Time {
	t.Helper()
	d, err := ParseDate(text)
	if err != nil {
		t.Fatalf("bad test date %q: %v", text, err)
	}
	return d
}

func TestValidateEmail_Accepted(t *testing.T) {
	// The pattern is intentionally loose: "@" plus a ".com" suffix is all
	// it takes.
	for _, email := range []string{
		"ada@lovelace.com",
		"a@b.com",
		"first.last@sub.domain.com",
		"weird@@double.com",
		"spaces in local@domain.com",
	} {
		assert.NoError(t, ValidateEmail(email), email)
	}
}

func TestValidateEmail_Rejected(t *testing.T) {
	for _, email := range []string{
		"",
		"nodomain",
		"@missinglocal.com",
		"ada@lovelace.org",
		"ada@lovelace.com ",
		"ada@lovelacecom",
	} {
		err := ValidateEmail(email)
		if assert.Error(t, err, email) {
			_, ok := apperrors.IsInvalidFormatError(err)
			assert.True(t, ok, email)
		}
	}
}

func TestValidateDateOrder(t *testing.T) {
	checkIn := date(t, "06/15/2025")
	checkOut := date(t, "06/20/2025")

	assert.NoError(t, ValidateDateOrder(checkIn, checkOut))
}

func TestValidateDateOrder_SameDay(t *testing.T) {
	day := date(t, "06/15/2025")

	err := ValidateDateOrder(day, day)
	_, ok := apperrors.IsInvalidRangeError(err)
	assert.True(t, ok)
}

func TestValidateDateOrder_SameDayDifferentTimes(t *testing.T) {
	// Time of day is ignored for the same-day check.
	morning := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC)

	err := ValidateDateOrder(morning, evening)
	_, ok := apperrors.IsInvalidRangeError(err)
	assert.True(t, ok)
}

func TestValidateDateOrder_Reversed(t *testing.T) {
	err := ValidateDateOrder(date(t, "06/20/2025"), date(t, "06/15/2025"))
	_, ok := apperrors.IsInvalidRangeError(err)
	assert.True(t, ok)
}

func TestValidateNotPast(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	err := ValidateNotPast(yesterday)
	_, ok := apperrors.IsInvalidRangeError(err)
	assert.True(t, ok)

	assert.NoError(t, ValidateNotPast(time.Now()), "today is not past, time of day ignored")
	assert.NoError(t, ValidateNotPast(time.Now().AddDate(0, 0, 1)))
}

func TestRequireNonEmpty(t *testing.T) {
	assert.NoError(t, RequireNonEmpty("first name", "Ada"))

	for _, value := range []string{"", "   ", "\t"} {
		err := RequireNonEmpty("first name", value)
		me, ok := apperrors.IsMissingFieldError(err)
		if assert.True(t, ok) {
			assert.Equal(t, "first name", me.Field)
		}
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("06/15/2025")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseDate_Invalid(t *testing.T) {
	for _, text := range []string{
		"",
		"2025-06-15",
		"15/06/2025x",
		"not a date",
		"06/15/2025 extra",
	} {
		_, err := ParseDate(text)
		if assert.Error(t, err, text) {
			_, ok := apperrors.IsParseError(err)
			assert.True(t, ok, text)
		}
	}
}
