package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty("  x  "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "a.b+c@station.co.id", "op_1@spbu-ops.io"}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{"", "user", "user@", "@example.com", "user@example", "user @example.com"}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "07:05", "15:00", "23:59"}
	for _, clock := range valid {
		assert.True(t, IsValidClockTime(clock), clock)
	}

	invalid := []string{"", "7:05", "07:5", "24:00", "12:60", "12.30", "12:30:00", "ab:cd"}
	for _, clock := range invalid {
		assert.False(t, IsValidClockTime(clock), clock)
	}
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-06-15")
	assert.True(t, ok)

	for _, date := range []string{"", "15-06-2025", "2025/06/15", "2025-13-01"} {
		_, ok := IsValidDate(date)
		assert.False(t, ok, date)
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "clock_in", Message: "clock_in must be in HH:MM format"},
		{Field: "employee_name", Message: "employee_name is required"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "clock_in must be in HH:MM format", m["clock_in"])
	assert.Contains(t, errs.Error(), "employee_name: employee_name is required")
}
