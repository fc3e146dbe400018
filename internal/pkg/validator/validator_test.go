package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty("  a  "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"mario.rossi@example.com",
		"a@b.co",
		"user+tag@sub.domain.org",
	}
	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"user@nodot",
	}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2025-06-18")
	assert.True(t, ok)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, 18, d.Day())

	_, ok = IsValidDate("18/06/2025")
	assert.False(t, ok)
	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestIsValidClock(t *testing.T) {
	m, ok := IsValidClock("09:30")
	assert.True(t, ok)
	assert.Equal(t, 9*60+30, m)

	m, ok = IsValidClock("00:00")
	assert.True(t, ok)
	assert.Equal(t, 0, m)

	_, ok = IsValidClock("24:00")
	assert.False(t, ok)
	_, ok = IsValidClock("9:3")
	assert.False(t, ok)
	_, ok = IsValidClock("09:60")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	s := []string{"ferie", "permesso"}
	assert.True(t, IsInSlice("ferie", s))
	assert.False(t, IsInSlice("malattia", s))
}
