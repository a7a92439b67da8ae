package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"name+tag@mail.co",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@missing-local.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("concerts"))
	assert.True(t, IsValidSlug("open-air-festivals"))
	assert.True(t, IsValidSlug("art2026"))

	assert.False(t, IsValidSlug("a"), "too short")
	assert.False(t, IsValidSlug("Concerts"), "uppercase not allowed")
	assert.False(t, IsValidSlug("-leading"))
	assert.False(t, IsValidSlug("trailing-"))
	assert.False(t, IsValidSlug("double--dash"))
	assert.False(t, IsValidSlug("with space"))
}

func TestIsValidPassword(t *testing.T) {
	// At least 6 chars and 3 of 4 character classes
	assert.True(t, IsValidPassword("Secret1"))
	assert.True(t, IsValidPassword("abc123!"))
	assert.True(t, IsValidPassword("Pass!word"))

	assert.False(t, IsValidPassword("Ab1"), "too short")
	assert.False(t, IsValidPassword("abcdef"), "single class")
	assert.False(t, IsValidPassword("abc123"), "only two classes")
	assert.False(t, IsValidPassword("ABCDEF123"), "only two classes")
}

func TestCoordinateValidators(t *testing.T) {
	assert.True(t, IsValidLatitude(0))
	assert.True(t, IsValidLatitude(-90))
	assert.True(t, IsValidLatitude(90))
	assert.False(t, IsValidLatitude(90.0001))
	assert.False(t, IsValidLatitude(-120))

	assert.True(t, IsValidLongitude(180))
	assert.True(t, IsValidLongitude(-180))
	assert.False(t, IsValidLongitude(181))
}
