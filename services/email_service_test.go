package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateResetCode(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		code := generateResetCode()

		assert.Len(t, code, 6)
		for _, ch := range code {
			assert.True(t, ch >= '0' && ch <= '9', "code %q contains non-digit", code)
		}
		seen[code] = true
	}

	// 100 draws out of a million combinations should not all collide
	assert.Greater(t, len(seen), 1)
}
