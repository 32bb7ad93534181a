package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToken_IsExpired(t *testing.T) {
	expiresAt := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	token := &Token{ExpiresAt: expiresAt}

	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{"well before expiration", expiresAt.Add(-2 * time.Hour), false},
		{"one second before expiration", expiresAt.Add(-time.Second), false},
		{"exactly at expiration", expiresAt, true},
		{"after expiration", expiresAt.Add(time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, token.IsExpired(tt.now))
		})
	}
}
