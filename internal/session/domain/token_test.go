package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
)

func TestToken_IsExpiredAt(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		expiresAt time.Time
		expected  bool
	}{
		{name: "future_expiry_is_valid", expiresAt: now.Add(time.Nanosecond), expected: false},
		{name: "expiry_equal_to_now_is_expired", expiresAt: now, expected: true},
		{name: "past_expiry_is_expired", expiresAt: now.Add(-time.Hour), expected: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := domain.Token{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.expected, token.IsExpiredAt(now))
		})
	}
}

func TestParseTokenID(t *testing.T) {
	_, err := domain.ParseTokenID("not-a-uuid")
	assert.Error(t, err)

	id, err := domain.ParseTokenID("6f1c1f0e-8b7a-4d2c-9a51-3b8f0d6f2e11")
	assert.NoError(t, err)
	assert.Equal(t, "6f1c1f0e-8b7a-4d2c-9a51-3b8f0d6f2e11", id.String())
}
