package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeKVs(t *testing.T) {
	t.Run("redacts secret keys", func(t *testing.T) {
		out := sanitizeKVs([]interface{}{"api_key", "abc", "query", "subject:Fantasy"})
		assert.Equal(t, []interface{}{"api_key", "[REDACTED]", "query", "subject:Fantasy"}, out)
	})

	t.Run("keeps dangling key", func(t *testing.T) {
		out := sanitizeKVs([]interface{}{"user_id", "u1", "orphan"})
		assert.Equal(t, []interface{}{"user_id", "u1", "orphan"}, out)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, sanitizeKVs(nil))
	})
}

func TestNew(t *testing.T) {
	l, err := New("prod")
	assert.NoError(t, err)
	assert.NotNil(t, l)

	l, err = New("dev")
	assert.NoError(t, err)
	l.With("component", "test").Debug("hello", "k", "v")
}
