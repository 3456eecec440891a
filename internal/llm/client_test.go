package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/specwise/spec-analyzer/pkg/logger"
)

func TestCompleteWithoutKeyReturnsSentinel(t *testing.T) {
	c := NewClient(Settings{}, logger.NewTestLogger())

	assert.False(t, c.Configured())

	out := c.Complete(context.Background(), "system", "user")
	assert.True(t, IsSentinel(out))
	assert.Contains(t, out, SentinelNoKey)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Settings{APIKey: "sk-test"}, logger.NewTestLogger())

	assert.True(t, c.Configured())
	assert.Equal(t, "gpt-4o-mini", c.settings.Model)
	assert.Equal(t, int64(1200), c.settings.MaxTokens)
}

func TestIsSentinel(t *testing.T) {
	assert.True(t, IsSentinel(SentinelNoKey+" details"))
	assert.True(t, IsSentinel(SentinelError+" timeout"))
	assert.False(t, IsSentinel("Section 01 33 00 requires submittals"))
	assert.False(t, IsSentinel(""))
}
