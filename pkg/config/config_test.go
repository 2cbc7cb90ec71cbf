package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADMIN_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, 120*time.Second, cfg.PresenceWindow)
	assert.Equal(t, DefaultShareableLinkLength, cfg.ShareableLinkLength)
	assert.Equal(t, DefaultShareableLinkRetryCount, cfg.ShareableLinkRetryCount)
	assert.Equal(t, 35*time.Second, cfg.SubscriberHeartbeatTimeout)
	assert.Equal(t, DefaultSendQueueCapacity, cfg.SubscriberSendQueueCapacity)
	assert.Equal(t, "test-secret", cfg.AdminSecret)
	assert.Nil(t, cfg.DefaultCardLimit)
	assert.Nil(t, cfg.DefaultReactionLimit)
	assert.Equal(t, 30*24*time.Hour, cfg.SessionRetention)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
	assert.Equal(t, 20*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, int64(1<<20), cfg.MaxRequestBodyBytes)
	assert.False(t, cfg.SecureCookies)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ADMIN_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("PRESENCE_WINDOW_SECONDS", "60")
	t.Setenv("SHAREABLE_LINK_LENGTH", "16")
	t.Setenv("SUBSCRIBER_HEARTBEAT_TIMEOUT_SECONDS", "10")
	t.Setenv("DEFAULT_CARD_LIMIT", "25")
	t.Setenv("DEFAULT_REACTION_LIMIT", "100")
	t.Setenv("SESSION_RETENTION_DAYS", "7")
	t.Setenv("SECURE_COOKIES", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, time.Minute, cfg.PresenceWindow)
	assert.Equal(t, 16, cfg.ShareableLinkLength)
	assert.Equal(t, 10*time.Second, cfg.SubscriberHeartbeatTimeout)
	require.NotNil(t, cfg.DefaultCardLimit)
	assert.Equal(t, 25, *cfg.DefaultCardLimit)
	require.NotNil(t, cfg.DefaultReactionLimit)
	assert.Equal(t, 100, *cfg.DefaultReactionLimit)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionRetention)
	assert.True(t, cfg.SecureCookies)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("ADMIN_SECRET", "test-secret")
	t.Setenv("PORT", "not-a-number")
	t.Setenv("DEFAULT_CARD_LIMIT", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Nil(t, cfg.DefaultCardLimit)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing admin secret", map[string]string{}},
		{"non-positive presence window", map[string]string{
			"ADMIN_SECRET":            "s",
			"PRESENCE_WINDOW_SECONDS": "-5",
		}},
		{"short shareable link", map[string]string{
			"ADMIN_SECRET":          "s",
			"SHAREABLE_LINK_LENGTH": "2",
		}},
		{"zero send queue capacity", map[string]string{
			"ADMIN_SECRET":                   "s",
			"SUBSCRIBER_SEND_QUEUE_CAPACITY": "0",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ADMIN_SECRET", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
