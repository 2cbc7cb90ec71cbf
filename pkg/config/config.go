// Package config loads the server configuration from environment variables.
// Database settings live separately in pkg/database. Configuration is
// immutable after startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults for the tunables below.
const (
	DefaultPort                        = 8080
	DefaultPresenceWindowSeconds       = 120
	DefaultShareableLinkLength         = 12
	DefaultShareableLinkRetryCount     = 5
	DefaultHeartbeatTimeoutSeconds     = 35
	DefaultSendQueueCapacity           = 64
	DefaultSessionRetentionDays        = 30
	DefaultShutdownTimeoutSeconds      = 20
	DefaultCleanupIntervalMinutes      = 60
	DefaultMaxRequestBodyBytes         = 1 << 20
)

// Config holds the server settings.
type Config struct {
	// Port is the HTTP listen port.
	Port int

	// PresenceWindow is the sliding window for active-user computation.
	PresenceWindow time.Duration

	// ShareableLinkLength is the hex length of board short codes.
	ShareableLinkLength int

	// ShareableLinkRetryCount bounds retries on shareable-link collisions.
	ShareableLinkRetryCount int

	// SubscriberHeartbeatTimeout is the gateway's idle-socket read deadline.
	SubscriberHeartbeatTimeout time.Duration

	// SubscriberSendQueueCapacity is the per-subscriber send queue bound;
	// the backpressure point before frames are dropped for a slow consumer.
	SubscriberSendQueueCapacity int

	// AdminSecret authenticates the administrative back channel. Required.
	AdminSecret string

	// DefaultCardLimit and DefaultReactionLimit apply to boards that don't
	// specify their own limit. Nil means unlimited.
	DefaultCardLimit     *int
	DefaultReactionLimit *int

	// SessionRetention is how long dead sessions are kept before the
	// cleanup janitor removes them.
	SessionRetention time.Duration

	// CleanupInterval is how often the janitor runs.
	CleanupInterval time.Duration

	// ShutdownTimeout bounds draining in-flight requests at shutdown.
	ShutdownTimeout time.Duration

	// MaxRequestBodyBytes caps mutation request bodies.
	MaxRequestBodyBytes int64

	// SecureCookies marks identity cookies Secure; enable behind TLS.
	SecureCookies bool
}

// Load reads the configuration from the environment. AdminSecret has no
// default and must be set.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                        getEnvInt("PORT", DefaultPort),
		PresenceWindow:              time.Duration(getEnvInt("PRESENCE_WINDOW_SECONDS", DefaultPresenceWindowSeconds)) * time.Second,
		ShareableLinkLength:         getEnvInt("SHAREABLE_LINK_LENGTH", DefaultShareableLinkLength),
		ShareableLinkRetryCount:     getEnvInt("SHAREABLE_LINK_RETRY_COUNT", DefaultShareableLinkRetryCount),
		SubscriberHeartbeatTimeout:  time.Duration(getEnvInt("SUBSCRIBER_HEARTBEAT_TIMEOUT_SECONDS", DefaultHeartbeatTimeoutSeconds)) * time.Second,
		SubscriberSendQueueCapacity: getEnvInt("SUBSCRIBER_SEND_QUEUE_CAPACITY", DefaultSendQueueCapacity),
		AdminSecret:                 os.Getenv("ADMIN_SECRET"),
		DefaultCardLimit:            getEnvOptionalInt("DEFAULT_CARD_LIMIT"),
		DefaultReactionLimit:        getEnvOptionalInt("DEFAULT_REACTION_LIMIT"),
		SessionRetention:            time.Duration(getEnvInt("SESSION_RETENTION_DAYS", DefaultSessionRetentionDays)) * 24 * time.Hour,
		CleanupInterval:             time.Duration(getEnvInt("CLEANUP_INTERVAL_MINUTES", DefaultCleanupIntervalMinutes)) * time.Minute,
		ShutdownTimeout:             time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", DefaultShutdownTimeoutSeconds)) * time.Second,
		MaxRequestBodyBytes:         int64(getEnvInt("MAX_REQUEST_BODY_BYTES", DefaultMaxRequestBodyBytes)),
		SecureCookies:               getEnvBool("SECURE_COOKIES", false),
	}
	if cfg.AdminSecret == "" {
		return nil, fmt.Errorf("ADMIN_SECRET environment variable is required")
	}
	if cfg.PresenceWindow <= 0 {
		return nil, fmt.Errorf("PRESENCE_WINDOW_SECONDS must be positive")
	}
	if cfg.ShareableLinkLength < 4 {
		return nil, fmt.Errorf("SHAREABLE_LINK_LENGTH must be at least 4")
	}
	if cfg.SubscriberSendQueueCapacity < 1 {
		return nil, fmt.Errorf("SUBSCRIBER_SEND_QUEUE_CAPACITY must be positive")
	}
	return cfg, nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvOptionalInt(key string) *int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return &parsed
		}
	}
	return nil
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
