package redisconn_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/tenantkit/redisconn"
)

func TestConnect(t *testing.T) {
	t.Parallel()

	t.Run("invalid connection string", func(t *testing.T) {
		t.Parallel()

		_, err := redisconn.Connect(context.Background(), redisconn.Config{
			ConnectionURL:  "not-a-url",
			RetryAttempts:  1,
			RetryInterval:  time.Millisecond,
			ConnectTimeout: time.Second,
		})
		assert.ErrorIs(t, err, redisconn.ErrFailedToParseConnString)
	})

	t.Run("unreachable server exhausts retries", func(t *testing.T) {
		t.Parallel()

		_, err := redisconn.Connect(context.Background(), redisconn.Config{
			// Reserved TEST-NET-1 address, nothing listens there.
			ConnectionURL:  "redis://192.0.2.1:6379/0",
			RetryAttempts:  2,
			RetryInterval:  10 * time.Millisecond,
			ConnectTimeout: 500 * time.Millisecond,
		})
		assert.ErrorIs(t, err, redisconn.ErrRedisNotReady)
	})
}
