package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tenantkit/config"
)

type testConfig struct {
	Host    string        `env:"LOADER_TEST_HOST" envDefault:"localhost"`
	Port    int           `env:"LOADER_TEST_PORT" envDefault:"5432"`
	Timeout time.Duration `env:"LOADER_TEST_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Secret string `env:"LOADER_TEST_REQUIRED_SECRET,required"`
}

type cachedConfig struct {
	Value string `env:"LOADER_TEST_CACHED" envDefault:"initial"`
}

func TestLoad(t *testing.T) {
	// No t.Parallel: the loader reads process-wide environment state.

	t.Run("applies defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("nil pointer is rejected", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParseFailed)
	})

	t.Run("second load returns cached values", func(t *testing.T) {
		t.Setenv("LOADER_TEST_CACHED", "first")

		var first cachedConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "first", first.Value)

		t.Setenv("LOADER_TEST_CACHED", "second")

		var again cachedConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "first", again.Value)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			_ = config.MustLoad[requiredConfig]()
		})
	})

	t.Run("returns loaded config", func(t *testing.T) {
		cfg := config.MustLoad[testConfig]()
		assert.Equal(t, "localhost", cfg.Host)
	})
}
