package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNilPointer is returned when Load is called with a nil target.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrParseFailed wraps env parsing failures.
	ErrParseFailed = errors.New("failed to parse environment variables")
)

var (
	dotenvOnce sync.Once

	cacheMu sync.Mutex
	cache   = make(map[string]any)
)

// Load populates cfg from environment variables according to its `env`
// tags. The first call in the process loads a .env file if present; a
// missing file is not an error. Results are cached per concrete type, so
// repeated loads of the same type are cheap and consistent.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := typeName[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[key]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	cache[key] = *cfg
	return nil
}

// MustLoad is Load for process bootstrap paths; it panics on error.
func MustLoad[T any]() T {
	var cfg T
	if err := Load(&cfg); err != nil {
		panic(err)
	}
	return cfg
}

func typeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
