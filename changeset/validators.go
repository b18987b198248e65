package changeset

import (
	"fmt"
	"slices"
)

// MaxLength validates that a string value is at most n characters long.
func MaxLength(n int) func(value any) error {
	return func(value any) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("must be a string")
		}
		if len([]rune(s)) > n {
			return fmt.Errorf("must be at most %d characters", n)
		}
		return nil
	}
}

// MinLength validates that a string value is at least n characters long.
func MinLength(n int) func(value any) error {
	return func(value any) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("must be a string")
		}
		if len([]rune(s)) < n {
			return fmt.Errorf("must be at least %d characters", n)
		}
		return nil
	}
}

// OneOf validates that a string value is one of the given options.
func OneOf(options ...string) func(value any) error {
	return func(value any) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("must be a string")
		}
		if !slices.Contains(options, s) {
			return fmt.Errorf("must be one of %v", options)
		}
		return nil
	}
}
