package env

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("parse environment: %w", err))
	}

	return val
}

// Parse fills T from environment variables, see envconfig struct tags.
func Parse[T any](prefix string) (T, error) {
	var result T
	if err := envconfig.Process(prefix, &result); err != nil {
		return result, err
	}

	return result, nil
}

// ParseString returns a required non-empty variable.
func ParseString(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return "", fmt.Errorf("required key %s missing value", name)
	}

	return value, nil
}
