// Package env contains helpers for reading process environment variables and
// .env-style files.
package env

import (
	"os"

	"github.com/joho/godotenv"
)

// Lookup returns the value of the environment variable key, or fallback when
// it is unset or empty.
func Lookup(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	return value
}

// LoadDotEnv loads the given .env-style files into the process environment
// without overriding variables that are already set. Missing files are
// skipped.
func LoadDotEnv(paths ...string) error {
	existing := make([]string, 0, len(paths))
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	return godotenv.Load(existing...)
}
