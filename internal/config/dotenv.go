package config

import (
	"fmt"

	"github.com/joho/godotenv"
)

const (
	dotEnvPathVar     = "DOTENV"
	defaultDotEnvPath = ".env"
)

// loadDotEnv reads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already present.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("error loading dotenv file %q: %w", path, err)
	}

	return nil
}
