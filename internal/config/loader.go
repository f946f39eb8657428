// Package config builds the paralint configuration from three layers
// (highest precedence last):
//
//  1. an optional .env file in the working directory
//  2. an optional YAML file, named by the caller or by PARALINT_CONFIG
//  3. environment variables prefixed PARALINT_, where "__" maps to "."
//     (e.g., PARALINT_MCP__RESULT_LIMIT sets mcp.result_limit)
//
// The merged tree is unmarshalled over Default and validated.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"

	"github.com/erraggy/paralint/linterrors"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "PARALINT_"
	// EnvConfigFile names the YAML file when the caller gives none.
	EnvConfigFile = EnvPrefix + "CONFIG"
	// DotEnvFile is the optional dotenv file read from the working directory.
	DotEnvFile = ".env"
)

// Load reads the configuration layers and returns the validated result.
// An empty path falls back to $PARALINT_CONFIG; when both are empty no
// file is read. A missing .env is not an error; a missing named file is.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: %w", &linterrors.ConfigError{Option: DotEnvFile, Cause: err})
	}

	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: %w", &linterrors.ConfigError{Option: "config", Value: path, Cause: err})
		}
	}

	// PARALINT_MCP__CACHE_TTL -> mcp.cache_ttl; empty values are skipped.
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, any) {
		if value == "" {
			return "", nil
		}
		return envKey(key), value
	}), nil); err != nil {
		return nil, fmt.Errorf("config: %w", &linterrors.ConfigError{Option: "environment", Cause: err})
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", &linterrors.ConfigError{Message: "cannot decode configuration", Cause: err})
	}
	cfg.normalize()

	if err := validateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func envKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(name, EnvPrefix), "__", "."))
}

// normalize splits comma-joined list entries, as environment values arrive
// as a single string, and trims blanks.
func (c *Config) normalize() {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Betas = splitList(c.Betas)
	c.Tables.ExtraProcessors = splitList(c.Tables.ExtraProcessors)
	c.Tables.ExtraSearchModes = splitList(c.Tables.ExtraSearchModes)
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for part := range strings.SplitSeq(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
