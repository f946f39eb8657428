package config

import "time"

// Config is the merged configuration tree. Struct tags use koanf keys; the
// same keys appear in the YAML file and, upper-cased with a PARALINT_ prefix
// and "__" as the level separator, in the environment.
type Config struct {
	// Strict treats warnings as failures
	Strict bool `koanf:"strict"`
	// NoWarnings drops warnings from reports
	NoWarnings bool `koanf:"no_warnings"`
	// Format is the report format
	Format string `koanf:"format" validate:"oneof=text json yaml"`
	// LogLevel is the minimum level written to stderr
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`
	// Betas are capability tokens declared on every lint
	Betas []string `koanf:"betas" validate:"dive,required"`
	// CompileSchemas compiles Task schema descriptors as JSON Schema
	CompileSchemas bool `koanf:"compile_schemas"`
	// Tables extends the built-in lookup tables
	Tables Tables `koanf:"tables"`
	// MCP holds the tool server settings
	MCP MCP `koanf:"mcp"`
}

// Tables lists additions to the built-in lookup tables, for processors or
// modes released after this build.
type Tables struct {
	ExtraProcessors  []string `koanf:"extra_processors" validate:"dive,required"`
	ExtraSearchModes []string `koanf:"extra_search_modes" validate:"dive,required"`
}

// MCP holds the tool server settings.
type MCP struct {
	// ResultLimit is the default page size for diagnostics
	ResultLimit int `koanf:"result_limit" validate:"gte=1"`
	// MaxLimit caps any requested page size
	MaxLimit int `koanf:"max_limit" validate:"gtefield=ResultLimit"`
	// MaxInlineSize is the largest inline payload accepted, in bytes
	MaxInlineSize int64 `koanf:"max_inline_size" validate:"gte=1"`
	// CacheEnabled keeps decoded payloads between calls
	CacheEnabled bool `koanf:"cache_enabled"`
	// CacheMaxSize is the number of decoded payloads kept
	CacheMaxSize int `koanf:"cache_max_size" validate:"gte=1"`
	// CacheTTL is how long a decoded payload stays cached
	CacheTTL time.Duration `koanf:"cache_ttl" validate:"gt=0"`
	// CacheSweepInterval is the period of the expiry sweeper; zero disables it
	CacheSweepInterval time.Duration `koanf:"cache_sweep_interval" validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:   "text",
		LogLevel: "warn",
		MCP: MCP{
			ResultLimit:        100,
			MaxLimit:           1000,
			MaxInlineSize:      1 << 20,
			CacheEnabled:       true,
			CacheMaxSize:       10,
			CacheTTL:           15 * time.Minute,
			CacheSweepInterval: time.Minute,
		},
	}
}
