package mcpserver

import (
	"time"

	"github.com/erraggy/paralint/internal/config"
	"github.com/erraggy/paralint/lint"
)

// serverConfig holds the MCP server defaults. Tool inputs override the
// lint defaults per call.
type serverConfig struct {
	// Lint tool defaults.
	Strict         bool
	NoWarnings     bool
	CompileSchemas bool
	Betas          []string
	Tables         *lint.Tables

	// Result pagination.
	ResultLimit int
	MaxLimit    int

	// Input limits.
	MaxInlineSize int64

	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheTTL           time.Duration
	CacheSweepInterval time.Duration
}

// cfg is the active server configuration. Run replaces it with the loaded
// configuration before serving.
var cfg = newServerConfig(config.Default())

// newServerConfig derives server defaults from the loaded configuration.
func newServerConfig(c config.Config) *serverConfig {
	tables := lint.DefaultTables().
		WithExtraProcessors(c.Tables.ExtraProcessors...).
		WithExtraSearchModes(c.Tables.ExtraSearchModes...)
	return &serverConfig{
		Strict:             c.Strict,
		NoWarnings:         c.NoWarnings,
		CompileSchemas:     c.CompileSchemas,
		Betas:              c.Betas,
		Tables:             tables,
		ResultLimit:        c.MCP.ResultLimit,
		MaxLimit:           c.MCP.MaxLimit,
		MaxInlineSize:      c.MCP.MaxInlineSize,
		CacheEnabled:       c.MCP.CacheEnabled,
		CacheMaxSize:       c.MCP.CacheMaxSize,
		CacheTTL:           c.MCP.CacheTTL,
		CacheSweepInterval: c.MCP.CacheSweepInterval,
	}
}
