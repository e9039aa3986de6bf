// Package cli implements the minlp command-line interface.
//
// This package provides commands for encoding permutation pairs into LP
// systems, solving them, checking candidate solutions, and visualizing the
// constraint structure. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - encode: Translate a permutation pair and objective into an LP document
//   - solve: Minimize an LP document with the CLP simplex solver
//   - check: Verify a candidate assignment against a document
//   - run: Execute the full encode → solve → check pipeline
//   - visualize: Render the constraint precedence graph
//   - serve: Start the HTTP API server
//   - cache: Manage the local result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wjlenhart/minLPsolver/internal/config"
	"github.com/wjlenhart/minLPsolver/pkg/buildinfo"
	"github.com/wjlenhart/minLPsolver/pkg/cache"
	"github.com/wjlenhart/minLPsolver/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "minlp"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "minlp",
		Short:        "minlp encodes permutation pairs as linear programs",
		Long:         `minlp translates a pair of permutations into a system of linear inequalities whose solutions are minimum-area grid drawings, solves the system with the CLP simplex solver, and verifies the result.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.encodeCommand())
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.runCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cch, err := newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cch, newKeyer(cfg), c.Logger), nil
}

// newKeyer returns the key layout for the configured cache: the default
// layout, scoped under cache.namespace when one is set.
func newKeyer(cfg config.Config) cache.Keyer {
	if ns := cfg.Cache.Namespace; ns != "" {
		return cache.NewScopedKeyer(nil, ns+":")
	}
	return nil
}

// newCache builds the cache backend selected in the config file. Backend
// failures degrade to a null cache so the CLI keeps working offline.
func newCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}

	switch cfg.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		return cache.NewRedisCache(ctx, cfg.Cache.RedisURL)
	case config.BackendMongo:
		return cache.NewMongoCache(ctx, cfg.Cache.MongoURI, cfg.Cache.MongoDatabase)
	default:
		dir := cfg.Cache.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
		}
		return cache.NewFileCache(dir)
	}
}

// cacheDir returns the cache directory using XDG standard (~/.cache/minlp/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
