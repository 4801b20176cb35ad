package commands

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/onomast-labs/onomast/internal/cli/config"
	"github.com/onomast-labs/onomast/internal/cli/output"
	"github.com/onomast-labs/onomast/internal/state"
	"github.com/onomast-labs/onomast/pkg/namegen"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
	Store    state.Store
}

// NewCommandContext creates a CommandContext with the ledger opened.
// Returns the context and a cleanup function that must be called
// (typically via defer). The ledger is nil when disabled.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cmdCtx := NewCommandContextWithoutStore(cmd)
	if cmdCtx.Cfg.NoLedger {
		return cmdCtx, func() {}, nil
	}

	store, err := openLedger(cmdCtx.Cfg, cmdCtx.Logger)
	if err != nil {
		return nil, nil, err
	}

	cmdCtx.Store = store
	return cmdCtx, func() { _ = store.Close() }, nil
}

// NewCommandContextWithoutStore creates a CommandContext without
// touching the ledger. Useful for commands that only read the language.
func NewCommandContextWithoutStore(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	languagePath := getEnvOrDefault("ONOMAST_LANGUAGE", config.DefaultLanguageFile)
	statePath := getEnvOrDefault("ONOMAST_STATE_PATH", config.DefaultStateFile)
	seed, _ := strconv.ParseUint(os.Getenv("ONOMAST_SEED"), 10, 64)
	verbose := os.Getenv("ONOMAST_VERBOSE") == "true"
	outputFormat := os.Getenv("ONOMAST_OUTPUT")

	return &config.Config{
		LanguagePath: languagePath,
		StatePath:    statePath,
		Seed:         seed,
		Pool:         os.Getenv("ONOMAST_POOL"),
		Verbose:      verbose,
		OutputFormat: outputFormat,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// newRand builds the random source from the configured seed. A zero
// seed derives one from the clock so repeated invocations differ.
func newRand(cfg *config.Config) (*rand.Rand, uint64) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed+1)), seed
}

// loadLanguage reads the configured language spec and binds it to a
// fresh random source.
func loadLanguage(cfg *config.Config) (*namegen.Language, uint64, error) {
	spec, err := namegen.LoadSpec(cfg.LanguagePath)
	if err != nil {
		return nil, 0, err
	}

	rng, seed := newRand(cfg)
	lang, err := namegen.New(spec, rng)
	if err != nil {
		return nil, 0, err
	}
	return lang, seed, nil
}

func openLedger(cfg *config.Config, logger *slog.Logger) (state.Store, error) {
	if cfg.StatePath != ":memory:" {
		stateDir := filepath.Dir(cfg.StatePath)
		if stateDir != "." && stateDir != "" {
			if err := os.MkdirAll(stateDir, 0750); err != nil {
				return nil, fmt.Errorf("failed to create state directory: %w", err)
			}
		}
	}

	store := state.NewSQLiteStore(logger)
	if err := store.Open(cfg.StatePath); err != nil {
		return nil, err
	}
	if err := store.InitSchema(); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}
