// Package main provides the entry point for the gnvclient CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gnvclient/gnvclient/internal/config"
	"github.com/gnvclient/gnvclient/internal/engine"
	seclog "github.com/gnvclient/gnvclient/internal/log"
	"github.com/gnvclient/gnvclient/internal/verifier"
)

// Exit codes. Input problems and engine problems are distinguished so
// scripts can tell a typo from a service outage.
const (
	exitOK           = 0
	exitFailure      = 1
	exitInvalidInput = 2
)

// NewRootCmd creates the root command for gnvclient.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gnvclient",
		Short: "Verify scientific names against the GNverifier service",
		Long: `gnvclient verifies scientific names against the GlobalNames GNverifier
service (https://verifier.globalnames.org), which matches name strings
across dozens of curated nomenclatural databases.

Verification results keep the engine's own ranking: the first candidate for
a name is the engine's best match.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .gnvclient in current or home directory)")
	cmd.PersistentFlags().StringP("email", "e", "",
		"Contact email included in API requests (the service operators ask for one)")

	// Add subcommands
	cmd.AddCommand(NewVerifyCmd())
	cmd.AddCommand(NewDataSourcesCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and maps errors to exit codes.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if isInputError(err) {
			os.Exit(exitInvalidInput)
		}
		os.Exit(exitFailure)
	}
}

// isInputError reports whether the error is the user's fault rather than a
// service or client failure.
func isInputError(err error) bool {
	inputErrs := []error{
		verifier.ErrInvalidRequest,
		engine.ErrInvalidThreshold,
		config.ErrInvalidTimeout,
		config.ErrInvalidBatchSize,
		config.ErrInvalidThreshold,
		config.ErrConflictingFormats,
		config.ErrInvalidDataSourceID,
		config.ErrInvalidSortKey,
	}
	for _, target := range inputErrs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// baseConfig creates a Config from the persistent flags and the optional
// configuration file. File settings apply first so flags win.
func baseConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	explicitPath := cfg.ConfigFilePath != ""
	if path := config.FindConfigFile(cfg.ConfigFilePath); path != "" {
		file, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		file.Apply(cfg)
	} else if explicitPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if email, err := cmd.Flags().GetString("email"); err == nil && email != "" {
		cfg.Email = email
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// newEngineClient builds the engine gateway from the configuration.
func newEngineClient(cfg *config.Config) *engine.Client {
	opts := []engine.Option{
		engine.WithTimeout(cfg.Timeout),
		engine.WithUserAgent(cfg.UserAgent(getVersion())),
		engine.WithBatchLimit(cfg.BatchSize),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, engine.WithBaseURL(cfg.BaseURL))
	}
	return engine.NewClient(opts...)
}

// openOutput returns the report destination: the output file when one is
// configured, stdout otherwise. The returned closer is a no-op for stdout.
// Report files get 0600 permissions; verification output can reveal what a
// researcher is working on.
func openOutput(cfg *config.Config) (io.Writer, func() error, error) {
	if cfg.OutputFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// setupLogger installs the default logger: text records on stderr through
// the masking handler.
func setupLogger(verbose bool) *slog.Logger {
	logger := seclog.NewSecureLogger(os.Stderr, verbose)
	slog.SetDefault(logger)
	return logger
}
