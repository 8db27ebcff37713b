// Package main provides the CLI entry point for the tabular decoder.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shapestone/shape-tabular/internal/config"
	"github.com/shapestone/shape-tabular/internal/loader"
	"github.com/shapestone/shape-tabular/pkg/tabular"
)

const (
	exitError   = 1
	exitNoInput = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(context.Background())
	switch {
	case err == nil:
		return 0
	case errors.Is(err, tabular.ErrEmptyInput):
		fmt.Fprintln(stderr, "no data found")
		return exitNoInput
	default:
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}
}

// app holds state shared by all subcommands once the root pre-run has executed.
type app struct {
	configPath string
	logLevel   string
	encoding   string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "tabular",
		Short: "Decode comma-delimited text into records",
		Long: `tabular decodes comma-delimited text into column-keyed records.
The first non-blank line is the header; quoted fields may contain commas
and doubled quotes.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", os.Getenv("TABULAR_CONFIG"), "Config file path (default: tabular.toml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&a.encoding, "encoding", "", "Input character encoding (default: utf-8)")

	rootCmd.AddCommand(newDecodeCmd(a), newColumnsCmd(a), newColumnCmd(a))
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.encoding != "" {
		cfg.Input.Encoding = a.encoding
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger.With("run_id", uuid.NewString())
	return nil
}

// loadTable reads and decodes the file at path.
func (a *app) loadTable(cmd *cobra.Command, path string) (*tabular.Table, error) {
	ctx := cmd.Context()
	start := time.Now()

	text, err := loader.Load(ctx, path, loader.Options{
		Encoding: a.cfg.Input.Encoding,
		MaxBytes: a.cfg.Input.MaxBytes,
		Logger:   a.logger,
	})
	if err != nil {
		return nil, err
	}

	table, err := tabular.Decode(text)
	if err != nil {
		a.logger.WarnContext(ctx, "decode failed", "path", path, "error", err)
		return nil, err
	}

	a.logger.InfoContext(ctx, "decoded table",
		"path", path,
		"columns", len(table.Columns),
		"records", table.Len(),
		"elapsed", time.Since(start))
	return table, nil
}

func newLogger(w io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
