package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gradebook/internal/app"
)

type flags struct {
	configPath string
	logLevel   string
	journal    string
	color      string
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "gradebook",
		Short:         "Record student grades and report averages",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			a, err := app.New(cfg, app.Options{
				In:          cmd.InOrStdin(),
				Out:         cmd.OutOrStdout(),
				Diagnostics: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()
			return a.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&f.configPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "warn", "diagnostics level on stderr (debug, info, warn, error)")
	cmd.Flags().StringVar(&f.journal, "journal", "", "write a JSON-lines event journal to this path")
	cmd.Flags().StringVar(&f.color, "color", "auto", "style output (auto, always, never)")
	return cmd
}

func resolveConfig(cmd *cobra.Command, f flags) (app.Config, error) {
	cfg := app.DefaultConfig()
	if f.configPath != "" {
		loaded, err := app.LoadConfigFile(f.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("journal") {
		cfg.JournalPath = f.journal
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = f.color
	}
	return cfg, cfg.Validate()
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "gradebook:", err)
		os.Exit(1)
	}
}
