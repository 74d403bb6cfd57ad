package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexiusacademia/aci318/internal/config"
	"github.com/alexiusacademia/aci318/internal/version"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	logFormat string
	envFile   string

	// Set by the root pre-run for every command.
	logger   = slog.New(slog.NewTextHandler(io.Discard, nil))
	defaults = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "aci318",
	Short: "Reinforced concrete rectangular section design tool",
	Long: `aci318 - Reinforced Concrete Section Analysis and Sizing

A CLI tool for the strength design of reinforced concrete rectangular
sections in flexure and shear per ACI 318-19.

This tool helps structural engineers perform:
  - Strain-compatibility analysis of sections with any number of
    tension and compression layers
  - Automated sizing of width, height and reinforcement for a
    factored moment and shear
  - Shear capacity and stirrup spacing
  - Factored moments from ACI load combinations

Defaults for f'c, fy, Es, covers and spacing are read from ACI318_*
environment variables or a .env file; flags override them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(cmd.ErrOrStderr(), verbose, logFormat)
		if err != nil {
			return err
		}
		logger = l

		files := []string{}
		if envFile != "" {
			files = append(files, envFile)
		}
		c, err := config.Load(files...)
		if err != nil {
			return err
		}
		defaults = c
		logger.Debug("configuration loaded",
			"fc", c.Fc, "fy", c.Fy, "cover", c.Cover, "workers", c.Workers)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   aci318 v%-48s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Reinforced Concrete Section Analysis and Sizing         ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Factored moment calculation using ACI 318-19 load combinations")
		fmt.Fprintln(out, "    • Strain-compatibility flexural analysis")
		fmt.Fprintln(out, "    • Shear strength and stirrup design")
		fmt.Fprintln(out, "    • Design-space search for the lightest section")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'aci318 --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Read defaults from this file instead of .env")
}

// newLogger builds the stderr logger for the given verbosity and format.
func newLogger(w io.Writer, debug bool, format string) (*slog.Logger, error) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}
}
