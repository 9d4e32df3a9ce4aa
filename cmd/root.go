package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/logging"
	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Simply Supported Beam Deflection Simulator",
	Long: `gobeam - Go Beam Deflection Simulator

A CLI tool that computes the elastic deflection of a simply supported
rectangular beam under a single point load and checks the peak bending
stress against the allowable stress of the selected material.

This tool lets you:
  - Solve a beam and export the deflected shape (ASCII, PNG/SVG/PDF)
  - Write PDF reports and XLSX workbooks of the solution
  - Drive an interactive session with keypad entry and load dragging
  - Browse the built-in material catalog

Deflections follow Euler-Bernoulli beam theory.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Beam Deflection Simulator                            ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Deflection and stress check of a simply supported beam")
		fmt.Println("  under a single point load.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Piecewise elastic deflection sampled along the span")
		fmt.Println("    • Peak bending stress against the material allowable")
		fmt.Println("    • Keypad-style parameter entry and load dragging")
		fmt.Println("    • ASCII charts, image, PDF and XLSX export")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: info, debug or trace (overrides config)")
}

// loadConfig resolves the configuration and builds the logger for a command
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		if !logging.ValidLevel(logLevel) {
			return nil, nil, fmt.Errorf("invalid log level %q", logLevel)
		}
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, logging.NewLogger(cfg.Logging.Level, os.Stderr), nil
}
