package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobox/internal/config"
	"github.com/alexiusacademia/gobox/internal/logging"
	"github.com/alexiusacademia/gobox/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	envFile   string
	logLevel  string
	logFormat string

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gobox",
	Short: "Stiffened Steel Box Section Design Tool",
	Long: `gobox - Go Stiffened Box Girder Designer

A CLI tool for the design check of longitudinally stiffened steel
box girder cross-sections based on AS5100.6 (Bridge design - Steel
and composite construction).

This tool helps structural engineers perform:
  - Cross-section generation with 2 or 3 flat stiffeners per face
  - Thin-walled stress analysis for bending, shear and torsion
  - Combined stress checks at the critical points
  - Stiffened panel buckling checks from the design curves

All calculations follow AS5100.6-2017 unless another edition is selected.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if envFile != "" {
			cfg, err = config.Load(envFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		lc := logging.Config{Level: cfg.LogLevel(), Format: cfg.LogFormat()}
		if logLevel != "" {
			lc.Level = logLevel
		}
		if logFormat != "" {
			lc.Format = logFormat
		}
		logger = logging.NewOrNop(lc)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobox v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Stiffened Box Girder Designer                        ║")
		fmt.Printf("  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the design check of stiffened steel box")
		fmt.Println("  girder sections based on AS5100.6.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Box section generation with longitudinal flat stiffeners")
		fmt.Println("    • Section properties and mesh size hints")
		fmt.Println("    • Critical point stress extraction and combined stress check")
		fmt.Println("    • Stiffened panel buckling from AS5100.6 design curves")
		fmt.Println("    • Excel and PDF reports")
		fmt.Println()
		fmt.Println("  Use 'gobox --help' to see available commands.")
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

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load settings from this .env file (default .env)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (env GOBOX_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: console or json (env GOBOX_LOG_FORMAT)")
}
