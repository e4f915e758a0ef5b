package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

// logger is shared by every subcommand and handed down into the
// anonymization engine, so -v surfaces per-edge debug output.
var logger = logrus.New()

// Flag state shared across subcommands; the YAML defaults file fills any
// of these the invocation left untouched.
var (
	flagConfig  string
	flagVerbose bool

	flagAlpha    float64
	flagMetric   string
	flagStrategy string
	flagSeed     int64
	flagMaxEdges int
	flagJobs     int
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("graphanon version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("graphanon version %s-dev", version)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "graphanon",
		Short:   "Labelled-graph anonymization against neighborhood-attribute disclosure",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetOutput(os.Stderr)
			logger.SetFormatter(&logrus.TextFormatter{})
			if flagVerbose {
				logger.SetLevel(logrus.DebugLevel)
			} else {
				logger.SetLevel(logrus.InfoLevel)
			}

			cfg, err := loadFileConfig(flagConfig)
			if err != nil {
				return err
			}
			applyConfigDefaults(cmd, cfg)

			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML defaults file (default: ./graphanon.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newAnonymizeCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
