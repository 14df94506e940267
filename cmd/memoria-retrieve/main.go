package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rohankatakam/memoria-retrieve/internal/config"
	"github.com/rohankatakam/memoria-retrieve/internal/logging"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"

	cfgFile string
	verbose bool
	logger  *logging.Logger
	cfg     *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memoria-retrieve",
	Short: "Activation-energy graph retrieval over a Neo4j memory graph",
	Long: `memoria-retrieve runs hybrid seed retrieval plus concurrent, scored
BFS traversal over a Neo4j property graph, projecting the result as
D3 force-graph JSON, LLM prompt context, or replayable debug Cypher.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logging.INFO
		if verbose {
			level = logging.DEBUG
		}
		l, err := logging.NewLogger(logging.Config{Level: level, AddSource: verbose})
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = l

		loaded, err := config.Load(cfgFile)
		if err != nil {
			logger.Warn("failed to load config, using defaults", "error", err)
			loaded = config.Default()
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .memoria-retrieve/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.SetVersionTemplate(`memoria-retrieve {{.Version}}
Build time: ` + BuildTime + `
Git commit: ` + GitCommit + `
`)

	rootCmd.AddCommand(retrieveCmd)
}

func rootLogger() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger.Slog()
}
