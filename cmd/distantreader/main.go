package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zombar/distantreader/internal/analyzer"
	"github.com/zombar/distantreader/internal/corpus"
	"github.com/zombar/distantreader/internal/report"
	"github.com/zombar/distantreader/internal/sentiment"
	"github.com/zombar/distantreader/pkg/logging"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	basePathDefault := getEnv("BASE_PATH", ".")
	outputDefault := getEnv("OUTPUT_PATH", "data/analysis_results.json")

	var basePath string
	var outputPath string

	cmd := &cobra.Command{
		Use:           "distantreader",
		Short:         "Distant-reading analysis of the synoptic gospels",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(basePath, outputPath)
		},
	}

	cmd.Flags().StringVar(&basePath, "base-path", basePathDefault, "Directory containing the gospel text files (env: BASE_PATH)")
	cmd.Flags().StringVar(&outputPath, "output", outputDefault, "Report output path, relative to the base path (env: OUTPUT_PATH)")

	return cmd
}

func run(basePath, outputPath string) error {
	logger := logging.New(slog.LevelInfo)
	logger.Info("distantreader starting", "base_path", basePath, "output", outputPath)

	cfg := corpus.DefaultConfig(basePath)
	if outputPath != "" {
		cfg.OutputPath = outputPath
	}

	scorer := sentiment.NewLexiconScorer()
	result, err := analyzer.New(cfg, scorer).Run()
	if err != nil {
		return err
	}

	outFile := filepath.Join(cfg.BasePath, cfg.OutputPath)
	if err := report.Write(outFile, result); err != nil {
		return err
	}

	logger.Info("analysis complete",
		"output", outFile,
		"total_overlapping_words", result.Metadata.TotalOverlappingWords,
	)

	for _, g := range cfg.Gospels {
		gospel := result.Gospels[g.Name]
		logger.Info("gospel summary",
			"name", g.Name,
			"total_words", gospel.StyleMetrics.TotalWords,
			"unique_words", gospel.StyleMetrics.UniqueWords,
			"lexical_diversity", gospel.StyleMetrics.LexicalDiversity,
			"polarity", gospel.Sentiment.Polarity,
			"verses", gospel.StyleMetrics.VerseCount,
		)
	}

	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
