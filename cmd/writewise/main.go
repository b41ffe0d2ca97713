// Package main provides the WriteWise command-line interface.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/writewise/writewise/internal/analysis"
	"github.com/writewise/writewise/internal/grammar"
	"github.com/writewise/writewise/pkg/extractor"
	"github.com/writewise/writewise/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "writewise",
	Short: "Grammar, style, and readability checker",
	Long: `WriteWise analyzes prose for grammar errors, style weaknesses, and
readability, and can auto-correct grammar issues using a LanguageTool server.`,
	SilenceUsage: true,
}

func main() {
	// Keep analysis logs off the report output.
	_ = logging.Setup(getEnv("LOG_LEVEL", "warn"), "pretty")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(correctCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newAnalyzer builds the analyzer from environment configuration. The
// returned closer releases the grammar checker handle.
func newAnalyzer() (*analysis.Analyzer, func()) {
	checker := grammar.NewLanguageTool(
		getEnv("LANGUAGETOOL_URL", "http://localhost:8010"),
		getEnv("LANGUAGETOOL_LANG", "en-US"),
	)
	return analysis.New(checker), func() { checker.Close() }
}

// readInput resolves the text to analyze from the --file flag or the
// positional argument. Files go through the extraction engine, so PDF,
// DOCX, and HTML documents work as well as plain text.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	file, _ := cmd.Flags().GetString("file")
	if file != "" {
		content, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
		format := strings.TrimPrefix(filepath.Ext(file), ".")
		text, err := extractor.NewEngine().Extract(context.Background(), content, format)
		if err != nil {
			return "", fmt.Errorf("extracting text from %s: %w", file, err)
		}
		return text, nil
	}

	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}

	return "", fmt.Errorf("provide text as an argument or use --file")
}

// writeOutput writes corrected text to the --output file, or stdout under
// the given header when no output file was requested.
func writeOutput(cmd *cobra.Command, header, corrected string) error {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		printSeparator()
		fmt.Println(header)
		printSeparator()
		fmt.Println(corrected)
		return nil
	}
	if err := os.WriteFile(output, []byte(corrected), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Printf("Corrected text saved to: %s\n", output)
	return nil
}

func printSeparator() {
	fmt.Println(strings.Repeat("=", 80))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
