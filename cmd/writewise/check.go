package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/writewise/writewise/internal/analysis"
)

var checkCmd = &cobra.Command{
	Use:   "check [text]",
	Short: "Analyze text for grammar, style, and readability issues",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringP("file", "f", "", "file to check (txt, md, html, pdf, docx)")
	checkCmd.Flags().StringP("output", "o", "", "output file for corrected text")
	checkCmd.Flags().Bool("correct", false, "also print auto-corrected text")
	checkCmd.Flags().BoolP("verbose", "v", false, "verbose output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	autoCorrect, _ := cmd.Flags().GetBool("correct")

	analyzer, release := newAnalyzer()
	defer release()

	fmt.Println("Analyzing text...")
	result, err := analyzer.Analyze(context.Background(), text)
	if err != nil {
		return err
	}

	printSummary(result)
	printGrammarFindings(result.GrammarFindings, verbose)
	printStyleFindings(result.StyleFindings, verbose)
	printReadability(result)

	if autoCorrect {
		corrected, err := analyzer.CorrectText(context.Background(), text)
		if err != nil {
			return err
		}
		if err := writeOutput(cmd, "AUTO-CORRECTED TEXT", corrected); err != nil {
			return err
		}
	}

	printSeparator()
	if len(result.GrammarFindings) == 0 && len(result.StyleFindings) == 0 {
		fmt.Println("Excellent! No issues found.")
	} else {
		fmt.Printf("Found %d grammar issues and %d style suggestions.\n",
			len(result.GrammarFindings), len(result.StyleFindings))
	}
	return nil
}

func printSummary(result *analysis.Result) {
	printSeparator()
	fmt.Println("ANALYSIS SUMMARY")
	printSeparator()
	fmt.Printf("Quality Score: %s/100\n", formatScore(result.Score))
	fmt.Printf("Word Count: %d\n", result.WordCount)
	fmt.Printf("Sentence Count: %d\n", result.SentenceCount)
	fmt.Printf("Character Count: %d\n", result.CharacterCount)
	fmt.Printf("Grammar Issues: %d\n", len(result.GrammarFindings))
	fmt.Printf("Style Suggestions: %d\n", len(result.StyleFindings))
}

// formatScore colors the score green at 90+, yellow at 75+, red below.
func formatScore(score float64) string {
	switch {
	case score >= 90:
		return color.GreenString("%.1f", score)
	case score >= 75:
		return color.YellowString("%.1f", score)
	default:
		return color.RedString("%.1f", score)
	}
}

func printGrammarFindings(findings []analysis.GrammarFinding, verbose bool) {
	if len(findings) == 0 {
		return
	}
	printSeparator()
	fmt.Println("GRAMMAR ISSUES")
	printSeparator()
	for i, f := range findings {
		marker := "warning"
		if f.Severity == analysis.SeverityError {
			marker = "error"
		}
		fmt.Printf("\n[%s] Issue %d: %s\n", marker, i+1, f.Message)
		fmt.Printf("   Category: %s\n", f.Category)
		fmt.Printf("   Context: ...%s...\n", f.Context)
		if len(f.Suggestions) > 0 {
			fmt.Printf("   Suggestions: %s\n", strings.Join(f.Suggestions, ", "))
		}
		if verbose {
			fmt.Printf("   Rule ID: %s\n", f.RuleID)
			fmt.Printf("   Position: %d (length %d)\n", f.Offset, f.Length)
		}
	}
}

func printStyleFindings(findings []analysis.StyleFinding, verbose bool) {
	if len(findings) == 0 {
		return
	}
	printSeparator()
	fmt.Println("STYLE SUGGESTIONS")
	printSeparator()
	for i, f := range findings {
		fmt.Printf("\nSuggestion %d: %s\n", i+1, f.Message)
		fmt.Printf("   Category: %s\n", f.Category)
		fmt.Printf("   Original: %s\n", f.Original)
		fmt.Printf("   Suggestion: %s\n", f.Suggestion)
		if verbose {
			fmt.Printf("   Position: %d (length %d)\n", f.Offset, f.Length)
		}
	}
}

func printReadability(result *analysis.Result) {
	printSeparator()
	fmt.Println("READABILITY METRICS")
	printSeparator()
	m := result.Readability
	fmt.Printf("Flesch Reading Ease: %.1f\n", m.FleschReadingEase)
	fmt.Printf("Flesch-Kincaid Grade: %.1f\n", m.FleschKincaidGrade)
	fmt.Printf("Gunning Fog Index: %.1f\n", m.GunningFog)
	fmt.Printf("SMOG Index: %.1f\n", m.SMOGIndex)
	fmt.Printf("Difficult Words: %d\n", m.DifficultWords)
	fmt.Printf("Reading Time: %.1f minutes\n", m.ReadingTimeMinutes)
}
