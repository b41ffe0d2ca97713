package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var correctCmd = &cobra.Command{
	Use:   "correct [text]",
	Short: "Auto-correct grammar issues in text",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCorrect,
}

func init() {
	correctCmd.Flags().StringP("file", "f", "", "file to correct (txt, md, html, pdf, docx)")
	correctCmd.Flags().StringP("output", "o", "", "output file for corrected text")
}

func runCorrect(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	analyzer, release := newAnalyzer()
	defer release()

	fmt.Println("Correcting text...")
	corrected, err := analyzer.CorrectText(context.Background(), text)
	if err != nil {
		return err
	}

	return writeOutput(cmd, "CORRECTED TEXT", corrected)
}
