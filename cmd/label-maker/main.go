package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"label-maker/internal/label"

	"github.com/spf13/cobra"
)

var (
	// Build information (injected by GoReleaser)
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "label-maker",
		Short: "Generate printable product label PDFs",
		Long:  "A tool that renders a product name and the current date into a fixed-size printable PDF label (48x25mm single or 96x25mm double).",
	}

	// Generate command
	var sizeToken string
	var dateText string
	var outputDir string

	generateCmd := &cobra.Command{
		Use:   "generate <product name>",
		Short: "Generate a label PDF for a product",
		Long:  "Render the product name and date into a PDF label of the requested size and write it to the output directory. The 96x25mm size contains two identical 48x25mm labels side by side.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(args[0], sizeToken, dateText, outputDir)
		},
	}
	generateCmd.Flags().StringVar(&sizeToken, "size", "48x25mm", "Label size (48x25mm or 96x25mm)")
	generateCmd.Flags().StringVar(&dateText, "date", "", "Date to print on the label (DD/MM/YYYY, defaults to today)")
	generateCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory to write the PDF into")
	rootCmd.AddCommand(generateCmd)

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("label-maker version %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built at: %s\n", date)
		},
	}
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGenerate(name, sizeToken, dateText, outputDir string) error {
	// Reject bad sizes before any rendering happens
	size, err := label.ParseSize(sizeToken)
	if err != nil {
		return err
	}

	pdfBytes, err := label.Render(name, dateText, size)
	if err != nil {
		return fmt.Errorf("failed to generate label: %w", err)
	}

	// Ensure output directory exists
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	outputPath := filepath.Join(outputDir, outputFilename(name, size, time.Now()))
	if err := os.WriteFile(outputPath, pdfBytes, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", outputPath, len(pdfBytes))
	return nil
}

// pathUnsafe replaces the characters that would break filenames.
var pathUnsafe = strings.NewReplacer(" ", "_", "/", "_", "\\", "_")

// outputFilename builds the {sanitizedProductName}_{sizeTag}_{timestamp}.pdf
// filename used for exported labels.
func outputFilename(name string, size label.Size, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.pdf", pathUnsafe.Replace(name), size, now.Format("20060102_150405"))
}
