// Batch driver: every *.pdf in the input directory becomes one JSON artifact
// in the output directory. A document that fails outright still produces a
// well-formed fallback artifact rather than aborting the batch.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsawler/contour"
	"github.com/tsawler/contour/model"
)

// Flag variables.
var (
	flagInputDir     string
	flagOutputDir    string
	flagYTolerance   float64
	flagFallbackOnly bool
	flagVerbose      bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract outlines from all PDFs in a directory",
	Long: `Extract processes every PDF in the input directory and writes one
JSON artifact per document to the output directory:

  {"title": "...", "outline": [{"level": "H1", "text": "...", "page": 1}, ...]}

Examples:
  contour extract
  contour extract --input ./docs --output ./out
  contour extract --y-tolerance 4 --fallback-only`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&flagInputDir, "input", "./input", "Directory containing PDF files")
	extractCmd.Flags().StringVar(&flagOutputDir, "output", "./output", "Directory for JSON artifacts")
	extractCmd.Flags().Float64Var(&flagYTolerance, "y-tolerance", 0, "Vertical tolerance for line grouping (0 = default)")
	extractCmd.Flags().BoolVar(&flagFallbackOnly, "fallback-only", false, "Skip glyph extraction and use plain text only")
	extractCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

func runExtract(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	pdfFiles, err := filepath.Glob(filepath.Join(flagInputDir, "*.pdf"))
	if err != nil {
		return fmt.Errorf("scan input directory: %w", err)
	}
	if len(pdfFiles) == 0 {
		logger.Info("no PDF files found", "dir", flagInputDir)
		return nil
	}

	if err := os.MkdirAll(flagOutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	logger.Info("starting outline extraction", "files", len(pdfFiles))

	for _, pdfFile := range pdfFiles {
		processFile(logger, pdfFile)
	}

	logger.Info("completed outline extraction")
	return nil
}

// processFile extracts one document and writes its artifact. Extraction
// failures degrade to the fallback artifact; only an unwritable output
// counts as a real problem, and even that only logs.
func processFile(logger *slog.Logger, pdfFile string) {
	stem := strings.TrimSuffix(filepath.Base(pdfFile), filepath.Ext(pdfFile))
	outFile := filepath.Join(flagOutputDir, stem+".json")
	start := time.Now()

	ext := contour.Open(pdfFile)
	if flagYTolerance > 0 {
		ext = ext.YTolerance(flagYTolerance)
	}
	if flagFallbackOnly {
		ext = ext.FallbackOnly()
	}

	result, err := ext.Outline()
	if err != nil {
		logger.Warn("extraction failed, writing fallback artifact",
			"file", filepath.Base(pdfFile), "error", err)
		result = model.EmptyResult("Document: " + stem)
	}
	if result.Outline == nil {
		result.Outline = []model.Heading{}
	}

	if werr := writeArtifact(outFile, result); werr != nil {
		logger.Error("write artifact", "file", outFile, "error", werr)
		return
	}

	logger.Info("processed",
		"file", filepath.Base(pdfFile),
		"title", result.Title,
		"headings", len(result.Outline),
		"duration", time.Since(start).Round(time.Millisecond))
}

// writeArtifact serializes one document result as indented JSON.
func writeArtifact(path string, result model.DocumentResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
