package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Emynex4real/innovateam-sub003/internal/export"
	"github.com/Emynex4real/innovateam-sub003/internal/schemas"
	"github.com/Emynex4real/innovateam-sub003/internal/types"
	schemafiles "github.com/Emynex4real/innovateam-sub003/schemas"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Convert a saved RecommendationList to export rows",
	Long:  "Reads a RecommendationList JSON file (as written by recommend) and writes its ranked courses as CSV or JSON rows: course, faculty, cutoff, match %, capacity.",
	RunE:  runExport,
}

var (
	exportInput  string
	exportOutput string
	exportFormat string
)

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "in", "i", "", "Path to input RecommendationList JSON file (required)")
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Path to output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Export format: csv or json; defaults to config format")

	if err := exportCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = exportFormat
	}

	content, err := os.ReadFile(exportInput)
	if err != nil {
		return fmt.Errorf("failed to read recommendations file %s: %w", exportInput, err)
	}
	if err := schemas.ValidateDocument(schemafiles.RecommendationList, content); err != nil {
		return fmt.Errorf("recommendations file %s is invalid: %w", exportInput, err)
	}

	var list types.RecommendationList
	if err := json.Unmarshal(content, &list); err != nil {
		return fmt.Errorf("failed to unmarshal recommendations JSON: %w", err)
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, cfg.Format, export.Rows(&list)); err != nil {
		return err
	}
	return writeOutput(cmd, exportOutput, buf.Bytes())
}
