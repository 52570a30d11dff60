package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Emynex4real/innovateam-sub003/internal/export"
	"github.com/Emynex4real/innovateam-sub003/internal/observability"
	"github.com/Emynex4real/innovateam-sub003/internal/ranking"
	"github.com/Emynex4real/innovateam-sub003/internal/schemas"
	"github.com/Emynex4real/innovateam-sub003/internal/types"
	schemafiles "github.com/Emynex4real/innovateam-sub003/schemas"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank the courses a student is eligible for",
	Long: `Evaluates a StudentProfile JSON file against every course in the catalog and writes the
ranked RecommendationList. With --format csv only the export columns are written
(course, faculty, cutoff, match %, capacity).`,
	RunE: runRecommend,
}

var (
	recommendProfile string
	recommendOutput  string
	recommendFormat  string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to input StudentProfile JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output file (default: stdout)")
	recommendCmd.Flags().StringVarP(&recommendFormat, "format", "f", "", "Output format: json (full list) or csv (export rows); defaults to config format")

	if err := recommendCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = recommendFormat
	}

	profile, err := readProfile(recommendProfile)
	if err != nil {
		return err
	}

	cat, peers, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	list, err := ranking.Recommend(profile, cat, peers)
	if err != nil {
		return fmt.Errorf("failed to recommend courses: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintProfile(profile)
		printer.PrintRecommendations(list)
	}

	data, err := encodeRecommendations(list, cfg.Format)
	if err != nil {
		return err
	}

	if err := writeOutput(cmd, recommendOutput, data); err != nil {
		return err
	}

	if recommendOutput != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully ranked %d eligible courses to %s\n", len(list.Recommendations), recommendOutput)
	}
	return nil
}

// encodeRecommendations renders the full list as JSON, or the export rows as CSV.
func encodeRecommendations(list *types.RecommendationList, format string) ([]byte, error) {
	switch format {
	case export.FormatCSV:
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, export.Rows(list)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case export.FormatJSON:
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal recommendations to JSON: %w", err)
		}
		// Output must match the published schema.
		if err := schemas.ValidateDocument(schemafiles.RecommendationList, data); err != nil {
			return nil, fmt.Errorf("recommendation output failed schema check: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (use json or csv)", format)
	}
}
