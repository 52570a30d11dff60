package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Emynex4real/innovateam-sub003/internal/ranking"
	"github.com/Emynex4real/innovateam-sub003/internal/types"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Rank courses for many student profiles at once",
	Long: `Reads a JSON array of StudentProfile objects and evaluates them in parallel.
Each entry in the output carries an ID and either a RecommendationList or the error
that profile produced; one bad profile does not stop the batch.`,
	RunE: runBatch,
}

var (
	batchProfiles    string
	batchOutput      string
	batchConcurrency int
)

// BatchResult is one entry of the batch output, in input order.
type BatchResult struct {
	ID              string                    `json:"id"`
	Index           int                       `json:"index"`
	Recommendations *types.RecommendationList `json:"recommendations,omitempty"`
	Error           string                    `json:"error,omitempty"`
}

func init() {
	batchCmd.Flags().StringVarP(&batchProfiles, "profiles", "p", "", "Path to a JSON array of StudentProfile objects (required)")
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 4, "Maximum profiles evaluated at once")

	if err := batchCmd.MarkFlagRequired("profiles"); err != nil {
		panic(fmt.Sprintf("failed to mark profiles flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	if batchConcurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1, got %d", batchConcurrency)
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(batchProfiles)
	if err != nil {
		return fmt.Errorf("failed to read profiles file %s: %w", batchProfiles, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return fmt.Errorf("profiles file must be a JSON array: %w", err)
	}

	cat, peers, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	results := make([]BatchResult, len(raw))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(batchConcurrency)

	for i, doc := range raw {
		results[i] = BatchResult{ID: uuid.NewString(), Index: i}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			profile, err := decodeProfile(doc)
			if err == nil {
				results[i].Recommendations, err = ranking.Recommend(profile, cat, peers)
			}
			if err != nil {
				results[i].Error = err.Error()
				if cfg.Verbose {
					log.Printf("[batch] profile %d (%s) failed: %v", i, results[i].ID, err)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	log.Printf("[batch] evaluated %d profiles, %d failed", len(results), failed)

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal batch results to JSON: %w", err)
	}
	return writeOutput(cmd, batchOutput, append(data, '\n'))
}
