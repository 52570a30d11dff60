// Package main provides the course_advisor CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "course_advisor",
	Short: "FUTA course eligibility and recommendation engine",
	Long: `course_advisor checks a student's exam score, O-Level grades and UTME subjects against
the FUTA course catalog and ranks the courses the student qualifies for.

Settings are resolved from --config, then ADVISOR_* environment variables, then flags.`,
}

var (
	rootConfigPath  string
	rootCatalogPath string
	rootPeersPath   string
	rootVerbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config.json file (values can be overridden by env vars and flags)")
	rootCmd.PersistentFlags().StringVar(&rootCatalogPath, "catalog", "", "Path to a course catalog JSON file (default: built-in FUTA catalog)")
	rootCmd.PersistentFlags().StringVar(&rootPeersPath, "peers", "", "Path to a reference population JSON file (default: built-in sample)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed summaries to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
