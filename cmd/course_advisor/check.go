package main

import (
	"fmt"

	"github.com/Emynex4real/innovateam-sub003/internal/eligibility"
	"github.com/Emynex4real/innovateam-sub003/internal/observability"
	"github.com/Emynex4real/innovateam-sub003/internal/ranking"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Explain a student's eligibility for one course",
	Long:  "Evaluates a StudentProfile against a single course and prints the verdict, match score and the ordered reasons.",
	RunE:  runCheck,
}

var (
	checkProfile string
	checkCourse  string
	checkJSON    bool
)

func init() {
	checkCmd.Flags().StringVarP(&checkProfile, "profile", "p", "", "Path to input StudentProfile JSON file (required)")
	checkCmd.Flags().StringVar(&checkCourse, "course", "", "Exact course name (required)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the EligibilityResult as JSON")

	if err := checkCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := checkCmd.MarkFlagRequired("course"); err != nil {
		panic(fmt.Sprintf("failed to mark course flag as required: %v", err))
	}

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	profile, err := readProfile(checkProfile)
	if err != nil {
		return err
	}
	if err := ranking.ValidateProfile(profile); err != nil {
		return err
	}

	cat, peers, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	course, err := cat.Get(checkCourse)
	if err != nil {
		return err
	}

	result, err := eligibility.New(peers).Evaluate(profile, course)
	if err != nil {
		return fmt.Errorf("failed to evaluate %s: %w", course.Name, err)
	}

	if checkJSON {
		return printJSON(cmd, result)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintEligibility(course, result)
	return nil
}
