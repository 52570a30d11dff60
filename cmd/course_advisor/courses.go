package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Emynex4real/innovateam-sub003/internal/types"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses [name]",
	Short: "List catalog courses or show one course",
	Long: `Without arguments, lists the catalog as a table (optionally one faculty).
With a course name, prints that course's requirements and interest tags.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCourses,
}

var (
	coursesFaculty string
	coursesJSON    bool
)

func init() {
	coursesCmd.Flags().StringVar(&coursesFaculty, "faculty", "", "Only list courses in this faculty")
	coursesCmd.Flags().BoolVar(&coursesJSON, "json", false, "Print JSON instead of a table")

	rootCmd.AddCommand(coursesCmd)
}

func runCourses(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	cat, _, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(args) == 1 {
		course, err := cat.Get(args[0])
		if err != nil {
			return err
		}
		if coursesJSON {
			return printJSON(cmd, course)
		}
		printCourse(cmd, course)
		return nil
	}

	courses := cat.Courses()
	if coursesFaculty != "" {
		courses = cat.ByFaculty(coursesFaculty)
		if len(courses) == 0 {
			return fmt.Errorf("no courses in faculty %q (known: %s)", coursesFaculty, strings.Join(cat.Faculties(), ", "))
		}
	}

	if coursesJSON {
		return printJSON(cmd, courses)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "COURSE\tFACULTY\tCUTOFF\tCAPACITY")
	for _, c := range courses {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", c.Name, c.Faculty, c.Cutoff, c.Capacity)
	}
	return tw.Flush()
}

func printCourse(cmd *cobra.Command, c types.Course) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s\n", c.Name)
	_, _ = fmt.Fprintf(out, "  Faculty:  %s\n", c.Faculty)
	_, _ = fmt.Fprintf(out, "  Cutoff:   %d\n", c.Cutoff)
	_, _ = fmt.Fprintf(out, "  Capacity: %d\n", c.Capacity)
	_, _ = fmt.Fprintln(out, "  O-Level credits:")
	for _, req := range c.OLevelRequirements {
		_, _ = fmt.Fprintf(out, "    • %s\n", req.String())
	}
	_, _ = fmt.Fprintln(out, "  UTME subjects:")
	for _, req := range c.UTMERequirements {
		_, _ = fmt.Fprintf(out, "    • %s\n", req.String())
	}
	if len(c.InterestTags) > 0 {
		_, _ = fmt.Fprintf(out, "  Interests: %s\n", strings.Join(c.InterestTags, ", "))
	}
	if len(c.CareerProspects) > 0 {
		_, _ = fmt.Fprintf(out, "  Careers:   %s\n", strings.Join(c.CareerProspects, ", "))
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
