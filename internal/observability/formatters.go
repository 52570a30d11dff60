// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Emynex4real/innovateam-sub003/internal/ranking"
	"github.com/Emynex4real/innovateam-sub003/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the student profile.
func (p *Printer) PrintProfile(profile *types.StudentProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Exam score: %d\n", profile.ExamScore))
	if profile.PreferredCourse != "" {
		sb.WriteString(fmt.Sprintf("Preferred:  %s\n", profile.PreferredCourse))
	}
	sb.WriteString("\n")

	if len(profile.OLevelGrades) > 0 {
		subjects := make([]string, 0, len(profile.OLevelGrades))
		for subject := range profile.OLevelGrades {
			subjects = append(subjects, subject)
		}
		sort.Strings(subjects)

		sb.WriteString("O-Level:\n")
		for _, subject := range subjects {
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", subject, profile.OLevelGrades[subject]))
		}
		sb.WriteString("\n")
	}

	if len(profile.UTMESubjects) > 0 {
		sb.WriteString(fmt.Sprintf("UTME: %s\n", strings.Join(profile.UTMESubjects, ", ")))
	}

	if interests := strings.TrimSpace(profile.Interests); interests != "" {
		sb.WriteString(fmt.Sprintf("Interests: %s\n", interests))
	}

	p.printBox("STUDENT PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the top N ranked courses with match percentages.
func (p *Printer) PrintRecommendations(list *types.RecommendationList) {
	if list == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Eligible courses: %d\n", len(list.Recommendations)))

	count := min(len(list.Recommendations), maxItemsToShow)
	if count > 0 {
		sb.WriteString("\n")
	}
	for i := 0; i < count; i++ {
		rec := list.Recommendations[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rec.Course.Name))
		sb.WriteString(fmt.Sprintf("    Match: %d%%  Cutoff: %d  Seats: %d\n",
			ranking.MatchPercentage(rec.Result.Score), rec.Course.Cutoff, rec.Course.Capacity))
		if len(rec.Result.MatchedInterests) > 0 {
			tags := strings.Join(rec.Result.MatchedInterests, ", ")
			if len(tags) > 40 {
				tags = tags[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Interests: %s\n", tags))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(list.Recommendations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more courses\n", len(list.Recommendations)-maxItemsToShow))
	}

	p.printBox("RECOMMENDED COURSES", strings.TrimSuffix(sb.String(), "\n"))

	if len(list.AlternativeSuggestions) > 0 {
		p.printAlternatives(list)
	}
	if len(list.Notes) > 0 {
		p.printNotes(list.Notes)
	}
}

func (p *Printer) printAlternatives(list *types.RecommendationList) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Instead of %s:\n\n", list.PreferredCourse))

	count := min(len(list.AlternativeSuggestions), 3)
	for i := 0; i < count; i++ {
		rec := list.AlternativeSuggestions[i]
		sb.WriteString(fmt.Sprintf("  • %s (%d%%)\n", rec.Course.Name, ranking.MatchPercentage(rec.Result.Score)))
	}
	if len(list.AlternativeSuggestions) > 3 {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(list.AlternativeSuggestions)-3))
	}

	p.printBox("ALTERNATIVE SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printNotes(notes []string) {
	var sb strings.Builder
	for i, note := range notes {
		sb.WriteString(fmt.Sprintf("⚠ %s", note))
		if i < len(notes)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("NOTES", sb.String())
}

// PrintEligibility outputs the evaluation of one course, reasons included.
func (p *Printer) PrintEligibility(course types.Course, result types.EligibilityResult) {
	var sb strings.Builder
	if result.Eligible {
		sb.WriteString(fmt.Sprintf("✅ Eligible, match %d%%\n\n", ranking.MatchPercentage(result.Score)))
	} else {
		sb.WriteString("❌ Not eligible\n\n")
	}

	for i, reason := range result.Reasons {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, reason))
		if i < len(result.Reasons)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(strings.ToUpper(course.Name), sb.String())
}
