// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
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

func truncateList(items []string, limit int) string {
	joined := strings.Join(items[:min(len(items), limit)], ", ")
	if len(items) > limit {
		joined += fmt.Sprintf(" ... and %d more", len(items)-limit)
	}
	return joined
}

// PrintProfile outputs a human-readable summary of the extracted resume profile.
func (p *Printer) PrintProfile(profile *types.ExtractedProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:     %s\n", truncateList(profile.Skills, maxItemsToShow)))
	} else {
		sb.WriteString("Skills:     (none detected)\n")
	}
	sb.WriteString(fmt.Sprintf("Experience: %g years\n", profile.EstimatedYears))

	if len(profile.Qualifications) > 0 {
		sb.WriteString("\nEducation:\n")
		count := min(len(profile.Qualifications), maxItemsToShow)
		for i := 0; i < count; i++ {
			q := profile.Qualifications[i]
			sb.WriteString(fmt.Sprintf("  • %s", q.Level))
			if q.Field != "" {
				sb.WriteString(fmt.Sprintf(" in %s", q.Field))
			}
			if q.Year != nil {
				sb.WriteString(fmt.Sprintf(" (%d)", *q.Year))
			}
			sb.WriteString("\n")
		}
		if len(profile.Qualifications) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Qualifications)-maxItemsToShow))
		}
	}

	if len(profile.LocationMentions) > 0 {
		sb.WriteString(fmt.Sprintf("\nLocations:  %s\n", truncateList(profile.LocationMentions, 3)))
	}
	if profile.RemoteMention {
		sb.WriteString("Remote:     mentioned\n")
	}
	if profile.HasWorkAuthorizationStatement {
		sb.WriteString("Work auth:  statement found\n")
	}
	if len(profile.ForbiddenHits) > 0 {
		sb.WriteString(fmt.Sprintf("Forbidden:  %s\n", truncateList(profile.ForbiddenHits, 3)))
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvaluation outputs the decision, score and the explanation's
// pass/fail reasons.
func (p *Printer) PrintEvaluation(result *types.EvaluationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Decision: %s\n", strings.ToUpper(string(result.Decision))))
	if result.Score != nil {
		sb.WriteString(fmt.Sprintf("Score:    %.2f\n", *result.Score))
	} else {
		sb.WriteString("Score:    (scoring disabled)\n")
	}

	if result.Explanation != nil {
		summary := result.Explanation.Summary
		if len(summary.ReasonsPass) > 0 {
			sb.WriteString("\nPassed:\n")
			for _, reason := range summary.ReasonsPass {
				sb.WriteString(fmt.Sprintf("  ✓ %s\n", reason))
			}
		}
		if len(summary.ReasonsFail) > 0 {
			sb.WriteString("\nFailed:\n")
			for _, reason := range summary.ReasonsFail {
				sb.WriteString(fmt.Sprintf("  ✗ %s\n", reason))
			}
		}
	}

	p.printBox("EVALUATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs aggregate counts after a directory screening run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBatchSummary(total, selected, rejected, failed int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Screened: %d\n", total))
	sb.WriteString(fmt.Sprintf("Selected: %d\n", selected))
	sb.WriteString(fmt.Sprintf("Rejected: %d", rejected))
	if failed > 0 {
		sb.WriteString(fmt.Sprintf("\nFailed:   %d", failed))
	}

	p.printBox("BATCH SUMMARY", sb.String())
}
