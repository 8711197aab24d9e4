// Package report provides formatted terminal output for match and batch results.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/cv-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for CLI results
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

// PrintMatchResult outputs a human-readable summary of a scored match.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Candidate: %s\n", result.CandidateName))
	sb.WriteString(fmt.Sprintf("Job:       %s\n", result.JobTitle))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Overall Score:     %.1f / 100\n", result.OverallScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Technology:  %5.1f  (%d/%d matched)\n",
		result.Technology.Score, result.Technology.MatchedCount, result.Technology.TotalRequirements))
	sb.WriteString(fmt.Sprintf("Soft Skills: %5.1f  (%d/%d matched)\n",
		result.SoftSkills.Score, result.SoftSkills.MatchedCount, result.SoftSkills.TotalRequirements))
	sb.WriteString(fmt.Sprintf("Experience:  %5.1f  (%s vs %s required)",
		result.Experience.Score,
		orUnknown(result.Experience.CandidateExperience),
		orUnknown(result.Experience.RequiredExperience)))

	p.printBox("MATCH RESULT", sb.String())

	p.printFacet("TECHNOLOGY MATCH", result.Technology)
	p.printFacet("SOFT SKILLS MATCH", result.SoftSkills)
}

func (p *Printer) printFacet(title string, facet types.FacetResult) {
	if facet.TotalRequirements == 0 {
		return
	}

	var sb strings.Builder

	if len(facet.Matched) > 0 {
		sb.WriteString("Matched:\n")
		count := min(len(facet.Matched), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := facet.Matched[i]
			sb.WriteString(fmt.Sprintf("  ✓ %s (%s, %s)\n", item.Name, item.Category, item.Importance))
		}
		if len(facet.Matched) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(facet.Matched)-maxItemsToShow))
		}
	}

	if len(facet.Missing) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Missing:\n")
		count := min(len(facet.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := facet.Missing[i]
			sb.WriteString(fmt.Sprintf("  ✗ %s (%s, %s)", item.Name, item.Category, item.Importance))
			if item.Required {
				sb.WriteString(" [required]")
			}
			sb.WriteString("\n")
		}
		if len(facet.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(facet.Missing)-maxItemsToShow))
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGaps outputs the prioritized list of unmet requirements.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintGaps(gaps []types.Gap) {
	if len(gaps) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO GAPS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d gaps:\n\n", len(gaps)))

	for i, g := range gaps {
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", g.Name, g.Importance))
		sb.WriteString(fmt.Sprintf("  %s / %s", g.Facet, g.Category))
		if g.Required {
			sb.WriteString(" [required]")
		}
		sb.WriteString("\n")
		if i < len(gaps)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("GAP ANALYSIS", sb.String())
}

// PrintBatchResult outputs the ranking table for a batch run.
func (p *Printer) PrintBatchResult(result *types.BatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates: %d  (matched: %d, failed: %d)\n\n",
		result.Total, result.Succeeded, result.Failed))

	rank := 0
	for _, summary := range result.AllCandidates {
		if summary.Status == types.StatusFailed {
			continue
		}
		rank++
		sb.WriteString(fmt.Sprintf("#%d  %s\n", rank, summary.CandidateName))
		sb.WriteString(fmt.Sprintf("    Score: %.1f  (tech %.1f / soft %.1f / exp %.1f)\n",
			summary.OverallScore, summary.TechnologyScore, summary.SoftSkillsScore, summary.ExperienceScore))
	}

	for _, summary := range result.AllCandidates {
		if summary.Status != types.StatusFailed {
			continue
		}
		name := summary.CandidateName
		if name == "" {
			name = summary.CandidateID
		}
		sb.WriteString(fmt.Sprintf("✗   %s: %s\n", name, summary.Error))
	}

	p.printBox("CANDIDATE RANKING", strings.TrimSuffix(sb.String(), "\n"))

	if len(result.TopCandidates) > 0 {
		p.printTopCandidates(result.TopCandidates)
	}
}

func (p *Printer) printTopCandidates(top []*types.MatchResult) {
	var sb strings.Builder

	count := min(len(top), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := top[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, result.CandidateName))
		sb.WriteString(fmt.Sprintf("    Score: %.1f\n", result.OverallScore))
		if len(result.Technology.Missing) > 0 {
			names := make([]string, 0, len(result.Technology.Missing))
			for _, item := range result.Technology.Missing {
				names = append(names, item.Name)
			}
			missing := strings.Join(names, ", ")
			if len(missing) > 40 {
				missing = missing[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", missing))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("TOP CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCommonGaps tallies requirements missing across the detailed top
// candidates and prints the most frequent ones.
func (p *Printer) PrintCommonGaps(top []*types.MatchResult) {
	counts := make(map[string]int)
	order := make([]string, 0)

	tally := func(items []types.MissingItem) {
		for _, item := range items {
			key := fmt.Sprintf("%s (%s)", item.Name, item.Category)
			if _, seen := counts[key]; !seen {
				order = append(order, key)
			}
			counts[key]++
		}
	}
	for _, result := range top {
		if result == nil {
			continue
		}
		tally(result.Technology.Missing)
		tally(result.SoftSkills.Missing)
	}

	if len(order) == 0 {
		return
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	var sb strings.Builder
	count := min(len(order), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("✗ %s: missing in %d of %d\n", order[i], counts[order[i]], len(top)))
	}
	if len(order) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(order)-maxItemsToShow))
	}

	p.printBox("COMMON GAPS", strings.TrimSuffix(sb.String(), "\n"))
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
