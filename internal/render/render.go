// Package render formats jobs and candidates for terminal output.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/hire-caliber/internal/types"
)

const (
	// boxWidth is the width of the job detail box
	boxWidth = 60
	// maxDescriptionLines caps the description shown inside the box
	maxDescriptionLines = 12
)

// Printer writes human-readable output for CLI commands.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PlainText strips markup from a job description. Descriptions entered as
// plain text are returned unchanged apart from blank-line cleanup.
func PlainText(description string) string {
	if !strings.Contains(description, "<") {
		return cleanWhitespace(description)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return cleanWhitespace(description)
	}
	doc.Find("script, style, noscript").Remove()

	// Block elements would otherwise run together once tags are dropped.
	doc.Find("p, div, li, br, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return cleanWhitespace(doc.Text())
}

func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to the terminal; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// PrintJob outputs a job's title, ID and description.
func (p *Printer) PrintJob(job *types.Job) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID: %s\n", job.ID))
	text := PlainText(job.Description)
	if text == "" {
		sb.WriteString("\n(no description)")
	} else {
		sb.WriteString("\n")
		lines := strings.Split(text, "\n")
		count := min(len(lines), maxDescriptionLines)
		sb.WriteString(strings.Join(lines[:count], "\n"))
		if len(lines) > maxDescriptionLines {
			sb.WriteString(fmt.Sprintf("\n... and %d more lines", len(lines)-maxDescriptionLines))
		}
	}

	p.printBox(job.Title, sb.String())
}

// PrintJobs outputs a table of jobs.
//
//nolint:errcheck // writing to the terminal; errors are not recoverable
func (p *Printer) PrintJobs(jobs []types.Job) {
	if len(jobs) == 0 {
		fmt.Fprintln(p.out, "No jobs found.")
		return
	}

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDESCRIPTION")
	for _, job := range jobs {
		summary := strings.SplitN(PlainText(job.Description), "\n", 2)[0]
		fmt.Fprintf(tw, "%s\t%s\t%s\n", job.ID, job.Title, truncate(summary, 50))
	}
	tw.Flush()
}

// PrintCandidates outputs the screened candidates. Nothing is printed for an
// empty list.
//
//nolint:errcheck // writing to the terminal; errors are not recoverable
func (p *Printer) PrintCandidates(candidates []types.Candidate) {
	if len(candidates) == 0 {
		return
	}

	fmt.Fprintf(p.out, "Matching Candidates (%d)\n", len(candidates))
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSKILLS\tRESUME")
	for _, c := range candidates {
		resume := c.ResumeURL
		if resume == "" {
			resume = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, strings.Join(c.Skills, ", "), resume)
	}
	tw.Flush()
}

// PrintMatches outputs ranked matches in the order the backend returned them.
//
//nolint:errcheck // writing to the terminal; errors are not recoverable
func (p *Printer) PrintMatches(matches []types.Match) {
	if len(matches) == 0 {
		return
	}

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tNAME\tCANDIDATE\tSCORE")
	for i, m := range matches {
		score := "-"
		if m.RelevanceScore != nil {
			score = fmt.Sprintf("%.2f", *m.RelevanceScore)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, m.Name, m.CandidateID, score)
	}
	tw.Flush()
}
