package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/imamik/ghlabels/internal/config"
	"github.com/imamik/ghlabels/internal/orchestration"
)

var (
	reportColorGreen  = lipgloss.Color("#22c55e")
	reportColorYellow = lipgloss.Color("#eab308")
	reportColorRed    = lipgloss.Color("#ef4444")
	reportColorBlue   = lipgloss.Color("#3b82f6")
	reportColorDim    = lipgloss.Color("#6b7280")
)

var (
	reportRepoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(reportColorBlue)

	reportDimStyle = lipgloss.NewStyle().
			Foreground(reportColorDim)

	reportFailureStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(reportColorRed)

	reportVerbStyles = map[orchestration.Verb]lipgloss.Style{
		orchestration.VerbCreate: lipgloss.NewStyle().Foreground(reportColorGreen),
		orchestration.VerbUpdate: lipgloss.NewStyle().Foreground(reportColorYellow),
		orchestration.VerbDelete: lipgloss.NewStyle().Foreground(reportColorRed),
	}
)

// reportDocument is the JSON and YAML shape of a report.
type reportDocument struct {
	DryRun       bool                  `json:"dryRun" yaml:"dryRun"`
	Repositories []orchestration.Entry `json:"repositories" yaml:"repositories"`
	Summary      orchestration.Summary `json:"summary" yaml:"summary"`
}

// renderReport writes the report in the requested format.
func renderReport(out io.Writer, report orchestration.Report, format string, dryRun bool) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newReportDocument(report, dryRun)); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil
	case config.OutputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(newReportDocument(report, dryRun)); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	}

	var text string
	if isTerminal(out) {
		text = renderStyledReport(report)
	} else {
		text = renderPlainReport(report)
	}
	_, err := io.WriteString(out, text)
	return err
}

func newReportDocument(report orchestration.Report, dryRun bool) reportDocument {
	return reportDocument{
		DryRun:       dryRun,
		Repositories: report.Entries(),
		Summary:      report.Summary(),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// renderPlainReport produces one line per report entry.
func renderPlainReport(report orchestration.Report) string {
	lines := report.Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// renderStyledReport produces a lipgloss-styled report with a summary footer.
func renderStyledReport(report orchestration.Report) string {
	var b strings.Builder

	for _, repo := range report.Repositories {
		b.WriteString(reportRepoStyle.Render(repo.Repository.FullName))
		b.WriteString("\n")

		switch {
		case repo.Err != nil:
			b.WriteString("  " + reportFailureStyle.Render(repo.Lines()[1]))
			b.WriteString("\n")
		case len(repo.Results) == 0:
			b.WriteString("  " + reportDimStyle.Render(orchestration.NoChanges))
			b.WriteString("\n")
		default:
			for _, res := range repo.Results {
				b.WriteString("  " + renderResult(res))
				b.WriteString("\n")
			}
		}
	}

	s := report.Summary()
	b.WriteString(reportDimStyle.Render(strings.Repeat("─", 40)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%d repositories: %d created, %d updated, %d deleted, %d unchanged",
		s.Repositories, s.Create, s.Update, s.Delete, s.Unchanged)
	if s.Failed > 0 {
		b.WriteString(", ")
		b.WriteString(reportFailureStyle.Render(fmt.Sprintf("%d failed", s.Failed)))
	}
	b.WriteString("\n")

	return b.String()
}

func renderResult(res orchestration.Result) string {
	if res.Failed() {
		return reportFailureStyle.Render(res.String())
	}

	line := reportVerbStyles[res.Verb].Render(string(res.Verb)) + " " + res.Label.String()
	if res.DryRun {
		line = reportDimStyle.Render(orchestration.DryRunPrefix) + " " + line
	}
	return line
}
