package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/termtrack/termtrack/internal/model"
)

// Renderer writes reports in the supported output formats
type Renderer struct{}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the full report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderCSV writes the item list as a flat CSV table
func (r *Renderer) RenderCSV(report *model.Report, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	w := csv.NewWriter(f)
	header := []string{"type", "item", "date", "confidence", "priority", "deadline_confidence", "location", "snippet", "notes", "source"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, it := range report.Items {
		row := []string{
			string(it.Type), it.Label, it.Date, string(it.Confidence),
			string(it.Priority), string(it.DeadlineConfidence),
			it.Location, it.Snippet, it.Notes, it.Source,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// RenderICS writes one all-day calendar event per dated item. Undated items
// are skipped since a VEVENT requires a start date.
func (r *Renderer) RenderICS(report *model.Report, path string) error {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//termtrack//EN\r\n")
	for _, it := range report.Items {
		if it.Date == "" {
			continue
		}
		day := strings.ReplaceAll(it.Date, "-", "")
		b.WriteString("BEGIN:VEVENT\r\n")
		b.WriteString("UID:" + it.ID + "@termtrack\r\n")
		b.WriteString("DTSTART;VALUE=DATE:" + day + "\r\n")
		b.WriteString("SUMMARY:" + icsEscape(it.Label+" — "+it.Source) + "\r\n")
		b.WriteString("DESCRIPTION:" + icsEscape(it.Snippet) + "\r\n")
		b.WriteString("END:VEVENT\r\n")
	}
	b.WriteString("END:VCALENDAR\r\n")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// icsEscape escapes the characters RFC 5545 treats specially in text values
func icsEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// RenderSummary prints a short overview of the report to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	counts := report.CountByPriority()
	fmt.Printf("%s: %d items (%d high, %d medium, %d low priority)\n",
		report.Source, report.ItemCount,
		counts[model.PriorityHigh], counts[model.PriorityMedium], counts[model.PriorityLow])
	if report.Warning != "" {
		fmt.Printf("  warning: %s\n", report.Warning)
	}
}

// RenderReport writes the report to every requested output path. Empty
// paths are skipped.
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, csvPath, icsPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", jsonPath)
		}
	}
	if csvPath != "" {
		if err := p.renderer.RenderCSV(report, csvPath); err != nil {
			return fmt.Errorf("render CSV: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote CSV: %s\n", csvPath)
		}
	}
	if icsPath != "" {
		if err := p.renderer.RenderICS(report, icsPath); err != nil {
			return fmt.Errorf("render ICS: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote ICS: %s\n", icsPath)
		}
	}
	p.renderer.RenderSummary(report)
	return nil
}
