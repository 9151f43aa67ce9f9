package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/termtrack/termtrack/internal/model"
	"github.com/termtrack/termtrack/internal/pipeline"
)

var (
	outJSON     string
	outCSV      string
	outICS      string
	sourceLabel string
	timeout     time.Duration
	noCache     bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract dated obligations from a single document",
	Long: `Extract scans one document for dated obligations:
- Detects absolute dates and relative duration phrases
- Resolves relative clauses against nearby anchor dates
- Classifies each item by type, confidence, priority and deadline kind

Supported inputs are plain text (.txt, .md and friends) and HTML. Text
exported from PDFs should carry [[[TT_PAGE_n]]] markers so items can be
located per page.

Example:
  termtrack extract lease.txt
  termtrack extract msa.html --json report.json --csv report.csv
  termtrack extract decoded-agreement.txt --source-label agreement.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	extractCmd.Flags().StringVar(&outCSV, "csv", "", "output CSV path (optional)")
	extractCmd.Flags().StringVar(&outICS, "ics", "", "output ICS calendar path (optional)")
	extractCmd.Flags().StringVar(&sourceLabel, "source-label", "", "override the source label (e.g. original .pdf name for pre-decoded text)")
	extractCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall extraction timeout")
	extractCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose

	p := pipeline.NewPipeline(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "Extracting: %s\n", path)
	}

	report, err := p.ExtractFileAs(ctx, path, sourceLabel)
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d items\n", report.ItemCount)
	}

	if err := p.RenderReport(report, outJSON, outCSV, outICS, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}
