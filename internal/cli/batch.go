package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/termtrack/termtrack/internal/model"
	"github.com/termtrack/termtrack/internal/pipeline"
	"github.com/termtrack/termtrack/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	maxPerSecond float64
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir|list-file>",
	Short: "Extract obligations from multiple documents in parallel",
	Long: `Batch processes many documents concurrently:
- Accepts a directory (every .txt/.md/.html file inside) or a list file
  with one path per line
- Runs extractions in parallel with a configurable worker count
- Writes one JSON report per input into the output directory

Example:
  termtrack batch ./contracts
  termtrack batch files.txt --concurrency 8 --output-dir ./reports
  termtrack batch ./contracts --max-per-second 2`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./termtrack-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().Float64Var(&maxPerSecond, "max-per-second", 0, "max extractions started per second (0 = unlimited)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result caching")
	batchCmd.Flags().BoolVar(&batchCSV, "csv", false, "also write a CSV next to each JSON report")
	batchCmd.Flags().BoolVar(&batchICS, "ics", false, "also write an ICS calendar next to each JSON report")
}

var (
	batchCSV bool
	batchICS bool
)

func runBatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	paths, err := collectPaths(input)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no input files found in %s", input)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Concurrency.Workers = concurrency
	cfg.Concurrency.MaxPerSecond = maxPerSecond

	if verbose {
		fmt.Fprintf(os.Stderr, "Batch: %d files, %d workers\n", len(paths), concurrency)
	}

	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, concurrency, maxPerSecond)
	results := processor.Process(ctx, paths)

	failed := 0
	for _, res := range results {
		if res.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, res.Error)
			continue
		}
		base := strings.TrimSuffix(filepath.Base(res.Path), filepath.Ext(res.Path))
		jsonPath := filepath.Join(outputDir, base+".json")
		csvPath := ""
		if batchCSV {
			csvPath = filepath.Join(outputDir, base+".csv")
		}
		icsPath := ""
		if batchICS {
			icsPath = filepath.Join(outputDir, base+".ics")
		}
		if err := p.RenderReport(res.Report, jsonPath, csvPath, icsPath, verbose); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, err)
		}
	}

	fmt.Fprintf(os.Stderr, "Processed %d files, %d failed\n", len(results), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// collectPaths expands the batch input into concrete file paths: either the
// supported documents inside a directory, or the lines of a list file.
func collectPaths(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", input, err)
	}

	if info.IsDir() {
		entries, err := os.ReadDir(input)
		if err != nil {
			return nil, fmt.Errorf("read dir %s: %w", input, err)
		}
		var paths []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(entry.Name())) {
			case ".txt", ".md", ".html", ".htm":
				paths = append(paths, filepath.Join(input, entry.Name()))
			}
		}
		sort.Strings(paths)
		return paths, nil
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", input, err)
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", input, err)
	}
	return paths, nil
}
