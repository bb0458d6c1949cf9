// Command analyze parses an SMS backup, prints batch statistics and runs the
// search-strategy benchmark, writing both the parsed records and the
// benchmark report to JSON files.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/alecthomas/kong"
	"github.com/momotrack/backend/internal/bench"
	"github.com/momotrack/backend/internal/logger"
	"github.com/momotrack/backend/internal/models"
	"github.com/momotrack/backend/internal/parser"
)

var cli struct {
	Backup  string `arg:"" optional:"" default:"modified_sms_v2.xml" help:"Path to the SMS backup XML file."`
	Out     string `default:"parsed_transactions.json" help:"Where to write the parsed records."`
	Results string `default:"search_results.json" help:"Where to write the benchmark report."`
}

func main() {
	ctx := kong.Parse(&cli)
	ctx.FatalIfErrorf(run())
}

func run() error {
	log := logger.New()

	batch, err := parser.NewIngestor(log).IngestFile(cli.Backup)
	if err != nil {
		return err
	}

	printSummary(parser.Summarize(batch.Records), batch.Skipped)

	if err := writeJSON(cli.Out, batch.Records); err != nil {
		return err
	}

	report, err := bench.Run(batch.Records, bench.DefaultQueryIDs(len(batch.Records)))
	if err != nil {
		return err
	}
	printReport(report)

	return writeJSON(cli.Results, report)
}

func printSummary(s parser.Summary, skipped int) {
	fmt.Printf("Parsed %d transactions (%d entries skipped)\n\n", s.TotalRecords, skipped)
	fmt.Println("Breakdown by type:")

	types := make([]models.TransactionType, 0, len(s.TypeCounts))
	for t := range s.TypeCounts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, t := range types {
		fmt.Printf("  %-10s %d\n", t, s.TypeCounts[t])
	}

	fmt.Printf("\nTotal amount transacted: %d RWF\n", s.TotalAmount)
	fmt.Printf("Total fees paid:         %d RWF\n\n", s.TotalFees)
}

func printReport(r *bench.Report) {
	fmt.Printf("Benchmark %s: %d records, %d queries\n\n", r.RunID, r.DatasetSize, len(r.Queries))
	for _, s := range r.Strategies {
		fmt.Printf("%-8s avg %-12v total %-12v found %d/%d\n",
			s.Strategy, s.AverageDuration, s.TotalDuration, s.Hits, len(r.Queries))
	}
	for strategy, speedup := range r.SpeedupVsLinear {
		fmt.Printf("\n%s is %.2fx faster than linear scan", strategy, speedup)
	}
	fmt.Println()
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
