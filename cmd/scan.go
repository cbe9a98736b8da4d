// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/sync/errgroup"

	"github.com/open-policy-agent/atom/v1/logging"
	"github.com/open-policy-agent/atom/v1/qname"
	"github.com/open-policy-agent/atom/v1/scan"
)

type scanReport struct {
	Files       int           `json:"files"`
	Tags        scan.Counts   `json:"tags"`
	Attrs       scan.Counts   `json:"attrs"`
	StaticRatio float64       `json:"static_ratio"`
	Owned       []qname.QName `json:"owned,omitempty"`
}

func newScanCommand(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [<path> [<path>...]]",
		Short: "Report how many identifiers in markup files are table entries",
		Long: `Report how many identifiers in markup files are table entries.

Every tag name and attribute key of the given files is interned. The report
counts static table entries and owned strings per kind. Without arguments, or
with "-", scan reads standard input. Files are scanned concurrently.`,
		PreRunE: func(*cobra.Command, []string) error {
			return checkFormat(r.v.GetString("format"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			undo, err := maxprocs.Set(maxprocs.Logger(r.logger.Debug))
			if err != nil {
				r.logger.Warn("Failed to set GOMAXPROCS: %v", err)
			}
			defer undo()

			reg := prometheus.NewRegistry()
			metrics := scan.NewMetrics(reg)

			if len(args) == 0 {
				args = []string{"-"}
			}

			sum, err := scanAll(cmd.Context(), r.logger, metrics, cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			report := scanReport{
				Files:       len(args),
				Tags:        sum.Tags,
				Attrs:       sum.Attrs,
				StaticRatio: sum.StaticRatio(),
			}
			if r.v.GetBool("owned") {
				report.Owned = sum.Owned()
			}

			out := cmd.OutOrStdout()
			if r.v.GetString("format") == formatJSON {
				return renderJSON(out, report)
			}

			if err := printReport(out, report); err != nil {
				return err
			}
			if r.v.GetBool("metrics") {
				return printMetrics(out, reg)
			}
			return nil
		},
	}

	cmd.Flags().Bool("owned", false, "list the distinct identifiers that are not table entries")
	cmd.Flags().Bool("metrics", false, "print the collected metrics in text exposition format")
	cmd.Flags().StringP("format", "f", formatPretty, "set output format (pretty, json)")

	return cmd
}

// scanAll scans paths concurrently, one scanner per file, and merges the
// summaries in argument order.
func scanAll(ctx context.Context, logger logging.Logger, metrics *scan.Metrics, stdin io.Reader, paths []string) (*scan.Summary, error) {
	sums := make([]*scan.Summary, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			log := logger.WithFields(map[string]any{"path": path})
			s := scan.New(scan.WithLogger(log), scan.WithMetrics(metrics))
			sums[i] = scan.NewSummary()

			var r io.Reader
			if path == "-" {
				r = stdin
			} else {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			if err := s.Scan(ctx, r, sums[i].Add); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			log.Debug("Found %d identifiers.", sums[i].Total())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := scan.NewSummary()
	for _, s := range sums {
		total.Merge(s)
	}
	return total, nil
}

func printReport(w io.Writer, report scanReport) error {
	rows := [][]string{
		countsRow("tags", report.Tags),
		countsRow("attributes", report.Attrs),
	}
	if err := renderTable(w, []string{"Kind", "Static", "Owned", "Total"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d file(s), %.1f%% of identifiers are table entries\n", report.Files, report.StaticRatio*100)

	if len(report.Owned) > 0 {
		fmt.Fprintln(w, "\nOwned identifiers:")
		for _, q := range report.Owned {
			fmt.Fprintf(w, "  %s\n", q)
		}
	}
	return nil
}

func countsRow(kind string, c scan.Counts) []string {
	return []string{kind, strconv.Itoa(c.Static), strconv.Itoa(c.Owned), strconv.Itoa(c.Total())}
}

// printMetrics writes the counters gathered from reg, one sample per line.
func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	for _, mf := range families {
		fmt.Fprintf(w, "# HELP %s %s\n", mf.GetName(), mf.GetHelp())
		for _, m := range mf.GetMetric() {
			fmt.Fprintf(w, "%s%s %v\n", mf.GetName(), formatLabels(m.GetLabel()), sampleValue(m))
		}
	}
	return nil
}

func formatLabels(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = fmt.Sprintf("%s=%q", l.GetName(), l.GetValue())
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ",") + "}"
}

func sampleValue(m *dto.Metric) float64 {
	switch {
	case m.Counter != nil:
		return m.GetCounter().GetValue()
	case m.Gauge != nil:
		return m.GetGauge().GetValue()
	}
	return 0
}
