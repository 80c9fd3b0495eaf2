package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Reporter renders or persists the final Summary of a run.
type Reporter interface {
	Report(ctx context.Context, s Summary) error
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(ctx context.Context, s Summary) error

// Report calls f(ctx, s).
func (f ReporterFunc) Report(ctx context.Context, s Summary) error { return f(ctx, s) }

const (
	reportHeader = "\n===== FINAL REPORT ====="
	reportFooter = "========================"
)

// ConsoleReporter writes a fixed-format report block to Out.
type ConsoleReporter struct {
	Out io.Writer
}

// NewConsoleReporter returns a reporter writing to w, or stdout when w is nil.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleReporter{Out: w}
}

// Report writes the summary block:
//
//	===== FINAL REPORT =====
//	COUNT     : 20
//	AVERAGE   : 113.4
//	========================
func (r *ConsoleReporter) Report(_ context.Context, s Summary) error {
	var b strings.Builder
	b.WriteString(reportHeader)
	b.WriteByte('\n')
	for _, f := range s.Fields() {
		fmt.Fprintf(&b, "%-10s: %s\n", strings.ToUpper(f.Key), f.Value)
	}
	b.WriteString(reportFooter)
	b.WriteString("\n\n")

	if _, err := io.WriteString(r.Out, b.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
