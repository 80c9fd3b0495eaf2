package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/batchpipe/logger"
	"github.com/kbukum/batchpipe/observability"
)

func TestLogs(t *testing.T) {
	logs := NewLogs(t)
	logs.Logger.Debug("first", logger.Fields(logger.FieldStage, "extract"))
	logs.Logger.Error("second")

	if diff := cmp.Diff([]string{"first", "second"}, logs.Messages(t)); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
	entries := logs.Entries(t)
	if entries[0].Str(logger.FieldStage) != "extract" {
		t.Errorf("expected stage field, got %v", entries[0])
	}
	if entries[1].Level() != "error" {
		t.Errorf("expected error level, got %q", entries[1].Level())
	}
}

func TestLogsEmpty(t *testing.T) {
	if msgs := NewLogs(t).Messages(t); len(msgs) != 0 {
		t.Errorf("expected no messages, got %v", msgs)
	}
}

func TestNewTracer(t *testing.T) {
	tracer, sr := NewTracer(t)
	_, span := tracer.Start(context.Background(), "batch.test")
	span.End()

	ended := sr.Ended()
	if len(ended) != 1 || ended[0].Name() != "batch.test" {
		t.Errorf("expected one batch.test span, got %d", len(ended))
	}
}

func TestNewMetrics(t *testing.T) {
	m, reader := NewMetrics(t)
	ctx := context.Background()
	m.RecordStage(ctx, "extract", observability.StatusOK, 4, time.Millisecond)
	m.RecordStage(ctx, "validate", observability.StatusOK, 3, time.Millisecond)

	sums := reader.Sums(t)
	if sums["batch.stage.total"] != 2 {
		t.Errorf("expected 2 stages, got %d", sums["batch.stage.total"])
	}
	if sums["batch.records"] != 7 {
		t.Errorf("expected 7 records, got %d", sums["batch.records"])
	}
	if _, ok := reader.Collect(t)["batch.stage.duration"]; !ok {
		t.Error("expected stage duration histogram")
	}
}
