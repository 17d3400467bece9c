package generation

import (
	"context"
	"reflect"
	"strings"
	"testing"
)

func TestSummarize_Deterministic(t *testing.T) {
	c := NewComposer(false)
	content := "  The French Revolution was a period of political and societal change in France.  "

	a := c.Summarize(context.Background(), content)
	b := c.Summarize(context.Background(), content)

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("summaries differ:\n%+v\n%+v", a, b)
	}

	wantTitle := "Summary of The French Revolution was a period of political..."
	if a.Title != wantTitle {
		t.Errorf("title = %q, want %q", a.Title, wantTitle)
	}
	if len(a.MainPoints) != 5 {
		t.Errorf("expected 5 main points, got %d", len(a.MainPoints))
	}
	if !strings.HasPrefix(a.DetailedSummary, "This document covers important concepts related to The French Revolution") {
		t.Errorf("unexpected detailed summary: %q", a.DetailedSummary)
	}
}

func TestSummarize_MainPointsAreCopies(t *testing.T) {
	c := NewComposer(false)

	a := c.Summarize(context.Background(), "x")
	a.MainPoints[0] = "changed"

	b := c.Summarize(context.Background(), "x")
	if b.MainPoints[0] == "changed" {
		t.Error("main points share backing storage between calls")
	}
}

func TestSummarize_CanceledContextStillReturns(t *testing.T) {
	c := NewComposer(true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := c.Summarize(ctx, "short")
	if s.Title != "Summary of short..." {
		t.Errorf("unexpected title %q", s.Title)
	}
}
