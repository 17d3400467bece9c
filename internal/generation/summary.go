package generation

import (
	"context"
	"fmt"
	"time"
)

const summaryLatency = 1500 * time.Millisecond

type Composer struct {
	latency time.Duration
}

func NewComposer(simulateLatency bool) *Composer {
	c := &Composer{}
	if simulateLatency {
		c.latency = summaryLatency
	}
	return c
}

// Summarize is deterministic in its output; only timing varies.
func (c *Composer) Summarize(ctx context.Context, content string) Summary {
	pause(ctx, c.latency)

	preview := Preview(content, 50)
	return Summary{
		Title:           "Summary of " + preview + "...",
		MainPoints:      MainPoints(),
		DetailedSummary: fmt.Sprintf(detailedSummaryTemplate, preview),
	}
}
