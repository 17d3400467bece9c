package generation

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const chatLatency = time.Second

// Intent is the bucket a chat message is routed to.
type Intent string

const (
	IntentExplain Intent = "explain"
	IntentHelp    Intent = "help"
	IntentCompare Intent = "compare"
	IntentGeneric Intent = "generic"
)

// Classify matches keywords case-insensitively. Earlier buckets win.
func Classify(message string) Intent {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "explain") || strings.Contains(m, "what is"):
		return IntentExplain
	case strings.Contains(m, "help") || strings.Contains(m, "how to"):
		return IntentHelp
	case strings.Contains(m, "difference") || strings.Contains(m, "compare"):
		return IntentCompare
	default:
		return IntentGeneric
	}
}

type Responder struct {
	latency time.Duration
}

func NewResponder(simulateLatency bool) *Responder {
	r := &Responder{}
	if simulateLatency {
		r.latency = chatLatency
	}
	return r
}

func (r *Responder) Respond(ctx context.Context, message string) string {
	pause(ctx, r.latency)

	switch Classify(message) {
	case IntentExplain:
		return explanationPrefix + explanationBody
	case IntentHelp:
		return helpPrefix + helpBody
	case IntentCompare:
		return comparisonPrefix + comparisonBody
	default:
		return fmt.Sprintf(genericTemplate, head(message, 20))
	}
}
