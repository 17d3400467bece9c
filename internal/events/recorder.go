package events

import (
	"context"
	"encoding/json"

	"github.com/saulo-duarte/quizgenie-lambda/internal/config"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

type Recorder interface {
	Record(ctx context.Context, e Event)
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, Event) {}

// NopRecorder discards events.
func NopRecorder() Recorder {
	return nopRecorder{}
}

type repoRecorder struct {
	repo Repository
}

// NewRecorder persists events through repo. Write failures are logged and
// never reach the caller.
func NewRecorder(repo Repository) Recorder {
	return &repoRecorder{repo: repo}
}

func (r *repoRecorder) Record(ctx context.Context, e Event) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"operation": e.Operation,
		"path":      e.Path,
	})

	row := &GenerationEvent{
		Operation: e.Operation,
		Path:      e.Path,
		Reason:    e.Reason,
		LatencyMs: e.Latency.Milliseconds(),
	}
	if e.Err != nil {
		row.ErrorMessage = e.Err.Error()
	}
	if e.Request != nil {
		if raw, err := json.Marshal(e.Request); err == nil {
			row.Request = datatypes.JSON(raw)
		}
	}

	if err := r.repo.Create(row); err != nil {
		log.WithError(err).Warn("Failed to record generation event")
	}
}
