package events

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Path string

const (
	PathRemote Path = "remote"
	PathLocal  Path = "local"
)

// GenerationEvent records which path served one gateway call.
type GenerationEvent struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Operation    string         `gorm:"type:text;not null;index" json:"operation"`
	Path         Path           `gorm:"type:text;not null;index" json:"path"`
	Reason       string         `gorm:"type:text" json:"reason,omitempty"`
	ErrorMessage string         `gorm:"type:text" json:"error_message,omitempty"`
	Request      datatypes.JSON `json:"request,omitempty"`
	LatencyMs    int64          `gorm:"not null;default:0" json:"latency_ms"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (e *GenerationEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Event is what callers hand to a Recorder.
type Event struct {
	Operation string
	Path      Path
	Reason    string
	Err       error
	Request   interface{}
	Latency   time.Duration
}
