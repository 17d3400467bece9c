package events

import "gorm.io/gorm"

type EventsContainer struct {
	Repo     Repository
	Recorder Recorder
}

// NewEventsContainer falls back to a no-op recorder when no database is
// configured.
func NewEventsContainer(db *gorm.DB) *EventsContainer {
	if db == nil {
		return &EventsContainer{Recorder: NopRecorder()}
	}

	repo := NewRepository(db)
	return &EventsContainer{
		Repo:     repo,
		Recorder: NewRecorder(repo),
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&GenerationEvent{})
}
