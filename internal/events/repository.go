package events

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(e *GenerationEvent) error
	ListRecent(limit int, path Path) ([]*GenerationEvent, error)
	CountByPath(operation string) (map[Path]int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(e *GenerationEvent) error {
	return r.db.Create(e).Error
}

// ListRecent returns newest events first. An empty path matches all events.
func (r *repository) ListRecent(limit int, path Path) ([]*GenerationEvent, error) {
	var out []*GenerationEvent
	q := r.db.Order("created_at DESC")
	if path != "" {
		q = q.Where("path = ?", path)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) CountByPath(operation string) (map[Path]int64, error) {
	var rows []struct {
		Path  Path
		Count int64
	}
	q := r.db.Model(&GenerationEvent{}).Select("path, count(*) as count").Group("path")
	if operation != "" {
		q = q.Where("operation = ?", operation)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[Path]int64, len(rows))
	for _, row := range rows {
		out[row.Path] = row.Count
	}
	return out, nil
}
