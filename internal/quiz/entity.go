package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Quiz struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TeacherID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"teacher_id"`
	MaterialID      *uuid.UUID `gorm:"type:uuid;index" json:"material_id,omitempty"`
	Title           string     `gorm:"type:text;not null" json:"title"`
	Description     *string    `gorm:"type:text" json:"description,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	IsActive        bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (Quiz) TableName() string { return "quizzes" }

func (q *Quiz) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

type Question struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID       uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	QuestionText string    `gorm:"type:text;not null" json:"question_text"`
	QuestionType string    `gorm:"type:text;not null" json:"question_type"`
	Points       int       `gorm:"not null;default:1" json:"points"`
	OrderIndex   int       `gorm:"not null;default:0" json:"order_index"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	Options []QuestionOption `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

func (Question) TableName() string { return "questions" }

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

type QuestionOption struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	OptionText string    `gorm:"type:text;not null" json:"option_text"`
	IsCorrect  bool      `gorm:"not null;default:false" json:"is_correct"`
	OrderIndex int       `gorm:"not null;default:0" json:"order_index"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (QuestionOption) TableName() string { return "question_options" }

func (o *QuestionOption) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
