package quiz

import (
	"github.com/google/uuid"
	"github.com/saulo-duarte/quizgenie-lambda/internal/generation"
)

// CreateQuizRequest carries the generated questions the teacher kept.
type CreateQuizRequest struct {
	Title                 string                `json:"title"`
	Description           *string               `json:"description,omitempty"`
	MaterialID            *uuid.UUID            `json:"material_id,omitempty"`
	DurationMinutes       *int                  `json:"duration_minutes,omitempty"`
	ApplyDifficultyPoints bool                  `json:"applyDifficultyPoints,omitempty"`
	Questions             []generation.Question `json:"questions"`
}

type AddQuestionRequest struct {
	Question              generation.Question `json:"question"`
	ApplyDifficultyPoints bool                `json:"applyDifficultyPoints,omitempty"`
}
