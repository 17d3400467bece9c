package gateway

import (
	"errors"
	"fmt"

	"github.com/saulo-duarte/quizgenie-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizgenie-lambda/internal/generation"
)

const (
	normalizedDifficulty = generation.DifficultyMedium
	normalizedPoints     = 2
)

type remoteQuiz struct {
	Questions *[]aiquiz.Question `json:"questions"`
	Title     string             `json:"title"`
}

// normalize maps remote items onto local questions. Remote difficulty and
// points are not carried; every item becomes medium / 2 points.
func normalize(remote []aiquiz.Question, newID func() string) ([]generation.Question, error) {
	out := make([]generation.Question, 0, len(remote))
	for i, rq := range remote {
		kind := generation.Kind(rq.Type)
		if kind == "" {
			kind = generation.KindMultipleChoice
		}

		q := generation.Question{
			ID:         newID(),
			Kind:       kind,
			Prompt:     rq.Question,
			Difficulty: normalizedDifficulty,
			Points:     normalizedPoints,
		}

		if kind == generation.KindMultipleChoice {
			if len(rq.Options) == 0 {
				return nil, fmt.Errorf("question %d: %w", i, errMissingOptions)
			}
			idx := answerIndex(rq.Options, rq.Answer)
			q.Options = rq.Options
			q.CorrectOptionIndex = &idx
		}

		out = append(out, q)
	}
	return out, nil
}

var errMissingOptions = errors.New("multiple-choice question without options")

func answerIndex(options []string, answer string) int {
	for i, o := range options {
		if o == answer {
			return i
		}
	}
	return 0
}
