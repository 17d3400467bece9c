package generation

import (
	"context"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizgenie-lambda/internal/config"
)

// Synthesizer builds template questions from text content. Kinds rotate in
// order; option sets, answer positions, difficulty and points are drawn from
// its Source.
type Synthesizer struct {
	rand  Source
	newID func() string
}

func NewSynthesizer(src Source) *Synthesizer {
	if src == nil {
		src = NewSource()
	}
	return &Synthesizer{rand: src, newID: uuid.NewString}
}

// Synthesize returns exactly numQuestions questions. The content only feeds
// the log line; prompts come from the topic bank.
func (s *Synthesizer) Synthesize(ctx context.Context, content string, numQuestions int, kinds []Kind) ([]Question, error) {
	if numQuestions < 0 {
		return nil, ErrNegativeCount
	}
	if numQuestions > MaxNumQuestions {
		return nil, ErrTooManyQuestions
	}
	if len(kinds) == 0 {
		return nil, ErrNoKinds
	}

	questions := make([]Question, 0, numQuestions)
	for i := 0; i < numQuestions; i++ {
		kind := kinds[i%len(kinds)]

		q := Question{
			ID:         s.newID(),
			Kind:       kind,
			Prompt:     Prompt(kind, Topic(i)),
			Difficulty: AllDifficulties[s.rand.IntN(len(AllDifficulties))],
			Points:     1 + s.rand.IntN(3),
		}
		if kind == KindMultipleChoice {
			q.Options = OptionSet(s.rand.IntN(OptionSetCount()))
			q.CorrectOptionIndex = intPtr(s.rand.IntN(len(q.Options)))
		}

		questions = append(questions, q)
	}

	config.WithContext(ctx).WithField("content_chars", len([]rune(content))).
		Debugf("Synthesized %d questions", len(questions))
	return questions, nil
}
