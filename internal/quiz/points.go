package quiz

import "github.com/saulo-duarte/quizgenie-lambda/internal/generation"

var difficultyPoints = map[generation.Difficulty]int{
	generation.DifficultyEasy:   1,
	generation.DifficultyMedium: 2,
	generation.DifficultyHard:   3,
}

// PointsForDifficulty is the exam builder's fixed scale. Unknown
// difficulties report ok=false.
func PointsForDifficulty(d generation.Difficulty) (points int, ok bool) {
	points, ok = difficultyPoints[d]
	return points, ok
}

// fromGenerated converts a generated question into rows. With applyPoints
// the stored points follow the difficulty scale instead of the generator.
func fromGenerated(q generation.Question, order int, applyPoints bool) Question {
	row := Question{
		QuestionText: q.Prompt,
		QuestionType: string(q.Kind),
		Points:       q.Points,
		OrderIndex:   order,
	}
	if applyPoints {
		if p, ok := PointsForDifficulty(q.Difficulty); ok {
			row.Points = p
		}
	}

	if q.Kind != generation.KindMultipleChoice {
		return row
	}
	correct := -1
	if q.CorrectOptionIndex != nil {
		correct = *q.CorrectOptionIndex
	}
	for i, text := range q.Options {
		row.Options = append(row.Options, QuestionOption{
			OptionText: text,
			IsCorrect:  i == correct,
			OrderIndex: i,
		})
	}
	return row
}
