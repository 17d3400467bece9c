package generation

// Kind is the category of a generated question.
type Kind string

const (
	KindMultipleChoice Kind = "multiple-choice"
	KindShortAnswer    Kind = "short-answer"
	KindEssay          Kind = "essay"
)

// AllKinds is the default kind rotation, in order.
var AllKinds = []Kind{
	KindMultipleChoice,
	KindShortAnswer,
	KindEssay,
}

func (k Kind) IsValid() bool {
	for _, v := range AllKinds {
		if k == v {
			return true
		}
	}
	return false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var AllDifficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
}

func (d Difficulty) IsValid() bool {
	for _, v := range AllDifficulties {
		if d == v {
			return true
		}
	}
	return false
}
