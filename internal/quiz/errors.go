package quiz

import "errors"

var (
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrNoQuestions      = errors.New("quiz must contain at least one question")
	ErrInvalidQuestion  = errors.New("invalid question")
)
