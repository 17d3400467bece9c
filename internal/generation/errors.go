package generation

import (
	"errors"
	"fmt"
)

var (
	ErrNoKinds          = errors.New("at least one question kind is required")
	ErrNegativeCount    = errors.New("number of questions must not be negative")
	ErrTooManyQuestions = fmt.Errorf("number of questions must not exceed %d", MaxNumQuestions)
)
