package aiquiz

import (
	"github.com/saulo-duarte/quizgenie-lambda/internal/generation"
)

type AIQuizContainer struct {
	Service Service
	Handler *Handler
}

func NewAIQuizContainer(engine *generation.Engine, extractionMode string) *AIQuizContainer {
	service := NewService(engine, NewExtractor(extractionMode, nil))
	handler := NewHandler(service)

	return &AIQuizContainer{
		Service: service,
		Handler: handler,
	}
}
