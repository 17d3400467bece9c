package gateway

import "github.com/saulo-duarte/quizgenie-lambda/internal/generation"

type QuestionsResponse struct {
	Questions []generation.Question `json:"questions"`
}

type ContentRequest struct {
	Content string `json:"content"`
}

type TitleResponse struct {
	Title string `json:"title"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
