package aiquiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Function names as the gateway invokes them.
const (
	FunctionGenerateQuiz = "generate-quiz"
	FunctionSummarize    = "summarize"
	FunctionChat         = "chat"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.HandleFunc("/"+FunctionGenerateQuiz, h.GenerateQuiz)
	r.HandleFunc("/"+FunctionSummarize, h.Summarize)
	r.HandleFunc("/"+FunctionChat, h.Chat)
	return r
}
