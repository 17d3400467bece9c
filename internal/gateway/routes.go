package gateway

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/questions", h.GenerateQuestions)
	r.Post("/title", h.GetTitle)
	r.Post("/summary", h.Summarize)
	r.Post("/chat", h.Chat)
	return r
}
