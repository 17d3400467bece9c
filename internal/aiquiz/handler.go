package aiquiz

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/quizgenie-lambda/internal/config"
	"github.com/saulo-duarte/quizgenie-lambda/internal/middlewares"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuiz serves the generate-quiz function. The function trusts its
// body as-is; there is no caller authentication.
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req QuizRequest
	if !decode(w, r, &req) {
		return
	}

	if req.options().TitleOnly {
		resp, err := h.service.GenerateTitle(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond(w, resp)
		return
	}

	resp, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, resp)
}

func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req SummaryRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.service.Summarize(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, resp)
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	if preflight(w, r) {
		return
	}

	var req ChatRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.service.Chat(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, resp)
}

func preflight(w http.ResponseWriter, r *http.Request) bool {
	middlewares.SetCORSHeaders(w.Header())
	if r.Method != http.MethodOptions {
		return false
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
	return true
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, r, err)
		return false
	}
	return true
}

func respond(w http.ResponseWriter, v interface{}) {
	config.JSON(w, http.StatusOK, v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	config.WithContext(r.Context()).WithError(err).Error("[AIQUIZ] Request failed")
	config.JSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}
