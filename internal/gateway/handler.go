package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/saulo-duarte/quizgenie-lambda/internal/config"
	"github.com/saulo-duarte/quizgenie-lambda/internal/generation"
)

type Handler struct {
	gateway *Gateway
}

func NewHandler(g *Gateway) *Handler {
	return &Handler{gateway: g}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req generation.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Content) == "" && req.FileReference == "" {
		http.Error(w, "content or fileReference is required", http.StatusBadRequest)
		return
	}
	for _, k := range req.AllowedKinds {
		if !k.IsValid() {
			http.Error(w, fmt.Sprintf("unknown question kind %q", k), http.StatusBadRequest)
			return
		}
	}

	questions, err := h.gateway.GenerateQuestions(r.Context(), req)
	if err != nil {
		if errors.Is(err, generation.ErrNegativeCount) || errors.Is(err, generation.ErrTooManyQuestions) || errors.Is(err, generation.ErrNoKinds) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to generate questions")
		http.Error(w, "failed to generate questions", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, QuestionsResponse{Questions: questions})
}

func (h *Handler) GetTitle(w http.ResponseWriter, r *http.Request) {
	var req ContentRequest
	if !decodeContent(w, r, &req) {
		return
	}

	config.JSON(w, http.StatusOK, TitleResponse{Title: h.gateway.GetTitle(r.Context(), req.Content)})
}

func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req ContentRequest
	if !decodeContent(w, r, &req) {
		return
	}

	config.JSON(w, http.StatusOK, h.gateway.Summarize(r.Context(), req.Content))
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	config.JSON(w, http.StatusOK, ChatResponse{Reply: h.gateway.Chat(r.Context(), req.Message)})
}

func decodeContent(w http.ResponseWriter, r *http.Request, req *ContentRequest) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		config.WithContext(r.Context()).WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if strings.TrimSpace(req.Content) == "" {
		http.Error(w, "content is required", http.StatusBadRequest)
		return false
	}
	return true
}
