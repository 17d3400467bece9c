package aiquiz

import (
	"context"
	"strings"

	"github.com/saulo-duarte/quizgenie-lambda/internal/config"
	"github.com/saulo-duarte/quizgenie-lambda/internal/generation"
)

type Service interface {
	GenerateQuestions(ctx context.Context, req QuizRequest) (*QuizResponse, error)
	GenerateTitle(ctx context.Context, req QuizRequest) (*TitleResponse, error)
	Summarize(ctx context.Context, req SummaryRequest) (*generation.Summary, error)
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

type service struct {
	engine    *generation.Engine
	extractor Extractor
}

func NewService(engine *generation.Engine, extractor Extractor) Service {
	return &service{engine: engine, extractor: extractor}
}

func (s *service) GenerateQuestions(ctx context.Context, req QuizRequest) (*QuizResponse, error) {
	log := config.WithContext(ctx)
	opts := req.options()
	content := s.combinedContent(ctx, req.Content, opts.FileURL)

	genReq := generation.Request{
		Content:      content,
		NumQuestions: opts.NumQuestions,
		AllowedKinds: toKinds(opts.Types),
	}.WithDefaults()

	questions, err := s.engine.Questions.Synthesize(ctx, content, genReq.NumQuestions, genReq.AllowedKinds)
	if err != nil {
		log.WithError(err).Warn("Rejected quiz generation request")
		return nil, err
	}

	resp := &QuizResponse{
		Questions: make([]Question, 0, len(questions)),
		Title:     generation.WordsTitle(content),
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, toRemote(q))
	}

	log.Infof("[AIQUIZ] Generated %d questions", len(resp.Questions))
	return resp, nil
}

func (s *service) GenerateTitle(ctx context.Context, req QuizRequest) (*TitleResponse, error) {
	content := s.combinedContent(ctx, req.Content, req.options().FileURL)
	return &TitleResponse{Title: generation.WordsTitle(content)}, nil
}

func (s *service) Summarize(ctx context.Context, req SummaryRequest) (*generation.Summary, error) {
	summary := s.engine.Summaries.Summarize(ctx, req.Content)
	return &summary, nil
}

func (s *service) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	return &ChatResponse{Reply: s.engine.Chat.Respond(ctx, req.Message)}, nil
}

// combinedContent appends extracted file text to the request content. A
// failed extraction contributes nothing.
func (s *service) combinedContent(ctx context.Context, content, fileURL string) string {
	if fileURL == "" || s.extractor == nil {
		return content
	}

	text, err := s.extractor.Extract(ctx, fileURL)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("file_url", fileURL).
			Warn("Error extracting content")
		text = ""
	}
	return strings.TrimSpace(content + " " + text)
}

func toKinds(types []string) []generation.Kind {
	if len(types) == 0 {
		return nil
	}
	kinds := make([]generation.Kind, 0, len(types))
	for _, t := range types {
		kinds = append(kinds, generation.Kind(t))
	}
	return kinds
}

func toRemote(q generation.Question) Question {
	return Question{
		Question: q.Prompt,
		Options:  q.Options,
		Answer:   q.CorrectOption(),
		Type:     string(q.Kind),
	}
}
