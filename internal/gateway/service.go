package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizgenie-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizgenie-lambda/internal/config"
	"github.com/saulo-duarte/quizgenie-lambda/internal/events"
	"github.com/saulo-duarte/quizgenie-lambda/internal/generation"
	"github.com/sirupsen/logrus"
)

const (
	OperationQuestions = "questions"
	OperationTitle     = "title"
)

// Gateway tries the remote function once and falls back to the in-process
// engine on any failure. Remote errors never reach the caller.
type Gateway struct {
	invoker  Invoker
	engine   *generation.Engine
	recorder events.Recorder
	timeout  time.Duration
	newID    func() string
}

type Option func(*Gateway)

// WithTimeout bounds each remote call. Zero leaves the caller's context as
// the only limit.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) { g.timeout = d }
}

func WithRecorder(r events.Recorder) Option {
	return func(g *Gateway) {
		if r != nil {
			g.recorder = r
		}
	}
}

func New(invoker Invoker, engine *generation.Engine, opts ...Option) *Gateway {
	g := &Gateway{
		invoker:  invoker,
		engine:   engine,
		recorder: events.NopRecorder(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateQuestions returns req.NumQuestions questions (default 5). Only an
// invalid request produces an error.
func (g *Gateway) GenerateQuestions(ctx context.Context, req generation.Request) ([]generation.Question, error) {
	req = req.WithDefaults()
	if req.NumQuestions < 0 {
		return nil, generation.ErrNegativeCount
	}
	if req.NumQuestions > generation.MaxNumQuestions {
		return nil, generation.ErrTooManyQuestions
	}

	body := aiquiz.QuizRequest{
		Content: req.Content,
		Options: &aiquiz.QuizOptions{
			NumQuestions: req.NumQuestions,
			Types:        kindStrings(req.AllowedKinds),
			FileURL:      req.FileReference,
		},
	}

	start := time.Now()
	questions, err := g.remoteQuestions(ctx, body)
	if err == nil {
		g.recorder.Record(ctx, events.Event{Operation: OperationQuestions, Path: events.PathRemote, Latency: time.Since(start)})
		return questions, nil
	}

	g.fallback(ctx, OperationQuestions, err, body, time.Since(start))
	return g.engine.Questions.Synthesize(ctx, req.Content, req.NumQuestions, req.AllowedKinds)
}

func (g *Gateway) remoteQuestions(ctx context.Context, body aiquiz.QuizRequest) ([]generation.Question, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	var resp remoteQuiz
	if err := g.invoker.Invoke(ctx, aiquiz.FunctionGenerateQuiz, body, &resp); err != nil {
		return nil, err
	}
	if resp.Questions == nil {
		return nil, &ErrRemoteMalformed{Function: aiquiz.FunctionGenerateQuiz, Err: errors.New("missing questions field")}
	}

	questions, err := normalize(*resp.Questions, g.newID)
	if err != nil {
		return nil, &ErrRemoteMalformed{Function: aiquiz.FunctionGenerateQuiz, Err: err}
	}
	return questions, nil
}

// GetTitle asks the remote function for a title and falls back to
// "Quiz on <first 30 chars>...".
func (g *Gateway) GetTitle(ctx context.Context, content string) string {
	body := aiquiz.QuizRequest{
		Content: content,
		Options: &aiquiz.QuizOptions{TitleOnly: true},
	}

	start := time.Now()
	title, err := g.remoteTitle(ctx, body)
	if err == nil {
		g.recorder.Record(ctx, events.Event{Operation: OperationTitle, Path: events.PathRemote, Latency: time.Since(start)})
		return title
	}

	g.fallback(ctx, OperationTitle, err, body, time.Since(start))
	return generation.FallbackTitle(content)
}

func (g *Gateway) remoteTitle(ctx context.Context, body aiquiz.QuizRequest) (string, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	var resp aiquiz.TitleResponse
	if err := g.invoker.Invoke(ctx, aiquiz.FunctionGenerateQuiz, body, &resp); err != nil {
		return "", err
	}
	if resp.Title == "" {
		return "", &ErrRemoteMalformed{Function: aiquiz.FunctionGenerateQuiz, Err: errors.New("missing title field")}
	}
	return resp.Title, nil
}

// Summarize and Chat run in-process only.
func (g *Gateway) Summarize(ctx context.Context, content string) generation.Summary {
	return g.engine.Summaries.Summarize(ctx, content)
}

func (g *Gateway) Chat(ctx context.Context, message string) string {
	return g.engine.Chat.Respond(ctx, message)
}

func (g *Gateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

func (g *Gateway) fallback(ctx context.Context, operation string, err error, body interface{}, latency time.Duration) {
	reason := failureReason(err)

	config.WithContext(ctx).WithError(err).WithFields(logrus.Fields{
		"operation": operation,
		"reason":    reason,
	}).Warn("Remote generation failed, using local fallback")

	g.recorder.Record(ctx, events.Event{
		Operation: operation,
		Path:      events.PathLocal,
		Reason:    reason,
		Err:       err,
		Request:   body,
		Latency:   latency,
	})
}

func failureReason(err error) string {
	var malformed *ErrRemoteMalformed
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.As(err, &malformed):
		return "malformed"
	default:
		return "unavailable"
	}
}

func kindStrings(kinds []generation.Kind) []string {
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, string(k))
	}
	return out
}
