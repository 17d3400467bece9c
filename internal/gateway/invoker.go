package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/saulo-duarte/quizgenie-lambda/internal/aiquiz"
)

// Invoker calls a named remote function with a JSON body and decodes the
// JSON reply into out.
type Invoker interface {
	Invoke(ctx context.Context, name string, body, out interface{}) error
}

const (
	clientInfo    = "quizgenie-go"
	maxReplyBytes = 4 << 20
)

type HTTPInvoker struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPInvoker posts to {baseURL}/functions/v1/{name}. The client carries
// no timeout of its own; callers bound each call with a context.
func NewHTTPInvoker(baseURL, apiKey string, client *http.Client) *HTTPInvoker {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPInvoker{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

func (i *HTTPInvoker) Invoke(ctx context.Context, name string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.baseURL+"/functions/v1/"+name, bytes.NewReader(payload))
	if err != nil {
		return &ErrRemoteUnavailable{Function: name, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-client-info", clientInfo)
	if i.apiKey != "" {
		req.Header.Set("apikey", i.apiKey)
		req.Header.Set("Authorization", "Bearer "+i.apiKey)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return &ErrRemoteUnavailable{Function: name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ErrRemoteUnavailable{Function: name, Status: resp.StatusCode, Err: errorBody(resp.Body)}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxReplyBytes)).Decode(out); err != nil {
		return &ErrRemoteMalformed{Function: name, Err: err}
	}
	return nil
}

func errorBody(r io.Reader) error {
	raw, _ := io.ReadAll(io.LimitReader(r, 4<<10))
	var body aiquiz.ErrorResponse
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		return errors.New(body.Error)
	}
	if msg := strings.TrimSpace(string(raw)); msg != "" {
		return errors.New(msg)
	}
	return errors.New("empty error body")
}

// LocalInvoker runs the function in-process. Requests and replies still go
// through JSON so both invokers see the same wire shapes.
type LocalInvoker struct {
	service aiquiz.Service
}

func NewLocalInvoker(service aiquiz.Service) *LocalInvoker {
	return &LocalInvoker{service: service}
}

func (l *LocalInvoker) Invoke(ctx context.Context, name string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", name, err)
	}

	var result interface{}
	switch name {
	case aiquiz.FunctionGenerateQuiz:
		var req aiquiz.QuizRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return &ErrRemoteUnavailable{Function: name, Status: http.StatusBadRequest, Err: err}
		}
		if req.Options != nil && req.Options.TitleOnly {
			result, err = l.service.GenerateTitle(ctx, req)
		} else {
			result, err = l.service.GenerateQuestions(ctx, req)
		}
	case aiquiz.FunctionSummarize:
		var req aiquiz.SummaryRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return &ErrRemoteUnavailable{Function: name, Status: http.StatusBadRequest, Err: err}
		}
		result, err = l.service.Summarize(ctx, req)
	case aiquiz.FunctionChat:
		var req aiquiz.ChatRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return &ErrRemoteUnavailable{Function: name, Status: http.StatusBadRequest, Err: err}
		}
		result, err = l.service.Chat(ctx, req)
	default:
		return &ErrRemoteUnavailable{Function: name, Status: http.StatusNotFound, Err: errors.New("unknown function")}
	}
	if err != nil {
		return &ErrRemoteUnavailable{Function: name, Status: http.StatusBadRequest, Err: err}
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return &ErrRemoteMalformed{Function: name, Err: err}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ErrRemoteMalformed{Function: name, Err: err}
	}
	return nil
}
