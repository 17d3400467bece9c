package gateway

import (
	"time"

	"github.com/saulo-duarte/quizgenie-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizgenie-lambda/internal/events"
	"github.com/saulo-duarte/quizgenie-lambda/internal/generation"
)

type GatewayContainer struct {
	Gateway *Gateway
	Handler *Handler
}

// NewGatewayContainer invokes the function over HTTP when functionsURL is
// set and in-process otherwise.
func NewGatewayContainer(
	engine *generation.Engine,
	function aiquiz.Service,
	recorder events.Recorder,
	functionsURL, apiKey string,
	timeout time.Duration,
) *GatewayContainer {
	var invoker Invoker = NewLocalInvoker(function)
	if functionsURL != "" {
		invoker = NewHTTPInvoker(functionsURL, apiKey, nil)
	}

	gw := New(invoker, engine, WithTimeout(timeout), WithRecorder(recorder))
	return &GatewayContainer{
		Gateway: gw,
		Handler: NewHandler(gw),
	}
}
