package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/saulo-duarte/quizgenie-lambda/internal/config"
	"github.com/saulo-duarte/quizgenie-lambda/internal/container"
	"github.com/spf13/cobra"

	lambdaevents "github.com/aws/aws-lambda-go/events"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the functions and the app API over HTTP, or as a Lambda handler",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := container.New(loadConfig(cmd))
		handler := c.Router()

		if config.IsLambda() {
			adapter := httpadapter.NewV2(handler)
			lambda.Start(func(ctx context.Context, req lambdaevents.APIGatewayV2HTTPRequest) (lambdaevents.APIGatewayV2HTTPResponse, error) {
				return adapter.ProxyWithContext(ctx, req)
			})
			return nil
		}

		return listen(cmd.Context(), ":"+c.Config.Port, handler)
	},
}

func listen(ctx context.Context, addr string, handler http.Handler) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		config.Logger.Infof("Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		config.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
