package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizgenie-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizgenie-lambda/internal/events"
	"github.com/saulo-duarte/quizgenie-lambda/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (c *captureRecorder) Record(_ context.Context, e events.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *captureRecorder) last(t *testing.T) events.Event {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.events)
	return c.events[len(c.events)-1]
}

func testEngine() *generation.Engine {
	return generation.NewEngine(generation.Options{Seed: 5})
}

// functionServer serves the real generate-quiz function under /functions/v1.
func functionServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	engine := testEngine()
	fn := aiquiz.Routes(aiquiz.NewHandler(aiquiz.NewService(engine, nil)))

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hits != nil {
				atomic.AddInt32(hits, 1)
			}
			next.ServeHTTP(w, r)
		})
	})
	r.Mount("/functions/v1", fn)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func stubServer(t *testing.T, hits *int32, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func unreachableURL() string {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

func TestGenerateQuestions_RemoteSuccess(t *testing.T) {
	var hits int32
	srv := functionServer(t, &hits)
	rec := &captureRecorder{}
	gw := New(NewHTTPInvoker(srv.URL, "anon-key", srv.Client()), testEngine(), WithRecorder(rec))

	qs, err := gw.GenerateQuestions(context.Background(), generation.Request{
		Content:      "Newton's laws",
		NumQuestions: 6,
	})
	require.NoError(t, err)
	require.Len(t, qs, 6)
	assert.Equal(t, int32(1), hits)

	ids := map[string]bool{}
	for i, q := range qs {
		assert.Equal(t, generation.DifficultyMedium, q.Difficulty)
		assert.Equal(t, 2, q.Points)
		assert.Equal(t, generation.AllKinds[i%3], q.Kind)
		assert.False(t, ids[q.ID], "duplicate id")
		ids[q.ID] = true

		if q.Kind == generation.KindMultipleChoice {
			require.NotNil(t, q.CorrectOptionIndex)
			assert.Less(t, *q.CorrectOptionIndex, len(q.Options))
		} else {
			assert.Nil(t, q.Options)
			assert.Nil(t, q.CorrectOptionIndex)
		}
	}

	assert.Equal(t, events.PathRemote, rec.last(t).Path)
}

func TestGenerateQuestions_UnreachableFallsBack(t *testing.T) {
	rec := &captureRecorder{}
	gw := New(NewHTTPInvoker(unreachableURL(), "", nil), testEngine(), WithRecorder(rec))

	qs, err := gw.GenerateQuestions(context.Background(), generation.Request{
		Content:      "Thermodynamics",
		NumQuestions: 7,
		AllowedKinds: []generation.Kind{generation.KindEssay},
	})
	require.NoError(t, err)
	require.Len(t, qs, 7)
	for _, q := range qs {
		assert.Equal(t, generation.KindEssay, q.Kind)
	}

	ev := rec.last(t)
	assert.Equal(t, events.PathLocal, ev.Path)
	assert.Equal(t, "unavailable", ev.Reason)
	assert.Error(t, ev.Err)
}

func TestGenerateQuestions_DefaultsApplyOnFallback(t *testing.T) {
	gw := New(NewHTTPInvoker(unreachableURL(), "", nil), testEngine())

	qs, err := gw.GenerateQuestions(context.Background(), generation.Request{Content: "x"})
	require.NoError(t, err)
	assert.Len(t, qs, generation.DefaultNumQuestions)
}

func TestGenerateQuestions_NonSuccessStatusFallsBackWithoutRetry(t *testing.T) {
	var hits int32
	srv := stubServer(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	})
	rec := &captureRecorder{}
	gw := New(NewHTTPInvoker(srv.URL, "", srv.Client()), testEngine(), WithRecorder(rec))

	qs, err := gw.GenerateQuestions(context.Background(), generation.Request{Content: "x", NumQuestions: 3})
	require.NoError(t, err)
	assert.Len(t, qs, 3)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "remote must be attempted exactly once")

	var unavailable *ErrRemoteUnavailable
	require.ErrorAs(t, rec.last(t).Err, &unavailable)
	assert.Equal(t, http.StatusInternalServerError, unavailable.Status)
	assert.EqualError(t, unavailable.Err, "boom")
}

func TestGenerateQuestions_MissingQuestionsFallsBack(t *testing.T) {
	var hits int32
	srv := stubServer(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Quiz on x..."}`))
	})
	rec := &captureRecorder{}
	gw := New(NewHTTPInvoker(srv.URL, "", srv.Client()), testEngine(), WithRecorder(rec))

	qs, err := gw.GenerateQuestions(context.Background(), generation.Request{Content: "x", NumQuestions: 2})
	require.NoError(t, err)
	assert.Len(t, qs, 2)
	assert.Equal(t, "malformed", rec.last(t).Reason)
}

func TestGenerateQuestions_UndecodableBodyFallsBack(t *testing.T) {
	var hits int32
	srv := stubServer(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway</html>`))
	})
	rec := &captureRecorder{}
	gw := New(NewHTTPInvoker(srv.URL, "", srv.Client()), testEngine(), WithRecorder(rec))

	qs, err := gw.GenerateQuestions(context.Background(), generation.Request{Content: "x", NumQuestions: 4})
	require.NoError(t, err)
	assert.Len(t, qs, 4)
	assert.Equal(t, "malformed", rec.last(t).Reason)
}

func TestGenerateQuestions_TimeoutFallsBack(t *testing.T) {
	var hits int32
	release := make(chan struct{})
	srv := stubServer(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	rec := &captureRecorder{}
	gw := New(NewHTTPInvoker(srv.URL, "", srv.Client()), testEngine(), WithRecorder(rec), WithTimeout(30*time.Millisecond))

	qs, err := gw.GenerateQuestions(context.Background(), generation.Request{Content: "x", NumQuestions: 3})
	require.NoError(t, err)
	assert.Len(t, qs, 3)
	assert.Equal(t, "timeout", rec.last(t).Reason)
}

func TestGenerateQuestions_NegativeCountRejected(t *testing.T) {
	var hits int32
	srv := stubServer(t, &hits, func(w http.ResponseWriter, r *http.Request) {})
	gw := New(NewHTTPInvoker(srv.URL, "", srv.Client()), testEngine())

	_, err := gw.GenerateQuestions(context.Background(), generation.Request{Content: "x", NumQuestions: -1})
	assert.ErrorIs(t, err, generation.ErrNegativeCount)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestGenerateQuestions_OversizedCountRejected(t *testing.T) {
	var hits int32
	srv := stubServer(t, &hits, func(w http.ResponseWriter, r *http.Request) {})
	gw := New(NewHTTPInvoker(srv.URL, "", srv.Client()), testEngine())

	_, err := gw.GenerateQuestions(context.Background(), generation.Request{Content: "x", NumQuestions: generation.MaxNumQuestions + 1})
	assert.ErrorIs(t, err, generation.ErrTooManyQuestions)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestGenerateQuestions_OversizedReplyFallsBack(t *testing.T) {
	var hits int32
	srv := stubServer(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"questions":[],"title":"`))
		_, _ = w.Write([]byte(strings.Repeat("a", maxReplyBytes)))
		_, _ = w.Write([]byte(`"}`))
	})
	rec := &captureRecorder{}
	gw := New(NewHTTPInvoker(srv.URL, "", srv.Client()), testEngine(), WithRecorder(rec))

	qs, err := gw.GenerateQuestions(context.Background(), generation.Request{Content: "x", NumQuestions: 2})
	require.NoError(t, err)
	assert.Len(t, qs, 2)
	assert.Equal(t, "malformed", rec.last(t).Reason)
}

func TestGetTitle_Remote(t *testing.T) {
	srv := functionServer(t, nil)
	gw := New(NewHTTPInvoker(srv.URL, "", srv.Client()), testEngine())

	title := gw.GetTitle(context.Background(), "Cellular respiration converts glucose into energy")
	assert.Equal(t, "Quiz on Cellular respiration converts glucose into...", title)
}

func TestGetTitle_FallbackIsExact(t *testing.T) {
	rec := &captureRecorder{}
	gw := New(NewHTTPInvoker(unreachableURL(), "", nil), testEngine(), WithRecorder(rec))

	content := "  Cellular respiration converts glucose into energy"
	title := gw.GetTitle(context.Background(), content)

	assert.Equal(t, "Quiz on Cellular respiration convert...", title)
	assert.Equal(t, "title", rec.last(t).Operation)
}

func TestGetTitle_EmptyRemoteTitleFallsBack(t *testing.T) {
	var hits int32
	srv := stubServer(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"title":""}`))
	})
	gw := New(NewHTTPInvoker(srv.URL, "", srv.Client()), testEngine())

	assert.Equal(t, "Quiz on Osmosis...", gw.GetTitle(context.Background(), "Osmosis"))
}

func TestHTTPInvoker_SendsFunctionHeaders(t *testing.T) {
	var got http.Header
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"title":"t"}`))
	}))
	defer srv.Close()

	var out aiquiz.TitleResponse
	err := NewHTTPInvoker(srv.URL+"/", "secret-key", srv.Client()).
		Invoke(context.Background(), aiquiz.FunctionGenerateQuiz, aiquiz.QuizRequest{Content: "x"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "/functions/v1/generate-quiz", path)
	assert.Equal(t, "secret-key", got.Get("apikey"))
	assert.Equal(t, "Bearer secret-key", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "t", out.Title)
}

func TestLocalInvoker_MatchesRemoteShapes(t *testing.T) {
	engine := testEngine()
	gw := New(NewLocalInvoker(aiquiz.NewService(engine, nil)), engine)

	qs, err := gw.GenerateQuestions(context.Background(), generation.Request{Content: "x", NumQuestions: 3})
	require.NoError(t, err)
	assert.Len(t, qs, 3)
	assert.Equal(t, 2, qs[0].Points)

	assert.Equal(t, "Quiz on Local title content here...", gw.GetTitle(context.Background(), "Local title content here"))
}

func TestLocalInvoker_UnknownFunction(t *testing.T) {
	inv := NewLocalInvoker(aiquiz.NewService(testEngine(), nil))

	var out map[string]interface{}
	err := inv.Invoke(context.Background(), "nope", struct{}{}, &out)

	var unavailable *ErrRemoteUnavailable
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, http.StatusNotFound, unavailable.Status)
}
