package aiquiz

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractor_Placeholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("whatever"))
	}))
	defer srv.Close()

	text, err := NewExtractor(ExtractionPlaceholder, srv.Client()).Extract(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != ExtractedPlaceholder {
		t.Errorf("text = %q", text)
	}
}

func TestExtractor_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewExtractor(ExtractionPlaceholder, srv.Client()).Extract(context.Background(), srv.URL)
	if !errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
}

func TestExtractor_RejectsNonHTTPSchemes(t *testing.T) {
	e := NewExtractor(ExtractionPlaceholder, nil)

	for _, ref := range []string{"file:///etc/passwd", "gopher://127.0.0.1:6379/_INFO", "ftp://files.example.com/a.pdf", "notes.pdf"} {
		if _, err := e.Extract(context.Background(), ref); !errors.Is(err, ErrExtractionFailed) {
			t.Errorf("%s: expected ErrExtractionFailed, got %v", ref, err)
		}
	}
}

func TestExtractor_TransportError(t *testing.T) {
	_, err := NewExtractor(ExtractionPlaceholder, nil).Extract(context.Background(), "http://127.0.0.1:0/file")
	if !errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
}

func TestExtractor_PDFModeFallsBackForNonPDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("just text, not a pdf"))
	}))
	defer srv.Close()

	text, err := NewExtractor(ExtractionPDF, srv.Client()).Extract(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != ExtractedPlaceholder {
		t.Errorf("text = %q", text)
	}
}

func TestPDFText_BrokenPDF(t *testing.T) {
	if got := pdfText([]byte("%PDF-1.4 garbage"), 100); got != "" {
		t.Errorf("expected empty text for broken pdf, got %q", got)
	}
}
