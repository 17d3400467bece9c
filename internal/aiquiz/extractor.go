package aiquiz

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	pdf "rsc.io/pdf"
)

// ExtractedPlaceholder stands in for document text after a successful fetch.
const ExtractedPlaceholder = "Document content extracted successfully."

const (
	ExtractionPlaceholder = "placeholder"
	ExtractionPDF         = "pdf"

	maxFileBytes = 20 << 20
	maxPDFChars  = 12000
)

var ErrExtractionFailed = errors.New("file content extraction failed")

// Extractor turns a file reference into text.
type Extractor interface {
	Extract(ctx context.Context, fileURL string) (string, error)
}

type httpExtractor struct {
	client *http.Client
	mode   string
}

func NewExtractor(mode string, client *http.Client) Extractor {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if mode != ExtractionPDF {
		mode = ExtractionPlaceholder
	}
	return &httpExtractor{client: client, mode: mode}
}

func (e *httpExtractor) Extract(ctx context.Context, fileURL string) (string, error) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrExtractionFailed, u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: failed to fetch file: %s", ErrExtractionFailed, resp.Status)
	}

	if e.mode != ExtractionPDF {
		return ExtractedPlaceholder, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFileBytes))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if text := pdfText(body, maxPDFChars); text != "" {
		return text, nil
	}
	return ExtractedPlaceholder, nil
}

// pdfText returns the text layer of a PDF, or "" when data is not a PDF or
// has no text.
func pdfText(data []byte, maxChars int) (text string) {
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return ""
	}
	defer func() {
		// rsc.io/pdf panics on some malformed streams.
		if recover() != nil {
			text = ""
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var buf bytes.Buffer
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, t := range p.Content().Text {
			buf.WriteString(t.S)
		}
		buf.WriteString("\n\n")
		if buf.Len() >= maxChars {
			break
		}
	}

	out := bytes.TrimSpace(buf.Bytes())
	if len(out) > maxChars {
		out = out[:maxChars]
	}
	return string(out)
}
