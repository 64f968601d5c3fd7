// Package loader fetches the vocabulary payload once at startup and parses
// it into entries.
package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"vocabsearch/internal/vocab"
)

// Paths of the vocabulary API, relative to the base URL
const (
	VocabPath   = "api/vocab"
	VersionPath = "api/vocabVer"
)

// Source yields the raw vocabulary payload
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// StatusError is returned when the server answers with a non-success status
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %s", e.URL, e.Status)
}

// HTTPSource fetches the payload from a vocabulary server
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource creates a source for the server at baseURL
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{BaseURL: baseURL, Client: http.DefaultClient}
}

// Fetch issues a single GET for api/vocab
func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	return s.get(ctx, VocabPath)
}

// Version returns the vocabulary version reported by the server
func (s *HTTPSource) Version(ctx context.Context) (string, error) {
	v, err := s.get(ctx, VersionPath)
	return strings.TrimSpace(v), err
}

func (s *HTTPSource) get(ctx context.Context, path string) (string, error) {
	target, err := resolve(s.BaseURL, path)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	// set explicitly so the body is not transparently decoded by net/http
	req.Header.Set("Accept-Encoding", "gzip")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: target, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var body io.Reader = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return "", fmt.Errorf("failed to decode %s: %w", target, err)
		}
		defer zr.Close()
		body = zr
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", target, err)
	}
	return string(data), nil
}

// resolve joins a relative API path onto base the way a browser resolves
// a relative link against the page URL.
func resolve(base, path string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q: scheme and host required", base)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path = u.Path[:strings.LastIndex(u.Path, "/")+1]
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", err
	}
	return u.ResolveReference(ref).String(), nil
}

// FileSource reads the payload from a local file, plain or gzip
type FileSource struct {
	Path string
}

// Fetch reads the whole file
func (s FileSource) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read vocabulary file: %w", err)
	}
	return vocab.Decode(data)
}
