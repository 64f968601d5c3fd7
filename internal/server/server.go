// Package server serves the vocabulary payload and the static search page.
package server

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"vocabsearch/internal/server/web"
	"vocabsearch/internal/vocab"
)

// VocabVersion is reported by api/vocabVer
const VocabVersion = "1"

const (
	maxEchoedTarget = 100
	notFoundHead    = "<!DOCTYPE html><meta charset=utf-8><title>Error 404 (Not Found)</title><p><b>404</b> Not Found.<p>The resource <code>"
	notFoundTail    = "</code> was not found."
)

var targetEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;", "&", "&amp;")

// Options configures a Server
type Options struct {
	// RateLimit is the allowed requests per second; 0 disables limiting
	RateLimit float64
	RateBurst int
	Logger    *slog.Logger
}

// asset is a static file kept gzip-compressed in memory
type asset struct {
	mime string
	gzip []byte
}

// Server is the HTTP handler of `vocabsearch serve`
type Server struct {
	payload *vocab.Payload
	assets  map[string]asset
	limiter *rate.Limiter
	metrics *Metrics
	logger  *slog.Logger
}

// New creates a server for payload
func New(payload *vocab.Payload, opts Options) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	assets, err := loadAssets(web.FS(), web.Routes)
	if err != nil {
		return nil, err
	}

	s := &Server{
		payload: payload,
		assets:  assets,
		metrics: NewMetrics(),
		logger:  logger,
	}
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	s.metrics.vocabEntries.Set(float64(len(payload.Entries())))
	return s, nil
}

// Metrics returns the server's collectors
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	route := s.serve(rec, r)

	elapsed := time.Since(start)
	s.metrics.requests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
	s.metrics.latency.WithLabelValues(route).Observe(elapsed.Seconds())
	s.logger.Info("request",
		"method", r.Method,
		"target", r.RequestURI,
		"status", rec.status,
		"bytes", rec.bytes,
		"remote", r.RemoteAddr,
		"duration", elapsed)
}

// serve writes the response and returns the route label for metrics
func (s *Server) serve(w http.ResponseWriter, r *http.Request) string {
	if s.limiter != nil && !s.limiter.Allow() {
		s.metrics.rateLimited.Inc()
		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		return "limited"
	}
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return "bad_request"
	}

	switch p := r.URL.Path; {
	case p == "/api/vocab":
		writeBody(w, "text/plain", true, s.payload.Gzip)
		return "vocab"
	case p == "/api/vocabVer":
		writeBody(w, "text/plain", false, []byte(VocabVersion))
		return "vocab_version"
	case p == "/metrics":
		s.metrics.Handler().ServeHTTP(w, r)
		return "metrics"
	default:
		if a, ok := s.assets[p]; ok {
			writeBody(w, a.mime, true, a.gzip)
			return "static"
		}
	}

	s.notFound(w, r)
	return "not_found"
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	target := r.RequestURI
	if len(target) > maxEchoedTarget {
		target = target[:maxEchoedTarget]
	}
	body := notFoundHead + targetEscaper.Replace(target) + notFoundTail

	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(body))
}

func writeBody(w http.ResponseWriter, mime string, gzipped bool, body []byte) {
	h := w.Header()
	h.Set("Content-Type", mime+"; charset=UTF-8")
	h.Set("Content-Length", strconv.Itoa(len(body)))
	if gzipped {
		h.Set("Content-Encoding", "gzip")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// mimeType picks the content type from the file extension
func mimeType(name string) string {
	switch path.Ext(name) {
	case ".js":
		return "text/javascript"
	case ".css":
		return "text/css"
	default:
		return "text/html"
	}
}

func loadAssets(files fs.FS, routes map[string]string) (map[string]asset, error) {
	assets := make(map[string]asset, len(routes))
	for route, name := range routes {
		data, err := fs.ReadFile(files, name)
		if err != nil {
			return nil, fmt.Errorf("missing static file %s: %w", name, err)
		}
		p, err := vocab.NewPayload(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to compress %s: %w", name, err)
		}
		assets[route] = asset{mime: mimeType(name), gzip: p.Gzip}
	}
	return assets, nil
}

// statusRecorder remembers the status code and size of a response
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}
