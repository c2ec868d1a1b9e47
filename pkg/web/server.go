// Package web serves the rendered guide over HTTP. Everything is rendered
// once at construction; handlers only write bytes.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"ytguide/pkg/guide"
	"ytguide/pkg/models"
	"ytguide/pkg/render"

	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// Server is the read-only HTTP transport for the guide.
type Server struct {
	page       []byte
	steps      []byte
	script     []byte
	scriptName string
	log        zerolog.Logger
}

// New renders page and script for serving.
func New(page models.Page, script string, log zerolog.Logger) (*Server, error) {
	blocks := render.Render(page.Steps)

	var html bytes.Buffer
	if err := render.WriteHTML(&html, page, blocks, render.HTMLOptions{Interactive: true}); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}

	steps, err := json.Marshal(blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode steps: %w", err)
	}

	return &Server{
		page:       html.Bytes(),
		steps:      append(steps, '\n'),
		script:     []byte(script),
		scriptName: guide.ScriptName,
		log:        log,
	}, nil
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, "text/html; charset=utf-8", s.page)
	})
	mux.HandleFunc("GET /steps.json", func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, "application/json; charset=utf-8", s.steps)
	})
	mux.HandleFunc("GET /script/"+s.scriptName, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.scriptName))
		writeBody(w, http.StatusOK, "text/plain; charset=utf-8", s.script)
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, "text/plain; charset=utf-8", []byte("ok\n"))
	})

	return s.logRequests(mux)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	s.log.Info().Str("addr", "http://"+ln.Addr().String()).Msg("serving guide")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info().Msg("server stopped")
	return nil
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func writeBody(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
