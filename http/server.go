package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/urlinfo"
	"golang.org/x/time/rate"
)

// DefaultHistoryPageSize is the number of entries /api/history returns when
// no limit is given.
const DefaultHistoryPageSize = 20

const (
	maxRequestBody  = 1 << 20 // 1 MB
	shutdownTimeout = 5 * time.Second
)

// Server exposes the pipeline as a JSON API.
type Server struct {
	Scraper urlinfo.Scraper

	// History enables the /api/history routes when set.
	History urlinfo.HistoryService

	// Limiter rejects requests with 429 when set.
	Limiter *rate.Limiter

	Logger *slog.Logger
}

// NewServer creates a new Server for scraper.
func NewServer(scraper urlinfo.Scraper, logger *slog.Logger) *Server {
	return &Server{Scraper: scraper, Logger: logger}
}

// Handler returns the routes wrapped in request ID, logging and rate
// limiting middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/getUrlInfo", s.handleGetURLInfo)
	if s.History != nil {
		mux.HandleFunc("GET /api/history", s.handleListHistory)
		mux.HandleFunc("GET /api/history/{id}", s.handleGetHistory)
	}

	var h http.Handler = mux
	h = s.rateLimit(h)
	h = s.logging(h)
	h = requestID(h)
	return h
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	s.logger().Info("server listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type getURLInfoRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleGetURLInfo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req getURLInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.renderError(w, http.StatusBadRequest, `invalid request body: send a JSON object with a "url" field`)
		return
	}
	if req.URL == "" {
		s.renderError(w, http.StatusBadRequest, `the "url" field is required`)
		return
	}

	report, err := s.Scraper.Scrape(r.Context(), req.URL)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.renderJSON(w, http.StatusOK, report)
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	filter := urlinfo.HistoryFilter{Limit: DefaultHistoryPageSize}

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.renderError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		filter.Limit = n
	}
	if v := r.URL.Query().Get("url"); v != "" {
		filter.SourceURL = &v
	}

	entries, err := s.History.FindEntries(r.Context(), filter)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.renderJSON(w, http.StatusOK, entries)
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	entry, err := s.History.FindEntryByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.renderJSON(w, http.StatusOK, entry)
}

// handleError maps application error codes to HTTP status codes.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	code := urlinfo.ErrorCode(err)

	status := http.StatusInternalServerError
	switch code {
	case urlinfo.EINVALID:
		status = http.StatusBadRequest
	case urlinfo.ENOTFOUND:
		status = http.StatusNotFound
	}

	if code == urlinfo.EINTERNAL {
		s.logger().Error("request failed",
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
			"err", err,
		)
	}

	s.renderError(w, status, urlinfo.ErrorMessage(err))
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) renderJSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		s.logger().Error("failed to encode response", "err", err)
		http.Error(w, `{"error":"Internal error."}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) renderError(w http.ResponseWriter, status int, message string) {
	s.renderJSON(w, status, errorResponse{Error: message})
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
