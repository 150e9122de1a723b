package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/docqa"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// DefaultMaxUploadSize bounds the size of an ask request body.
const DefaultMaxUploadSize = 10 << 20

// DefaultRequestTimeout bounds the handling of a single request.
const DefaultRequestTimeout = 2 * time.Minute

// MaxURLs is the number of web sources accepted per question.
const MaxURLs = 3

const shutdownTimeout = 5 * time.Second

// Server exposes a docqa.Asker over HTTP.
type Server struct {
	router   chi.Router
	asker    docqa.Asker
	logger   *slog.Logger
	validate *validator.Validate

	maxUploadSize  int64
	requestTimeout time.Duration
	metrics        http.Handler
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithMaxUploadSize sets the largest accepted request body in bytes.
func WithMaxUploadSize(n int64) ServerOption {
	return func(s *Server) {
		s.maxUploadSize = n
	}
}

// WithRequestTimeout sets the per-request deadline.
func WithRequestTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		s.requestTimeout = d
	}
}

// WithMetrics serves h on GET /metrics.
func WithMetrics(h http.Handler) ServerOption {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewServer returns a Server answering questions with asker.
func NewServer(asker docqa.Asker, logger *slog.Logger, opts ...ServerOption) *Server {
	s := &Server{
		asker:          asker,
		logger:         logger,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		maxUploadSize:  DefaultMaxUploadSize,
		requestTimeout: DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(s.requestTimeout))
	r.Use(recoverer(logger))
	r.Use(requestLogger(logger))

	r.Post("/api/ask", s.handleAsk)
	r.Get("/healthz", s.handleHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe listens on addr and serves until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// askRequest holds the validated form fields of an ask request. Malformed
// URLs pass through and surface as warnings from the session.
type askRequest struct {
	Question string   `validate:"max=4000"`
	URLs     []string `validate:"max=3"`
}

type warningResponse struct {
	Source string `json:"source"`
	Code   string `json:"code"`
	Error  string `json:"error"`
}

type askResponse struct {
	SessionID     string            `json:"session_id"`
	Answer        string            `json:"answer"`
	ContextDigest string            `json:"context_digest"`
	Warnings      []warningResponse `json:"warnings"`
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > s.maxUploadSize {
		writeError(w, http.StatusRequestEntityTooLarge, docqa.EINVALID,
			fmt.Sprintf("request too large (max %d bytes)", s.maxUploadSize))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadSize)

	sources, req, err := s.parseAsk(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, docqa.EINVALID,
				fmt.Sprintf("request too large (max %d bytes)", s.maxUploadSize))
			return
		}
		s.fail(w, r, err)
		return
	}

	answer, err := s.asker.Ask(r.Context(), sources, req.Question)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	resp := askResponse{
		SessionID:     answer.SessionID,
		Answer:        answer.Text,
		ContextDigest: answer.ContextDigest,
		Warnings:      []warningResponse{},
	}
	for _, e := range answer.Warnings {
		resp.Warnings = append(resp.Warnings, warningResponse{
			Source: e.Source.String(),
			Code:   docqa.ErrorCode(e.Err),
			Error:  docqa.ErrorMessage(e.Err),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseAsk reads the form fields and optional PDF upload of an ask request.
func (s *Server) parseAsk(r *http.Request) ([]docqa.Source, askRequest, error) {
	var req askRequest

	if err := r.ParseMultipartForm(s.maxUploadSize); err != nil {
		if !errors.Is(err, http.ErrNotMultipart) {
			return nil, req, wrapFormError(err)
		}
		if err := r.ParseForm(); err != nil {
			return nil, req, wrapFormError(err)
		}
	}

	req.Question = r.FormValue("question")
	for _, u := range r.Form["url"] {
		if u = strings.TrimSpace(u); u != "" {
			req.URLs = append(req.URLs, u)
		}
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, req, docqa.Errorf(docqa.EINVALID, "%s", validationMessage(err))
	}

	sources := make([]docqa.Source, 0, len(req.URLs)+1)
	for _, u := range req.URLs {
		sources = append(sources, docqa.WebURL(u))
	}

	file, header, err := r.FormFile("pdf")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	case err != nil:
		return nil, req, wrapFormError(err)
	default:
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, req, wrapFormError(err)
		}
		sources = append(sources, docqa.PDFDocument(header.Filename, data))
	}

	return sources, req, nil
}

func wrapFormError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return docqa.Errorf(docqa.EINVALID, "malformed form: %v", err)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch {
	case fe.StructField() == "URLs" && fe.Tag() == "max":
		return fmt.Sprintf("at most %d URLs allowed", MaxURLs)
	case fe.StructField() == "Question":
		return "question too long"
	default:
		return fe.Error()
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := docqa.ErrorCode(err)
	status := statusForCode(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("ask failed",
			"code", code,
			"err", err,
			"request_id", middleware.GetReqID(r.Context()),
		)
	}
	writeError(w, status, code, docqa.ErrorMessage(err))
}

func statusForCode(code string) int {
	switch code {
	case docqa.EINVALID, docqa.EMISSINGINPUT:
		return http.StatusBadRequest
	case docqa.EBACKEND:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		s.logger.Warn("healthz write failed", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Error: message})
}
