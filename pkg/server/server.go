// Package server exposes the converter over HTTP: upload a saved
// statement page, get the OFX or CSV back.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/yacoob/aib2ofx/pkg/export"
	"github.com/yacoob/aib2ofx/pkg/models"
)

type Server struct {
	logger   *log.Logger
	exporter *export.Exporter
	mux      *http.ServeMux
}

func New(logger *log.Logger, exporter *export.Exporter) *Server {
	s := &Server{
		logger:   logger,
		exporter: exporter,
		mux:      http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

// Start starts the HTTP server.
func (s *Server) Start(addr string) error {
	s.logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/convert", s.withLogging(s.handleConvert))
	s.mux.HandleFunc("/api/balances", s.withLogging(s.handleBalances))
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// handleConvert accepts a multipart "statement" file plus a "format"
// field and responds with the converted document as a download.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	file, header, err := r.FormFile("statement")
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "statement file required", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to read file", err)
		return
	}

	formatName := r.FormValue("format")
	if formatName == "" {
		formatName = export.FormatOFX
	}

	converted, err := s.exporter.Convert(data, formatName)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, models.ErrNoTransactions) {
			status = http.StatusUnprocessableEntity
		}
		s.respondError(w, r, status, "failed to convert statement", err)
		return
	}

	s.logger.Info("converted statement", "file", header.Filename, "format", formatName, "bytes", len(converted))

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", header.Filename+"."+formatName))
	if _, err := w.Write(converted); err != nil {
		s.logger.Warn("failed to write response", "err", err)
	}
}

// handleBalances accepts a multipart "overview" file and persists the
// available balances found on it.
func (s *Server) handleBalances(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	file, _, err := r.FormFile("overview")
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "overview file required", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to read file", err)
		return
	}

	captured, err := s.exporter.CaptureBalances(data)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to capture balances", err)
		return
	}

	if err := s.writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"captured": captured,
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// --- helpers ---

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	_ = s.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// withLogging wraps a handler to log requests and recover panics.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next(w, r)
	}
}
