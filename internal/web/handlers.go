// Package web serves the document extraction form and JSON API.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/ukaji3/ciextract-go/pkg/ciextract"
	"github.com/ukaji3/ciextract-go/pkg/ciextract/output"
	"github.com/ukaji3/ciextract-go/pkg/ciextract/render"
	"go.uber.org/zap"
)

// APIResponse is the JSON envelope of every API endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Server serves one loaded workbook.
type Server struct {
	svc *ciextract.Service
	log *zap.Logger
	mux *http.ServeMux
}

// New creates a Server for svc. A nil logger disables logging.
func New(svc *ciextract.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{svc: svc, log: log, mux: http.NewServeMux()}
	s.mux.HandleFunc("/", s.indexHandler)
	s.mux.HandleFunc("/query", s.queryHandler)
	s.mux.HandleFunc("/api/functions", s.functionsHandler)
	s.mux.HandleFunc("/api/stages", s.stagesHandler)
	s.mux.HandleFunc("/api/choices", s.choicesHandler)
	s.mux.HandleFunc("/api/documents", s.documentsHandler)
	s.mux.HandleFunc("/health", s.healthHandler)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) basePage() pageData {
	data := pageData{
		Functions: s.svc.ListGroupingKeys(),
		Stages:    s.svc.ListStageNames(),
	}
	if err := s.svc.Err(); err != nil {
		data.LoadError = ciextract.MsgSourceUnavailable + err.Error()
	}
	return data
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.renderPage(w, s.basePage())
}

func (s *Server) queryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	data := s.basePage()
	data.Function = r.FormValue("function")
	data.Selected = r.Form["stage"]

	if data.Function == "" || len(data.Selected) == 0 {
		data.Warning = ciextract.MsgSelectionRequired
		s.renderPage(w, data)
		return
	}

	table := s.svc.Table(data.Function, data.Selected)
	var buf bytes.Buffer
	if err := render.HTML(&buf, table); err != nil {
		s.log.Error("table render failed", zap.Error(err))
		http.Error(w, "Failed to render results", http.StatusInternalServerError)
		return
	}
	data.Table = template.HTML(buf.String())
	s.renderPage(w, data)
}

func (s *Server) renderPage(w http.ResponseWriter, data pageData) {
	w.Header().Set("Cache-Control", "no-cache")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.log.Error("template error", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) functionsHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: s.svc.ListGroupingKeys()})
}

func (s *Server) stagesHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: s.svc.ListStageNames()})
}

func (s *Server) choicesHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: output.Choices{
		Functions: s.svc.ListGroupingKeys(),
		Stages:    s.svc.ListStageNames(),
	}})
}

func (s *Server) documentsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSON(w, http.StatusMethodNotAllowed, APIResponse{Success: false, Error: "Method not allowed"})
		return
	}
	q := r.URL.Query()
	function := q.Get("function")
	stages := q["stage"]
	if function == "" || len(stages) == 0 {
		s.writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Error: ciextract.MsgSelectionRequired})
		return
	}

	table := s.svc.Table(function, stages)
	s.writeJSON(w, http.StatusOK, APIResponse{Success: table.Error == "", Data: table, Error: table.Error})
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if s.svc.Err() != nil {
		status = "degraded"
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    status,
		"source":    s.svc.Source(),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("json encode failed", zap.Error(err))
	}
}
