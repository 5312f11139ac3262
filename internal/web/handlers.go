package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Iron-Ham/scoreboard/internal/scoreboard"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := renderPage(&buf, s.pageData()); err != nil {
		s.logger.Error("render page failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	team, err := scoreboard.ParseTeam(chi.URLParam(r, "team"))
	if err != nil {
		s.writeParseError(w, err)
		return
	}
	inc, err := scoreboard.ParseIncrement(chi.URLParam(r, "value"))
	if err != nil {
		s.writeParseError(w, err)
		return
	}

	s.board.Add(team, inc)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.board.ResetScore()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAPIScore(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(s.board.Snapshot())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// writeParseError maps scoreboard parse errors to HTTP status codes.
func (s *Server) writeParseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scoreboard.ErrUnknownTeam):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, scoreboard.ErrInvalidIncrement):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
