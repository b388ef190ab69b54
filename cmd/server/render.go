package main

import (
	"encoding/json"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Simplici0/studio/internal/apperr"
	"github.com/Simplici0/studio/internal/pricing"
)

const unexpectedError = "Unexpected error. Please try again."

var templateFuncs = template.FuncMap{
	"money": pricing.FormatAmount,
	"date": func(t time.Time) string {
		return t.Format("January 2, 2006")
	},
	"ago":  humanize.Time,
	"join": strings.Join,
}

func (s *server) renderTemplate(w http.ResponseWriter, status int, page string, data any) {
	templates, err := template.New("layout.html").Funcs(templateFuncs).ParseFiles(
		filepath.Join(s.templatesDir, "layout.html"),
		filepath.Join(s.templatesDir, page),
	)
	if err != nil {
		s.log.Error().Err(err).Str("template", page).Msg("parse template")
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, "layout.html", data); err != nil {
		s.log.Error().Err(err).Str("template", page).Msg("render template")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func statusFor(err error) int {
	return apperr.Status(err)
}

func publicMessage(err error) string {
	return apperr.PublicMessage(err, unexpectedError)
}

func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	writeJSON(w, status, errorResponse{Error: publicMessage(err)})
}
