package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Simplici0/studio/internal/apperr"
	"github.com/Simplici0/studio/internal/contact"
	"github.com/Simplici0/studio/internal/intake"
	"github.com/Simplici0/studio/internal/pricing"
)

const maxJSONBody = 1 << 20

type intakeResponse struct {
	OK bool `json:"ok"`
	intake.Outcome
}

type contactResponse struct {
	OK bool `json:"ok"`
	contact.Result
}

type platformResponse struct {
	Platform pricing.Platform `json:"platform"`
	Label    string           `json:"label"`
}

type pagesRequest struct {
	Sections []pricing.Section     `json:"sections"`
	Counts   pricing.SectionCounts `json:"counts"`
}

type pagesResponse struct {
	Pages int `json:"pages"`
}

func (s *server) decodeIntake(r *http.Request) (intake.Request, error) {
	req, err := intake.DecodeJSON(r.Body)
	if err != nil {
		return intake.Request{}, apperr.BadRequest("Invalid JSON body.")
	}
	return req, nil
}

func (s *server) handleIntakeAPI(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeIntake(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	outcome, err := s.intake.Submit(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, intakeResponse{OK: true, Outcome: outcome})
}

func (s *server) handleContactAPI(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 50<<20)

	sub, err := contact.Parse(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.contact.Submit(r.Context(), sub)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contactResponse{OK: true, Result: res})
}

func (s *server) handleQuotePreview(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeIntake(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	quote, err := s.intake.Preview(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (s *server) handleQuotePlatform(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeIntake(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	platform := s.engine.DerivePlatform(req.WithDefaults().QuoteInput())
	writeJSON(w, http.StatusOK, platformResponse{
		Platform: platform,
		Label:    s.engine.Catalog().Platforms[platform].Label,
	})
}

func (s *server) handleQuotePages(w http.ResponseWriter, r *http.Request) {
	var req pagesRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&req); err != nil {
		s.writeError(w, r, apperr.BadRequest("Invalid JSON body."))
		return
	}
	writeJSON(w, http.StatusOK, pagesResponse{Pages: s.engine.DerivePageCount(req.Sections, req.Counts)})
}

func (s *server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	view, ok := s.engine.Sitemap(pricing.SiteType(chi.URLParam(r, "siteType")))
	if !ok {
		s.writeError(w, r, apperr.NotFound("Unknown site type."))
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newCatalogView(s.engine.Catalog()))
}
