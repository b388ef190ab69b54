package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Simplici0/studio/internal/contact"
	"github.com/Simplici0/studio/internal/content"
	"github.com/Simplici0/studio/internal/intake"
	"github.com/Simplici0/studio/internal/logging"
	"github.com/Simplici0/studio/internal/pricing"
)

const requestTimeout = 30 * time.Second

type server struct {
	log          zerolog.Logger
	engine       *pricing.Engine
	intake       *intake.Service
	contact      *contact.Service
	blog         *content.Blog
	templatesDir string
	staticDir    string
	ratePerMin   int
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir))))
	r.Get("/healthz", s.handleHealth)

	r.Get("/", s.handleHome)
	r.Get("/services", s.handleServices)
	r.Get("/blog", s.handleBlogIndex)
	r.Get("/blog/{slug}", s.handleBlogPost)
	r.Get("/projects/{slug}", s.handleProject)
	r.Get("/intake", s.handleIntakeForm)

	limiter := newIPRateLimiter(s.ratePerMin)

	r.With(limiter.middleware).Post("/intake", s.handleIntakeFormSubmit)

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Get("/sitemaps/{siteType}", s.handleSitemap)

		r.Group(func(r chi.Router) {
			r.Use(limiter.middleware)
			r.Post("/intake", s.handleIntakeAPI)
			r.Post("/contact", s.handleContactAPI)
			r.Post("/quote/preview", s.handleQuotePreview)
			r.Post("/quote/platform", s.handleQuotePlatform)
			r.Post("/quote/pages", s.handleQuotePages)
		})
	})

	r.NotFound(s.handleNotFound)
	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
