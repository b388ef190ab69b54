package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Simplici0/studio/internal/content"
	"github.com/Simplici0/studio/internal/intake"
	"github.com/Simplici0/studio/internal/pricing"
)

const latestPostsOnHome = 3

type baseViewData struct {
	Title          string
	ErrorMessage   string
	SuccessMessage string
}

type serviceOffering struct {
	Name        string
	Description string
}

var offerings = []serviceOffering{
	{Name: "Brand Identity", Description: "Logo marks, color systems and brand kits that carry across every surface."},
	{Name: "Design & Dev", Description: "Sites built on the right platform for the job, from website builders to custom Next.js apps."},
	{Name: "Motion & Media", Description: "Custom animation and media that make a site feel alive without slowing it down."},
	{Name: "Launch Support", Description: "Domains, analytics, integrations and handoff so launch day is uneventful."},
}

type homeViewData struct {
	baseViewData
	Projects []content.Project
	Posts    []content.Post
	Services []serviceOffering
}

type sitePriceView struct {
	Label     string
	BasePrice int64
	BasePages int
}

type servicesViewData struct {
	baseViewData
	Services  []serviceOffering
	SiteTypes []sitePriceView
}

type blogIndexViewData struct {
	baseViewData
	Posts          []content.Post
	Tags           []string
	Series         []string
	SelectedTag    string
	SelectedSeries string
}

type blogPostViewData struct {
	baseViewData
	Post    content.Post
	Project *content.Project
}

type projectViewData struct {
	baseViewData
	Project content.Project
	Posts   []content.Post
}

type intakeFormViewData struct {
	baseViewData
	Catalog catalogView
}

type intakeResultViewData struct {
	baseViewData
	Outcome intake.Outcome
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, http.StatusOK, "home.html", homeViewData{
		baseViewData: baseViewData{Title: "Studio"},
		Projects:     content.FeaturedProjects(),
		Posts:        s.blog.Latest(latestPostsOnHome),
		Services:     offerings,
	})
}

func (s *server) handleServices(w http.ResponseWriter, r *http.Request) {
	cat := s.engine.Catalog()
	sites := make([]sitePriceView, 0, len(pricing.SiteTypes()))
	for _, st := range pricing.SiteTypes() {
		spec := cat.SiteTypes[st]
		sites = append(sites, sitePriceView{Label: spec.Label, BasePrice: spec.BasePrice, BasePages: spec.BasePages})
	}

	s.renderTemplate(w, http.StatusOK, "services.html", servicesViewData{
		baseViewData: baseViewData{Title: "Services"},
		Services:     offerings,
		SiteTypes:    sites,
	})
}

func (s *server) handleBlogIndex(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	series := r.URL.Query().Get("series")

	s.renderTemplate(w, http.StatusOK, "blog.html", blogIndexViewData{
		baseViewData:   baseViewData{Title: "Blog"},
		Posts:          s.blog.Filter(tag, series),
		Tags:           s.blog.Tags(),
		Series:         s.blog.Series(),
		SelectedTag:    tag,
		SelectedSeries: series,
	})
}

func (s *server) handleBlogPost(w http.ResponseWriter, r *http.Request) {
	post, ok := s.blog.Post(chi.URLParam(r, "slug"))
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	data := blogPostViewData{baseViewData: baseViewData{Title: post.Title}, Post: post}
	if project, ok := content.ProjectBySlug(post.Project); ok {
		data.Project = &project
	}
	s.renderTemplate(w, http.StatusOK, "post.html", data)
}

func (s *server) handleProject(w http.ResponseWriter, r *http.Request) {
	project, ok := content.ProjectBySlug(chi.URLParam(r, "slug"))
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	s.renderTemplate(w, http.StatusOK, "project.html", projectViewData{
		baseViewData: baseViewData{Title: project.Title},
		Project:      project,
		Posts:        s.blog.ForProject(project.Slug),
	})
}

func (s *server) handleIntakeForm(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, http.StatusOK, "intake.html", intakeFormViewData{
		baseViewData: baseViewData{Title: "Start a project"},
		Catalog:      newCatalogView(s.engine.Catalog()),
	})
}

func (s *server) handleIntakeFormSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	outcome, err := s.intake.Submit(r.Context(), intake.FromForm(r.PostForm))
	if err != nil {
		s.renderTemplate(w, statusFor(err), "intake.html", intakeFormViewData{
			baseViewData: baseViewData{Title: "Start a project", ErrorMessage: publicMessage(err)},
			Catalog:      newCatalogView(s.engine.Catalog()),
		})
		return
	}

	s.renderTemplate(w, http.StatusOK, "intake_result.html", intakeResultViewData{
		baseViewData: baseViewData{Title: "Your estimate", SuccessMessage: "Thanks! We received your project details."},
		Outcome:      outcome,
	})
}

func (s *server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
		return
	}
	s.renderTemplate(w, http.StatusNotFound, "not_found.html", baseViewData{Title: "Not found"})
}
