package intake

import (
	"time"

	"github.com/Simplici0/studio/internal/pricing"
)

// Contact is the submitter's details as shown in notifications.
type Contact struct {
	Name       string
	Company    string
	Email      string
	Phone      string
	Website    string
	LaunchDate string
}

// Figure is a labelled quantity.
type Figure struct {
	Label string
	Value int
}

// QuoteLine is a breakdown row with a formatted amount.
type QuoteLine struct {
	Label  string
	Amount string
}

// QuoteSummary is the priced part of a notification.
type QuoteSummary struct {
	Formatted  string
	Lines      []QuoteLine
	Platform   string
	TotalPages int
}

// Summary is a submission resolved to human-readable labels.
type Summary struct {
	ID            string
	SubmittedAt   time.Time
	Contact       Contact
	SiteType      string
	Rebuild       bool
	Timeline      string
	Pages         []string
	PagesToUpdate []string
	PagesToAdd    []string
	Counts        []Figure
	Extras        []Figure
	Content       string
	Complexity    string
	LeadGen       string
	Integrations  []string
	Services      []string
	Notes         string
	Quote         QuoteSummary
}

// Summarize resolves req and its quote against cat. Unknown keys are shown
// as submitted.
func Summarize(cat *pricing.Catalog, id string, at time.Time, req Request, res pricing.Result) Summary {
	s := Summary{
		ID:          id,
		SubmittedAt: at,
		Contact: Contact{
			Name:       req.Name,
			Company:    req.Company,
			Email:      req.Email,
			Phone:      req.Phone,
			Website:    req.Website,
			LaunchDate: req.LaunchDate,
		},
		SiteType:      res.Meta.SiteTypeLabel,
		Rebuild:       bool(req.IsRebuild),
		Timeline:      res.Meta.TimelineLabel,
		Pages:         sectionLabels(cat, req.SelectedPages),
		PagesToUpdate: sectionLabels(cat, req.SelectedPagesToUpdate),
		PagesToAdd:    sectionLabels(cat, req.SelectedPagesToAdd),
		Content:       contentLabel(cat, req.ContentHandling),
		LeadGen:       leadGenLabel(cat, req.LeadGenType),
		Notes:         req.ExtraNotes,
		Quote: QuoteSummary{
			Formatted:  pricing.FormatQuote(res),
			Platform:   res.Meta.PlatformLabel,
			TotalPages: res.Meta.TotalPages,
		},
	}

	s.Counts = figures(
		Figure{"Service detail pages", int(req.ServiceDetailsCount)},
		Figure{"Case studies", int(req.CaseStudyCount)},
		Figure{"Courses", int(req.CourseCount)},
		Figure{"Product detail pages", int(req.ProductDetailsCount)},
	)

	switch pricing.SiteType(req.SiteType) {
	case pricing.SiteCreative:
		s.Extras = figures(Figure{"Portfolio projects", int(req.ProjectCount)})
	case pricing.SiteRetail, pricing.SiteRetailShipping:
		s.Extras = figures(Figure{"Products", int(req.ProductCount)})
	case pricing.SiteWebApp:
		s.Complexity = complexityLabel(cat, req.FeatureComplexity)
	}

	for _, key := range req.Integrations {
		if spec, ok := cat.Integrations[pricing.Integration(key)]; ok {
			s.Integrations = append(s.Integrations, spec.Label)
		} else {
			s.Integrations = append(s.Integrations, key)
		}
	}

	if req.WantsCustomAnimations {
		s.Services = append(s.Services, "Custom animations")
	}
	if req.IsBudgetConscious {
		s.Services = append(s.Services, "Budget-conscious build")
	}
	if req.WantsBrandKit {
		s.Services = append(s.Services, cat.BrandKit.Label)
	}

	for _, item := range res.Breakdown {
		s.Quote.Lines = append(s.Quote.Lines, QuoteLine{
			Label:  item.Label,
			Amount: pricing.FormatAmount(item.Amount),
		})
	}
	return s
}

// DisplayName is who the submission is from, for subjects and filenames.
func (s Summary) DisplayName() string {
	switch {
	case s.Contact.Name != "":
		return s.Contact.Name
	case s.Contact.Company != "":
		return s.Contact.Company
	default:
		return "New Client"
	}
}

func figures(in ...Figure) []Figure {
	var out []Figure
	for _, f := range in {
		if f.Value > 0 {
			out = append(out, f)
		}
	}
	return out
}

func sectionLabels(cat *pricing.Catalog, keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if spec, ok := cat.Sections[pricing.Section(key)]; ok {
			out = append(out, spec.Label)
		} else {
			out = append(out, key)
		}
	}
	return out
}

func contentLabel(cat *pricing.Catalog, key string) string {
	if spec, ok := cat.Content[pricing.ContentHandling(key)]; ok {
		return spec.Label
	}
	return key
}

func leadGenLabel(cat *pricing.Catalog, key string) string {
	if spec, ok := cat.LeadGen[pricing.LeadGenType(key)]; ok {
		return spec.Label
	}
	return key
}

func complexityLabel(cat *pricing.Catalog, key string) string {
	if key == "" {
		key = string(pricing.ComplexityMedium)
	}
	if spec, ok := cat.Complexity[pricing.FeatureComplexity(key)]; ok {
		return spec.Label
	}
	return key
}
