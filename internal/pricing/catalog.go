package pricing

import (
	"errors"
	"fmt"
)

// SiteType identifies a kind of website the studio builds.
type SiteType string

const (
	SiteBillboard       SiteType = "billboard"
	SiteServiceBusiness SiteType = "serviceBusiness"
	SiteRetail          SiteType = "retail"
	SiteRetailShipping  SiteType = "retailShipping"
	SiteEducational     SiteType = "educational"
	SiteCreative        SiteType = "creative"
	SiteEvents          SiteType = "events"
	SiteWebApp          SiteType = "webapp"
)

// SiteTypes returns every site type in display order.
func SiteTypes() []SiteType {
	return []SiteType{
		SiteBillboard,
		SiteServiceBusiness,
		SiteRetail,
		SiteRetailShipping,
		SiteEducational,
		SiteCreative,
		SiteEvents,
		SiteWebApp,
	}
}

// Platform identifies the technology a site is built on.
type Platform string

const (
	PlatformBuilder Platform = "builder"
	PlatformWebflow Platform = "webflow"
	PlatformNextJS  Platform = "nextjs"
)

// Platforms returns every platform from cheapest to most custom.
func Platforms() []Platform {
	return []Platform{PlatformBuilder, PlatformWebflow, PlatformNextJS}
}

// ContentHandling identifies who is responsible for the site copy.
type ContentHandling string

const (
	ContentClient  ContentHandling = "client"
	ContentEditing ContentHandling = "editing"
	ContentFull    ContentHandling = "full"
)

func ContentHandlings() []ContentHandling {
	return []ContentHandling{ContentClient, ContentEditing, ContentFull}
}

// Integration identifies a third-party service wired into a site.
type Integration string

const (
	IntegrationGA4            Integration = "ga4"
	IntegrationSocialPixels   Integration = "socialPixels"
	IntegrationEmailMarketing Integration = "emailMarketing"
	IntegrationCRM            Integration = "crm"
	IntegrationPaymentGateway Integration = "paymentGateway"
	IntegrationBooking        Integration = "booking"
	IntegrationBlog           Integration = "blog"
	IntegrationSEO            Integration = "seo"
)

func Integrations() []Integration {
	return []Integration{
		IntegrationGA4,
		IntegrationSocialPixels,
		IntegrationEmailMarketing,
		IntegrationCRM,
		IntegrationPaymentGateway,
		IntegrationBooking,
		IntegrationBlog,
		IntegrationSEO,
	}
}

// LeadGenType identifies the complexity of a lead generator.
type LeadGenType string

const (
	LeadGenNone       LeadGenType = "none"
	LeadGenSimple     LeadGenType = "simple"
	LeadGenMultistep  LeadGenType = "multistep"
	LeadGenCalculator LeadGenType = "calculator"
	LeadGenAdvanced   LeadGenType = "advanced"
)

func LeadGenTypes() []LeadGenType {
	return []LeadGenType{LeadGenNone, LeadGenSimple, LeadGenMultistep, LeadGenCalculator, LeadGenAdvanced}
}

// Timeline identifies the delivery speed of a project.
type Timeline string

const (
	TimelineStandard Timeline = "standard"
	TimelineRush25   Timeline = "rush25"
	TimelineRush50   Timeline = "rush50"
)

func Timelines() []Timeline {
	return []Timeline{TimelineStandard, TimelineRush25, TimelineRush50}
}

// FeatureComplexity applies to web app builds only.
type FeatureComplexity string

const (
	ComplexityLow    FeatureComplexity = "low"
	ComplexityMedium FeatureComplexity = "medium"
	ComplexityHigh   FeatureComplexity = "high"
)

func FeatureComplexities() []FeatureComplexity {
	return []FeatureComplexity{ComplexityLow, ComplexityMedium, ComplexityHigh}
}

// SiteTypeSpec holds the pricing parameters of a site type.
type SiteTypeSpec struct {
	Label          string `json:"label"`
	BasePrice      int64  `json:"basePrice"`
	BasePages      int    `json:"basePages"`
	ExtraPagePrice int64  `json:"extraPagePrice"`
	// UpdatePagePrice is charged per updated page beyond the base on a rebuild.
	UpdatePagePrice int64 `json:"updatePagePrice"`

	BaseProjectsIncluded int   `json:"baseProjectsIncluded,omitempty"`
	ExtraProjectPrice    int64 `json:"extraProjectPrice,omitempty"`
	BaseProductsIncluded int   `json:"baseProductsIncluded,omitempty"`
	ExtraProductPrice    int64 `json:"extraProductPrice,omitempty"`
}

// PlatformSpec holds the flat adjustment applied to the base price.
type PlatformSpec struct {
	Label      string `json:"label"`
	Adjustment int64  `json:"adjustment"`
}

// ContentSpec holds the per-page content rate.
type ContentSpec struct {
	Label        string `json:"label"`
	PricePerPage int64  `json:"pricePerPage"`
}

// PricedOption is a labelled flat price.
type PricedOption struct {
	Label string `json:"label"`
	Price int64  `json:"price"`
}

// ComplexitySpec holds the flat web app surcharge.
type ComplexitySpec struct {
	Label      string `json:"label"`
	Adjustment int64  `json:"adjustment"`
}

// TimelineSpec holds the multiplier applied to the running total.
type TimelineSpec struct {
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// Catalog is the full set of reference tables used to price a quote.
// It is built once and never mutated afterwards.
type Catalog struct {
	SiteTypes         map[SiteType]SiteTypeSpec
	Platforms         map[Platform]PlatformSpec
	Content           map[ContentHandling]ContentSpec
	Integrations      map[Integration]PricedOption
	LeadGen           map[LeadGenType]PricedOption
	LeadGenAdjustment map[Platform]int64
	Timelines         map[Timeline]TimelineSpec
	Complexity        map[FeatureComplexity]ComplexitySpec
	Sections          map[Section]SectionSpec
	Sitemaps          map[SiteType]Sitemap
	BrandKit          PricedOption
}

// DefaultCatalog returns the studio's current price list.
func DefaultCatalog() *Catalog {
	return &Catalog{
		SiteTypes: map[SiteType]SiteTypeSpec{
			SiteBillboard: {
				Label: "Billboard / one-page site", BasePrice: 500, BasePages: 1,
				ExtraPagePrice: 150, UpdatePagePrice: 90,
			},
			SiteServiceBusiness: {
				Label: "Service business", BasePrice: 900, BasePages: 5,
				ExtraPagePrice: 150, UpdatePagePrice: 100,
			},
			SiteRetail: {
				Label: "Retail / Shop (non-sales)", BasePrice: 900, BasePages: 5,
				ExtraPagePrice: 150, UpdatePagePrice: 100,
				BaseProductsIncluded: 20, ExtraProductPrice: 20,
			},
			SiteRetailShipping: {
				Label: "Retail / Shop (sales & shipping)", BasePrice: 1500, BasePages: 5,
				ExtraPagePrice: 150, UpdatePagePrice: 100,
				BaseProductsIncluded: 20, ExtraProductPrice: 20,
			},
			SiteEducational: {
				Label: "Educational business", BasePrice: 1500, BasePages: 6,
				ExtraPagePrice: 150, UpdatePagePrice: 100,
			},
			SiteCreative: {
				Label: "Creative business", BasePrice: 900, BasePages: 6,
				ExtraPagePrice: 150, UpdatePagePrice: 100,
				BaseProjectsIncluded: 6, ExtraProjectPrice: 60,
			},
			SiteEvents: {
				Label: "Events (wedding, anniversary, etc.)", BasePrice: 750, BasePages: 4,
				ExtraPagePrice: 150, UpdatePagePrice: 100,
			},
			SiteWebApp: {
				Label: "Web app / SaaS (Next.js)", BasePrice: 3000, BasePages: 8,
				ExtraPagePrice: 150, UpdatePagePrice: 100,
			},
		},
		Platforms: map[Platform]PlatformSpec{
			PlatformBuilder: {Label: "Builder (GoDaddy / Wix / similar)", Adjustment: 0},
			PlatformWebflow: {Label: "Webflow", Adjustment: 400},
			PlatformNextJS:  {Label: "Custom Next.js", Adjustment: 1500},
		},
		Content: map[ContentHandling]ContentSpec{
			ContentClient:  {Label: "Client provides final copy & assets", PricePerPage: 0},
			ContentEditing: {Label: "Client drafts, studio edits & formats", PricePerPage: 50},
			ContentFull:    {Label: "Studio creates copy & source images", PricePerPage: 100},
		},
		Integrations: map[Integration]PricedOption{
			IntegrationGA4:            {Label: "Google Analytics 4 + Search Console + XML sitemap", Price: 150},
			IntegrationSocialPixels:   {Label: "Social pixels (Meta, LinkedIn, etc.)", Price: 150},
			IntegrationEmailMarketing: {Label: "Email marketing integration", Price: 250},
			IntegrationCRM:            {Label: "CRM integration", Price: 250},
			IntegrationPaymentGateway: {Label: "Payment gateway setup (Stripe / PayPal)", Price: 250},
			IntegrationBooking:        {Label: "Booking / scheduling integration", Price: 250},
			IntegrationBlog:           {Label: "Content Management System (CMS) / Blog admin", Price: 250},
			IntegrationSEO:            {Label: "SEO essentials (titles/meta/schema)", Price: 150},
		},
		LeadGen: map[LeadGenType]PricedOption{
			LeadGenNone:       {Label: "No dedicated lead generator", Price: 0},
			LeadGenSimple:     {Label: "Simple lead form (single step)", Price: 50},
			LeadGenMultistep:  {Label: "Multi-step quiz / form", Price: 100},
			LeadGenCalculator: {Label: "Interactive quote calculator", Price: 600},
			LeadGenAdvanced:   {Label: "Advanced lead app (custom flows, logic, storage)", Price: 1200},
		},
		LeadGenAdjustment: map[Platform]int64{
			PlatformNextJS:  -200,
			PlatformWebflow: 200,
			PlatformBuilder: 200,
		},
		Timelines: map[Timeline]TimelineSpec{
			TimelineStandard: {Label: "Standard timeline", Multiplier: 1.0},
			TimelineRush25:   {Label: "Rush (+25%)", Multiplier: 1.25},
			TimelineRush50:   {Label: "Super rush (+50%)", Multiplier: 1.5},
		},
		Complexity: map[FeatureComplexity]ComplexitySpec{
			ComplexityLow:    {Label: "Basic app (auth + basic pages)", Adjustment: 0},
			ComplexityMedium: {Label: "Moderate app (dashboards, roles, forms)", Adjustment: 1500},
			ComplexityHigh:   {Label: "Complex app (multi-tenant / realtime)", Adjustment: 3000},
		},
		Sections: defaultSections(),
		Sitemaps: defaultSitemaps(),
		BrandKit: PricedOption{Label: "Logo + Brand Kit Design", Price: 1000},
	}
}

// Validate checks that the catalog is internally consistent.
func (c *Catalog) Validate() error {
	var errs []error

	for _, st := range SiteTypes() {
		spec, ok := c.SiteTypes[st]
		if !ok {
			errs = append(errs, fmt.Errorf("site type %q: missing from catalog", st))
			continue
		}
		if spec.BasePrice < 0 || spec.ExtraPagePrice < 0 || spec.UpdatePagePrice < 0 ||
			spec.ExtraProjectPrice < 0 || spec.ExtraProductPrice < 0 {
			errs = append(errs, fmt.Errorf("site type %q: negative price", st))
		}
		if spec.BasePages < 0 || spec.BaseProjectsIncluded < 0 || spec.BaseProductsIncluded < 0 {
			errs = append(errs, fmt.Errorf("site type %q: negative included quantity", st))
		}
		if _, ok := c.Sitemaps[st]; !ok {
			errs = append(errs, fmt.Errorf("site type %q: no default sitemap", st))
		}
	}
	for _, p := range Platforms() {
		spec, ok := c.Platforms[p]
		if !ok {
			errs = append(errs, fmt.Errorf("platform %q: missing from catalog", p))
			continue
		}
		if spec.Adjustment < 0 {
			errs = append(errs, fmt.Errorf("platform %q: negative adjustment", p))
		}
	}
	for key, spec := range c.Content {
		if spec.PricePerPage < 0 {
			errs = append(errs, fmt.Errorf("content handling %q: negative price", key))
		}
	}
	for key, spec := range c.Integrations {
		if spec.Price < 0 {
			errs = append(errs, fmt.Errorf("integration %q: negative price", key))
		}
	}
	for key, spec := range c.LeadGen {
		if spec.Price < 0 {
			errs = append(errs, fmt.Errorf("lead generator %q: negative price", key))
		}
	}
	for key, spec := range c.Complexity {
		if spec.Adjustment < 0 {
			errs = append(errs, fmt.Errorf("feature complexity %q: negative adjustment", key))
		}
	}
	if _, ok := c.Timelines[TimelineStandard]; !ok {
		errs = append(errs, errors.New("timeline \"standard\": missing from catalog"))
	}
	for key, spec := range c.Timelines {
		if spec.Multiplier < 1.0 {
			errs = append(errs, fmt.Errorf("timeline %q: multiplier below 1.0", key))
		}
	}
	if c.BrandKit.Price < 0 {
		errs = append(errs, errors.New("brand kit: negative price"))
	}
	if home, ok := c.Sections[SectionHome]; !ok || !home.AlwaysIncluded {
		errs = append(errs, errors.New("section \"home\": missing or not always included"))
	}
	for key, spec := range c.Sections {
		if spec.PageCount < 0 {
			errs = append(errs, fmt.Errorf("section %q: negative page count", key))
		}
		if spec.RequiresCount && spec.PageCount != 0 {
			errs = append(errs, fmt.Errorf("section %q: count-driven section with fixed pages", key))
		}
	}
	for st, sm := range c.Sitemaps {
		for _, group := range [][]Section{sm.Core, sm.Recommended, sm.Optional} {
			for _, sec := range group {
				if _, ok := c.Sections[sec]; !ok {
					errs = append(errs, fmt.Errorf("sitemap %q: unknown section %q", st, sec))
				}
			}
		}
	}

	return errors.Join(errs...)
}
