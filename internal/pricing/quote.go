package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	noSiteTypeLabel = "None"
	noPlatformLabel = "N/A"
)

// Input is a normalized quote request. Zero values mean "not provided".
type Input struct {
	SiteType              SiteType          `json:"siteType,omitempty"`
	IsRebuild             bool              `json:"isRebuild"`
	Timeline              Timeline          `json:"timeline,omitempty"`
	ContentHandling       ContentHandling   `json:"contentHandling,omitempty"`
	LeadGenType           LeadGenType       `json:"leadGenType,omitempty"`
	Integrations          []Integration     `json:"integrations"`
	WantsCustomAnimations bool              `json:"wantsCustomAnimations"`
	IsBudgetConscious     bool              `json:"isBudgetConscious"`
	WantsBrandKit         bool              `json:"wantsBrandKit"`
	SelectedPages         []Section         `json:"selectedPages,omitempty"`
	SelectedPagesToUpdate []Section         `json:"selectedPagesToUpdate,omitempty"`
	SelectedPagesToAdd    []Section         `json:"selectedPagesToAdd,omitempty"`
	SectionCounts
	// Direct page counts used when no sections are selected.
	TotalPages   int `json:"totalPages,omitempty"`
	UpdatedPages int `json:"updatedPages,omitempty"`
	NewPages     int `json:"newPages,omitempty"`

	ProjectCount      int               `json:"projectCount,omitempty"`
	ProductCount      int               `json:"productCount,omitempty"`
	FeatureComplexity FeatureComplexity `json:"featureComplexity,omitempty"`
}

// LineItem is one row of the quote breakdown.
type LineItem struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// Meta describes how the quote was derived.
type Meta struct {
	TotalPages        int    `json:"totalPages"`
	BasePagesIncluded int    `json:"basePagesIncluded"`
	FreeNew           int    `json:"freeNew"`
	FreeUpdated       int    `json:"freeUpdated"`
	ExtraNew          int    `json:"extraNew"`
	ExtraUpdated      int    `json:"extraUpdated"`
	SiteTypeLabel     string `json:"siteTypeLabel"`
	PlatformLabel     string `json:"platformLabel"`
	TimelineLabel     string `json:"timelineLabel"`
}

// Result is a priced quote.
type Result struct {
	Total     int64      `json:"total"`
	Breakdown []LineItem `json:"breakdown"`
	Meta      Meta       `json:"meta"`
	// Platform is empty when no site type was priced.
	Platform Platform `json:"platform,omitempty"`
}

// Engine prices quotes against a catalog. It holds no mutable state and
// is safe for concurrent use.
type Engine struct {
	cat *Catalog
}

// New returns an Engine backed by cat.
func New(cat *Catalog) *Engine {
	return &Engine{cat: cat}
}

var defaultEngine = New(DefaultCatalog())

// Default returns the Engine backed by DefaultCatalog.
func Default() *Engine {
	return defaultEngine
}

// Catalog returns the catalog the engine prices against.
func (e *Engine) Catalog() *Catalog {
	return e.cat
}

type ledger struct {
	items []LineItem
	total int64
}

func (l *ledger) add(label string, amount int64) {
	l.items = append(l.items, LineItem{Label: label, Amount: amount})
	l.total += amount
}

// Compute prices a quote request.
func (e *Engine) Compute(in Input) Result {
	var l ledger
	meta := Meta{SiteTypeLabel: noSiteTypeLabel, PlatformLabel: noPlatformLabel}
	var platform Platform

	if site, ok := e.cat.SiteTypes[in.SiteType]; ok {
		platform = e.DerivePlatform(in)
		plat := e.cat.Platforms[platform]
		meta.SiteTypeLabel = site.Label
		meta.PlatformLabel = plat.Label

		l.add(fmt.Sprintf("%s · %s", site.Label, plat.Label), site.BasePrice+plat.Adjustment)

		split := e.reconcilePages(in, site)
		meta.TotalPages = split.total
		meta.BasePagesIncluded = split.base
		meta.FreeNew = split.freeNew
		meta.FreeUpdated = split.freeUpdated
		meta.ExtraNew = split.extraNew
		meta.ExtraUpdated = split.extraUpdated

		if split.extraNew > 0 && site.ExtraPagePrice > 0 {
			l.add(fmt.Sprintf("Additional new pages (%d × $%d)", split.extraNew, site.ExtraPagePrice),
				int64(split.extraNew)*site.ExtraPagePrice)
		}
		if split.extraUpdated > 0 && site.UpdatePagePrice > 0 {
			l.add(fmt.Sprintf("Updated pages beyond base (%d × $%d)", split.extraUpdated, site.UpdatePagePrice),
				int64(split.extraUpdated)*site.UpdatePagePrice)
		}

		if content, ok := e.cat.Content[in.ContentHandling]; ok && content.PricePerPage > 0 && split.total > 0 {
			l.add(fmt.Sprintf("Content: %s (%d × $%d)", content.Label, split.total, content.PricePerPage),
				int64(split.total)*content.PricePerPage)
		}

		e.addTypeExtras(&l, in, site)
		e.addLeadGen(&l, in, platform)

		for _, key := range in.Integrations {
			if integ, ok := e.cat.Integrations[key]; ok {
				l.add(integ.Label, integ.Price)
			}
		}
	}

	if in.WantsBrandKit {
		l.add(e.cat.BrandKit.Label, e.cat.BrandKit.Price)
	}

	timeline, ok := e.cat.Timelines[in.Timeline]
	if !ok {
		timeline = e.cat.Timelines[TimelineStandard]
	}
	meta.TimelineLabel = timeline.Label
	e.applyTimeline(&l, timeline)

	if l.items == nil {
		l.items = []LineItem{}
	}

	return Result{
		Total:     l.total,
		Breakdown: l.items,
		Meta:      meta,
		Platform:  platform,
	}
}

func (e *Engine) addTypeExtras(l *ledger, in Input, site SiteTypeSpec) {
	switch in.SiteType {
	case SiteCreative:
		extra := nonNegative(in.ProjectCount - site.BaseProjectsIncluded)
		if extra > 0 && site.ExtraProjectPrice > 0 {
			l.add(fmt.Sprintf("Extra portfolio projects (%d × $%d)", extra, site.ExtraProjectPrice),
				int64(extra)*site.ExtraProjectPrice)
		}
	case SiteRetail, SiteRetailShipping:
		extra := nonNegative(in.ProductCount - site.BaseProductsIncluded)
		if extra > 0 && site.ExtraProductPrice > 0 {
			l.add(fmt.Sprintf("Extra products (%d × $%d)", extra, site.ExtraProductPrice),
				int64(extra)*site.ExtraProductPrice)
		}
	case SiteWebApp:
		key := in.FeatureComplexity
		if key == "" {
			key = ComplexityMedium
		}
		if fc, ok := e.cat.Complexity[key]; ok && fc.Adjustment > 0 {
			l.add("App feature complexity: "+fc.Label, fc.Adjustment)
		}
	}
}

func (e *Engine) addLeadGen(l *ledger, in Input, platform Platform) {
	lg, ok := e.cat.LeadGen[in.LeadGenType]
	if !ok || lg.Price <= 0 {
		return
	}

	hybrid := isHybridLeadGen(in, platform)
	billedAs := platform
	if hybrid {
		billedAs = PlatformNextJS
	}

	cost := max(lg.Price+e.cat.LeadGenAdjustment[billedAs], 0)
	if cost == 0 {
		return
	}

	label := "Lead generator: " + lg.Label
	if hybrid {
		label += " (Next.js app embedded in Webflow)"
	}
	l.add(label, cost)
}

// applyTimeline scales the running total and records the difference as a
// surcharge. Rounding is half away from zero on whole currency units.
func (e *Engine) applyTimeline(l *ledger, timeline TimelineSpec) {
	if timeline.Multiplier == 1.0 || timeline.Multiplier <= 0 {
		return
	}

	pre := l.total
	final := decimal.NewFromInt(pre).
		Mul(decimal.NewFromFloat(timeline.Multiplier)).
		Round(0).
		IntPart()
	if final < 0 {
		final = 0
	}

	l.items = append(l.items, LineItem{
		Label:  fmt.Sprintf("Timeline surcharge (%s)", timeline.Label),
		Amount: final - pre,
	})
	l.total = final
}
