package main

import "github.com/Simplici0/studio/internal/pricing"

type optionView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price int64  `json:"price"`
}

type siteTypeView struct {
	ID string `json:"id"`
	pricing.SiteTypeSpec
}

type timelineView struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

type sectionView struct {
	ID string `json:"id"`
	pricing.SectionSpec
}

// catalogView lists every option in display order for building forms.
type catalogView struct {
	SiteTypes    []siteTypeView `json:"siteTypes"`
	Content      []optionView   `json:"contentHandling"`
	LeadGen      []optionView   `json:"leadGenTypes"`
	Integrations []optionView   `json:"integrations"`
	Complexity   []optionView   `json:"featureComplexity"`
	Timelines    []timelineView `json:"timelines"`
	Sections     []sectionView  `json:"sections"`
	BrandKit     optionView     `json:"brandKit"`
}

func newCatalogView(cat *pricing.Catalog) catalogView {
	var v catalogView

	for _, id := range pricing.SiteTypes() {
		v.SiteTypes = append(v.SiteTypes, siteTypeView{ID: string(id), SiteTypeSpec: cat.SiteTypes[id]})
	}
	for _, id := range pricing.ContentHandlings() {
		c := cat.Content[id]
		v.Content = append(v.Content, optionView{ID: string(id), Label: c.Label, Price: c.PricePerPage})
	}
	for _, id := range pricing.LeadGenTypes() {
		lg := cat.LeadGen[id]
		v.LeadGen = append(v.LeadGen, optionView{ID: string(id), Label: lg.Label, Price: lg.Price})
	}
	for _, id := range pricing.Integrations() {
		in := cat.Integrations[id]
		v.Integrations = append(v.Integrations, optionView{ID: string(id), Label: in.Label, Price: in.Price})
	}
	for _, id := range pricing.FeatureComplexities() {
		c := cat.Complexity[id]
		v.Complexity = append(v.Complexity, optionView{ID: string(id), Label: c.Label, Price: c.Adjustment})
	}
	for _, id := range pricing.Timelines() {
		t := cat.Timelines[id]
		v.Timelines = append(v.Timelines, timelineView{ID: string(id), Label: t.Label, Multiplier: t.Multiplier})
	}
	for _, id := range pricing.Sections() {
		v.Sections = append(v.Sections, sectionView{ID: string(id), SectionSpec: cat.Sections[id]})
	}
	v.BrandKit = optionView{ID: "brandKit", Label: cat.BrandKit.Label, Price: cat.BrandKit.Price}
	return v
}
