package pricing

import (
	"strings"
	"testing"
)

func TestDefaultCatalog_Valid(t *testing.T) {
	if err := DefaultCatalog().Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestDefaultCatalog_CoversEnumerations(t *testing.T) {
	cat := DefaultCatalog()

	for _, s := range Sections() {
		if _, ok := cat.Sections[s]; !ok {
			t.Fatalf("section %s missing from catalog", s)
		}
	}
	for _, c := range ContentHandlings() {
		if _, ok := cat.Content[c]; !ok {
			t.Fatalf("content handling %s missing from catalog", c)
		}
	}
	for _, i := range Integrations() {
		if _, ok := cat.Integrations[i]; !ok {
			t.Fatalf("integration %s missing from catalog", i)
		}
	}
	for _, lg := range LeadGenTypes() {
		if _, ok := cat.LeadGen[lg]; !ok {
			t.Fatalf("lead generator %s missing from catalog", lg)
		}
	}
	for _, tl := range Timelines() {
		if _, ok := cat.Timelines[tl]; !ok {
			t.Fatalf("timeline %s missing from catalog", tl)
		}
	}
	for _, fc := range FeatureComplexities() {
		if _, ok := cat.Complexity[fc]; !ok {
			t.Fatalf("complexity %s missing from catalog", fc)
		}
	}
	equal(t, "section count", len(cat.Sections), len(Sections()))
}

func TestCatalogValidate_RejectsBadEntries(t *testing.T) {
	cat := DefaultCatalog()
	cat.Timelines[TimelineRush25] = TimelineSpec{Label: "Discount", Multiplier: 0.8}
	cat.Integrations[IntegrationCRM] = PricedOption{Label: "CRM", Price: -1}
	cat.Sitemaps[SiteEvents] = Sitemap{Core: []Section{"ballroom"}}
	delete(cat.Sitemaps, SiteBillboard)

	err := cat.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{
		`timeline "rush25"`,
		`integration "crm"`,
		`unknown section "ballroom"`,
		`site type "billboard": no default sitemap`,
	} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("Validate() = %q, want it to mention %q", err, want)
		}
	}
}

func TestDefaultCatalog_ReturnsIndependentCopies(t *testing.T) {
	a := DefaultCatalog()
	b := DefaultCatalog()

	a.SiteTypes[SiteBillboard] = SiteTypeSpec{Label: "changed"}
	a.Sitemaps[SiteRetail].Core[0] = SectionFAQ

	equal(t, "billboard label", b.SiteTypes[SiteBillboard].Label, "Billboard / one-page site")
	equal(t, "retail core[0]", b.Sitemaps[SiteRetail].Core[0], SectionHome)
	equal(t, "retail shipping core[0]", b.Sitemaps[SiteRetailShipping].Core[0], SectionHome)
}
