package pricing

import "testing"

func TestDerivePageCount(t *testing.T) {
	tests := []struct {
		name     string
		selected []Section
		counts   SectionCounts
		want     int
	}{
		{name: "empty selection still has home", want: 1},
		{name: "home only", selected: []Section{SectionHome}, want: 1},
		{name: "home added when missing", selected: []Section{SectionAbout, SectionContact}, want: 3},
		{name: "blog counts as two pages", selected: []Section{SectionHome, SectionBlog}, want: 3},
		{name: "legal bundle counts as two pages", selected: []Section{SectionHome, SectionLegal}, want: 3},
		{
			name:     "count-driven sections use their own counts",
			selected: []Section{SectionHome, SectionServiceDetails, SectionCaseStudies, SectionCourses, SectionProductDetails},
			counts:   SectionCounts{ServiceDetails: 4, CaseStudies: 3, Courses: 2, ProductDetails: 10},
			want:     20,
		},
		{
			name:     "count-driven section without a count contributes nothing",
			selected: []Section{SectionHome, SectionServiceDetails},
			counts:   SectionCounts{CaseStudies: 9},
			want:     1,
		},
		{name: "unknown sections are ignored", selected: []Section{"ballroom", SectionHome}, want: 1},
		{name: "duplicates count once", selected: []Section{SectionAbout, SectionAbout}, want: 2},
	}

	engine := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			equal(t, "DerivePageCount", engine.DerivePageCount(tt.selected, tt.counts), tt.want)
		})
	}
}

func TestDerivePageCount_DefaultSitemapsHaveAtLeastHome(t *testing.T) {
	engine := Default()
	if n := engine.DerivePageCount(nil, SectionCounts{}); n < 1 {
		t.Fatalf("empty selection counts %d pages", n)
	}
	for _, st := range SiteTypes() {
		sm, ok := engine.Catalog().Sitemaps[st]
		if !ok {
			t.Fatalf("site type %s has no sitemap", st)
		}
		if n := engine.DerivePageCount(sm.Core, SectionCounts{}); n < 1 {
			t.Fatalf("site type %s: core sitemap counts %d pages", st, n)
		}
	}
}

func TestSitemap(t *testing.T) {
	view, ok := Default().Sitemap(SiteCreative)
	if !ok {
		t.Fatal("creative sitemap missing")
	}

	equal(t, "label", view.Label, "Creative / Portfolio")
	equal(t, "core entries", len(view.Core), 5)
	equal(t, "core[3]", view.Core[3], SitemapEntry{
		Section:       SectionCaseStudies,
		Label:         "Case studies / Project details",
		RequiresCount: true,
	})
	equal(t, "recommended entries", len(view.Recommended), 3)
	equal(t, "optional entries", len(view.Optional), 4)

	if _, ok := Default().Sitemap("spaceship"); ok {
		t.Fatal("unknown site type returned a sitemap")
	}
}
