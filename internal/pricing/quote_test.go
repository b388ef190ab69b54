package pricing

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestCompute_BillboardBudgetOnBuilder(t *testing.T) {
	result := Default().Compute(Input{
		SiteType:          SiteBillboard,
		IsBudgetConscious: true,
		Timeline:          TimelineStandard,
		ContentHandling:   ContentClient,
		LeadGenType:       LeadGenNone,
		SelectedPages:     []Section{SectionHome},
	})

	equal(t, "total", result.Total, 500)
	equal(t, "platform", result.Platform, PlatformBuilder)
	lineCount(t, result.Breakdown, 1)
	equal(t, "line", result.Breakdown[0], LineItem{
		Label:  "Billboard / one-page site · Builder (GoDaddy / Wix / similar)",
		Amount: 500,
	})
	pages(t, result.Meta, 1, 0, 0, 1, 0)
}

func serviceBusinessCore() []Section {
	return []Section{SectionHome, SectionAbout, SectionServices, SectionHowItWorks, SectionContact}
}

func TestCompute_ServiceBusinessWithinBasePages(t *testing.T) {
	result := Default().Compute(Input{
		SiteType:        SiteServiceBusiness,
		Timeline:        TimelineStandard,
		ContentHandling: ContentClient,
		SelectedPages:   serviceBusinessCore(),
	})

	equal(t, "total", result.Total, 1300)
	equal(t, "platform", result.Platform, PlatformWebflow)
	lineCount(t, result.Breakdown, 1)
	equal(t, "basePagesIncluded", result.Meta.BasePagesIncluded, 5)
	pages(t, result.Meta, 5, 0, 0, 5, 0)
}

func TestCompute_ServiceBusinessExtraNewPages(t *testing.T) {
	selected := append(serviceBusinessCore(), SectionFAQ, SectionResources, SectionPrivacy)

	result := Default().Compute(Input{
		SiteType:        SiteServiceBusiness,
		Timeline:        TimelineStandard,
		ContentHandling: ContentClient,
		SelectedPages:   selected,
	})

	equal(t, "total", result.Total, 1750)
	lineCount(t, result.Breakdown, 2)
	equal(t, "extra pages line", result.Breakdown[1], LineItem{Label: "Additional new pages (3 × $150)", Amount: 450})
	pages(t, result.Meta, 8, 0, 0, 5, 3)
}

func TestCompute_BrandKitOnly(t *testing.T) {
	result := Default().Compute(Input{WantsBrandKit: true, Timeline: TimelineStandard})

	equal(t, "total", result.Total, 1000)
	lineCount(t, result.Breakdown, 1)
	equal(t, "label", result.Breakdown[0].Label, "Logo + Brand Kit Design")
	equal(t, "siteTypeLabel", result.Meta.SiteTypeLabel, "None")
	equal(t, "platformLabel", result.Meta.PlatformLabel, "N/A")
	equal(t, "timelineLabel", result.Meta.TimelineLabel, "Standard timeline")
	equal(t, "basePagesIncluded", result.Meta.BasePagesIncluded, 0)
	equal(t, "platform", result.Platform, "")
}

func TestCompute_HybridCalculatorBilledAsEmbeddedApp(t *testing.T) {
	result := Default().Compute(Input{
		SiteType:              SiteServiceBusiness,
		LeadGenType:           LeadGenCalculator,
		WantsCustomAnimations: true,
		Timeline:              TimelineStandard,
		SelectedPages:         serviceBusinessCore(),
	})

	equal(t, "platform", result.Platform, PlatformWebflow)
	lineCount(t, result.Breakdown, 2)
	equal(t, "lead-gen line", result.Breakdown[1], LineItem{
		Label:  "Lead generator: Interactive quote calculator (Next.js app embedded in Webflow)",
		Amount: 400,
	})
	equal(t, "total", result.Total, 1700)
}

func TestCompute_LeadGenUsesPlatformAdjustment(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		want  LineItem
	}{
		{
			name:  "calculator alone moves to custom platform",
			input: Input{SiteType: SiteServiceBusiness, LeadGenType: LeadGenCalculator},
			want:  LineItem{Label: "Lead generator: Interactive quote calculator", Amount: 400},
		},
		{
			name:  "simple form on webflow",
			input: Input{SiteType: SiteServiceBusiness, LeadGenType: LeadGenSimple},
			want:  LineItem{Label: "Lead generator: Simple lead form (single step)", Amount: 250},
		},
		{
			name:  "advanced app on builder",
			input: Input{SiteType: SiteEvents, LeadGenType: LeadGenAdvanced, IsBudgetConscious: true},
			want:  LineItem{Label: "Lead generator: Advanced lead app (custom flows, logic, storage)", Amount: 1400},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasLine(t, Default().Compute(tt.input).Breakdown, tt.want)
		})
	}
}

func TestCompute_LeadGenClampedAtZero(t *testing.T) {
	cat := DefaultCatalog()
	cat.LeadGenAdjustment[PlatformNextJS] = -5000
	engine := New(cat)

	result := engine.Compute(Input{SiteType: SiteWebApp, LeadGenType: LeadGenSimple, FeatureComplexity: ComplexityLow})

	for _, item := range result.Breakdown {
		if strings.Contains(item.Label, "Lead generator") {
			t.Fatalf("unexpected lead-gen line %v", item)
		}
	}
	equal(t, "total", result.Total, 4500)
}

func TestCompute_TimelineSurcharge(t *testing.T) {
	result := Default().Compute(Input{WantsBrandKit: true, Timeline: TimelineRush50})

	equal(t, "total", result.Total, 1500)
	lineCount(t, result.Breakdown, 2)
	equal(t, "surcharge line", result.Breakdown[1], LineItem{Label: "Timeline surcharge (Super rush (+50%))", Amount: 500})
	equal(t, "timelineLabel", result.Meta.TimelineLabel, "Super rush (+50%)")
}

func TestCompute_TimelineRoundsToWholeUnits(t *testing.T) {
	cat := DefaultCatalog()
	cat.BrandKit.Price = 1002
	engine := New(cat)

	// 1002 * 1.25 = 1252.5, rounded half away from zero.
	result := engine.Compute(Input{WantsBrandKit: true, Timeline: TimelineRush25})

	equal(t, "total", result.Total, 1253)
	equal(t, "surcharge", result.Breakdown[len(result.Breakdown)-1].Amount, 251)
}

func TestCompute_UnknownTimelineFallsBackToStandard(t *testing.T) {
	result := Default().Compute(Input{WantsBrandKit: true, Timeline: "overnight"})

	equal(t, "total", result.Total, 1000)
	lineCount(t, result.Breakdown, 1)
	equal(t, "timelineLabel", result.Meta.TimelineLabel, "Standard timeline")
}

func TestCompute_RebuildConsumesBaseWithUpdatedPagesFirst(t *testing.T) {
	result := Default().Compute(Input{
		SiteType:              SiteServiceBusiness,
		IsRebuild:             true,
		SelectedPagesToUpdate: []Section{SectionHome, SectionAbout, SectionServices, SectionContact},
		SelectedPagesToAdd:    []Section{SectionFAQ, SectionBlog, SectionPrivacy},
	})

	// Home is selected for update and implicit on the add side.
	pages(t, result.Meta, 9, 4, 0, 1, 4)
	hasLine(t, result.Breakdown, LineItem{Label: "Additional new pages (4 × $150)", Amount: 600})
	equal(t, "total", result.Total, 1900)
}

func TestCompute_RebuildAddsHomeToEachSet(t *testing.T) {
	engine := Default()
	add := []Section{SectionFAQ}

	equal(t, "DerivePageCount(add)", engine.DerivePageCount(add, SectionCounts{}), 2)

	result := engine.Compute(Input{
		SiteType:              SiteBillboard,
		IsRebuild:             true,
		IsBudgetConscious:     true,
		SelectedPagesToUpdate: []Section{SectionAbout},
		SelectedPagesToAdd:    add,
	})

	pages(t, result.Meta, 4, 1, 1, 0, 2)
	hasLine(t, result.Breakdown, LineItem{Label: "Updated pages beyond base (1 × $90)", Amount: 90})
	hasLine(t, result.Breakdown, LineItem{Label: "Additional new pages (2 × $150)", Amount: 300})
	equal(t, "total", result.Total, 500+90+300)
}

func TestCompute_RebuildWithOnlyPagesToAdd(t *testing.T) {
	result := Default().Compute(Input{
		SiteType:           SiteBillboard,
		IsRebuild:          true,
		IsBudgetConscious:  true,
		SelectedPagesToAdd: []Section{SectionFAQ, SectionContact},
	})

	pages(t, result.Meta, 3, 0, 0, 1, 2)
	hasLine(t, result.Breakdown, LineItem{Label: "Additional new pages (2 × $150)", Amount: 300})
	equal(t, "total", result.Total, 800)
}

func TestCompute_RebuildBillsUpdatedPagesBeyondBase(t *testing.T) {
	result := Default().Compute(Input{
		SiteType:              SiteBillboard,
		IsRebuild:             true,
		IsBudgetConscious:     true,
		SelectedPagesToUpdate: []Section{SectionAbout, SectionContact, SectionFAQ},
	})

	pages(t, result.Meta, 4, 1, 3, 0, 0)
	hasLine(t, result.Breakdown, LineItem{Label: "Updated pages beyond base (3 × $90)", Amount: 270})
	equal(t, "total", result.Total, 500+270)
}

func TestCompute_LegacyPageCounts(t *testing.T) {
	newBuild := Default().Compute(Input{SiteType: SiteEducational, TotalPages: 9})
	pages(t, newBuild.Meta, 9, 0, 0, 6, 3)

	rebuild := Default().Compute(Input{SiteType: SiteEducational, IsRebuild: true, UpdatedPages: 4, NewPages: 4})
	pages(t, rebuild.Meta, 8, 4, 0, 2, 2)
}

func TestCompute_ContentChargedPerPage(t *testing.T) {
	result := Default().Compute(Input{
		SiteType:        SiteServiceBusiness,
		ContentHandling: ContentFull,
		SelectedPages:   serviceBusinessCore(),
	})

	hasLine(t, result.Breakdown, LineItem{
		Label:  "Content: Studio creates copy & source images (5 × $100)",
		Amount: 500,
	})
	equal(t, "total", result.Total, 1800)
}

func TestCompute_TypeSpecificExtras(t *testing.T) {
	creative := Default().Compute(Input{SiteType: SiteCreative, ProjectCount: 10})
	hasLine(t, creative.Breakdown, LineItem{Label: "Extra portfolio projects (4 × $60)", Amount: 240})

	retail := Default().Compute(Input{SiteType: SiteRetailShipping, ProductCount: 25})
	hasLine(t, retail.Breakdown, LineItem{Label: "Extra products (5 × $20)", Amount: 100})

	// Product counts only matter for retail sites.
	events := Default().Compute(Input{SiteType: SiteEvents, ProductCount: 25, ProjectCount: 25})
	lineCount(t, events.Breakdown, 1)
}

func TestCompute_WebAppComplexityDefaultsToMedium(t *testing.T) {
	result := Default().Compute(Input{SiteType: SiteWebApp})

	hasLine(t, result.Breakdown, LineItem{
		Label:  "App feature complexity: Moderate app (dashboards, roles, forms)",
		Amount: 1500,
	})

	low := Default().Compute(Input{SiteType: SiteWebApp, FeatureComplexity: ComplexityLow})
	lineCount(t, low.Breakdown, 1)
	equal(t, "low total", low.Total, 4500)
}

func TestCompute_IntegrationsInCallerOrder(t *testing.T) {
	result := Default().Compute(Input{
		SiteType:     SiteServiceBusiness,
		Integrations: []Integration{IntegrationSEO, "fax", IntegrationCRM},
	})

	lineCount(t, result.Breakdown, 3)
	equal(t, "first integration", result.Breakdown[1].Label, "SEO essentials (titles/meta/schema)")
	equal(t, "second integration", result.Breakdown[2].Label, "CRM integration")
	equal(t, "total", result.Total, 1300+150+250)
}

func TestCompute_UnknownSiteTypeIsIgnored(t *testing.T) {
	result := Default().Compute(Input{SiteType: "spaceship", Integrations: []Integration{IntegrationCRM}})

	equal(t, "total", result.Total, 0)
	lineCount(t, result.Breakdown, 0)
	equal(t, "siteTypeLabel", result.Meta.SiteTypeLabel, "None")
}

func TestCompute_NegativeCountsTreatedAsZero(t *testing.T) {
	result := Default().Compute(Input{
		SiteType:      SiteServiceBusiness,
		SelectedPages: []Section{SectionHome, SectionServiceDetails},
		SectionCounts: SectionCounts{ServiceDetails: -7},
		TotalPages:    -3,
		ProjectCount:  -2,
	})

	equal(t, "totalPages", result.Meta.TotalPages, 1)
	if result.Total < 0 {
		t.Fatalf("total = %d, want >= 0", result.Total)
	}
}

func TestCompute_TotalNeverNegative(t *testing.T) {
	engine := Default()
	for _, st := range append(SiteTypes(), "") {
		for _, lg := range LeadGenTypes() {
			for _, tl := range Timelines() {
				for _, anim := range []bool{false, true} {
					result := engine.Compute(Input{
						SiteType:              st,
						LeadGenType:           lg,
						Timeline:              tl,
						WantsCustomAnimations: anim,
						IsBudgetConscious:     !anim,
						WantsBrandKit:         anim,
					})
					if result.Total < 0 {
						t.Fatalf("site=%s leadgen=%s timeline=%s: total = %d", st, lg, tl, result.Total)
					}

					var sum int64
					for _, item := range result.Breakdown {
						sum += item.Amount
					}
					if sum != result.Total {
						t.Fatalf("site=%s leadgen=%s timeline=%s: breakdown sums to %d, total is %d", st, lg, tl, sum, result.Total)
					}
				}
			}
		}
	}
}

func TestCompute_RushNeverDecreasesTotal(t *testing.T) {
	engine := Default()
	for _, st := range SiteTypes() {
		base := Input{
			SiteType:      st,
			SelectedPages: []Section{SectionHome, SectionAbout, SectionBlog},
			LeadGenType:   LeadGenMultistep,
			Timeline:      TimelineStandard,
		}
		standard := engine.Compute(base).Total

		for _, tl := range []Timeline{TimelineRush25, TimelineRush50} {
			rushed := base
			rushed.Timeline = tl
			if got := engine.Compute(rushed).Total; got < standard {
				t.Fatalf("site=%s timeline=%s: total %d below standard %d", st, tl, got, standard)
			}
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	input := Input{
		SiteType:        SiteRetail,
		ContentHandling: ContentEditing,
		LeadGenType:     LeadGenCalculator,
		Integrations:    []Integration{IntegrationGA4, IntegrationPaymentGateway},
		SelectedPages:   []Section{SectionHome, SectionProducts, SectionProductDetails, SectionLegal},
		SectionCounts:   SectionCounts{ProductDetails: 12},
		ProductCount:    40,
		WantsBrandKit:   true,
		Timeline:        TimelineRush25,
	}

	first, err := json.Marshal(Default().Compute(input))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(Default().Compute(input))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	equal(t, "second result", string(second), string(first))
	if !reflect.DeepEqual(Default().Catalog(), DefaultCatalog()) {
		t.Fatal("Compute mutated the catalog")
	}
}
