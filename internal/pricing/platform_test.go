package pricing

import "testing"

func TestDerivePlatform(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		want  Platform
	}{
		{name: "no site type", input: Input{IsBudgetConscious: true}, want: PlatformWebflow},
		{name: "unknown site type", input: Input{SiteType: "spaceship", IsBudgetConscious: true}, want: PlatformWebflow},
		{name: "web app", input: Input{SiteType: SiteWebApp}, want: PlatformNextJS},
		{
			name:  "calculator with animations",
			input: Input{SiteType: SiteBillboard, LeadGenType: LeadGenCalculator, WantsCustomAnimations: true, IsBudgetConscious: true},
			want:  PlatformWebflow,
		},
		{
			name:  "calculator beats budget",
			input: Input{SiteType: SiteBillboard, LeadGenType: LeadGenCalculator, IsBudgetConscious: true},
			want:  PlatformNextJS,
		},
		{name: "budget billboard", input: Input{SiteType: SiteBillboard, IsBudgetConscious: true}, want: PlatformBuilder},
		{name: "budget service business", input: Input{SiteType: SiteServiceBusiness, IsBudgetConscious: true}, want: PlatformBuilder},
		{name: "budget events", input: Input{SiteType: SiteEvents, IsBudgetConscious: true}, want: PlatformBuilder},
		{name: "budget retail stays mid-tier", input: Input{SiteType: SiteRetail, IsBudgetConscious: true}, want: PlatformWebflow},
		{
			name:  "budget with animations",
			input: Input{SiteType: SiteEvents, IsBudgetConscious: true, WantsCustomAnimations: true},
			want:  PlatformWebflow,
		},
		{name: "animations", input: Input{SiteType: SiteCreative, WantsCustomAnimations: true}, want: PlatformWebflow},
		{name: "default", input: Input{SiteType: SiteEducational}, want: PlatformWebflow},
	}

	engine := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.DerivePlatform(tt.input)
			equal(t, "platform", got, tt.want)
			equal(t, "second call", engine.DerivePlatform(tt.input), got)
		})
	}
}

func TestDerivePlatform_WebAppAlwaysCustom(t *testing.T) {
	engine := Default()
	for _, budget := range []bool{false, true} {
		for _, anim := range []bool{false, true} {
			for _, lg := range LeadGenTypes() {
				in := Input{SiteType: SiteWebApp, IsBudgetConscious: budget, WantsCustomAnimations: anim, LeadGenType: lg}
				if got := engine.DerivePlatform(in); got != PlatformNextJS {
					t.Fatalf("budget=%v anim=%v leadgen=%s: platform = %s, want %s", budget, anim, lg, got, PlatformNextJS)
				}
			}
		}
	}
}

func TestSiteTypeTier_CoversEverySiteType(t *testing.T) {
	for _, st := range SiteTypes() {
		if _, ok := siteTypeTier(st); !ok {
			t.Fatalf("site type %s is not classified", st)
		}
	}
}
