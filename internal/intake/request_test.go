package intake

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/studio/internal/pricing"
)

func TestDecodeJSON_CoercesNumbersAndFlags(t *testing.T) {
	body := `{
		"name": "Ada",
		"siteType": "creative",
		"isRebuild": "on",
		"wantsBrandKit": true,
		"projectCount": "12",
		"productCount": 3.7,
		"courseCount": "",
		"caseStudyCount": "lots",
		"newPages": -4,
		"selectedPages": ["home", "about"]
	}`

	req, err := DecodeJSON(strings.NewReader(body))
	require.NoError(t, err)

	assert.Equal(t, "Ada", req.Name)
	assert.True(t, bool(req.IsRebuild))
	assert.True(t, bool(req.WantsBrandKit))
	assert.Equal(t, Count(12), req.ProjectCount)
	assert.Equal(t, Count(3), req.ProductCount)
	assert.Equal(t, Count(0), req.CourseCount)
	assert.Equal(t, Count(0), req.CaseStudyCount)
	assert.Equal(t, Count(0), req.NewPages)
	assert.Equal(t, []string{"home", "about"}, req.SelectedPages)
}

func TestDecodeJSON_RejectsMalformedBody(t *testing.T) {
	_, err := DecodeJSON(strings.NewReader(`{"projectCount": [1]}`))
	require.Error(t, err)

	_, err = DecodeJSON(strings.NewReader(`not json`))
	require.Error(t, err)
}

func TestFromForm(t *testing.T) {
	form := url.Values{
		"name":                  {"Grace"},
		"siteType":              {"retail"},
		"isRebuild":             {"yes"},
		"selectedPagesToUpdate": {"home", "", "about"},
		"productCount":          {"25"},
		"integrations":          {"crm", "seo"},
		"isBudgetConscious":     {"off"},
	}

	req := FromForm(form)

	assert.Equal(t, "Grace", req.Name)
	assert.True(t, bool(req.IsRebuild))
	assert.False(t, bool(req.IsBudgetConscious))
	assert.Equal(t, []string{"home", "about"}, req.SelectedPagesToUpdate)
	assert.Equal(t, Count(25), req.ProductCount)
	assert.Equal(t, []string{"crm", "seo"}, req.Integrations)
}

func TestWithDefaults(t *testing.T) {
	req := Request{}.WithDefaults()

	assert.Equal(t, "standard", req.Timeline)
	assert.Equal(t, "client", req.ContentHandling)
	assert.Equal(t, "none", req.LeadGenType)
	assert.NotNil(t, req.Integrations)

	kept := Request{Timeline: "rush50", ContentHandling: "full", LeadGenType: "advanced"}.WithDefaults()
	assert.Equal(t, "rush50", kept.Timeline)
	assert.Equal(t, "full", kept.ContentHandling)
	assert.Equal(t, "advanced", kept.LeadGenType)
}

func TestQuoteInput(t *testing.T) {
	req := Request{
		SiteType:            " serviceBusiness ",
		IsRebuild:           true,
		SelectedPages:       []string{"home", "services"},
		ServiceDetailsCount: 4,
		Integrations:        []string{"booking"},
		FeatureComplexity:   "high",
	}.WithDefaults()

	in := req.QuoteInput()

	assert.Equal(t, pricing.SiteServiceBusiness, in.SiteType)
	assert.True(t, in.IsRebuild)
	assert.Equal(t, pricing.TimelineStandard, in.Timeline)
	assert.Equal(t, []pricing.Section{pricing.SectionHome, "services"}, in.SelectedPages)
	assert.Equal(t, 4, in.SectionCounts.ServiceDetails)
	assert.Equal(t, []pricing.Integration{pricing.IntegrationBooking}, in.Integrations)
	assert.Equal(t, pricing.ComplexityHigh, in.FeatureComplexity)
}

func TestCountString(t *testing.T) {
	assert.Equal(t, "", Count(0).String())
	assert.Equal(t, "7", Count(7).String())
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+14155552671", normalizePhone("(415) 555-2671", "US"))
	assert.Equal(t, "+442070313000", normalizePhone("+44 20 7031 3000", "US"))
	assert.Equal(t, "call me", normalizePhone("  call me ", "US"))
	assert.Equal(t, "", normalizePhone("   ", "US"))
}
