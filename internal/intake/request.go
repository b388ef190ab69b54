package intake

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/Simplici0/studio/internal/pricing"
)

// Count is a non-negative quantity that decodes from a JSON number or a
// numeric string. Blank or unparsable values decode as zero.
type Count int

func (c *Count) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*c = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = parseCount(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("count must be a number: %w", err)
	}
	*c = clampCount(f)
	return nil
}

// String renders zero as blank, matching the spreadsheet layout.
func (c Count) String() string {
	if c == 0 {
		return ""
	}
	return strconv.Itoa(int(c))
}

func parseCount(s string) Count {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return clampCount(float64(n))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return clampCount(f)
	}
	return 0
}

func clampCount(f float64) Count {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return Count(int(f))
}

// Flag is a boolean that also accepts "true", "on", "yes" and "1".
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case string(b) == "null":
		*f = false
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = parseFlag(s)
	default:
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			return fmt.Errorf("flag must be a boolean: %w", err)
		}
		*f = Flag(v)
	}
	return nil
}

func parseFlag(s string) Flag {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "on", "yes", "1":
		return true
	default:
		return false
	}
}

// YesNo renders the flag for spreadsheets and emails.
func (f Flag) YesNo() string {
	if f {
		return "Yes"
	}
	return "No"
}

// Request is a raw intake questionnaire submission.
type Request struct {
	Name       string `json:"name" validate:"max=200"`
	Company    string `json:"company" validate:"max=200"`
	Email      string `json:"email" validate:"omitempty,email,max=254"`
	Phone      string `json:"phone" validate:"max=50"`
	Website    string `json:"website" validate:"max=500"`
	LaunchDate string `json:"launchDate" validate:"max=100"`
	ExtraNotes string `json:"extraNotes" validate:"max=5000"`

	SiteType              string   `json:"siteType" validate:"max=50"`
	Timeline              string   `json:"timeline" validate:"max=50"`
	IsRebuild             Flag     `json:"isRebuild"`
	SelectedPages         []string `json:"selectedPages" validate:"max=100"`
	SelectedPagesToUpdate []string `json:"selectedPagesToUpdate" validate:"max=100"`
	SelectedPagesToAdd    []string `json:"selectedPagesToAdd" validate:"max=100"`
	ServiceDetailsCount   Count    `json:"serviceDetailsCount"`
	CaseStudyCount        Count    `json:"caseStudyCount"`
	CourseCount           Count    `json:"courseCount"`
	ProductDetailsCount   Count    `json:"productDetailsCount"`
	TotalPages            Count    `json:"totalPages"`
	UpdatedPages          Count    `json:"updatedPages"`
	NewPages              Count    `json:"newPages"`
	ContentHandling       string   `json:"contentHandling" validate:"max=50"`
	ProjectCount          Count    `json:"projectCount"`
	ProductCount          Count    `json:"productCount"`
	FeatureComplexity     string   `json:"featureComplexity" validate:"max=50"`
	LeadGenType           string   `json:"leadGenType" validate:"max=50"`
	Integrations          []string `json:"integrations" validate:"max=20"`
	WantsCustomAnimations Flag     `json:"wantsCustomAnimations"`
	IsBudgetConscious     Flag     `json:"isBudgetConscious"`
	WantsBrandKit         Flag     `json:"wantsBrandKit"`
}

const maxBodyBytes = 1 << 20

// DecodeJSON reads a Request from a JSON body.
func DecodeJSON(r io.Reader) (Request, error) {
	var req Request
	dec := json.NewDecoder(io.LimitReader(r, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		return Request{}, fmt.Errorf("decode intake request: %w", err)
	}
	return req, nil
}

// FromForm reads a Request from url-encoded form values. Multi-select
// fields are repeated keys.
func FromForm(form url.Values) Request {
	return Request{
		Name:                  form.Get("name"),
		Company:               form.Get("company"),
		Email:                 form.Get("email"),
		Phone:                 form.Get("phone"),
		Website:               form.Get("website"),
		LaunchDate:            form.Get("launchDate"),
		ExtraNotes:            form.Get("extraNotes"),
		SiteType:              form.Get("siteType"),
		Timeline:              form.Get("timeline"),
		IsRebuild:             parseFlag(form.Get("isRebuild")),
		SelectedPages:         nonEmpty(form["selectedPages"]),
		SelectedPagesToUpdate: nonEmpty(form["selectedPagesToUpdate"]),
		SelectedPagesToAdd:    nonEmpty(form["selectedPagesToAdd"]),
		ServiceDetailsCount:   parseCount(form.Get("serviceDetailsCount")),
		CaseStudyCount:        parseCount(form.Get("caseStudyCount")),
		CourseCount:           parseCount(form.Get("courseCount")),
		ProductDetailsCount:   parseCount(form.Get("productDetailsCount")),
		TotalPages:            parseCount(form.Get("totalPages")),
		UpdatedPages:          parseCount(form.Get("updatedPages")),
		NewPages:              parseCount(form.Get("newPages")),
		ContentHandling:       form.Get("contentHandling"),
		ProjectCount:          parseCount(form.Get("projectCount")),
		ProductCount:          parseCount(form.Get("productCount")),
		FeatureComplexity:     form.Get("featureComplexity"),
		LeadGenType:           form.Get("leadGenType"),
		Integrations:          nonEmpty(form["integrations"]),
		WantsCustomAnimations: parseFlag(form.Get("wantsCustomAnimations")),
		IsBudgetConscious:     parseFlag(form.Get("isBudgetConscious")),
		WantsBrandKit:         parseFlag(form.Get("wantsBrandKit")),
	}
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// WithDefaults fills the choices the questionnaire preselects.
func (r Request) WithDefaults() Request {
	if strings.TrimSpace(r.Timeline) == "" {
		r.Timeline = string(pricing.TimelineStandard)
	}
	if strings.TrimSpace(r.ContentHandling) == "" {
		r.ContentHandling = string(pricing.ContentClient)
	}
	if strings.TrimSpace(r.LeadGenType) == "" {
		r.LeadGenType = string(pricing.LeadGenNone)
	}
	if r.Integrations == nil {
		r.Integrations = []string{}
	}
	return r
}

// QuoteInput converts the request into the pricing engine's input.
func (r Request) QuoteInput() pricing.Input {
	return pricing.Input{
		SiteType:              pricing.SiteType(strings.TrimSpace(r.SiteType)),
		IsRebuild:             bool(r.IsRebuild),
		Timeline:              pricing.Timeline(r.Timeline),
		ContentHandling:       pricing.ContentHandling(r.ContentHandling),
		LeadGenType:           pricing.LeadGenType(r.LeadGenType),
		Integrations:          convert[pricing.Integration](r.Integrations),
		WantsCustomAnimations: bool(r.WantsCustomAnimations),
		IsBudgetConscious:     bool(r.IsBudgetConscious),
		WantsBrandKit:         bool(r.WantsBrandKit),
		SelectedPages:         convert[pricing.Section](r.SelectedPages),
		SelectedPagesToUpdate: convert[pricing.Section](r.SelectedPagesToUpdate),
		SelectedPagesToAdd:    convert[pricing.Section](r.SelectedPagesToAdd),
		SectionCounts: pricing.SectionCounts{
			ServiceDetails: int(r.ServiceDetailsCount),
			CaseStudies:    int(r.CaseStudyCount),
			Courses:        int(r.CourseCount),
			ProductDetails: int(r.ProductDetailsCount),
		},
		TotalPages:        int(r.TotalPages),
		UpdatedPages:      int(r.UpdatedPages),
		NewPages:          int(r.NewPages),
		ProjectCount:      int(r.ProjectCount),
		ProductCount:      int(r.ProductCount),
		FeatureComplexity: pricing.FeatureComplexity(r.FeatureComplexity),
	}
}

func convert[T ~string](values []string) []T {
	if len(values) == 0 {
		return nil
	}
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}
