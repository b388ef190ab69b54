package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/Simplici0/studio/internal/intake"
	"github.com/Simplici0/studio/internal/pricing"
	"github.com/Simplici0/studio/internal/sheet"
)

// Ledger is a recorder that can tell whether a submission already exists.
type Ledger interface {
	sheet.Recorder
	Has(ctx context.Context, id string) (bool, error)
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Skipped int
}

var demoTime = time.Date(2025, 1, 15, 17, 0, 0, 0, time.UTC)

type demo struct {
	id  string
	req intake.Request
}

func demos() []demo {
	return []demo{
		{
			id: "demo-billboard",
			req: intake.Request{
				Name:              "Sample Bakery",
				Email:             "owner@bakery.example.com",
				SiteType:          string(pricing.SiteBillboard),
				IsBudgetConscious: true,
				SelectedPages:     []string{string(pricing.SectionHome)},
			},
		},
		{
			id: "demo-creative-rebuild",
			req: intake.Request{
				Company:               "North Light Studio",
				Email:                 "hello@northlight.example.com",
				SiteType:              string(pricing.SiteCreative),
				IsRebuild:             true,
				SelectedPagesToUpdate: []string{string(pricing.SectionHome), string(pricing.SectionAbout)},
				SelectedPagesToAdd:    []string{string(pricing.SectionBlog)},
				ProjectCount:          14,
				WantsCustomAnimations: true,
				Timeline:              string(pricing.TimelineRush25),
			},
		},
		{
			id: "demo-webapp",
			req: intake.Request{
				Name:              "Ops Team",
				Email:             "ops@startup.example.com",
				SiteType:          string(pricing.SiteWebApp),
				FeatureComplexity: string(pricing.ComplexityHigh),
				LeadGenType:       string(pricing.LeadGenAdvanced),
				Integrations:      []string{string(pricing.IntegrationCRM), string(pricing.IntegrationPaymentGateway)},
			},
		},
	}
}

// Run records the demo submissions that are not in the ledger yet.
func Run(ctx context.Context, ledger Ledger, engine *pricing.Engine) (Stats, error) {
	stats := Stats{}

	for i, d := range demos() {
		exists, err := ledger.Has(ctx, d.id)
		if err != nil {
			return Stats{}, err
		}
		if exists {
			stats.Skipped++
			continue
		}

		req := d.req.WithDefaults()
		res := engine.Compute(req.QuoteInput())
		row, err := intake.BuildRow(d.id, demoTime.Add(time.Duration(i)*time.Hour), req, res)
		if err != nil {
			return Stats{}, fmt.Errorf("build demo row %s: %w", d.id, err)
		}
		if err := ledger.Append(ctx, row); err != nil {
			return Stats{}, fmt.Errorf("insert demo row %s: %w", d.id, err)
		}
		stats.Inserts++
	}

	return stats, nil
}
