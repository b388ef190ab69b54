package intake

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/Simplici0/studio/internal/pricing"
	"github.com/Simplici0/studio/internal/sheet"
)

var columns = []string{
	"Timestamp",
	"Name",
	"Company",
	"Email",
	"Phone",
	"Website",
	"Site Type",
	"Timeline",
	"Rebuild",
	"Launch Date",
	"Selected Pages",
	"Service Details",
	"Case Studies",
	"Courses",
	"Product Details",
	"Pages To Update",
	"Pages To Add",
	"Content Handling",
	"Projects",
	"Products",
	"Feature Complexity",
	"Lead Generator",
	"Integrations",
	"Custom Animations",
	"Budget Conscious",
	"Brand Kit",
	"Notes",
	"Quote",
	"Total",
	"Platform",
	"Site Type Label",
	"Timeline Label",
	"Breakdown",
	"Submission ID",
}

// Columns returns the spreadsheet header row.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// BuildRow lays out a submission in Columns order.
func BuildRow(id string, at time.Time, req Request, res pricing.Result) (sheet.Row, error) {
	breakdown, err := json.Marshal(res.Breakdown)
	if err != nil {
		return sheet.Row{}, err
	}

	values := []string{
		at.UTC().Format(time.RFC3339),
		req.Name,
		req.Company,
		req.Email,
		req.Phone,
		req.Website,
		req.SiteType,
		req.Timeline,
		req.IsRebuild.YesNo(),
		req.LaunchDate,
		strings.Join(req.SelectedPages, ", "),
		req.ServiceDetailsCount.String(),
		req.CaseStudyCount.String(),
		req.CourseCount.String(),
		req.ProductDetailsCount.String(),
		strings.Join(req.SelectedPagesToUpdate, ", "),
		strings.Join(req.SelectedPagesToAdd, ", "),
		req.ContentHandling,
		req.ProjectCount.String(),
		req.ProductCount.String(),
		req.FeatureComplexity,
		req.LeadGenType,
		strings.Join(req.Integrations, ", "),
		req.WantsCustomAnimations.YesNo(),
		req.IsBudgetConscious.YesNo(),
		req.WantsBrandKit.YesNo(),
		req.ExtraNotes,
		pricing.FormatQuote(res),
		strconv.FormatInt(res.Total, 10),
		res.Meta.PlatformLabel,
		res.Meta.SiteTypeLabel,
		res.Meta.TimelineLabel,
		string(breakdown),
		id,
	}

	return sheet.Row{
		ID:          id,
		SubmittedAt: at,
		Name:        req.Name,
		Company:     req.Company,
		Email:       req.Email,
		SiteType:    req.SiteType,
		Total:       res.Total,
		Values:      values,
	}, nil
}
