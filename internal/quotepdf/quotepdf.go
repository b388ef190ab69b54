// Package quotepdf renders a priced quote as a one-page PDF summary.
package quotepdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Line is a breakdown row with a preformatted amount.
type Line struct {
	Label  string
	Amount string
}

// Document is everything printed on the quote.
type Document struct {
	Reference string
	Date      string
	Client    string
	Email     string
	SiteType  string
	Platform  string
	Timeline  string
	Pages     int
	Lines     []Line
	Total     string
}

var (
	muted     = &props.Color{Red: 100, Green: 110, Blue: 120}
	headerBg  = &props.Color{Red: 31, Green: 41, Blue: 51}
	stripeBg  = &props.Color{Red: 245, Green: 247, Blue: 250}
	white     = &props.Color{Red: 255, Green: 255, Blue: 255}
	bodyText  = props.Text{Size: 9, Top: 1.5, Left: 2}
	amountTxt = props.Text{Size: 9, Top: 1.5, Right: 2, Align: align.Right}
)

// Render returns the PDF bytes for doc.
func Render(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	addHeader(m, doc)
	addDetails(m, doc)
	addBreakdown(m, doc)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate quote pdf: %w", err)
	}
	return out.GetBytes(), nil
}

func addHeader(m core.Maroto, doc Document) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Project Quote", props.Text{Size: 18, Style: fontstyle.Bold}),
			),
		),
		row.New(6).Add(
			col.New(6).Add(text.New("Reference: "+doc.Reference, props.Text{Size: 8, Color: muted})),
			col.New(6).Add(text.New(doc.Date, props.Text{Size: 8, Color: muted, Align: align.Right})),
		),
		row.New(6),
	)
}

func addDetails(m core.Maroto, doc Document) {
	details := []Line{
		{Label: "Client", Amount: doc.Client},
		{Label: "Email", Amount: doc.Email},
		{Label: "Site type", Amount: doc.SiteType},
		{Label: "Platform", Amount: doc.Platform},
		{Label: "Timeline", Amount: doc.Timeline},
		{Label: "Total pages", Amount: fmt.Sprintf("%d", doc.Pages)},
	}

	for _, d := range details {
		if d.Amount == "" {
			continue
		}
		m.AddRows(row.New(6).Add(
			col.New(3).Add(text.New(d.Label, props.Text{Size: 9, Style: fontstyle.Bold})),
			col.New(9).Add(text.New(d.Amount, props.Text{Size: 9})),
		))
	}
	m.AddRows(row.New(6))
}

func addBreakdown(m core.Maroto, doc Document) {
	headerText := props.Text{Size: 9, Style: fontstyle.Bold, Top: 1.5, Left: 2, Color: white}
	headerAmount := headerText
	headerAmount.Left = 0
	headerAmount.Right = 2
	headerAmount.Align = align.Right
	headerCell := &props.Cell{BackgroundColor: headerBg}

	m.AddRows(row.New(7).Add(
		col.New(9).Add(text.New("Item", headerText)).WithStyle(headerCell),
		col.New(3).Add(text.New("Amount", headerAmount)).WithStyle(headerCell),
	))

	for i, line := range doc.Lines {
		label := col.New(9).Add(text.New(line.Label, bodyText))
		amount := col.New(3).Add(text.New(line.Amount, amountTxt))
		if i%2 == 1 {
			stripe := &props.Cell{BackgroundColor: stripeBg}
			label = label.WithStyle(stripe)
			amount = amount.WithStyle(stripe)
		}
		m.AddRows(row.New(7).Add(label, amount))
	}

	totalText := props.Text{Size: 11, Style: fontstyle.Bold, Top: 2, Left: 2}
	totalAmount := props.Text{Size: 11, Style: fontstyle.Bold, Top: 2, Right: 2, Align: align.Right}
	m.AddRows(row.New(9).Add(
		col.New(9).Add(text.New("Total", totalText)),
		col.New(3).Add(text.New(doc.Total, totalAmount)),
	))
}
