// Package intake turns questionnaire submissions into priced quotes,
// spreadsheet rows and notification emails.
package intake

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Simplici0/studio/internal/apperr"
	"github.com/Simplici0/studio/internal/mailer"
	"github.com/Simplici0/studio/internal/pricing"
	"github.com/Simplici0/studio/internal/quotepdf"
	"github.com/Simplici0/studio/internal/sheet"
	"github.com/Simplici0/studio/internal/validate"
)

// Options configures a Service. Zero-valued collaborators are replaced by
// no-op implementations.
type Options struct {
	Engine   *pricing.Engine
	Recorder sheet.Recorder
	Sender   mailer.Sender
	Logger   zerolog.Logger
	// From and To address the notification email.
	From string
	To   []string
	// RequireRecord fails the submission when the row cannot be stored.
	RequireRecord bool
	PhoneRegion   string
	Now           func() time.Time
	NewID         func() string
	// RenderPDF builds the quote attachment. Defaults to quotepdf.Render.
	RenderPDF func(quotepdf.Document) ([]byte, error)
}

// Service handles intake submissions.
type Service struct {
	engine        *pricing.Engine
	recorder      sheet.Recorder
	sender        mailer.Sender
	validator     *validate.Validator
	log           zerolog.Logger
	from          string
	to            []string
	requireRecord bool
	region        string
	now           func() time.Time
	newID         func() string
	renderPDF     func(quotepdf.Document) ([]byte, error)
}

// NewService returns a Service configured by opts.
func NewService(opts Options) *Service {
	s := &Service{
		engine:        opts.Engine,
		recorder:      opts.Recorder,
		sender:        opts.Sender,
		validator:     validate.New(),
		log:           opts.Logger,
		from:          opts.From,
		to:            opts.To,
		requireRecord: opts.RequireRecord,
		region:        opts.PhoneRegion,
		now:           opts.Now,
		newID:         opts.NewID,
		renderPDF:     opts.RenderPDF,
	}
	if s.engine == nil {
		s.engine = pricing.Default()
	}
	if s.recorder == nil {
		s.recorder = sheet.NoopRecorder{}
	}
	if s.sender == nil {
		s.sender = mailer.NoopSender{}
	}
	if s.region == "" {
		s.region = "US"
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.NewString() }
	}
	if s.renderPDF == nil {
		s.renderPDF = quotepdf.Render
	}
	return s
}

// Outcome is the result of a submission.
type Outcome struct {
	ID       string `json:"id"`
	Quote    Quote  `json:"quote"`
	Recorded bool   `json:"recorded"`
	Notified bool   `json:"notified"`
}

// Quote is a priced quote with its display total.
type Quote struct {
	Formatted string             `json:"formatted"`
	Total     int64              `json:"total"`
	Breakdown []pricing.LineItem `json:"breakdown"`
	Meta      pricing.Meta       `json:"meta"`
	Platform  pricing.Platform   `json:"platform,omitempty"`
}

func newQuote(res pricing.Result) Quote {
	return Quote{
		Formatted: pricing.FormatQuote(res),
		Total:     res.Total,
		Breakdown: res.Breakdown,
		Meta:      res.Meta,
		Platform:  res.Platform,
	}
}

// Engine returns the pricing engine used for submissions.
func (s *Service) Engine() *pricing.Engine {
	return s.engine
}

// Preview prices req without recording or notifying.
func (s *Service) Preview(req Request) (Quote, error) {
	req = req.WithDefaults()
	if err := s.validator.Struct(req); err != nil {
		return Quote{}, apperr.Validation(err.Error())
	}
	return newQuote(s.engine.Compute(req.QuoteInput())), nil
}

// Submit prices req, records it and sends the notification email.
// Recording and notification failures are logged; only a recording failure
// with RequireRecord set fails the submission.
func (s *Service) Submit(ctx context.Context, req Request) (Outcome, error) {
	const op = "intake.Submit"

	req = req.WithDefaults()
	req.Name = strings.TrimSpace(req.Name)
	req.Company = strings.TrimSpace(req.Company)
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return Outcome{}, apperr.Validation(err.Error()).WithOp(op)
	}
	req.Phone = normalizePhone(req.Phone, s.region)

	id := s.newID()
	at := s.now().UTC()
	res := s.engine.Compute(req.QuoteInput())
	out := Outcome{ID: id, Quote: newQuote(res)}

	log := s.log.With().Str("submission_id", id).Str("site_type", req.SiteType).Int64("total", res.Total).Logger()

	row, err := BuildRow(id, at, req, res)
	if err != nil {
		return Outcome{}, apperr.Internal("could not build submission row", err).WithOp(op)
	}
	if err := s.recorder.Append(ctx, row); err != nil {
		log.Error().Err(err).Msg("record intake submission")
		if s.requireRecord {
			return Outcome{}, apperr.Unavailable("Could not save your request. Please try again.", err).WithOp(op)
		}
	} else {
		out.Recorded = true
	}

	summary := Summarize(s.engine.Catalog(), id, at, req, res)
	if err := s.notify(ctx, log, req, res, summary); err != nil {
		log.Error().Err(err).Msg("send intake notification")
	} else {
		out.Notified = true
	}

	log.Info().Bool("recorded", out.Recorded).Bool("notified", out.Notified).Msg("intake submitted")
	return out, nil
}

func (s *Service) notify(ctx context.Context, log zerolog.Logger, req Request, res pricing.Result, summary Summary) error {
	html, err := mailer.RenderHTML("intake.html", summary)
	if err != nil {
		return err
	}
	text, err := mailer.RenderText("intake.txt", summary)
	if err != nil {
		return err
	}

	msg := mailer.Message{
		From:    s.from,
		To:      s.to,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("New Quote Request: %s - %s", summary.Quote.Formatted, summary.DisplayName()),
		HTML:    html,
		Text:    text,
	}

	// The email goes out without the PDF when rendering fails.
	if pdf, err := s.renderPDF(pdfDocument(req, res, summary)); err != nil {
		log.Warn().Err(err).Msg("render quote pdf")
	} else {
		msg.Attachments = []mailer.Attachment{{
			Filename:    "quote-" + shortID(summary.ID) + ".pdf",
			ContentType: "application/pdf",
			Content:     pdf,
		}}
	}
	return s.sender.Send(ctx, msg)
}

func pdfDocument(req Request, res pricing.Result, summary Summary) quotepdf.Document {
	lines := make([]quotepdf.Line, len(summary.Quote.Lines))
	for i, l := range summary.Quote.Lines {
		lines[i] = quotepdf.Line{Label: l.Label, Amount: l.Amount}
	}
	return quotepdf.Document{
		Reference: shortID(summary.ID),
		Date:      summary.SubmittedAt.Format("January 2, 2006"),
		Client:    summary.DisplayName(),
		Email:     req.Email,
		SiteType:  res.Meta.SiteTypeLabel,
		Platform:  res.Meta.PlatformLabel,
		Timeline:  res.Meta.TimelineLabel,
		Pages:     res.Meta.TotalPages,
		Lines:     lines,
		Total:     summary.Quote.Formatted,
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
