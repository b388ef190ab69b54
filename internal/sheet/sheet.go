// Package sheet records intake submissions as spreadsheet rows.
package sheet

import (
	"context"
	"fmt"
	"time"

	"github.com/Simplici0/studio/internal/config"
)

// Row is one submission, with Values aligned to the recorder's headers.
type Row struct {
	ID          string
	SubmittedAt time.Time
	Name        string
	Company     string
	Email       string
	SiteType    string
	Total       int64
	Values      []string
}

// Recorder appends rows to a spreadsheet-like store.
type Recorder interface {
	Append(ctx context.Context, row Row) error
}

// NoopRecorder discards rows.
type NoopRecorder struct{}

func (NoopRecorder) Append(ctx context.Context, row Row) error {
	return nil
}

// Open returns the recorder selected by cfg.Driver and a function that
// releases its resources.
func Open(ctx context.Context, cfg config.SheetConfig, headers []string) (Recorder, func() error, error) {
	noClose := func() error { return nil }

	switch cfg.Driver {
	case config.SheetGoogle:
		rec, err := NewGoogleRecorder(ctx, GoogleConfig{
			SpreadsheetID:       cfg.SpreadsheetID,
			Range:               cfg.Range,
			ServiceAccountEmail: cfg.ServiceAccountEmail,
			PrivateKey:          cfg.PrivateKey,
		})
		if err != nil {
			return nil, nil, err
		}
		return rec, noClose, nil
	case config.SheetXLSX:
		return NewXLSXRecorder(cfg.XLSXPath, headers), noClose, nil
	case config.SheetSQLite:
		rec, err := OpenSQLiteRecorder(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return rec, rec.Close, nil
	case config.SheetNoop, "":
		return NoopRecorder{}, noClose, nil
	default:
		return nil, nil, fmt.Errorf("unknown sheet driver %q", cfg.Driver)
	}
}
