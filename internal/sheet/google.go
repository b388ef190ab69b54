package sheet

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const valueInputRaw = "RAW"

// GoogleConfig identifies the target spreadsheet and the service account
// allowed to write to it.
type GoogleConfig struct {
	SpreadsheetID       string
	Range               string
	ServiceAccountEmail string
	PrivateKey          string
}

// GoogleRecorder appends rows to a Google Sheets spreadsheet.
type GoogleRecorder struct {
	svc           *sheets.Service
	spreadsheetID string
	rng           string
}

// NewGoogleRecorder authenticates with a service account key.
func NewGoogleRecorder(ctx context.Context, cfg GoogleConfig) (*GoogleRecorder, error) {
	if cfg.ServiceAccountEmail == "" || cfg.PrivateKey == "" {
		return nil, errors.New("google sheets: service account credentials are required")
	}

	jwtCfg := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("google sheets: create service: %w", err)
	}
	return NewGoogleRecorderWithService(svc, cfg.SpreadsheetID, cfg.Range), nil
}

// NewGoogleRecorderWithService wraps an existing Sheets client.
func NewGoogleRecorderWithService(svc *sheets.Service, spreadsheetID, rng string) *GoogleRecorder {
	return &GoogleRecorder{svc: svc, spreadsheetID: spreadsheetID, rng: rng}
}

func (g *GoogleRecorder) Append(ctx context.Context, row Row) error {
	cells := make([]interface{}, len(row.Values))
	for i, v := range row.Values {
		cells[i] = v
	}

	_, err := g.svc.Spreadsheets.Values.
		Append(g.spreadsheetID, g.rng, &sheets.ValueRange{Values: [][]interface{}{cells}}).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("google sheets: append row %s: %w", row.ID, err)
	}
	return nil
}
