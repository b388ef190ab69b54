package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Simplici0/studio/internal/pricing"
	"github.com/Simplici0/studio/internal/sheet"
)

func TestRunQuoteText(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader(`{"siteType":"billboard","isBudgetConscious":true,"wantsBrandKit":"yes","timeline":"rush50"}`)

	if err := runQuote(&out, in, false); err != nil {
		t.Fatalf("runQuote: %v", err)
	}

	text := out.String()
	for _, want := range []string{"Builder (GoDaddy / Wix / similar)", "Logo + Brand Kit Design", "Timeline surcharge (Super rush (+50%))", "$2,250"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, text)
		}
	}
}

func TestRunQuoteJSON(t *testing.T) {
	var out bytes.Buffer
	if err := runQuote(&out, strings.NewReader(`{"siteType":"webapp"}`), true); err != nil {
		t.Fatalf("runQuote: %v", err)
	}

	var res pricing.Result
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if res.Platform != pricing.PlatformNextJS {
		t.Fatalf("expected nextjs, got %s", res.Platform)
	}

	var sum int64
	for _, item := range res.Breakdown {
		sum += item.Amount
	}
	if sum != res.Total {
		t.Fatalf("breakdown sums to %d, total is %d", sum, res.Total)
	}
}

func TestRunQuoteRejectsMalformedInput(t *testing.T) {
	if err := runQuote(&bytes.Buffer{}, strings.NewReader(`{"siteType":`), false); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestPrintSubmissions(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	var out bytes.Buffer
	if err := printSubmissions(&out, nil, now); err != nil {
		t.Fatalf("printSubmissions: %v", err)
	}
	if !strings.Contains(out.String(), "No submissions yet.") {
		t.Fatalf("unexpected output %q", out.String())
	}

	out.Reset()
	rows := []sheet.Row{
		{ID: "a1", SubmittedAt: now.Add(-2 * time.Hour), Company: "Acme", SiteType: "retail", Total: 12500},
	}
	if err := printSubmissions(&out, rows, now); err != nil {
		t.Fatalf("printSubmissions: %v", err)
	}
	text := out.String()
	for _, want := range []string{"SUBMITTED", "2 hours ago", "Acme", "$12,500"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, text)
		}
	}
}
