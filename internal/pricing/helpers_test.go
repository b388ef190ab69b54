package pricing

import "testing"

func equal[T comparable](t *testing.T, name string, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func hasLine(t *testing.T, items []LineItem, want LineItem) {
	t.Helper()
	for _, item := range items {
		if item == want {
			return
		}
	}
	t.Fatalf("breakdown %v has no line %v", items, want)
}

func lineCount(t *testing.T, items []LineItem, want int) {
	t.Helper()
	if len(items) != want {
		t.Fatalf("breakdown has %d lines, want %d: %v", len(items), want, items)
	}
}

// pages checks the page reconciliation figures of a quote.
func pages(t *testing.T, m Meta, total, freeUpdated, extraUpdated, freeNew, extraNew int) {
	t.Helper()
	equal(t, "totalPages", m.TotalPages, total)
	equal(t, "freeUpdated", m.FreeUpdated, freeUpdated)
	equal(t, "extraUpdated", m.ExtraUpdated, extraUpdated)
	equal(t, "freeNew", m.FreeNew, freeNew)
	equal(t, "extraNew", m.ExtraNew, extraNew)
}
