package quotepdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	out, err := Render(Document{
		Reference: "3f0c2a9e",
		Date:      "March 4, 2026",
		Client:    "Jane Doe (Acme)",
		Email:     "jane@example.com",
		SiteType:  "Service business",
		Platform:  "Webflow",
		Timeline:  "Standard timeline",
		Pages:     8,
		Lines: []Line{
			{Label: "Service business · Webflow", Amount: "$1,300"},
			{Label: "Additional new pages (3 × $150)", Amount: "$450"},
		},
		Total: "$1,750",
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Greater(t, len(out), 500)
}

func TestRender_EmptyBreakdown(t *testing.T) {
	out, err := Render(Document{Reference: "x", Total: "$0"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
