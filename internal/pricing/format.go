package pricing

import (
	"github.com/dustin/go-humanize"
)

// FormatAmount renders whole dollars with thousands separators, e.g. "$12,345".
func FormatAmount(amount int64) string {
	if amount < 0 {
		return "-$" + humanize.Comma(-amount)
	}
	return "$" + humanize.Comma(amount)
}

// FormatQuote renders the total of a quote for display.
func FormatQuote(r Result) string {
	return FormatAmount(r.Total)
}
