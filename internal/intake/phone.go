package intake

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// normalizePhone formats a phone number as E.164 using region for numbers
// without a country code. Numbers that do not parse are returned trimmed.
func normalizePhone(input, region string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, region)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return trimmed
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}
