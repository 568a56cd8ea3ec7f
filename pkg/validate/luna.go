package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

// NormalizeCard drops the spaces and dashes people type between digit groups.
func NormalizeCard(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(s))
}

func IsLuhn(s string) bool {
	s = NormalizeCard(s)
	if len(s) < 12 || len(s) > 19 {
		return false
	}
	return goluhn.Validate(s) == nil
}

// CardLast4 returns the last four digits of a card number, or "" when the
// number is too short to have them.
func CardLast4(s string) string {
	s = NormalizeCard(s)
	if len(s) < 4 {
		return ""
	}
	return s[len(s)-4:]
}
