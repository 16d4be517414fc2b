package helpers

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeUsername trims surrounding whitespace and applies NFC so that
// visually identical names compose to the same bytes. Case is preserved.
func NormalizeUsername(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
