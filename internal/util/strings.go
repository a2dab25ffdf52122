package util

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// AddSpace adds a space, if not present, between ASCII and non-ASCII characters.
// Validator translations in some locales glue field names onto the message.
func AddSpace(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && isASCII(r) != isASCII(runes[i-1]) && runes[i-1] != ' ' && r != ' ' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isASCII(r rune) bool {
	return r <= unicode.MaxASCII
}

// NormalizeTags trims, lower-cases and de-duplicates free keyword tags, dropping empty ones.
func NormalizeTags(tags []string) []string {
	normalized := lo.FilterMap(tags, func(tag string, _ int) (string, bool) {
		tag = strings.ToLower(strings.TrimSpace(tag))
		return tag, tag != ""
	})
	return lo.Uniq(normalized)
}
