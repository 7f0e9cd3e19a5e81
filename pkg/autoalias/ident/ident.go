// Package ident converts free-form label text into spreadsheet aliases.
package ident

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback is returned when the input yields no usable characters.
const Fallback = "var"

var (
	wordRe       = regexp.MustCompile(`[A-Za-z0-9]+`)
	separatorRe  = regexp.MustCompile(`[\s\p{Z}-]+`)
	invalidRe    = regexp.MustCompile(`[^A-Za-z0-9_]`)
	underscoreRe = regexp.MustCompile(`_+`)
	identRe      = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// umlauts uses the German two-letter transliteration.
var umlauts = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"Ä", "Ae",
	"Ö", "Oe",
	"Ü", "Ue",
	"ß", "ss",
)

// foldText trims, transliterates umlauts and drops remaining diacritics.
func foldText(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = umlauts.Replace(text)
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return folded
}

// NormalizeAlias converts text into a bare identifier matching
// ^[A-Za-z_][A-Za-z0-9_]*$. It never returns the empty string.
func NormalizeAlias(text string) string {
	folded := foldText(text)
	if folded == "" {
		return Fallback
	}

	alias := separatorRe.ReplaceAllString(folded, "_")
	alias = strings.ToLower(alias)
	alias = invalidRe.ReplaceAllString(alias, "")
	alias = underscoreRe.ReplaceAllString(alias, "_")
	alias = strings.Trim(alias, "_")
	if alias == "" {
		return Fallback
	}
	if alias[0] >= '0' && alias[0] <= '9' {
		alias = "v" + alias
	}
	return alias
}

// CamelCase converts text into a lowerCamelCase token.
func CamelCase(text string) string {
	words := wordRe.FindAllString(foldText(text), -1)
	if len(words) == 0 {
		return Fallback
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(strings.ToLower(w[1:]))
	}
	return b.String()
}

// IsIdentifier is the default alias predicate used when a grid does not
// supply its own.
func IsIdentifier(s string) bool {
	return identRe.MatchString(s)
}
