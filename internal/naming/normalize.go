package naming

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// Everything except word characters, whitespace and the chars / \ -
	// is stripped before the slug is assembled.
	nonWord   = regexp.MustCompile(`[^\p{L}\p{N}_\s/\\-]`)
	slashes   = regexp.MustCompile(`[/\\]+`)
	dashSpace = regexp.MustCompile(`[-\s]+`)
)

// Normalize converts an album title into a slug safe to use as a directory
// name. The steps run in a fixed order: unicode normalization, stripping of
// punctuation, trimming and lowercasing, folding slash runs into "-", and
// finally folding dash and whitespace runs into "_".
//
// With allowUnicode the title is NFKC-composed and non-ASCII letters survive.
// Without it the title is NFKD-decomposed and every rune outside the 7-bit
// ASCII range is dropped, so "Café" becomes "cafe" but "日本" becomes "".
//
// The result may be empty; callers decide what an empty slug means.
func Normalize(value string, allowUnicode bool) string {
	if allowUnicode {
		value = norm.NFKC.String(value)
	} else {
		value = stripNonASCII(norm.NFKD.String(value))
	}

	value = nonWord.ReplaceAllString(value, "")
	value = strings.ToLower(strings.TrimSpace(value))
	value = slashes.ReplaceAllString(value, "-")
	return dashSpace.ReplaceAllString(value, "_")
}

// stripNonASCII drops every rune outside the 7-bit range. Combined with NFKD
// decomposition this reduces accented letters to their base letter.
func stripNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}
