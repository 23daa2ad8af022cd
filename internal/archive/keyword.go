package archive

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Spacing voiced/semi-voiced sound marks are mapped to their combining
// forms so NFC can compose them with the preceding kana.
var soundMarks = strings.NewReplacer(
	"\u309B", "\u3099",
	"\u309C", "\u309A",
)

// NormalizeKeyword rewrites dakuten/handakuten marks and returns the NFC
// form of s.
func NormalizeKeyword(s string) string {
	return norm.NFC.String(soundMarks.Replace(s))
}
