// Package textfold normalizes chat input for pattern matching.
//
// The widget's vocabularies are written without diacritics, so every
// classifier runs on the folded form of the utterance. The original text is
// kept by callers for anything user-facing.
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Stroked letters carry no combining mark, so NFD decomposition leaves them
// untouched. They get an explicit mapping.
var stroked = strings.NewReplacer(
	"ł", "l", "Ł", "L",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
)

var marks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lower-cases s and strips diacritics (ą→a, ć→c, ł→l, ...).
// Total: a transform failure leaves the affected text as-is rather than
// dropping it.
func Fold(s string) string {
	s = stroked.Replace(s)
	if out, _, err := transform.String(marks, s); err == nil {
		s = out
	}
	return strings.ToLower(s)
}

// HasLetterOrDigit reports whether s contains at least one letter or digit.
// Pure punctuation or emoji input carries no classifiable content.
func HasLetterOrDigit(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// HasUpperRun reports whether s contains a run of at least n consecutive
// uppercase letters. Used as a shouting heuristic on the original text.
func HasUpperRun(s string, n int) bool {
	run := 0
	for _, r := range s {
		if unicode.IsUpper(r) {
			run++
			if run >= n {
				return true
			}
			continue
		}
		run = 0
	}
	return false
}
