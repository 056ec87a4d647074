// Package classifier provides tone and intent classification for chat input.
//
// Classification flow:
// 1. Fold the utterance (lower-case, strip diacritics)
// 2. Walk an ordered rule list, first match wins
// 3. Fall back to a catch-all (neutral tone, general-product intent)
//
// Both classifiers are total: any string, including the empty one, yields
// exactly one value and never an error.
package classifier

import (
	"strings"

	"github.com/insightlane/concierge/internal/textfold"
)

// upperRunLen is the shortest uppercase run treated as shouting.
const upperRunLen = 6

// toneRule matches when any keyword occurs in the folded text or, if set,
// when Extra reports true for the original text.
type toneRule struct {
	ID       string
	Tone     Tone
	Keywords []string
	Extra    func(raw string) bool
}

func (r *toneRule) matches(raw, folded string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return r.Extra != nil && r.Extra(raw)
}

// toneRules is ordered. Aggressiveness is checked before politeness because
// profanity can co-occur with a "please".
var toneRules = []*toneRule{
	{
		ID:   "tone_aggressive",
		Tone: ToneAggressive,
		Keywords: []string{
			"cholera", "kurde", "kurcze", "do diabla", "zenada", "dno",
			"damn", "wtf", "bullshit", "crap", "idiot", "garbage",
		},
		Extra: func(raw string) bool { return textfold.HasUpperRun(raw, upperRunLen) },
	},
	{
		ID:   "tone_skeptical",
		Tone: ToneSkeptical,
		Keywords: []string{
			"nie wierze", "nie ufam", "sciema", "oszustwo", "naciagane",
			"podejrzane", "watpie",
			"fake", "scam", "doubt", "too good to be true", "not convinced",
		},
	},
	{
		ID:   "tone_formal",
		Tone: ToneFormal,
		Keywords: []string{
			"prosze", "uprzejmie", "dzien dobry", "szanowni", "czy moglbym",
			"czy mogliby panstwo",
			"please", "kindly", "could you", "would you",
		},
	},
	{
		ID:   "tone_casual",
		Tone: ToneCasual,
		Keywords: []string{
			"spoko", "siema", "hej", "fajnie", "no dobra", "ziomek",
			"lol", "xd", "yo", "sure", "btw", "cool",
		},
	},
}

// ClassifyTone maps an utterance to its emotional register.
// Empty input is neutral.
func ClassifyTone(raw string) Tone {
	folded := textfold.Fold(raw)
	for _, r := range toneRules {
		if r.matches(raw, folded) {
			return r.Tone
		}
	}
	return ToneNeutral
}
