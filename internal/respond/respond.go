// Package respond turns a classified utterance into the assistant's reply.
//
// Everything here is a lookup: canned bodies keyed by intent, next-step hints
// keyed by intent, preambles keyed by tone, all per locale. Synthesis is
// deterministic and pure so identical inputs always produce identical text.
package respond

import (
	"fmt"
	"strings"

	"github.com/insightlane/concierge/internal/classifier"
	"github.com/insightlane/concierge/internal/convo"
	"github.com/insightlane/concierge/internal/textfold"
)

// Locale selects the vocabulary, response, and status tables.
type Locale string

const (
	LocalePL Locale = "pl"
	LocaleEN Locale = "en"
)

// AllLocales lists every supported locale. Response tables are checked for
// exhaustiveness against this slice.
var AllLocales = []Locale{LocalePL, LocaleEN}

// Reply is the synthesized assistant output for one turn.
type Reply struct {
	Body     string
	NextStep string
}

// localeTables holds every lookup for one locale. Each intent in
// classifier.AllIntents has exactly one body, one next step, and one status
// sequence; each tone has one preamble (empty for neutral).
type localeTables struct {
	bodies    map[classifier.Intent]string
	nextSteps map[classifier.Intent]string
	preambles map[classifier.Tone]string
	statuses  map[classifier.Intent][]string

	// presentation overrides, selected by raw-text vocabulary regardless
	// of the classified intent
	discountBody string
	campaignBody string

	// appended to the pricing body when a plan was already detected
	planHint string
}

var tables = map[Locale]*localeTables{
	LocalePL: plTables,
	LocaleEN: enTables,
}

// tablesFor is total: an unknown locale falls back to Polish, the widget's
// primary market.
func tablesFor(loc Locale) *localeTables {
	if t, ok := tables[loc]; ok {
		return t
	}
	return tables[LocalePL]
}

// Override vocabularies. A match swaps the reply body only; the classified
// intent still drives the context update, the next-step hint, and stats.
var (
	discountVocab = []string{
		"rabat", "znizk", "promocj", "kod rabatowy", "taniej",
		"discount", "promo code", "voucher",
	}
	campaignVocab = []string{
		"kampani", "roas", "google ads", "facebook ads", "reklam",
		"adwords", "ad spend", "campaign",
	}
)

// Synthesize produces the reply for one classified turn.
func Synthesize(loc Locale, intent classifier.Intent, raw string, tone classifier.Tone, ctx convo.Context) Reply {
	t := tablesFor(loc)
	folded := textfold.Fold(raw)

	var body string
	switch {
	case containsAny(folded, discountVocab):
		body = t.discountBody
	case containsAny(folded, campaignVocab):
		body = t.campaignBody
	default:
		body = t.bodies[intent]
		if intent == classifier.IntentPricing && ctx.Plan != convo.PlanUnknown {
			body += " " + fmt.Sprintf(t.planHint, ctx.Plan)
		}
	}

	if pre := t.preambles[tone]; pre != "" {
		body = pre + " " + body
	}

	return Reply{Body: body, NextStep: t.nextSteps[intent]}
}

// StatusPhrases returns the thinking-placeholder sequence for an intent.
// The scheduler cycles through it while the reply is pending.
func StatusPhrases(loc Locale, intent classifier.Intent) []string {
	return tablesFor(loc).statuses[intent]
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
