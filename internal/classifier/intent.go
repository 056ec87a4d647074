package classifier

import (
	"strings"
	"unicode"

	"github.com/insightlane/concierge/internal/textfold"
)

// shortUtteranceWords bounds the confirmation/refusal prefix rules so that a
// longer sentence starting with "nie" or "ok" still reaches the topical rules.
const shortUtteranceWords = 4

// intentRule matches on the folded text. Exact entries must equal the whole
// utterance, Prefixes must start it on a word boundary, Keywords may occur
// anywhere. MaxWords, when non-zero, rejects longer utterances.
type intentRule struct {
	ID       string
	Intent   Intent
	Exact    []string
	Prefixes []string
	Keywords []string
	MaxWords int
}

func (r *intentRule) matches(folded string, words int) bool {
	if r.MaxWords > 0 && words > r.MaxWords {
		return false
	}
	for _, e := range r.Exact {
		if folded == e {
			return true
		}
	}
	for _, p := range r.Prefixes {
		if hasWordPrefix(folded, p) {
			return true
		}
	}
	for _, kw := range r.Keywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

// hasWordPrefix reports whether s starts with prefix ending on a word
// boundary, so "no" matches "no thanks" but not "nowy dashboard".
func hasWordPrefix(s, prefix string) bool {
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	rest := s[len(prefix):]
	if rest == "" {
		return true
	}
	r := []rune(rest)[0]
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// intentRules is the ordered cascade. First match wins; overlap between
// vocabularies is resolved by position alone.
var intentRules = []*intentRule{
	{
		ID:       "intent_confirmation",
		Intent:   IntentConfirmation,
		Prefixes: []string{"tak", "ok", "okej", "jasne", "pewnie", "zgoda", "dobrze", "yes", "yeah", "yep"},
		MaxWords: shortUtteranceWords,
	},
	{
		ID:     "intent_refusal",
		Intent: IntentRefusal,
		Exact:  []string{"nie", "no", "nope"},
		Prefixes: []string{
			"nie teraz", "nie dzieki", "nie dziekuje", "nie chce", "moze pozniej", "pozniej",
			"not now", "no thanks", "no thank you", "later", "maybe later",
		},
		MaxWords: shortUtteranceWords,
	},
	{
		ID:     "intent_clarification",
		Intent: IntentClarification,
		Keywords: []string{
			"co zawiera", "co obejmuje", "co dokladnie", "co to znaczy", "czym jest",
			"na czym polega", "jak dlugo", "ile trwa",
			"how long", "what does", "what is included", "whats included", "what exactly",
		},
	},
	{
		ID:     "intent_comparison",
		Intent: IntentComparison,
		Keywords: []string{
			"porownaj", "porownanie", "czym sie rozni", "roznica", "lepszy od", "lepsze niz",
			"konkurencj", " vs ", "vs.", "versus", "compare", "comparison", "difference",
			"better than",
		},
	},
	{
		ID:     "intent_skepticism",
		Intent: IntentSkepticism,
		Keywords: []string{
			"nie wierze", "nie ufam", "sciema", "oszustwo", "naciagane", "podejrzane",
			"watpie", "fake", "scam", "doubt", "too good",
		},
	},
	{
		ID:     "intent_integrations",
		Intent: IntentIntegrations,
		Keywords: []string{
			"integracj", "integration", "connector", "polaczyc z", "podlaczyc",
			"shopify", "allegro", "woocommerce", "prestashop", "magento", "baselinker",
		},
	},
	{
		ID:     "intent_security",
		Intent: IntentSecurity,
		Keywords: []string{
			"rodo", "gdpr", "szyfrowan", "encryption", "encrypted", "bezpieczenstw",
			"bezpieczne", "security", "secure", "pii", "dane osobowe", "izolacj",
			"isolation", "tenant", "prywatnosc", "privacy",
		},
	},
	{
		ID:     "intent_roi",
		Intent: IntentROI,
		Keywords: []string{
			"roi", "zwrot z inwestycji", "marza", "margin", "profit", "zysk",
			"payback", "oplacalnosc", "rentownosc",
		},
	},
	{
		ID:     "intent_tech",
		Intent: IntentTech,
		Keywords: []string{
			"api", "webhook", "sso", "sla", "hurtownia danych", "data warehouse",
			"bigquery", "limit", "eksport", "export", "uptime", "single sign",
		},
	},
	{
		ID:     "intent_how_ai_works",
		Intent: IntentHowAIWorks,
		Keywords: []string{
			"jak dziala ai", "jak dziala sztuczna", "sztuczna inteligencja",
			"uczenie maszynowe", "algorytm", "model ai", "halucynacj",
			"how does the ai", "how the ai works", "machine learning", "hallucin",
		},
	},
	{
		ID:       "intent_cta_trial",
		Intent:   IntentCTATrial,
		Keywords: trialVocabulary,
	},
	{
		ID:     "intent_pricing",
		Intent: IntentPricing,
		Keywords: []string{
			"cena", "cennik", "koszt", "ile kosztuje", "platnosc", "abonament",
			"subskrypcja", "faktura", "plan", "price", "pricing", "cost",
			"subscription", "billing", "payment", "invoice",
		},
	},
}

// trialVocabulary is shared with the context merge, which flips trial
// interest on any mention even when the cascade resolved elsewhere.
var trialVocabulary = []string{
	"zaloz konto", "zalozyc konto", "wyprobuj", "przetestuj", "rejestracja",
	"zarejestrowac", "okres probny", "darmowy okres", "trial", "demo",
	"sign up", "signup", "start trial", "free trial", "create account",
}

// ClassifyIntent maps an utterance to exactly one intent. Blank input or
// input with no letters and digits is unintelligible.
func ClassifyIntent(raw string) Intent {
	folded := strings.TrimSpace(textfold.Fold(raw))
	if folded == "" || !textfold.HasLetterOrDigit(folded) {
		return IntentUnintelligible
	}
	words := len(strings.Fields(folded))
	for _, r := range intentRules {
		if r.matches(folded, words) {
			return r.Intent
		}
	}
	return IntentGeneralProduct
}

// MentionsTrial reports whether the utterance contains trial/signup
// vocabulary, independent of the classified intent.
func MentionsTrial(raw string) bool {
	folded := textfold.Fold(raw)
	for _, kw := range trialVocabulary {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}
