package classifier

// Tone is the classified emotional register of an utterance.
type Tone string

const (
	ToneNeutral    Tone = "neutral"
	ToneCasual     Tone = "casual"
	ToneFormal     Tone = "formal"
	ToneSkeptical  Tone = "skeptical"
	ToneAggressive Tone = "aggressive"
)

// AllTones lists every tone the classifier can return.
var AllTones = []Tone{ToneNeutral, ToneCasual, ToneFormal, ToneSkeptical, ToneAggressive}

// Intent is the classified topical category of an utterance.
type Intent string

const (
	IntentGeneralProduct Intent = "general_product"
	IntentPricing        Intent = "pricing"
	IntentROI            Intent = "roi"
	IntentIntegrations   Intent = "integrations"
	IntentSecurity       Intent = "security"
	IntentTech           Intent = "tech"
	IntentHowAIWorks     Intent = "how_ai_works"
	IntentConfirmation   Intent = "confirmation"
	IntentRefusal        Intent = "refusal"
	IntentClarification  Intent = "clarification"
	IntentComparison     Intent = "comparison"
	IntentSkepticism     Intent = "skepticism"
	IntentUnintelligible Intent = "unintelligible"
	IntentCTATrial       Intent = "cta_trial"
)

// AllIntents lists every intent the cascade can return. Response tables are
// checked for exhaustiveness against this slice.
var AllIntents = []Intent{
	IntentGeneralProduct,
	IntentPricing,
	IntentROI,
	IntentIntegrations,
	IntentSecurity,
	IntentTech,
	IntentHowAIWorks,
	IntentConfirmation,
	IntentRefusal,
	IntentClarification,
	IntentComparison,
	IntentSkepticism,
	IntentUnintelligible,
	IntentCTATrial,
}

func (i Intent) String() string { return string(i) }

func (t Tone) String() string { return string(t) }
