package convo

import (
	"strings"

	"github.com/insightlane/concierge/internal/classifier"
	"github.com/insightlane/concierge/internal/textfold"
)

// Topic is the conversation's current subject area.
type Topic string

const (
	TopicUnknown      Topic = "unknown"
	TopicProduct      Topic = "product"
	TopicPricing      Topic = "pricing"
	TopicROI          Topic = "roi"
	TopicIntegrations Topic = "integrations"
	TopicSecurity     Topic = "security"
	TopicTech         Topic = "tech"
	TopicAI           Topic = "ai"
)

// Stage tracks where in the sales conversation the session is.
type Stage string

const (
	StageIntro           Stage = "intro"
	StageAnalysis        Stage = "analysis"
	StageSimulation      Stage = "simulation"
	StageRecommendations Stage = "recommendations"
	StageTrial           Stage = "trial"
)

// Plan is a detected pricing plan name.
type Plan string

const (
	PlanUnknown      Plan = "unknown"
	PlanStarter      Plan = "Starter"
	PlanProfessional Plan = "Professional"
	PlanEnterprise   Plan = "Enterprise"
)

// TrialInterest tracks the user's stance on starting a trial. It is not
// monotonic: a refusal reverts it to "no" even after a prior "yes".
type TrialInterest string

const (
	TrialUncertain TrialInterest = "uncertain"
	TrialYes       TrialInterest = "yes"
	TrialNo        TrialInterest = "no"
)

// Context is the session-scoped summary merged after every user turn. The
// host owns the single mutable reference; Update returns a new value and
// never mutates its input.
type Context struct {
	Topic         Topic
	Plan          Plan
	Stage         Stage
	Tone          classifier.Tone
	TrialInterest TrialInterest
}

// NewContext returns the context a freshly opened widget starts with.
func NewContext() Context {
	return Context{
		Topic:         TopicUnknown,
		Plan:          PlanUnknown,
		Stage:         StageIntro,
		Tone:          classifier.ToneNeutral,
		TrialInterest: TrialUncertain,
	}
}

// topicByIntent maps topical intents to their subject area. Intents absent
// here (confirmation, refusal, clarification, comparison, skepticism,
// unintelligible) preserve the previous topic.
var topicByIntent = map[classifier.Intent]Topic{
	classifier.IntentGeneralProduct: TopicProduct,
	classifier.IntentPricing:        TopicPricing,
	classifier.IntentROI:            TopicROI,
	classifier.IntentIntegrations:   TopicIntegrations,
	classifier.IntentSecurity:       TopicSecurity,
	classifier.IntentTech:           TopicTech,
	classifier.IntentHowAIWorks:     TopicAI,
	classifier.IntentCTATrial:       TopicProduct,
}

// stageByIntent maps intent families to conversation stages. Intents absent
// here leave the stage unchanged.
var stageByIntent = map[classifier.Intent]Stage{
	classifier.IntentROI:          StageSimulation,
	classifier.IntentPricing:      StageAnalysis,
	classifier.IntentIntegrations: StageAnalysis,
	classifier.IntentSecurity:     StageAnalysis,
	classifier.IntentTech:         StageAnalysis,
	classifier.IntentHowAIWorks:   StageAnalysis,
	classifier.IntentCTATrial:     StageTrial,
	classifier.IntentConfirmation: StageRecommendations,
	classifier.IntentRefusal:      StageIntro,
}

// planVocabulary is checked in order; the first matching plan wins.
var planVocabulary = []struct {
	Plan     Plan
	Keywords []string
}{
	{PlanEnterprise, []string{"enterprise", "sso", "sla"}},
	{PlanProfessional, []string{"professional", "full"}},
	{PlanStarter, []string{"starter", "basic"}},
}

// Update merges one classified turn into the context and returns the result.
func Update(prev Context, intent classifier.Intent, tone classifier.Tone, raw string) Context {
	next := prev
	next.Tone = tone

	if topic, ok := topicByIntent[intent]; ok {
		next.Topic = topic
	}
	if stage, ok := stageByIntent[intent]; ok {
		next.Stage = stage
	}

	switch {
	case intent == classifier.IntentCTATrial || classifier.MentionsTrial(raw):
		next.TrialInterest = TrialYes
	case intent == classifier.IntentRefusal:
		next.TrialInterest = TrialNo
	}

	folded := textfold.Fold(raw)
	for _, pv := range planVocabulary {
		if containsAny(folded, pv.Keywords) {
			next.Plan = pv.Plan
			break
		}
	}

	return next
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
