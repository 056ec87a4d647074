package convo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/insightlane/concierge/internal/classifier"
)

func TestUpdateTopicAndStage(t *testing.T) {
	ctx := NewContext()

	ctx = Update(ctx, classifier.IntentROI, classifier.ToneNeutral, "jaki ROI?")
	assert.Equal(t, TopicROI, ctx.Topic)
	assert.Equal(t, StageSimulation, ctx.Stage)

	// an unrelated intent preserves the topic
	ctx = Update(ctx, classifier.IntentSkepticism, classifier.ToneSkeptical, "nie wierzę w te liczby")
	assert.Equal(t, TopicROI, ctx.Topic)
	assert.Equal(t, StageSimulation, ctx.Stage)
	assert.Equal(t, classifier.ToneSkeptical, ctx.Tone)

	ctx = Update(ctx, classifier.IntentConfirmation, classifier.ToneNeutral, "tak")
	assert.Equal(t, StageRecommendations, ctx.Stage)
	assert.Equal(t, TopicROI, ctx.Topic)
}

func TestUpdateToneAlwaysTracksLastTurn(t *testing.T) {
	ctx := NewContext()
	ctx = Update(ctx, classifier.IntentPricing, classifier.ToneFormal, "proszę o cennik")
	assert.Equal(t, classifier.ToneFormal, ctx.Tone)
	ctx = Update(ctx, classifier.IntentUnintelligible, classifier.ToneNeutral, "???")
	assert.Equal(t, classifier.ToneNeutral, ctx.Tone)
}

func TestUpdateTrialInterest(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, TrialUncertain, ctx.TrialInterest)

	ctx = Update(ctx, classifier.IntentCTATrial, classifier.ToneNeutral, "chcę założyć konto, start trial")
	assert.Equal(t, TrialYes, ctx.TrialInterest)
	assert.Equal(t, StageTrial, ctx.Stage)

	// not monotonic: an explicit refusal reverts interest
	ctx = Update(ctx, classifier.IntentRefusal, classifier.ToneNeutral, "nie teraz")
	assert.Equal(t, TrialNo, ctx.TrialInterest)
	assert.Equal(t, StageIntro, ctx.Stage)

	// trial vocabulary flips interest even without the CTA intent
	ctx = Update(ctx, classifier.IntentPricing, classifier.ToneNeutral, "ile kosztuje okres próbny?")
	assert.Equal(t, TrialYes, ctx.TrialInterest)
}

func TestUpdatePlanDetection(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, PlanUnknown, ctx.Plan)

	ctx = Update(ctx, classifier.IntentTech, classifier.ToneNeutral, "czy macie SSO?")
	assert.Equal(t, PlanEnterprise, ctx.Plan)

	// no plan mention keeps the previous detection
	ctx = Update(ctx, classifier.IntentPricing, classifier.ToneNeutral, "ile to kosztuje?")
	assert.Equal(t, PlanEnterprise, ctx.Plan)

	ctx = Update(ctx, classifier.IntentPricing, classifier.ToneNeutral, "a plan starter?")
	assert.Equal(t, PlanStarter, ctx.Plan)
}

func TestUpdateIsPure(t *testing.T) {
	prev := NewContext()
	_ = Update(prev, classifier.IntentROI, classifier.ToneCasual, "spoko, jaki ROI?")
	assert.Equal(t, NewContext(), prev)
}
