package respond

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightlane/concierge/internal/classifier"
	"github.com/insightlane/concierge/internal/convo"
)

// Every Intent x Locale pair must have exactly one body, one next step and
// one status sequence. A newly added intent that misses an entry fails here,
// not at runtime.
func TestTablesAreExhaustive(t *testing.T) {
	for _, loc := range AllLocales {
		tab := tablesFor(loc)
		require.Len(t, tab.bodies, len(classifier.AllIntents), "locale %s bodies", loc)
		require.Len(t, tab.nextSteps, len(classifier.AllIntents), "locale %s next steps", loc)
		require.Len(t, tab.statuses, len(classifier.AllIntents), "locale %s statuses", loc)
		for _, intent := range classifier.AllIntents {
			assert.NotEmpty(t, tab.bodies[intent], "locale %s body for %s", loc, intent)
			assert.NotEmpty(t, tab.nextSteps[intent], "locale %s next step for %s", loc, intent)
			seq := tab.statuses[intent]
			require.NotEmpty(t, seq, "locale %s status sequence for %s", loc, intent)
			assert.GreaterOrEqual(t, len(seq), 2, "locale %s status sequence for %s", loc, intent)
		}
		require.Len(t, tab.preambles, len(classifier.AllTones), "locale %s preambles", loc)
		assert.Empty(t, tab.preambles[classifier.ToneNeutral])
		assert.NotEmpty(t, tab.discountBody)
		assert.NotEmpty(t, tab.campaignBody)
	}
}

func TestSynthesizeDeterminism(t *testing.T) {
	ctx := convo.NewContext()
	a := Synthesize(LocalePL, classifier.IntentROI, "jaki ROI?", classifier.ToneSkeptical, ctx)
	b := Synthesize(LocalePL, classifier.IntentROI, "jaki ROI?", classifier.ToneSkeptical, ctx)
	assert.Equal(t, a, b)
}

func TestSynthesizeTonePreambles(t *testing.T) {
	ctx := convo.NewContext()

	neutral := Synthesize(LocalePL, classifier.IntentPricing, "ile kosztuje?", classifier.ToneNeutral, ctx)
	assert.Equal(t, plTables.bodies[classifier.IntentPricing], neutral.Body)

	aggressive := Synthesize(LocalePL, classifier.IntentPricing, "ILE TO KOSZTUJE", classifier.ToneAggressive, ctx)
	assert.True(t, strings.HasPrefix(aggressive.Body, plTables.preambles[classifier.ToneAggressive]))
	assert.Contains(t, aggressive.Body, plTables.bodies[classifier.IntentPricing])

	skeptical := Synthesize(LocaleEN, classifier.IntentROI, "I doubt these numbers", classifier.ToneSkeptical, ctx)
	assert.True(t, strings.HasPrefix(skeptical.Body, enTables.preambles[classifier.ToneSkeptical]))
}

// Discount/campaign mentions swap only the displayed body; the next step
// still follows the classified intent.
func TestSynthesizeOverrides(t *testing.T) {
	ctx := convo.NewContext()

	discount := Synthesize(LocalePL, classifier.IntentPricing, "czy jest jakiś rabat?", classifier.ToneNeutral, ctx)
	assert.Equal(t, plTables.discountBody, discount.Body)
	assert.Equal(t, plTables.nextSteps[classifier.IntentPricing], discount.NextStep)

	campaign := Synthesize(LocaleEN, classifier.IntentGeneralProduct, "what about my ad campaign ROAS", classifier.ToneNeutral, ctx)
	assert.Equal(t, enTables.campaignBody, campaign.Body)
	assert.Equal(t, enTables.nextSteps[classifier.IntentGeneralProduct], campaign.NextStep)

	// discount wins when both vocabularies match
	both := Synthesize(LocalePL, classifier.IntentPricing, "rabat na kampanie?", classifier.ToneNeutral, ctx)
	assert.Equal(t, plTables.discountBody, both.Body)
}

func TestSynthesizePricingPlanHint(t *testing.T) {
	ctx := convo.NewContext()
	ctx.Plan = convo.PlanEnterprise
	reply := Synthesize(LocalePL, classifier.IntentPricing, "ile kosztuje?", classifier.ToneNeutral, ctx)
	assert.Contains(t, reply.Body, "Enterprise")

	// no hint without a detected plan
	bare := Synthesize(LocalePL, classifier.IntentPricing, "ile kosztuje?", classifier.ToneNeutral, convo.NewContext())
	assert.NotContains(t, bare.Body, "interesuje Cię plan")
}

func TestStatusPhrasesByIntent(t *testing.T) {
	assert.Equal(t, plStatusROI, StatusPhrases(LocalePL, classifier.IntentROI))
	assert.Equal(t, enStatusDefault, StatusPhrases(LocaleEN, classifier.IntentPricing))
	// unknown locale falls back to Polish
	assert.Equal(t, plStatusDefault, StatusPhrases(Locale("de"), classifier.IntentPricing))
}
