package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/insightlane/concierge/internal/classifier"
)

func TestCollector(t *testing.T) {
	c := NewCollector()

	c.RecordTurn(classifier.IntentPricing, classifier.ToneNeutral)
	c.RecordTurn(classifier.IntentPricing, classifier.ToneFormal)
	c.RecordTurn(classifier.IntentROI, classifier.ToneNeutral)
	c.RecordCancelled()
	c.RecordRejected()
	c.RecordRejected()

	snap := c.Collect()
	assert.Equal(t, int64(3), snap.TurnCount)
	assert.Equal(t, int64(1), snap.Cancelled)
	assert.Equal(t, int64(2), snap.Rejected)
	assert.Equal(t, int64(2), snap.ByIntent[classifier.IntentPricing])
	assert.Equal(t, int64(1), snap.ByIntent[classifier.IntentROI])
	assert.Equal(t, int64(2), snap.ByTone[classifier.ToneNeutral])
}

// Snapshots are copies; mutating one must not affect the collector.
func TestSnapshotIsolation(t *testing.T) {
	c := NewCollector()
	c.RecordTurn(classifier.IntentTech, classifier.ToneCasual)

	snap := c.Collect()
	snap.ByIntent[classifier.IntentTech] = 99

	assert.Equal(t, int64(1), c.Collect().ByIntent[classifier.IntentTech])
}
