package convo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTurn(t *testing.T) {
	turn := NewTurn(AuthorUser, KindMessage, "hej")
	assert.Equal(t, AuthorUser, turn.Author)
	assert.Equal(t, KindMessage, turn.Kind)
	assert.Equal(t, "hej", turn.Text)
	assert.NotEmpty(t, turn.ID)
	assert.False(t, turn.CreatedAt.IsZero())
}

func TestTurnIDsAreUnique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := NewTurn(AuthorAssistant, KindStatus, "...").ID
		_, dup := seen[id]
		require.False(t, dup, "duplicate turn id %s", id)
		seen[id] = struct{}{}
	}
}
