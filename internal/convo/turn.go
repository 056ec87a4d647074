// Package convo holds the per-session conversation state: the transcript of
// turns and the context record merged after every user message.
package convo

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Author identifies who produced a turn.
type Author string

const (
	AuthorUser      Author = "user"
	AuthorAssistant Author = "assistant"
)

// Kind distinguishes real messages from the transient thinking placeholder.
type Kind string

const (
	KindMessage Kind = "message"
	KindStatus  Kind = "status"
)

// Turn is one transcript entry. A status turn has its Text rewritten in
// place while pending and is removed before the final reply is appended;
// message turns are immutable once appended.
type Turn struct {
	ID        string
	Author    Author
	Kind      Kind
	Text      string
	CreatedAt time.Time
}

// NewTurn builds a turn with a fresh session-unique id.
func NewTurn(author Author, kind Kind, text string) Turn {
	return Turn{
		ID:        newTurnID(),
		Author:    author,
		Kind:      kind,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// newTurnID prefers a crypto-strong UUID and degrades to a pseudo-random id
// when the entropy source is unavailable. It never fails.
func newTurnID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}
	return fmt.Sprintf("turn-%016x%08x", rand.Uint64(), rand.Uint32())
}
