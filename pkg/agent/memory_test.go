package agent

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortTermMemoryColdLoad(t *testing.T) {
	m := newShortTermMemory()

	turns, cached := m.Load("session-1")
	assert.False(t, cached)
	assert.Nil(t, turns)
}

func TestShortTermMemorySeedAndAppend(t *testing.T) {
	m := newShortTermMemory()

	m.Seed("session-1", []Turn{{Role: "user", Text: "hi"}})
	m.Append("session-1", Turn{Role: "model", Text: "hello"})

	turns, cached := m.Load("session-1")
	require.True(t, cached)
	require.Len(t, turns, 2)
	assert.Equal(t, "hello", turns[1].Text)
}

func TestShortTermMemoryKeepsMostRecentTurns(t *testing.T) {
	m := newShortTermMemory()

	for i := 0; i < maxRememberedTurns+5; i++ {
		m.Append("session-1", Turn{Role: "user", Text: fmt.Sprintf("turn %d", i)})
	}

	turns, cached := m.Load("session-1")
	require.True(t, cached)
	require.Len(t, turns, maxRememberedTurns)
	assert.Equal(t, fmt.Sprintf("turn %d", maxRememberedTurns+4), turns[len(turns)-1].Text)
}

func TestShortTermMemorySeedTruncates(t *testing.T) {
	m := newShortTermMemory()

	seed := make([]Turn, maxRememberedTurns+3)
	for i := range seed {
		seed[i] = Turn{Role: "user", Text: fmt.Sprintf("turn %d", i)}
	}
	m.Seed("session-1", seed)

	turns, cached := m.Load("session-1")
	require.True(t, cached)
	assert.Len(t, turns, maxRememberedTurns)
	assert.Equal(t, "turn 3", turns[0].Text)
}

func TestShortTermMemorySessionsAreIsolated(t *testing.T) {
	m := newShortTermMemory()

	m.Append("session-1", Turn{Role: "user", Text: "one"})
	m.Append("session-2", Turn{Role: "user", Text: "two"})

	turns, _ := m.Load("session-1")
	require.Len(t, turns, 1)
	assert.Equal(t, "one", turns[0].Text)
}
