package agent

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const maxRememberedTurns = 20

// shortTermMemory keeps the recent turns of active sessions in process
// memory so consecutive requests don't re-read the full history. Entries
// expire on their own; a cold session is reseeded from the store.
type shortTermMemory struct {
	cache *cache.Cache
}

func newShortTermMemory() *shortTermMemory {
	// Default expiration of one hour, purged every ten minutes.
	return &shortTermMemory{
		cache: cache.New(1*time.Hour, 10*time.Minute),
	}
}

func (m *shortTermMemory) Load(sessionId string) ([]Turn, bool) {
	if x, found := m.cache.Get(sessionId); found {
		return x.([]Turn), true
	}
	return nil, false
}

func (m *shortTermMemory) Append(sessionId string, turns ...Turn) {
	existing, _ := m.Load(sessionId)
	existing = append(existing, turns...)
	if len(existing) > maxRememberedTurns {
		existing = existing[len(existing)-maxRememberedTurns:]
	}
	m.cache.Set(sessionId, existing, cache.DefaultExpiration)
}

func (m *shortTermMemory) Seed(sessionId string, turns []Turn) {
	if len(turns) > maxRememberedTurns {
		turns = turns[len(turns)-maxRememberedTurns:]
	}
	m.cache.Set(sessionId, turns, cache.DefaultExpiration)
}
