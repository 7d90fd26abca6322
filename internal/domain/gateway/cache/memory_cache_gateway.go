package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"go-taskflow/internal/domain/model"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCacheGateway is a process local cache used when redis is disabled.
// Values are stored as JSON so callers never share memory with the cache.
type MemoryCacheGateway struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	clock   clockwork.Clock
}

var _ Gateway = (*MemoryCacheGateway)(nil)

func NewMemoryCacheGateway(ttl time.Duration, clock clockwork.Clock) *MemoryCacheGateway {
	return &MemoryCacheGateway{entries: make(map[string]memoryEntry), ttl: ttl, clock: clock}
}

func (gateway *MemoryCacheGateway) Get(_ context.Context, key string, dest any) (bool, error) {
	gateway.mu.RLock()
	entry, ok := gateway.entries[key]
	gateway.mu.RUnlock()
	if !ok || (gateway.ttl > 0 && !gateway.clock.Now().Before(entry.expiresAt)) {
		return false, nil
	}
	if err := json.Unmarshal(entry.value, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (gateway *MemoryCacheGateway) Set(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	gateway.entries[key] = memoryEntry{value: data, expiresAt: gateway.clock.Now().Add(gateway.ttl)}
	return nil
}

func (gateway *MemoryCacheGateway) Clear(_ context.Context) error {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	gateway.entries = make(map[string]memoryEntry)
	return nil
}

// DisabledHealthGateway reports a cache that is not backed by an external server
type DisabledHealthGateway struct{}

func (DisabledHealthGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUnknown,
		Details: map[string]string{"message": "Redis disabled, using in-process cache"},
	}
}
