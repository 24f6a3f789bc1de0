package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/tabletop-backend/internal/apperror"
	"github.com/rocketscienceinc/tabletop-backend/internal/entity"
)

type memoryItem struct {
	data      []byte
	expiresAt time.Time
}

type memorySession struct {
	mu    sync.Mutex
	items map[string]memoryItem
	ttl   time.Duration
	now   func() time.Time
}

// NewMemorySessionRepository - in-process store with the same JSON and TTL behaviour as the redis one.
func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	return &memorySession{
		items: make(map[string]memoryItem),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (that *memorySession) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	item := memoryItem{data: sessionJSON}
	if that.ttl > 0 {
		item.expiresAt = that.now().Add(that.ttl)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.items[session.ID] = item

	return nil
}

func (that *memorySession) GetByID(_ context.Context, id string) (*entity.Session, error) {
	that.mu.Lock()
	item, ok := that.lookup(id)
	that.mu.Unlock()

	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	var session entity.Session
	if err := json.Unmarshal(item.data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

func (that *memorySession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.lookup(id); !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.items, id)

	return nil
}

// lookup - must be called with mu held, drops the item when it expired.
func (that *memorySession) lookup(id string) (memoryItem, bool) {
	item, ok := that.items[id]
	if !ok {
		return memoryItem{}, false
	}

	if !item.expiresAt.IsZero() && !that.now().Before(item.expiresAt) {
		delete(that.items, id)
		return memoryItem{}, false
	}

	return item, true
}
