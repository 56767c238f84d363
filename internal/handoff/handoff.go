// Package handoff parks a serialized syllabus across the payment redirect
// round trip. Each slot is single-use: Consume reads the payload and deletes
// it in the same operation, so a parked value can be claimed at most once.
package handoff

import (
	"context"
	"sync"
	"time"
)

// TTL bounds how long a parked payload survives an abandoned redirect.
const TTL = time.Hour

// Mailbox is a single-slot, consume-once store keyed by client.
type Mailbox interface {
	// Park stores the payload, replacing any previous slot for the client.
	Park(ctx context.Context, clientID string, payload []byte) error
	// Consume returns the parked payload and deletes it. ok is false when
	// the slot is empty or expired.
	Consume(ctx context.Context, clientID string) (payload []byte, ok bool, err error)
}

type memorySlot struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryMailbox is an in-memory Mailbox for development and tests.
type MemoryMailbox struct {
	mu    sync.Mutex
	slots map[string]memorySlot
	now   func() time.Time
}

// NewMemoryMailbox creates an empty in-memory mailbox.
func NewMemoryMailbox() *MemoryMailbox {
	return &MemoryMailbox{
		slots: make(map[string]memorySlot),
		now:   time.Now,
	}
}

func (m *MemoryMailbox) Park(_ context.Context, clientID string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[clientID] = memorySlot{
		payload:   append([]byte(nil), payload...),
		expiresAt: m.now().Add(TTL),
	}
	return nil
}

func (m *MemoryMailbox) Consume(_ context.Context, clientID string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot, ok := m.slots[clientID]
	if !ok {
		return nil, false, nil
	}
	delete(m.slots, clientID)

	if m.now().After(slot.expiresAt) {
		return nil, false, nil
	}
	return slot.payload, true, nil
}
