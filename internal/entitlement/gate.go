// Package entitlement tracks free-tier usage and premium status per client.
// The gate is advisory: state lives client-side of any payment verification
// and can be cleared by the client. It must never block on storage failures.
package entitlement

import (
	"context"
	"log/slog"
)

// DefaultFreeLimit is the number of generations granted without a license.
const DefaultFreeLimit = 3

// Store persists the usage counter and premium flag per client.
type Store interface {
	Count(ctx context.Context, clientID string) (int, error)
	SetCount(ctx context.Context, clientID string, n int) error
	Premium(ctx context.Context, clientID string) (bool, error)
	SetPremium(ctx context.Context, clientID string, premium bool) error
	Clear(ctx context.Context, clientID string) error
}

// Gate decides whether a client may generate and records usage.
type Gate struct {
	store Store
	limit int
}

// NewGate creates a gate over the given store. limit <= 0 selects
// DefaultFreeLimit.
func NewGate(store Store, limit int) *Gate {
	if limit <= 0 {
		limit = DefaultFreeLimit
	}
	return &Gate{store: store, limit: limit}
}

// FreeLimit returns the configured free-tier limit.
func (g *Gate) FreeLimit() int {
	return g.limit
}

// IsPremium reports whether the client holds a license. Storage failures
// read as "not premium".
func (g *Gate) IsPremium(ctx context.Context, clientID string) bool {
	premium, err := g.store.Premium(ctx, clientID)
	if err != nil {
		slog.Warn("entitlement read failed, assuming no prior state", "client_id", clientID, "error", err)
		return false
	}
	return premium
}

// CanGenerate returns true if the client is premium or still under the
// free-tier limit.
func (g *Gate) CanGenerate(ctx context.Context, clientID string) bool {
	if g.IsPremium(ctx, clientID) {
		return true
	}
	return g.count(ctx, clientID) < g.limit
}

// Remaining returns how many free generations the client has left; zero for
// exhausted clients. Premium clients report the full limit.
func (g *Gate) Remaining(ctx context.Context, clientID string) int {
	if g.IsPremium(ctx, clientID) {
		return g.limit
	}
	if r := g.limit - g.count(ctx, clientID); r > 0 {
		return r
	}
	return 0
}

// RecordGeneration increments the usage counter. No-op for premium clients.
func (g *Gate) RecordGeneration(ctx context.Context, clientID string) error {
	if g.IsPremium(ctx, clientID) {
		return nil
	}
	return g.store.SetCount(ctx, clientID, g.count(ctx, clientID)+1)
}

// GrantPremium marks the client as licensed.
func (g *Gate) GrantPremium(ctx context.Context, clientID string) error {
	return g.store.SetPremium(ctx, clientID, true)
}

// ResetDemo clears both the counter and the premium flag. Development and
// demo affordance, not a production control.
func (g *Gate) ResetDemo(ctx context.Context, clientID string) error {
	return g.store.Clear(ctx, clientID)
}

func (g *Gate) count(ctx context.Context, clientID string) int {
	count, err := g.store.Count(ctx, clientID)
	if err != nil {
		slog.Warn("usage counter read failed, defaulting to zero", "client_id", clientID, "error", err)
		return 0
	}
	return count
}
