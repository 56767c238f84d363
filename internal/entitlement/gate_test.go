package entitlement

import (
	"context"
	"errors"
	"testing"
)

func TestGate_FreeTierLifecycle(t *testing.T) {
	ctx := context.Background()
	gate := NewGate(NewMemoryStore(), 0)

	// Exactly DefaultFreeLimit generations succeed.
	for i := 0; i < DefaultFreeLimit; i++ {
		if !gate.CanGenerate(ctx, "client-a") {
			t.Fatalf("CanGenerate() = false on generation %d, want true", i+1)
		}
		if err := gate.RecordGeneration(ctx, "client-a"); err != nil {
			t.Fatalf("RecordGeneration() error = %v", err)
		}
	}

	if gate.CanGenerate(ctx, "client-a") {
		t.Error("CanGenerate() = true after exhausting the free tier")
	}
	if got := gate.Remaining(ctx, "client-a"); got != 0 {
		t.Errorf("Remaining() = %d, want 0", got)
	}

	// Other clients are unaffected.
	if !gate.CanGenerate(ctx, "client-b") {
		t.Error("CanGenerate() = false for a fresh client")
	}
}

func TestGate_GrantPremium(t *testing.T) {
	ctx := context.Background()
	gate := NewGate(NewMemoryStore(), 3)

	for i := 0; i < 5; i++ {
		_ = gate.RecordGeneration(ctx, "client-a")
	}
	if gate.CanGenerate(ctx, "client-a") {
		t.Fatal("precondition: free tier should be exhausted")
	}

	if err := gate.GrantPremium(ctx, "client-a"); err != nil {
		t.Fatalf("GrantPremium() error = %v", err)
	}
	if !gate.CanGenerate(ctx, "client-a") {
		t.Error("CanGenerate() = false for premium client regardless of count")
	}
	if !gate.IsPremium(ctx, "client-a") {
		t.Error("IsPremium() = false after grant")
	}
}

func TestGate_RecordGeneration_PremiumNoOp(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	gate := NewGate(store, 3)

	if err := gate.GrantPremium(ctx, "client-a"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		if err := gate.RecordGeneration(ctx, "client-a"); err != nil {
			t.Fatalf("RecordGeneration() error = %v", err)
		}
	}

	count, _ := store.Count(ctx, "client-a")
	if count != 0 {
		t.Errorf("counter = %d, want 0 (premium recording is a no-op)", count)
	}
}

func TestGate_ResetDemo(t *testing.T) {
	ctx := context.Background()
	gate := NewGate(NewMemoryStore(), 3)

	for i := 0; i < 3; i++ {
		_ = gate.RecordGeneration(ctx, "client-a")
	}
	_ = gate.GrantPremium(ctx, "client-a")

	if err := gate.ResetDemo(ctx, "client-a"); err != nil {
		t.Fatalf("ResetDemo() error = %v", err)
	}
	if gate.IsPremium(ctx, "client-a") {
		t.Error("IsPremium() = true after reset")
	}
	if got := gate.Remaining(ctx, "client-a"); got != 3 {
		t.Errorf("Remaining() = %d, want 3", got)
	}

	// Exactly three further generations are re-enabled.
	for i := 0; i < 3; i++ {
		if !gate.CanGenerate(ctx, "client-a") {
			t.Fatalf("CanGenerate() = false on post-reset generation %d", i+1)
		}
		_ = gate.RecordGeneration(ctx, "client-a")
	}
	if gate.CanGenerate(ctx, "client-a") {
		t.Error("CanGenerate() = true after re-exhausting the free tier")
	}
}

// failingStore simulates corrupt or inaccessible persisted state.
type failingStore struct{}

func (failingStore) Count(context.Context, string) (int, error) {
	return 0, errors.New("corrupt state")
}
func (failingStore) SetCount(context.Context, string, int) error { return nil }
func (failingStore) Premium(context.Context, string) (bool, error) {
	return false, errors.New("corrupt state")
}
func (failingStore) SetPremium(context.Context, string, bool) error { return nil }
func (failingStore) Clear(context.Context, string) error            { return nil }

func TestGate_StorageFailureReadsAsNoPriorState(t *testing.T) {
	ctx := context.Background()
	gate := NewGate(failingStore{}, 3)

	if !gate.CanGenerate(ctx, "client-a") {
		t.Error("CanGenerate() = false on storage failure, want true (count defaults to zero)")
	}
	if got := gate.Remaining(ctx, "client-a"); got != 3 {
		t.Errorf("Remaining() = %d, want 3", got)
	}
}
