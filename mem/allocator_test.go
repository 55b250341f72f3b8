package mem

import (
	"errors"
	"testing"
)

func TestGoAllocatorNeverRefuses(t *testing.T) {
	var a Allocator = GoAllocator{}
	if err := a.Reserve(1 << 40); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	a.Release(1 << 40)
}

func TestBudgetRefusesPastLimit(t *testing.T) {
	b := NewBudget(100)
	if err := b.Reserve(60); err != nil {
		t.Fatalf("reserve 60: %v", err)
	}
	err := b.Reserve(50)
	if !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory, got %v", err)
	}
	if b.InUse() != 60 {
		t.Fatalf("refused reservation changed usage: %d", b.InUse())
	}
	b.Release(60)
	if err := b.Reserve(100); err != nil {
		t.Fatalf("reserve after release: %v", err)
	}
	if b.InUse() != 100 || b.Limit() != 100 {
		t.Fatalf("inUse=%d limit=%d", b.InUse(), b.Limit())
	}
}

func TestBudgetIgnoresEmptyRequests(t *testing.T) {
	b := NewBudget(0)
	if err := b.Reserve(0); err != nil {
		t.Fatalf("empty reserve: %v", err)
	}
	b.Release(0)
	if err := b.Reserve(1); err == nil {
		t.Fatalf("zero budget granted a byte")
	}
}
