package ut

import "testing"

func TestRandSeedDeterminism(t *testing.T) {
	a := NewRand(1234).Next()
	b := NewRand(1234).Next()
	if a != b {
		t.Fatalf("expected deterministic sequence")
	}
	if NewRand(0).Next() != NewRand(DefaultSeed).Next() {
		t.Fatalf("zero seed should fall back to the default seed")
	}
}

func TestRandInterval(t *testing.T) {
	r := NewRand(1)
	for i := 0; i < 1000; i++ {
		val := r.Interval(5, 10)
		if val < 5 || val > 10 {
			t.Fatalf("val=%d", val)
		}
	}
	if got := r.Interval(3, 3); got != 3 {
		t.Fatalf("degenerate interval=%d", got)
	}
	if got := r.Interval(9, 2); got < 2 || got > 9 {
		t.Fatalf("swapped interval=%d", got)
	}
}

func TestRandInt31AndBool(t *testing.T) {
	r := NewRand(99)
	seenTrue, seenFalse := false, false
	for i := 0; i < 200; i++ {
		if v := r.Int31(); v < 0 {
			t.Fatalf("negative value %d", v)
		}
		if r.Bool() {
			seenTrue = true
		} else {
			seenFalse = true
		}
	}
	if !seenTrue || !seenFalse {
		t.Fatalf("bool generator is stuck")
	}
}
