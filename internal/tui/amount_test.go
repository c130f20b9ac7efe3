package tui

import "testing"

func TestAmountTakeDefaultsToOne(t *testing.T) {
	t.Parallel()

	var a amountBuffer
	if got := a.Take(); got != 1 {
		t.Fatalf("Take() on empty buffer = %d, want 1", got)
	}
}

func TestAmountTakeParsesAndClears(t *testing.T) {
	t.Parallel()

	var a amountBuffer
	a.Push('4')
	a.Push('2')
	if got := a.Pending(); got != "42" {
		t.Fatalf("Pending() = %q, want %q", got, "42")
	}
	if got := a.Take(); got != 42 {
		t.Fatalf("Take() = %d, want 42", got)
	}
	if got := a.Take(); got != 1 {
		t.Fatalf("Take() after consumption = %d, want default 1", got)
	}
}

func TestAmountExplicitZeroIsHonored(t *testing.T) {
	t.Parallel()

	var a amountBuffer
	a.Push('0')
	if got := a.Take(); got != 0 {
		t.Fatalf("Take() = %d, want 0", got)
	}
}

func TestAmountOverflowFallsBackToDefault(t *testing.T) {
	t.Parallel()

	var a amountBuffer
	for i := 0; i < 30; i++ {
		a.Push('9')
	}
	if got := a.Take(); got != 1 {
		t.Fatalf("Take() on overflowing buffer = %d, want default 1", got)
	}
}
