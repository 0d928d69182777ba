package testutil

import (
	"slices"
	"testing"
)

// Sized is satisfied by containers reporting a length and a capacity.
type Sized interface {
	Len() int
	Cap() int
}

// RequireElements fails t if got and want differ in length or content.
func RequireElements[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("elements = %v, want %v", got, want)
	}
}

// RequireInvariant fails t unless 0 <= Len() <= Cap().
func RequireInvariant(t *testing.T, s Sized) {
	t.Helper()
	if s.Len() < 0 || s.Len() > s.Cap() {
		t.Fatalf("invariant broken: Len()=%d Cap()=%d", s.Len(), s.Cap())
	}
}

// RequirePanics fails t if fn returns without panicking.
func RequirePanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	fn()
}
