package frontier

import (
	"testing"

	"growthimage/pkg/core"
)

func TestInsertIsIdempotentOnDuplicateCoordinates(t *testing.T) {
	f := New()
	f.Insert(Point{I: 1, J: 2, Preference: 0})
	f.Insert(Point{I: 1, J: 2, Preference: 99})
	if f.Size() != 1 {
		t.Fatalf("expected size 1 after duplicate insert, got %d", f.Size())
	}
	if !f.Contains(1, 2) {
		t.Fatalf("expected (1,2) to be a member")
	}
}

func TestRemoveIsTolerantOfNonMembers(t *testing.T) {
	f := New()
	f.Insert(Point{I: 0, J: 0})
	if f.Remove(Point{I: 5, J: 5}) {
		t.Fatalf("expected Remove of a non-member to report false")
	}
	if f.Size() != 1 {
		t.Fatalf("expected size to be unchanged, got %d", f.Size())
	}
}

func TestRemoveThenContainsFalse(t *testing.T) {
	f := New()
	f.Insert(Point{I: 3, J: 4})
	f.Insert(Point{I: 7, J: 8})
	if !f.Remove(Point{I: 3, J: 4}) {
		t.Fatalf("expected Remove to report true for a member")
	}
	if f.Contains(3, 4) {
		t.Fatalf("expected (3,4) no longer a member")
	}
	if !f.Contains(7, 8) {
		t.Fatalf("expected (7,8) to remain a member after a swap-remove")
	}
	if f.Size() != 1 {
		t.Fatalf("expected size 1, got %d", f.Size())
	}
}

func TestPopRandomDrainsWithoutDuplicatesOrOmissions(t *testing.T) {
	f := New()
	want := map[[2]int]bool{}
	for i := 0; i < 50; i++ {
		p := Point{I: i, J: i * 2}
		f.Insert(p)
		want[[2]int{p.I, p.J}] = true
	}

	rng := core.NewRNG(7)
	got := map[[2]int]bool{}
	for f.Size() > 0 {
		p := f.PopRandom(rng)
		key := [2]int{p.I, p.J}
		if got[key] {
			t.Fatalf("popped %v twice", key)
		}
		got[key] = true
		if f.Contains(p.I, p.J) {
			t.Fatalf("popped point %v still reports as a member", key)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("expected to drain %d points, got %d", len(want), len(got))
	}
	for k := range want {
		if !got[k] {
			t.Fatalf("point %v was never popped", k)
		}
	}
}

func TestPopRandomOnSingleElementFrontierReturnsIt(t *testing.T) {
	f := New()
	f.Insert(Point{I: 9, J: 9, Preference: 1.5})
	rng := core.NewRNG(1)
	p := f.PopRandom(rng)
	if p.I != 9 || p.J != 9 {
		t.Fatalf("expected (9,9), got (%d,%d)", p.I, p.J)
	}
	if f.Size() != 0 {
		t.Fatalf("expected frontier to be empty, got size %d", f.Size())
	}
}

func TestAtAndPopAtAgreeOnIndex(t *testing.T) {
	f := New()
	f.Insert(Point{I: 0, J: 0, Preference: 1})
	f.Insert(Point{I: 1, J: 1, Preference: 2})
	f.Insert(Point{I: 2, J: 2, Preference: 3})

	peeked := f.At(1)
	popped := f.PopAt(1)
	if peeked != popped {
		t.Fatalf("expected At and PopAt to agree: %v vs %v", peeked, popped)
	}
	if f.Size() != 2 {
		t.Fatalf("expected size 2 after PopAt, got %d", f.Size())
	}
	if f.Contains(popped.I, popped.J) {
		t.Fatalf("popped point should no longer be a member")
	}
}
