package field

import (
	"testing"

	"growthimage/pkg/core"
)

func TestPerlinEvalIsDeterministicGivenSameSeed(t *testing.T) {
	a := NewPerlin(core.NewRNG(11), 3, 16)
	b := NewPerlin(core.NewRNG(11), 3, 16)
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			if a.Eval(i, j) != b.Eval(i, j) {
				t.Fatalf("Eval(%d,%d) diverged between identically seeded fields", i, j)
			}
		}
	}
}

func TestPerlinEvalIsBounded(t *testing.T) {
	p := NewPerlin(core.NewRNG(5), 4, 8)
	for i := -50; i < 50; i += 3 {
		for j := -50; j < 50; j += 3 {
			v := p.Eval(i, j)
			if v < -1 || v > 1 {
				t.Fatalf("Eval(%d,%d) = %v out of [-1,1]", i, j, v)
			}
		}
	}
}

func TestPerlinEvalIsRepeatableForSameInput(t *testing.T) {
	p := NewPerlin(core.NewRNG(9), 2, 10)
	first := p.Eval(7, 13)
	second := p.Eval(7, 13)
	if first != second {
		t.Fatalf("Eval is not pure: %v != %v", first, second)
	}
}

type fakeRaster struct {
	filled map[[2]int]bool
}

func (f *fakeRaster) Filled(i, j int) bool { return f.filled[[2]int{i, j}] }

func TestGoalAttractorResamplesWhenGoalIsFilled(t *testing.T) {
	raster := &fakeRaster{filled: map[[2]int]bool{}}
	g := NewGoalAttractor(core.NewRNG(3), raster, 10, 10)

	g.Preference(0, 0)
	firstGoal := [2]int{g.goalI, g.goalJ}

	raster.filled[firstGoal] = true
	g.Preference(0, 0)
	if !g.hasGoal {
		t.Fatalf("expected hasGoal to be true after Preference call")
	}
	if !raster.Filled(firstGoal[0], firstGoal[1]) {
		t.Fatalf("sanity check: expected first goal to remain marked filled")
	}

	// The resampled goal comes from the next two draws of the same stream.
	ref := core.NewRNG(3)
	ref.IntN(10)
	ref.IntN(10)
	wantGoal := [2]int{ref.IntN(10), ref.IntN(10)}
	if got := [2]int{g.goalI, g.goalJ}; got != wantGoal {
		t.Fatalf("expected goal to be resampled to %v, got %v", wantGoal, got)
	}
}

func TestGoalAttractorPreferenceIsZeroAtGoal(t *testing.T) {
	raster := &fakeRaster{filled: map[[2]int]bool{}}
	g := NewGoalAttractor(core.NewRNG(1), raster, 5, 5)
	g.Preference(0, 0)
	pref := g.Preference(g.goalI, g.goalJ)
	if pref != 0 {
		t.Fatalf("expected preference 0 exactly at the goal, got %v", pref)
	}
}
