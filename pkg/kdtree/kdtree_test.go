package kdtree

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vec3 is a minimal Vector used only by this test file.
type vec3 struct{ x, y, z float64 }

func (v vec3) Dims() int          { return 3 }
func (v vec3) Coord(d int) float64 {
	switch d {
	case 0:
		return v.x
	case 1:
		return v.y
	default:
		return v.z
	}
}

func linearNearest(available []vec3, query vec3) (float64, vec3) {
	bestDist := math.Inf(1)
	var best vec3
	for _, v := range available {
		d := distance(query, v)
		if d < bestDist {
			bestDist = d
			best = v
		}
	}
	return bestDist, best
}

func TestBuildGroupsEqualCoordinatesIntoRepeatedLeaves(t *testing.T) {
	points := []vec3{
		{10, 10, 10},
		{10, 10, 10},
		{10, 10, 20},
		{10, 10, 20},
	}
	tree := Build(points)
	require.Equal(t, 4, tree.NumAvailable())

	first := tree.PopClosest(vec3{10, 10, 12})
	second := tree.PopClosest(vec3{10, 10, 12})
	assert.Equal(t, first, second, "first two pops must exhaust the nearer group before switching")

	third := tree.PopClosest(vec3{10, 10, 12})
	assert.NotEqual(t, first, third, "third pop must come from the other group")
	require.True(t, tree.CheckInvariant())
	require.Equal(t, 1, tree.NumAvailable())
}

func TestPopClosestMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	points := make([]vec3, 200)
	for i := range points {
		points[i] = vec3{
			x: rng.Float64() * 255,
			y: rng.Float64() * 255,
			z: rng.Float64() * 255,
		}
	}
	tree := Build(points)
	available := append([]vec3(nil), points...)

	for len(available) > 0 {
		query := vec3{rng.Float64() * 255, rng.Float64() * 255, rng.Float64() * 255}
		_, wantValue := linearNearest(available, query)
		got := tree.PopClosest(query)
		assert.Equal(t, wantValue, got)
		require.True(t, tree.CheckInvariant())

		for i, v := range available {
			if v == got {
				available = append(available[:i], available[i+1:]...)
				break
			}
		}
	}
	assert.Equal(t, 0, tree.NumAvailable())
}

func TestParentLinkSoundnessAfterRandomPops(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 9))
	points := make([]vec3, 97)
	for i := range points {
		points[i] = vec3{rng.Float64() * 10, rng.Float64() * 10, rng.Float64() * 10}
	}
	tree := Build(points)

	for tree.NumAvailable() > 0 {
		query := vec3{rng.Float64() * 10, rng.Float64() * 10, rng.Float64() * 10}
		tree.PopClosest(query)
		require.True(t, tree.CheckInvariant())
	}
}

func TestPeekClosestDoesNotConsume(t *testing.T) {
	points := []vec3{{0, 0, 0}, {100, 100, 100}}
	tree := Build(points)

	dist, value := tree.PeekClosest(vec3{1, 1, 1})
	assert.InDelta(t, math.Sqrt(3), dist, 1e-9)
	assert.Equal(t, vec3{0, 0, 0}, value)
	assert.Equal(t, 2, tree.NumAvailable())
}

func TestPopExhaustedTreePanics(t *testing.T) {
	tree := Build([]vec3{{0, 0, 0}})
	tree.PopClosest(vec3{0, 0, 0})
	assert.Panics(t, func() {
		tree.PopClosest(vec3{0, 0, 0})
	})
}

func TestPopClosestWithToleranceAlwaysPopsNearest(t *testing.T) {
	points := []vec3{{0, 0, 0}, {5, 0, 0}, {50, 0, 0}}
	tree := Build(points)
	got := tree.PopClosestWithTolerance(vec3{1, 0, 0}, 0)
	assert.Equal(t, vec3{0, 0, 0}, got)

	got2 := tree.PopClosestWithTolerance(vec3{1, 0, 0}, 1000)
	assert.Equal(t, vec3{5, 0, 0}, got2, "epsilon must not change which leaf is popped")
}
