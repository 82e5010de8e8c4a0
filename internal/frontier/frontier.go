// Package frontier implements component C: a bag of candidate pixels with
// O(1) membership testing, O(1) uniform random pick, and O(1) targeted
// removal by value.
package frontier

import "growthimage/pkg/core"

// Point is a pixel coordinate carrying a preference scalar used only by
// the Preferred location policy. Equality and membership are over (I, J)
// only — Preference never participates in hashing or comparison.
type Point struct {
	I, J       int
	Preference float64
}

type key struct{ i, j int }

// Frontier is a set-with-indexed-vector of Points.
type Frontier struct {
	points []Point
	index  map[key]int
}

// New returns an empty Frontier.
func New() *Frontier {
	return &Frontier{index: make(map[key]int)}
}

// Size reports the number of points currently in the frontier.
func (f *Frontier) Size() int { return len(f.points) }

// Points exposes the current frontier membership for read-only
// consumers such as a debug overlay. Callers must not mutate the
// returned slice.
func (f *Frontier) Points() []Point { return f.points }

// Contains reports whether (i, j) is a member.
func (f *Frontier) Contains(i, j int) bool {
	_, ok := f.index[key{i, j}]
	return ok
}

// Insert adds p unless a point with the same (I, J) is already present.
func (f *Frontier) Insert(p Point) {
	k := key{p.I, p.J}
	if _, ok := f.index[k]; ok {
		return
	}
	f.index[k] = len(f.points)
	f.points = append(f.points, p)
}

// Remove deletes the point at (p.I, p.J), if present. It is tolerant of
// points that are not members — Sequential location choice may ask to
// remove a point that was never on the frontier.
func (f *Frontier) Remove(p Point) bool {
	k := key{p.I, p.J}
	idx, ok := f.index[k]
	if !ok {
		return false
	}
	f.removeAt(idx)
	return true
}

// PopRandom removes and returns a uniformly random member. Panics if the
// frontier is empty — callers must check Size first (§5).
func (f *Frontier) PopRandom(rng *core.RNG) Point {
	idx := rng.IntN(len(f.points))
	p := f.points[idx]
	f.removeAt(idx)
	return p
}

// At returns the point at the given index without removing it, for
// policies (Preferred) that sample indices before deciding which to pop.
func (f *Frontier) At(idx int) Point { return f.points[idx] }

// PopAt removes and returns the point at the given index.
func (f *Frontier) PopAt(idx int) Point {
	p := f.points[idx]
	f.removeAt(idx)
	return p
}

func (f *Frontier) removeAt(idx int) {
	removed := f.points[idx]
	last := len(f.points) - 1
	f.points[idx] = f.points[last]
	f.points = f.points[:last]
	if idx < len(f.points) {
		moved := f.points[idx]
		f.index[key{moved.I, moved.J}] = idx
	}
	delete(f.index, key{removed.I, removed.J})
}
