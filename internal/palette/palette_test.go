package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	colorpkg "growthimage/internal/color"
	"growthimage/pkg/core"
)

func TestGenerateUniformSizeAtLeastN(t *testing.T) {
	for _, n := range []int{1, 2, 8, 9, 64, 65, 1000} {
		colors := GenerateUniform(n)
		assert.GreaterOrEqualf(t, len(colors), n, "n=%d", n)
	}
}

func TestNewRejectsEmptySet(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestPoolTreeInvariantAcrossPops(t *testing.T) {
	p, err := NewUniform(64)
	require.NoError(t, err)
	rng := core.NewRNG(42)

	initial := p.Len()
	require.Equal(t, initial, len(p.pool))

	p.PopClosest(colorpkg.New(128, 128, 128), 0)
	assert.Equal(t, initial-1, p.Len())
	assert.Equal(t, p.Len(), len(p.pool))

	p.PopRandom(rng)
	assert.Equal(t, initial-2, p.Len())
	assert.Equal(t, p.Len(), len(p.pool))

	p.PopBack()
	assert.Equal(t, initial-3, p.Len())
	assert.Equal(t, p.Len(), len(p.pool))
}

func TestPopExhaustsExactly(t *testing.T) {
	p, err := New([]colorpkg.Color{{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}})
	require.NoError(t, err)

	seen := map[colorpkg.Color]bool{}
	for p.Len() > 0 {
		seen[p.PopBack()] = true
	}
	assert.Len(t, seen, 2)
	assert.Equal(t, 0, p.Len())
}

func TestFromImageClustersFallsBackToUniformWhenEmpty(t *testing.T) {
	p, err := FromImageClusters(nil, 4, 16)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, p.Len(), 16)
}
