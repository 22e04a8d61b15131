package implementation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectRing(r *ring[int]) []int {
	var out []int
	r.each(func(v int) { out = append(out, v) })
	return out
}

func TestRing(t *testing.T) {
	t.Run("fills up to capacity without evicting", func(t *testing.T) {
		r := newRing[int](3)
		assert.False(t, r.push(1))
		assert.False(t, r.push(2))
		assert.False(t, r.push(3))
		assert.Equal(t, 3, r.len())
		assert.Equal(t, []int{1, 2, 3}, collectRing(r))
	})

	t.Run("evicts oldest once full", func(t *testing.T) {
		r := newRing[int](3)
		for i := 1; i <= 3; i++ {
			r.push(i)
		}
		assert.True(t, r.push(4))
		assert.True(t, r.push(5))
		assert.Equal(t, 3, r.len())
		assert.Equal(t, []int{3, 4, 5}, collectRing(r))
	})

	t.Run("wraps around more than once", func(t *testing.T) {
		r := newRing[int](2)
		for i := 1; i <= 7; i++ {
			r.push(i)
		}
		assert.Equal(t, []int{6, 7}, collectRing(r))
	})

	t.Run("empty ring visits nothing", func(t *testing.T) {
		r := newRing[int](5)
		assert.Equal(t, 0, r.len())
		assert.Nil(t, collectRing(r))
	})
}

func TestPercentile(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}

	assert.Equal(t, 30.0, percentile(values, 0.50))
	assert.Equal(t, 50.0, percentile(values, 0.95))
	assert.Equal(t, 50.0, percentile(values, 0.99))
	assert.Equal(t, 10.0, percentile(values, 0))
	assert.Equal(t, 50.0, percentile(values, 1))
	assert.Equal(t, 0.0, percentile(nil, 0.5))
}
