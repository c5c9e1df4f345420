package sample

import (
	"math"
	"testing"

	"github.com/gogpu/plot/axis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAxis(t *testing.T, size int, minValue, maxValue float64) axis.Axis {
	t.Helper()
	r := axis.Range{MinLog: 3, MaxLog: 6, MinValue: minValue, MaxValue: maxValue}
	a, err := axis.New(size, r, r, axis.DefaultLimits())
	require.NoError(t, err)
	return a
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		f    Func
		x    float64
		want float64
	}{
		{"square", func(x float64) float64 { return x * x }, 3, 9},
		{"reciprocal at zero", func(x float64) float64 { return 1 / x }, 0, math.Inf(1)},
		{"log of zero", math.Log, 0, math.Inf(-1)},
		{"log of negative", math.Log, -1, math.NaN()},
		{"panic", func(x float64) float64 { panic("undefined") }, 1, math.NaN()},
		{"index out of range", func(x float64) float64 { return []float64{}[int(x)] }, 2, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Eval(tt.f, tt.x)
			if math.IsNaN(tt.want) {
				assert.True(t, math.IsNaN(got), "got %g", got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSample(t *testing.T) {
	x := testAxis(t, 11, -5, 5)
	s := Sample(func(v float64) float64 { return 2 * v }, x)

	require.Equal(t, 11, s.Len())
	for i := range s.X {
		assert.InDelta(t, float64(i)-5, s.X[i], 1e-9)
		assert.InDelta(t, 2*s.X[i], s.Y[i], 1e-12)
	}
}

func TestSamplerCaches(t *testing.T) {
	x := testAxis(t, 21, -1, 1)
	calls := 0
	f := func(v float64) float64 {
		calls++
		return v
	}

	s := NewSampler(4)
	first := s.Sample("id", f, x)
	second := s.Sample("id", f, x)
	assert.Equal(t, 21, calls, "second call served from cache")
	assert.Equal(t, first, second)

	// A changed axis is a different key.
	s.Sample("id", f, x.MoveBy(3))
	assert.Equal(t, 42, calls)

	st := s.Stats()
	assert.Equal(t, uint64(1), st.Hits)
	assert.Equal(t, uint64(2), st.Misses)
	assert.Equal(t, 2, st.Len)
	assert.Equal(t, 4, st.Capacity)
}

func TestSamplerEvictsOldest(t *testing.T) {
	x := testAxis(t, 5, -1, 1)
	s := NewSampler(2)
	calls := map[string]int{}
	fn := func(name string) Func {
		return func(v float64) float64 {
			calls[name]++
			return v
		}
	}

	s.Sample("a", fn("a"), x)
	s.Sample("b", fn("b"), x)
	s.Sample("a", fn("a"), x) // a is now most recent
	s.Sample("c", fn("c"), x) // evicts b

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, uint64(1), s.Stats().Evictions)

	s.Sample("a", fn("a"), x)
	assert.Equal(t, 5, calls["a"], "a stayed cached")
	s.Sample("b", fn("b"), x)
	assert.Equal(t, 10, calls["b"], "b was evicted and resampled")
}

func TestSamplerForgetAndClear(t *testing.T) {
	x := testAxis(t, 5, -1, 1)
	s := NewSampler(0)
	assert.Equal(t, DefaultCapacity, s.Stats().Capacity)

	id := func(v float64) float64 { return v }
	s.Sample("a", id, x)
	s.Sample("a", id, x.MoveBy(1))
	s.Sample("b", id, x)
	require.Equal(t, 3, s.Len())

	s.Forget("a")
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	s.Sample("b", id, x)
	assert.Equal(t, 1, s.Len())
}
