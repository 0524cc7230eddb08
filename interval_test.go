package validex_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validex"
)

func TestInterval_Contains(t *testing.T) {
	t.Run("closed interval includes both bounds", func(t *testing.T) {
		iv := validex.Between(18, 65)
		assert.True(t, iv.Contains(18))
		assert.True(t, iv.Contains(65))
		assert.False(t, iv.Contains(17))
		assert.False(t, iv.Contains(66))
	})

	t.Run("half open interval excludes upper bound", func(t *testing.T) {
		iv := validex.HalfOpen(18, 24)
		assert.True(t, iv.Contains(18))
		assert.True(t, iv.Contains(23))
		assert.False(t, iv.Contains(24))
	})

	t.Run("open ended intervals", func(t *testing.T) {
		assert.True(t, validex.AtLeast(3).Contains(1000))
		assert.False(t, validex.AtLeast(3).Contains(2))
		assert.True(t, validex.AtMost(20).Contains(-5))
		assert.False(t, validex.AtMost(20).Contains(21))
		assert.True(t, validex.Below(20).Contains(19))
		assert.False(t, validex.Below(20).Contains(20))
		assert.True(t, validex.Unbounded[int]().Contains(math.MinInt))
	})

	t.Run("floats and NaN", func(t *testing.T) {
		iv := validex.Between(1.0, 3.0)
		assert.True(t, iv.Contains(1.65))
		assert.False(t, iv.Contains(3.01))
		assert.False(t, iv.Contains(math.NaN()))
		assert.False(t, validex.Unbounded[float64]().Contains(math.NaN()))
	})

	t.Run("strings are ordered lexically", func(t *testing.T) {
		iv := validex.Between("b", "d")
		assert.True(t, iv.Contains("c"))
		assert.False(t, iv.Contains("a"))
	})

	t.Run("inverted bounds contain nothing", func(t *testing.T) {
		iv := validex.Between(10, 1)
		for i := -5; i < 15; i++ {
			assert.False(t, iv.Contains(i))
		}
	})
}

func TestInterval_String(t *testing.T) {
	tests := []struct {
		name     string
		interval interface{ String() string }
		want     string
	}{
		{name: "closed", interval: validex.Between(18, 65), want: "18..=65"},
		{name: "half open", interval: validex.HalfOpen(18, 24), want: "18..24"},
		{name: "at least", interval: validex.AtLeast(3), want: "3.."},
		{name: "at most", interval: validex.AtMost(20), want: "..=20"},
		{name: "below", interval: validex.Below(20), want: "..20"},
		{name: "unbounded", interval: validex.Unbounded[int](), want: ".."},
		{name: "float", interval: validex.Between(1.5, 3.25), want: "1.5..=3.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.interval.String())
		})
	}
}

func TestInterval_Bounds(t *testing.T) {
	lo, ok := validex.Between(1, 9).Lower()
	assert.True(t, ok)
	assert.Equal(t, 1, lo)

	_, ok = validex.AtMost(9).Lower()
	assert.False(t, ok)

	hi, ok, exclusive := validex.HalfOpen(1, 9).Upper()
	assert.True(t, ok)
	assert.True(t, exclusive)
	assert.Equal(t, 9, hi)

	_, ok, _ = validex.AtLeast(1).Upper()
	assert.False(t, ok)
}
