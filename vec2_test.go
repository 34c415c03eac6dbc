package vec2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorAndAccessors(t *testing.T) {
	t.Run("vector", func(t *testing.T) {
		v := New(3.5, 4.25)
		assert.Equal(t, 3.5, v.X())
		assert.Equal(t, 4.25, v.Y())

		x, y := v.Decompose()
		assert.Equal(t, 3.5, x)
		assert.Equal(t, 4.25, y)
	})

	t.Run("short vector", func(t *testing.T) {
		v := NewShort(3.5, 4.25)
		assert.Equal(t, float32(3.5), v.X())
		assert.Equal(t, float32(4.25), v.Y())

		x, y := v.Decompose()
		assert.Equal(t, float32(3.5), x)
		assert.Equal(t, float32(4.25), y)
	})

	t.Run("zero value is the zero vector", func(t *testing.T) {
		var v Vector
		assert.True(t, v.IsZero())
		assert.True(t, v.Equal(New(0, 0)))
	})
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same components", New(3, 4), New(3, 4), true},
		{"different x", New(3, 4), New(5, 4), false},
		{"different y", New(3, 4), New(3, 5), false},
		{"swapped components", New(3, 4), New(4, 3), false},
		{"negative zero equals zero", New(0, 0), New(math.Copysign(0, -1), 0), true},
		{"cross variant never equal", New(1, 2), NewShort(1, 2), false},
		{"short same components", NewShort(1.5, 2.5), NewShort(1.5, 2.5), true},
		{"nan is not equal to itself", New(math.NaN(), 0), New(math.NaN(), 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestEqualReflexive(t *testing.T) {
	for _, v := range []Value{New(3, 4), New(0, 0), NewShort(-1.5, 9)} {
		assert.True(t, v.Equal(v))
	}
}

func TestHash(t *testing.T) {
	t.Run("equal values hash equal", func(t *testing.T) {
		assert.Equal(t, New(3, 4).Hash(), New(3, 4).Hash())
		assert.Equal(t, NewShort(1.5, 2.5).Hash(), NewShort(1.5, 2.5).Hash())
	})

	t.Run("negative zero hashes like zero", func(t *testing.T) {
		negZero := math.Copysign(0, -1)
		assert.Equal(t, New(0, 0).Hash(), New(negZero, negZero).Hash())
		assert.Equal(t, NewShort(0, 1).Hash(), NewShort(float32(negZero), 1).Hash())
	})

	t.Run("distinct values hash differently", func(t *testing.T) {
		assert.NotEqual(t, New(3, 4).Hash(), New(3.01, 4).Hash())
		assert.NotEqual(t, New(3, 4).Hash(), New(4, 3).Hash())
	})

	t.Run("variants hash over distinct tags", func(t *testing.T) {
		assert.NotEqual(t, New(3, 4).Hash(), NewShort(3, 4).Hash())
	})

	t.Run("usable as map key", func(t *testing.T) {
		m := map[Vector]string{New(3, 4): "v"}
		assert.Equal(t, "v", m[New(3, 4)])
	})
}

func TestMagnitude(t *testing.T) {
	assert.Equal(t, 5.0, New(3, 4).Magnitude())
	assert.Equal(t, float32(5), NewShort(3, 4).Magnitude())
	assert.Equal(t, 0.0, New(0, 0).Magnitude())
	assert.Equal(t, 13.0, New(-5, 12).Magnitude())
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want float64
	}{
		{"east", New(1, 0), 0},
		{"north", New(0, 1), math.Pi / 2},
		{"north east", New(1, 1), math.Pi / 4},
		{"west", New(-1, 0), math.Pi},
		{"south", New(0, -1), -math.Pi / 2},
		{"south west", New(-1, -1), -3 * math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.v.Angle(), 1e-15)
		})
	}

	t.Run("short variant", func(t *testing.T) {
		assert.InDelta(t, math.Pi/4, float64(NewShort(1, 1).Angle()), 1e-6)
	})
}

func TestIsZero(t *testing.T) {
	assert.True(t, New(0, 0).IsZero())
	assert.True(t, New(math.Copysign(0, -1), 0).IsZero())
	assert.False(t, New(3, 4).IsZero())
	assert.False(t, New(0, 1e-300).IsZero())
	assert.True(t, NewShort(0, 0).IsZero())
}

func TestNarrowWiden(t *testing.T) {
	const precise = 1.12345678901234

	t.Run("narrow rounds to float32", func(t *testing.T) {
		sv := Narrow(New(precise, precise))
		assert.True(t, sv.Equal(NewShort(float32(precise), float32(precise))))
		assert.NotEqual(t, precise, float64(sv.X()))
	})

	t.Run("widen is exact", func(t *testing.T) {
		sv := NewShort(1.5, -2.25)
		v := Widen(sv)
		require.True(t, v.Equal(New(1.5, -2.25)))
		assert.True(t, Narrow(v).Equal(sv))
	})
}
