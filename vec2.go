package vec2

import (
	"math"

	"github.com/hupe1980/vec2/internal/hash"
)

// Component is the set of floating-point widths a vector can store.
type Component interface {
	~float32 | ~float64
}

// Vec is an immutable two-component vector with components of width T.
// The zero value is the zero vector. Instances are plain values: copy
// them, pass them around, use them as map keys. Nothing mutates them
// after construction.
//
// Use the Vector and ShortVector aliases rather than instantiating Vec
// directly; they are the two supported widths and the only ones the
// binary encoding can tag.
type Vec[T Component] struct {
	x, y T
}

// Vector is the double-width (float64) variant. Encoded with tag 'D'.
type Vector = Vec[float64]

// ShortVector is the single-width (float32) variant. Encoded with tag 'F'.
// It trades precision for a halved wire footprint.
type ShortVector = Vec[float32]

// Value is the capability set shared by both vector variants. Decode
// returns a Value; type-assert to Vector or ShortVector to reach the
// width-typed operations (X, Y, Decompose, Magnitude, Angle).
//
// Implementations are safe for concurrent use: a Value never changes
// after construction.
type Value interface {
	// Equal reports whether other is the same variant with pairwise
	// equal components. Comparison is exact, no tolerance.
	Equal(other Value) bool
	// Hash returns a digest consistent with Equal: equal values always
	// produce equal hashes.
	Hash() uint64
	// IsZero reports whether both components are zero.
	IsZero() bool
	// Tag identifies the variant's binary encoding.
	Tag() Tag
	// Format renders the vector per the given format spec. See the
	// package documentation for the spec grammar.
	Format(spec string) (string, error)
	// AppendBinary appends the binary encoding to p.
	AppendBinary(p []byte) ([]byte, error)
	// MarshalBinary returns the binary encoding.
	MarshalBinary() ([]byte, error)
	// String returns the default cartesian form "(x, y)".
	String() string
	// GoString returns the debug form "Vector(x, y)" or
	// "ShortVector(x, y)". Parse reconstructs an equal value from it.
	GoString() string
}

var (
	_ Value = Vector{}
	_ Value = ShortVector{}
)

// New returns the double-width vector (x, y).
func New(x, y float64) Vector {
	return Vector{x: x, y: y}
}

// NewShort returns the single-width vector (x, y). Narrowing from
// float64 inputs is the caller's (or Narrow's) explicit step.
func NewShort(x, y float32) ShortVector {
	return ShortVector{x: x, y: y}
}

// Narrow converts a double-width vector to the single-width variant.
// Each component is rounded to the nearest float32; the result is the
// representative that the single-width codec round-trips exactly.
func Narrow(v Vector) ShortVector {
	return ShortVector{x: float32(v.x), y: float32(v.y)}
}

// Widen converts a single-width vector to the double-width variant.
// The conversion is exact.
func Widen(v ShortVector) Vector {
	return Vector{x: float64(v.x), y: float64(v.y)}
}

// X returns the first component.
func (v Vec[T]) X() T { return v.x }

// Y returns the second component.
func (v Vec[T]) Y() T { return v.y }

// Decompose returns the components as an ordered pair, always (x, y).
// This is the destructuring view:
//
//	x, y := v.Decompose()
func (v Vec[T]) Decompose() (x, y T) {
	return v.x, v.y
}

// Equal reports whether other is the same variant with pairwise equal
// components. A Vector never equals a ShortVector, even when the
// numeric values coincide. NaN components follow IEEE semantics and
// compare unequal.
func (v Vec[T]) Equal(other Value) bool {
	o, ok := other.(Vec[T])
	return ok && v == o
}

// Hash returns an order-sensitive FarmHash64 digest of the vector's
// canonical encoding. Equal values hash identically; the two variants
// hash over distinct tag bytes and never collide by construction.
func (v Vec[T]) Hash() uint64 {
	x, y := v.x, v.y
	// Negative zero compares equal to positive zero, so it must hash
	// the same way.
	if x == 0 {
		x = 0
	}
	if y == 0 {
		y = 0
	}
	var buf [encodedSizeDouble]byte
	b, _ := (Vec[T]{x: x, y: y}).AppendBinary(buf[:0])
	return hash.Sum64(b)
}

// IsZero reports whether both components are zero. Negative zero
// counts as zero.
func (v Vec[T]) IsZero() bool {
	return v.x == 0 && v.y == 0
}

// Magnitude returns sqrt(x²+y²) at the vector's component width.
func (v Vec[T]) Magnitude() T {
	return T(math.Hypot(float64(v.x), float64(v.y)))
}

// Angle returns atan2(y, x) in radians, at the vector's component
// width. The result lies in (-π, π] with standard four-quadrant sign
// handling.
func (v Vec[T]) Angle() T {
	return T(math.Atan2(float64(v.y), float64(v.x)))
}
