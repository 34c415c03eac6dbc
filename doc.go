// Package vec2 provides an immutable two-component vector value type
// with value equality, consistent hashing, cartesian/polar formatting,
// and a compact self-describing binary encoding.
//
// Two variants share one capability set (Value):
//
//	v := vec2.New(3, 4)          // Vector, float64 components, tag 'D'
//	s := vec2.NewShort(3, 4)     // ShortVector, float32 components, tag 'F'
//
// Values are immutable and freely shareable across goroutines; every
// operation is a pure, synchronous computation.
//
// # Decomposition
//
// Decompose yields the components as an ordered (x, y) pair for
// destructuring:
//
//	x, y := v.Decompose()
//
// # Formatting
//
// Format takes an optional numeric sub-format (a fmt float directive
// without the '%') and an optional trailing 'p' selecting polar form:
//
//	v.Format("")      // "(3, 4)"
//	v.Format(".2f")   // "(3.00, 4.00)"
//	v.Format(".2fp")  // "<5.00, 0.93>"  (magnitude, angle in radians)
//
// # Wire format
//
// The encoding is one tag byte ('D' or 'F') followed by x then y as
// big-endian IEEE-754 at the tag's width: 17 bytes for a Vector,
// 9 for a ShortVector. The tag makes the stream self-describing, so
// Decode never needs out-of-band width information:
//
//	b, _ := v.MarshalBinary()
//	w, _ := vec2.Decode(b)     // w.Equal(v)
//
// Round-trips are exact: the double variant over all float64 values,
// the single variant over its stored (narrowed) float32 values.
package vec2
