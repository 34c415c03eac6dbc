package vec2

import (
	"encoding"
	"encoding/binary"
	"math"
	"unsafe"
)

// Tag is the single leading byte of an encoded vector. It identifies
// the component width used to produce the bytes, making every encoding
// self-describing: Decode needs nothing but the stream itself.
type Tag byte

const (
	// TagDouble marks a double-width (float64) encoding.
	TagDouble Tag = 'D'
	// TagSingle marks a single-width (float32) encoding.
	TagSingle Tag = 'F'
)

const (
	encodedSizeDouble = 1 + 2*8
	encodedSizeSingle = 1 + 2*4
)

// Width returns the per-component byte width for the tag, or 0 if the
// tag is not a known variant.
func (t Tag) Width() int {
	switch t {
	case TagDouble:
		return 8
	case TagSingle:
		return 4
	default:
		return 0
	}
}

// EncodedSize returns the total encoded length for the tag (tag byte
// plus two components), or 0 if the tag is unknown.
func (t Tag) EncodedSize() int {
	switch t {
	case TagDouble:
		return encodedSizeDouble
	case TagSingle:
		return encodedSizeSingle
	default:
		return 0
	}
}

// Valid reports whether t is one of the known variant tags.
func (t Tag) Valid() bool {
	return t == TagDouble || t == TagSingle
}

// String returns the tag byte as text, e.g. "D".
func (t Tag) String() string {
	return string(rune(t))
}

func tagOf[T Component]() Tag {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return TagSingle
	}
	return TagDouble
}

var (
	_ encoding.BinaryMarshaler   = Vector{}
	_ encoding.BinaryAppender    = Vector{}
	_ encoding.BinaryUnmarshaler = (*Vector)(nil)
	_ encoding.BinaryMarshaler   = ShortVector{}
	_ encoding.BinaryAppender    = ShortVector{}
	_ encoding.BinaryUnmarshaler = (*ShortVector)(nil)
)

// Tag returns the variant's binary tag: TagDouble for Vector,
// TagSingle for ShortVector.
func (v Vec[T]) Tag() Tag {
	return tagOf[T]()
}

// AppendBinary appends the wire encoding to p and returns the extended
// slice. Layout: tag byte, then x, then y, each component big-endian
// IEEE-754 at the variant's width. It never fails; the error return
// satisfies encoding.BinaryAppender.
func (v Vec[T]) AppendBinary(p []byte) ([]byte, error) {
	p = append(p, byte(v.Tag()))
	p = appendComponent(p, v.x)
	p = appendComponent(p, v.y)
	return p, nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The result is
// 17 bytes for a Vector and 9 bytes for a ShortVector.
func (v Vec[T]) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, v.Tag().EncodedSize()))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It accepts
// only this variant's encoding: a valid but foreign tag fails with
// ErrTagMismatch, an unrecognized tag with ErrUnknownTag, and a buffer
// shorter than the tag's full encoding with ErrTruncatedInput. All
// three match errors.Is(err, ErrDecode).
//
// Data beyond the encoded length is ignored, so callers may pass a
// larger buffer whose head is a vector.
func (v *Vec[T]) UnmarshalBinary(p []byte) error {
	if len(p) < 1 {
		return &ErrTruncatedInput{Need: 1, Got: 0}
	}
	got := Tag(p[0])
	if !got.Valid() {
		return &ErrUnknownTag{Tag: p[0]}
	}
	want := tagOf[T]()
	if got != want {
		return &ErrTagMismatch{Want: want, Got: got}
	}
	if need := want.EncodedSize(); len(p) < need {
		return &ErrTruncatedInput{Need: need, Got: len(p)}
	}
	w := want.Width()
	v.x = component[T](p[1 : 1+w])
	v.y = component[T](p[1+w : 1+2*w])
	return nil
}

// Decode reconstructs a vector from its wire encoding, dispatching on
// the leading tag byte. It returns a Vector for TagDouble and a
// ShortVector for TagSingle.
//
// Decode fails with ErrTruncatedInput when fewer than the tag's
// 1+2*Width bytes are available, and with ErrUnknownTag when the
// leading byte names no known variant; both match
// errors.Is(err, ErrDecode). The input buffer is not retained.
func Decode(p []byte) (Value, error) {
	if len(p) < 1 {
		return nil, &ErrTruncatedInput{Need: 1, Got: 0}
	}
	switch Tag(p[0]) {
	case TagDouble:
		var v Vector
		if err := v.UnmarshalBinary(p); err != nil {
			return nil, err
		}
		return v, nil
	case TagSingle:
		var v ShortVector
		if err := v.UnmarshalBinary(p); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, &ErrUnknownTag{Tag: p[0]}
	}
}

func appendComponent[T Component](p []byte, c T) []byte {
	if tagOf[T]() == TagSingle {
		return binary.BigEndian.AppendUint32(p, math.Float32bits(float32(c)))
	}
	return binary.BigEndian.AppendUint64(p, math.Float64bits(float64(c)))
}

func component[T Component](p []byte) T {
	if tagOf[T]() == TagSingle {
		return T(math.Float32frombits(binary.BigEndian.Uint32(p)))
	}
	return T(math.Float64frombits(binary.BigEndian.Uint64(p)))
}
