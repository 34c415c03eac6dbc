package vec2

import (
	"errors"
	"fmt"
)

// ErrDecode is the common class for all decoding failures. The
// concrete failure is one of ErrTruncatedInput, ErrUnknownTag or
// ErrTagMismatch; all of them satisfy errors.Is(err, ErrDecode), so
// callers can branch on the class or errors.As into the specific kind.
var ErrDecode = errors.New("decode failed")

// ErrTruncatedInput indicates an encoded buffer shorter than the full
// encoding announced by its tag (or too short to carry a tag at all).
type ErrTruncatedInput struct {
	Need int
	Got  int
}

func (e *ErrTruncatedInput) Error() string {
	return fmt.Sprintf("truncated input: need %d bytes, got %d", e.Need, e.Got)
}

func (e *ErrTruncatedInput) Unwrap() error { return ErrDecode }

// ErrUnknownTag indicates a leading byte that names no known variant.
type ErrUnknownTag struct {
	Tag byte
}

func (e *ErrUnknownTag) Error() string {
	return fmt.Sprintf("unknown tag byte: %q", e.Tag)
}

func (e *ErrUnknownTag) Unwrap() error { return ErrDecode }

// ErrTagMismatch indicates a valid encoding of the other variant
// passed to a typed UnmarshalBinary. Use Decode when the variant is
// not known up front.
type ErrTagMismatch struct {
	Want Tag
	Got  Tag
}

func (e *ErrTagMismatch) Error() string {
	return fmt.Sprintf("tag mismatch: want %q, got %q", byte(e.Want), byte(e.Got))
}

func (e *ErrTagMismatch) Unwrap() error { return ErrDecode }

// ErrUnsupportedFormat indicates a format spec whose numeric
// sub-format is not a valid float directive.
type ErrUnsupportedFormat struct {
	Spec string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported format spec: %q", e.Spec)
}

// ErrInvalidArgument indicates textual input that is not representable
// as the component's numeric type.
//
// The underlying parse error (if any) can be accessed via errors.Unwrap.
type ErrInvalidArgument struct {
	Input string
	cause error
}

func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid argument: %q is not a valid vector literal", e.Input)
}

func (e *ErrInvalidArgument) Unwrap() error { return e.cause }
