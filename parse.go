package vec2

import (
	"strconv"
	"strings"
)

// Parse reconstructs a vector from its textual form. It accepts the
// default cartesian form "(x, y)" (double-width) and both debug forms
// "Vector(x, y)" and "ShortVector(x, y)", so every String or GoString
// output parses back into an equal value.
//
// Parse fails with ErrInvalidArgument when the input is not shaped
// like a vector literal or a component is not representable at the
// variant's width.
func Parse(s string) (Value, error) {
	body := strings.TrimSpace(s)
	tag := TagDouble
	switch {
	case strings.HasPrefix(body, "ShortVector"):
		tag = TagSingle
		body = body[len("ShortVector"):]
	case strings.HasPrefix(body, "Vector"):
		body = body[len("Vector"):]
	}
	if len(body) < 2 || body[0] != '(' || body[len(body)-1] != ')' {
		return nil, &ErrInvalidArgument{Input: s}
	}
	xs, ys, ok := strings.Cut(body[1:len(body)-1], ",")
	if !ok {
		return nil, &ErrInvalidArgument{Input: s}
	}
	x, err := parseComponent(xs, tag)
	if err != nil {
		return nil, &ErrInvalidArgument{Input: s, cause: err}
	}
	y, err := parseComponent(ys, tag)
	if err != nil {
		return nil, &ErrInvalidArgument{Input: s, cause: err}
	}
	if tag == TagSingle {
		return NewShort(float32(x), float32(y)), nil
	}
	return New(x, y), nil
}

func parseComponent(s string, tag Tag) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), tag.Width()*8)
}
