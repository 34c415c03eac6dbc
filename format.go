package vec2

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// subFormatRE matches the numeric sub-format grammar: a fmt float
// directive without the leading '%'. The verb is optional and defaults
// to 'g'.
var subFormatRE = regexp.MustCompile(`^[-+ 0#]*[0-9]*(\.[0-9]+)?[beEfgGxX]?$`)

const floatVerbs = "beEfgGxX"

// Format renders the vector according to spec.
//
// An empty spec yields the cartesian form "(x, y)" with shortest
// round-trip rendering. A spec ending in 'p' yields the polar form
// "<r, theta>" with r = Magnitude() and theta = Angle(); the prefix
// before the 'p' is the numeric sub-format applied to both. Any other
// spec is the sub-format itself, applied to x and y in cartesian form.
//
// Format fails with ErrUnsupportedFormat when the sub-format is not a
// valid float directive.
func (v Vec[T]) Format(spec string) (string, error) {
	sub, polar := strings.CutSuffix(spec, "p")
	if !subFormatRE.MatchString(sub) {
		return "", &ErrUnsupportedFormat{Spec: spec}
	}
	a, b := v.x, v.y
	left, right := "(", ")"
	if polar {
		a, b = v.Magnitude(), v.Angle()
		left, right = "<", ">"
	}
	return left + formatComponent(a, sub) + ", " + formatComponent(b, sub) + right, nil
}

// String implements fmt.Stringer: the default cartesian form "(x, y)".
func (v Vec[T]) String() string {
	s, _ := v.Format("")
	return s
}

// GoString implements fmt.GoStringer. The form is "Vector(x, y)" or
// "ShortVector(x, y)" with shortest round-trip component rendering, so
// Parse reconstructs an equal value from it.
func (v Vec[T]) GoString() string {
	name := "Vector"
	if v.Tag() == TagSingle {
		name = "ShortVector"
	}
	return name + "(" + formatComponent(v.x, "") + ", " + formatComponent(v.y, "") + ")"
}

// formatComponent renders one component. The sub-format must already
// be validated against subFormatRE.
func formatComponent[T Component](c T, sub string) string {
	if sub == "" {
		bits := 64
		if tagOf[T]() == TagSingle {
			bits = 32
		}
		return strconv.FormatFloat(float64(c), 'g', -1, bits)
	}
	if !strings.ContainsRune(floatVerbs, rune(sub[len(sub)-1])) {
		sub += "g"
	}
	return fmt.Sprintf("%"+sub, c)
}
