package layout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit specifies how a Scale amount is interpreted.
type Unit uint8

const (
	Pixel      Unit = iota // Absolute number of pixels
	Percentage             // Percentage of the parent dimension (0-100 scale)
	Weight                 // Share of leftover space relative to sibling weights
)

// String returns the suffix used for the unit in scale strings.
func (u Unit) String() string {
	switch u {
	case Percentage:
		return "%"
	case Weight:
		return "w"
	default:
		return "px"
	}
}

// Scale is a parsed size specification.
type Scale struct {
	Amount float64
	Unit   Unit
}

// Px returns a Scale of n pixels.
func Px(n float64) Scale {
	return Scale{Amount: n, Unit: Pixel}
}

// Pct returns a Scale of p percent of the parent dimension.
// The value is on a 0-100 scale (50.0 = 50%).
func Pct(p float64) Scale {
	return Scale{Amount: p, Unit: Percentage}
}

// Wt returns a Scale with weight w.
func Wt(w float64) Scale {
	return Scale{Amount: w, Unit: Weight}
}

// IsWeight reports whether the scale takes part in a weight pool.
func (s Scale) IsWeight() bool {
	return s.Unit == Weight
}

// String formats the scale in the same grammar ParseScale accepts.
func (s Scale) String() string {
	return strconv.FormatFloat(s.Amount, 'f', -1, 64) + s.Unit.String()
}

// fixed resolves a pixel or percentage scale against dimension.
// Weights resolve to 0; they are sized by Distribute.
func (s Scale) fixed(dimension int) int {
	switch s.Unit {
	case Pixel:
		return int(math.Floor(s.Amount))
	case Percentage:
		return int(math.Floor(float64(dimension) * s.Amount / 100.0))
	default:
		return 0
	}
}

// ErrInvalidScale is matched by every error ParseScale and ParsePadding return.
var ErrInvalidScale = errors.New("invalid scale")

// ParseError describes a size specification that could not be parsed.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("layout: invalid scale %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidScale
}

// ParseScale parses a size specification.
//
// Accepted inputs are a Go number (pixels), a Scale or *Scale, or a string of
// the form "<number><optional whitespace><unit>" where unit is empty or "px"
// (pixels), "%" (percentage) or "w" (weight). Units are case-sensitive.
//
// A nil input returns (nil, nil) so callers can apply their own fallback.
func ParseScale(spec any) (*Scale, error) {
	switch v := spec.(type) {
	case nil:
		return nil, nil
	case Scale:
		return &v, nil
	case *Scale:
		return v, nil
	case string:
		return parseScaleString(v)
	case int:
		return ptr(Px(float64(v))), nil
	case int8:
		return ptr(Px(float64(v))), nil
	case int16:
		return ptr(Px(float64(v))), nil
	case int32:
		return ptr(Px(float64(v))), nil
	case int64:
		return ptr(Px(float64(v))), nil
	case uint:
		return ptr(Px(float64(v))), nil
	case uint8:
		return ptr(Px(float64(v))), nil
	case uint16:
		return ptr(Px(float64(v))), nil
	case uint32:
		return ptr(Px(float64(v))), nil
	case uint64:
		return ptr(Px(float64(v))), nil
	case float32:
		return parsePixelFloat(float64(v))
	case float64:
		return parsePixelFloat(v)
	default:
		return nil, &ParseError{Input: fmt.Sprintf("%v", spec), Reason: fmt.Sprintf("unsupported type %T", spec)}
	}
}

// MustParseScale is like ParseScale but panics on error.
func MustParseScale(spec any) *Scale {
	s, err := ParseScale(spec)
	if err != nil {
		panic(err)
	}
	return s
}

func parsePixelFloat(v float64) (*Scale, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, &ParseError{Input: strconv.FormatFloat(v, 'f', -1, 64), Reason: "not a finite number"}
	}
	return ptr(Px(v)), nil
}

func parseScaleString(input string) (*Scale, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, &ParseError{Input: input, Reason: "empty"}
	}

	// Longest prefix that can belong to a decimal number.
	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || c == '.' || ((c == '-' || c == '+') && end == 0) {
			end++
			continue
		}
		break
	}

	amount, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, &ParseError{Input: input, Reason: "malformed number"}
	}

	var unit Unit
	switch suffix := strings.TrimLeft(s[end:], " \t\r\n"); suffix {
	case "", "px":
		unit = Pixel
	case "%":
		unit = Percentage
	case "w":
		unit = Weight
	default:
		return nil, &ParseError{Input: input, Reason: fmt.Sprintf("unknown unit %q", suffix)}
	}
	return &Scale{Amount: amount, Unit: unit}, nil
}

func ptr[T any](v T) *T {
	return &v
}
