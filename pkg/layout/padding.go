package layout

import (
	"fmt"
	"reflect"
)

// Padding holds one Scale per edge. Edges are resolved independently and may
// mix units.
type Padding struct {
	Top, Right, Bottom, Left Scale
}

// PaddingSpec is the record form accepted by ParsePadding. Each field takes
// anything ParseScale accepts; nil fields fall back.
type PaddingSpec struct {
	Top, Right, Bottom, Left any
}

// PaddingAll returns a Padding with the same scale on all four edges.
func PaddingAll(s Scale) Padding {
	return Padding{Top: s, Right: s, Bottom: s, Left: s}
}

// PaddingSymmetric returns a Padding with vertical (top/bottom) and
// horizontal (left/right) scales.
func PaddingSymmetric(v, h Scale) Padding {
	return Padding{Top: v, Right: h, Bottom: v, Left: h}
}

// ParsePadding parses a padding specification.
//
// Accepted forms:
//   - a single scale, applied to all four edges
//   - a 2-element slice or array: [vertical, horizontal]
//   - a 4-element slice or array: [top, right, bottom, left]
//   - a PaddingSpec, or a map with any subset of "top", "right", "bottom", "left"
//   - an already parsed Padding
//
// Edges missing from a record, and nil entries of a list, take the matching
// edge of fallback, or 0px when fallback is nil. A nil spec returns the fallback.
func ParsePadding(spec any, fallback *Padding) (Padding, error) {
	var base Padding
	if fallback != nil {
		base = *fallback
	}

	switch v := spec.(type) {
	case nil:
		return base, nil
	case Padding:
		return v, nil
	case *Padding:
		if v == nil {
			return base, nil
		}
		return *v, nil
	case PaddingSpec:
		return parsePaddingRecord(v, base)
	case *PaddingSpec:
		if v == nil {
			return base, nil
		}
		return parsePaddingRecord(*v, base)
	case string, Scale, *Scale:
		return parsePaddingScale(spec)
	}

	rv := reflect.ValueOf(spec)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return parsePaddingList(rv, base)
	case reflect.Map:
		return parsePaddingMap(rv, base)
	default:
		return parsePaddingScale(spec)
	}
}

func parsePaddingScale(spec any) (Padding, error) {
	s, err := ParseScale(spec)
	if err != nil {
		return Padding{}, fmt.Errorf("padding: %w", err)
	}
	if s == nil {
		return Padding{}, nil
	}
	return PaddingAll(*s), nil
}

func parsePaddingList(rv reflect.Value, base Padding) (Padding, error) {
	edges := make([]*Scale, rv.Len())
	for i := range edges {
		s, err := ParseScale(rv.Index(i).Interface())
		if err != nil {
			return Padding{}, fmt.Errorf("padding[%d]: %w", i, err)
		}
		edges[i] = s
	}

	out := base
	set := func(dst *Scale, s *Scale) {
		if s != nil {
			*dst = *s
		}
	}
	switch len(edges) {
	case 2:
		set(&out.Top, edges[0])
		set(&out.Bottom, edges[0])
		set(&out.Right, edges[1])
		set(&out.Left, edges[1])
	case 4:
		set(&out.Top, edges[0])
		set(&out.Right, edges[1])
		set(&out.Bottom, edges[2])
		set(&out.Left, edges[3])
	default:
		return Padding{}, &ParseError{
			Input:  fmt.Sprintf("%v", rv.Interface()),
			Reason: fmt.Sprintf("padding list needs 2 or 4 entries, got %d", len(edges)),
		}
	}
	return out, nil
}

func parsePaddingMap(rv reflect.Value, base Padding) (Padding, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return Padding{}, &ParseError{Input: fmt.Sprintf("%v", rv.Interface()), Reason: "padding map keys must be strings"}
	}

	var rec PaddingSpec
	iter := rv.MapRange()
	for iter.Next() {
		val := iter.Value().Interface()
		switch key := iter.Key().String(); key {
		case "top":
			rec.Top = val
		case "right":
			rec.Right = val
		case "bottom":
			rec.Bottom = val
		case "left":
			rec.Left = val
		default:
			return Padding{}, &ParseError{Input: key, Reason: "unknown padding edge"}
		}
	}
	return parsePaddingRecord(rec, base)
}

func parsePaddingRecord(rec PaddingSpec, base Padding) (Padding, error) {
	out := base
	for _, edge := range []struct {
		name string
		spec any
		dst  *Scale
	}{
		{"top", rec.Top, &out.Top},
		{"right", rec.Right, &out.Right},
		{"bottom", rec.Bottom, &out.Bottom},
		{"left", rec.Left, &out.Left},
	} {
		s, err := ParseScale(edge.spec)
		if err != nil {
			return Padding{}, fmt.Errorf("padding %s: %w", edge.name, err)
		}
		if s != nil {
			*edge.dst = *s
		}
	}
	return out, nil
}
