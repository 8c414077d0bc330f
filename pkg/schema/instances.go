package schema

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Dimension is one instance dimension: the ordered slot names of a collection.
type Dimension []string

var rangeExpr = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*?)\[\s*(\d+)\s*,\s*(\d+)\s*\]$`)

// ParseInstances expands an instances declaration into its dimensions,
// outermost first.
//
// A range expression "Row[1,4]" expands to Row1..Row4. A list of plain names
// forms a single dimension. In a list, every range expression and every
// nested list starts a dimension of its own, so ["Row[1,4]", [Left, Right]]
// declares four rows of two sides each.
func ParseInstances(raw any) ([]Dimension, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		d, err := parseDimension(v)
		if err != nil {
			return nil, err
		}
		return []Dimension{d}, nil
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return parseInstanceList(items)
	case []any:
		return parseInstanceList(v)
	default:
		return nil, fmt.Errorf("instances: unsupported value %v (%T)", raw, raw)
	}
}

func parseInstanceList(items []any) ([]Dimension, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("instances: empty list")
	}

	var dims []Dimension
	var names Dimension
	flush := func() {
		if len(names) > 0 {
			dims = append(dims, names)
			names = nil
		}
	}

	for _, item := range items {
		switch v := item.(type) {
		case string:
			if isRangeExpr(v) {
				flush()
				d, err := parseDimension(v)
				if err != nil {
					return nil, err
				}
				dims = append(dims, d)
				continue
			}
			names = append(names, strings.TrimSpace(v))
		case []any:
			flush()
			d, err := parseNameList(v)
			if err != nil {
				return nil, err
			}
			dims = append(dims, d)
		case []string:
			flush()
			dims = append(dims, Dimension(v))
		default:
			return nil, fmt.Errorf("instances: unsupported item %v (%T)", item, item)
		}
	}
	flush()
	return dims, nil
}

func parseNameList(items []any) (Dimension, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("instances: empty list")
	}
	d := make(Dimension, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("instances: nested item %v is not a name", item)
		}
		d = append(d, strings.TrimSpace(s))
	}
	return d, nil
}

func isRangeExpr(s string) bool {
	return strings.Contains(s, "[")
}

func parseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	if !isRangeExpr(s) {
		return Dimension{s}, nil
	}

	m := rangeExpr.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("instances: invalid range %q", s)
	}
	lo, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, fmt.Errorf("instances: invalid range %q: %w", s, err)
	}
	hi, err := strconv.Atoi(m[3])
	if err != nil {
		return nil, fmt.Errorf("instances: invalid range %q: %w", s, err)
	}
	if lo > hi {
		return nil, fmt.Errorf("instances: empty range %q", s)
	}

	d := make(Dimension, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		d = append(d, m[1]+strconv.Itoa(i))
	}
	return d, nil
}

// FormatInstances is the inverse of ParseInstances. Dimensions that are a
// numbered run (Row1, Row2, ...) are written as range expressions.
func FormatInstances(dims []Dimension) any {
	switch len(dims) {
	case 0:
		return nil
	case 1:
		if expr, ok := rangeOf(dims[0]); ok {
			return expr
		}
		return []string(dims[0])
	}

	out := make([]any, len(dims))
	for i, d := range dims {
		if expr, ok := rangeOf(d); ok {
			out[i] = expr
		} else {
			out[i] = []string(d)
		}
	}
	return out
}

// rangeOf returns the range expression for d if its names are a common
// prefix followed by consecutive numbers.
func rangeOf(d Dimension) (string, bool) {
	if len(d) < 2 {
		return "", false
	}
	prefix, first, ok := splitNumber(d[0])
	if !ok {
		return "", false
	}
	for i, name := range d {
		if name != prefix+strconv.Itoa(first+i) {
			return "", false
		}
	}
	return fmt.Sprintf("%s[%d,%d]", prefix, first, first+len(d)-1), true
}

func splitNumber(name string) (string, int, bool) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == 0 || i == len(name) {
		return "", 0, false
	}
	n, err := strconv.Atoi(name[i:])
	if err != nil {
		return "", 0, false
	}
	return name[:i], n, true
}
