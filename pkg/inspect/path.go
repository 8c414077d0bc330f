// Package inspect provides tree inspection and leaf manipulation utilities.
//
// The inspect package offers a unified interface for:
//   - Parsing path expressions (e.g., "Cabin/Seat/1/DriverSide/Heating")
//   - Resolving paths and wildcard queries to tree nodes
//   - Reading and writing leaves, from Go values or from text
//   - Formatting output for display
//
// Every read and write is recorded in the access journal and counted in the
// access metrics when those are configured.
package inspect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sdv-model/vss-go/pkg/vss"
)

// Path errors.
var (
	ErrEmptyPath     = errors.New("empty path")
	ErrInvalidPath   = errors.New("invalid path format")
	ErrInvalidNumber = errors.New("invalid numeric value in path")
)

// Path represents a parsed inspection path.
// Format: [Root.]name{/name} where "." and "/" are interchangeable.
type Path struct {
	// Segments are the path elements in order. A numeric segment selects a
	// collection slot by its 1-based index.
	Segments []string

	// Raw stores the original input string.
	Raw string
}

// ParsePath parses a path string into a Path struct.
//
// Supported formats:
//   - "Chassis/Axle/Row1/Wheel/Left/Speed" - slash separated
//   - "Vehicle.Chassis.Axle.Row1.Wheel.Left.Speed" - dotted, with the root name
//   - "Chassis/Axle/1/Wheel/2/Speed" - numeric slot indexes
//
// The root name is stripped when the path is resolved, not here, since the
// parser does not know the tree.
func ParsePath(input string) (*Path, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyPath
	}

	normalized := strings.ReplaceAll(input, ".", "/")
	if strings.HasPrefix(normalized, "/") || strings.HasSuffix(normalized, "/") ||
		strings.Contains(normalized, "//") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, input)
	}

	parts := strings.Split(normalized, "/")
	for _, part := range parts {
		if strings.TrimSpace(part) != part {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, input)
		}
	}
	return &Path{Segments: parts, Raw: input}, nil
}

// String returns the path with "/" separators.
func (p *Path) String() string {
	return strings.Join(p.Segments, vss.PathSeparator)
}

// Resolve walks t from the root along the path.
//
// A leading segment equal to the root name is skipped unless the root has a
// child of that name. Inside a collection, a numeric segment selects a slot
// by index and fails with vss.ErrIndexOutOfRange outside [1, N]; named
// segments fall back to a case-insensitive match.
func (p *Path) Resolve(t *vss.Tree) (vss.Node, error) {
	root := t.Root()
	segs := p.Segments
	if len(segs) > 0 && segs[0] == root.Name() {
		if _, err := root.Child(segs[0]); err != nil {
			segs = segs[1:]
		}
	}

	var cur vss.Node = root
	for _, seg := range segs {
		c, ok := cur.(vss.Container)
		if !ok {
			return nil, fmt.Errorf("%w: %q: %s is a leaf", vss.ErrNotFound, p.Raw, vss.DottedPath(cur))
		}
		next, err := resolveSegment(c, seg)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// parseIndex parses a slot index segment.
func parseIndex(s string) (int, bool) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
