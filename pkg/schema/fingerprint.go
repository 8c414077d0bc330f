package schema

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/sdv-model/vss-go/pkg/vss"
)

// Fingerprint hashes the shape of a tree: every node path in order and, for
// leaves, the kind, data type, allowed values and range. Descriptions, units
// and defaults are not part of the fingerprint. Two trees with the same
// fingerprint accept exactly the same values at the same paths.
func Fingerprint(t *vss.Tree) uint64 {
	h := xxhash.New()
	_ = vss.Walk(t.Root(), func(n vss.Node) error {
		_, _ = h.WriteString(n.Path())
		_, _ = h.WriteString("\x00")
		switch n := n.(type) {
		case *vss.Leaf:
			spec := n.Spec()
			_, _ = fmt.Fprintf(h, "L|%s|%s|%s|%s|%s",
				spec.Kind, spec.Type, strings.Join(spec.Allowed, "\x1f"), bound(spec.Min), bound(spec.Max))
		case *vss.Collection:
			_, _ = h.WriteString("C|" + strings.Join(n.SlotNames(), "\x1f"))
		default:
			_, _ = h.WriteString("B")
		}
		_, _ = h.WriteString("\n")
		return nil
	})
	return h.Sum64()
}

// Fingerprint builds the definition and returns the fingerprint of the result.
func (d *Definition) Fingerprint() (uint64, error) {
	t, err := Build(d)
	if err != nil {
		return 0, err
	}
	return Fingerprint(t), nil
}

// FormatFingerprint renders a fingerprint the way it appears in snapshots and CLI output.
func FormatFingerprint(fp uint64) string {
	return fmt.Sprintf("%016x", fp)
}

func bound(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
