package inspect

import (
	"fmt"
	"strconv"
	"strings"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowMetadata includes kind, data type, range, and allowed values.
	ShowMetadata bool

	// ShowUnset includes leaves that hold no value.
	ShowUnset bool

	// IndentWidth is the number of spaces per indent level.
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowMetadata: false,
		ShowUnset:    true,
		IndentWidth:  2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	return strings.Repeat(" ", depth*width) + content
}

// FormatTree renders info and everything below it, one node per line.
func (f *Formatter) FormatTree(info *NodeInfo) string {
	var sb strings.Builder
	f.formatNode(&sb, info, 0)
	return sb.String()
}

func (f *Formatter) formatNode(sb *strings.Builder, n *NodeInfo, depth int) {
	if n.IsLeaf() {
		if !n.IsSet && !f.ShowUnset {
			return
		}
		sb.WriteString(f.Indent(depth, f.FormatLeaf(n)))
		sb.WriteString("\n")
		return
	}

	header := n.Name
	if n.Kind == "collection" {
		header += fmt.Sprintf(" [%d]", len(n.Children))
	}
	if f.ShowMetadata && n.Description != "" {
		header += "  # " + n.Description
	}
	sb.WriteString(f.Indent(depth, header))
	sb.WriteString("\n")

	for k := range n.Children {
		f.formatNode(sb, &n.Children[k], depth+1)
	}
}

// FormatLeaf formats a single leaf line: "Name = value unit (metadata)".
func (f *Formatter) FormatLeaf(n *NodeInfo) string {
	value := "<unset>"
	if n.IsSet {
		value = f.FormatValue(n.Value, n.Unit)
	}
	line := fmt.Sprintf("%s = %s", n.Name, value)
	if f.ShowMetadata {
		line += " (" + f.FormatMetadata(n) + ")"
	}
	return line
}

// FormatMetadata formats the kind, data type, range, and allowed values of a leaf.
func (f *Formatter) FormatMetadata(n *NodeInfo) string {
	parts := []string{n.Kind, n.DataType}
	if r := FormatRange(n.Min, n.Max); r != "" {
		parts = append(parts, r)
	}
	if len(n.Allowed) > 0 {
		parts = append(parts, "allowed: "+strings.Join(n.Allowed, "|"))
	}
	if n.Deprecation != "" {
		parts = append(parts, "deprecated")
	}
	return strings.Join(parts, ", ")
}

// FormatValue formats a value for display, followed by its unit if any.
func (f *Formatter) FormatValue(value any, unit string) string {
	s := formatPlain(value)
	if unit == "" || value == nil {
		return s
	}
	switch unit {
	case "percent":
		return s + " %"
	case "celsius":
		return s + " °C"
	default:
		return s + " " + unit
	}
}

func formatPlain(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case string:
		return strconv.Quote(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []string:
		quoted := make([]string, len(v))
		for i, s := range v {
			quoted[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatRange formats inclusive bounds: "[0, 100]", "[0, ...]" or "" when unbounded.
func FormatRange(minValue, maxValue any) string {
	if minValue == nil && maxValue == nil {
		return ""
	}
	lo, hi := "...", "..."
	if minValue != nil {
		lo = fmt.Sprint(minValue)
	}
	if maxValue != nil {
		hi = fmt.Sprint(maxValue)
	}
	return "[" + lo + ", " + hi + "]"
}

// ValueRow represents a formatted leaf value for display.
type ValueRow struct {
	Path  string
	Value string
	Type  string
}

// Rows flattens info into one row per leaf, in declared order.
func (f *Formatter) Rows(info *NodeInfo) []ValueRow {
	var rows []ValueRow
	var collect func(n *NodeInfo)
	collect = func(n *NodeInfo) {
		if n.IsLeaf() {
			if !n.IsSet && !f.ShowUnset {
				return
			}
			value := "<unset>"
			if n.IsSet {
				value = f.FormatValue(n.Value, n.Unit)
			}
			rows = append(rows, ValueRow{Path: n.Path, Value: value, Type: n.DataType})
			return
		}
		for k := range n.Children {
			collect(&n.Children[k])
		}
	}
	collect(info)
	return rows
}

// FormatValueTable formats rows as "path = value" lines.
func (f *Formatter) FormatValueTable(rows []ValueRow) string {
	if len(rows) == 0 {
		return "  (no values)\n"
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("  %s = %s", row.Path, row.Value))
		if f.ShowMetadata && row.Type != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", row.Type))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
