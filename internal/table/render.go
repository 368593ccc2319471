// Package table renders collections of entities as bordered fixed-width
// text tables. Column layout comes only from field descriptors; the values
// of the rows never change the geometry.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"horsemanager/internal/domain"
	"horsemanager/internal/fields"
	"horsemanager/internal/pricing"
)

const (
	// DefaultWidth is the inner width of a table with nothing to show.
	DefaultWidth = 72

	// EmptyMessage replaces the headers of an empty table.
	EmptyMessage = "Nothing to show."

	markerHeader = "     "
	markerOn     = " [X] "
	markerOff    = " [ ] "
)

// Options controls one rendering.
type Options struct {
	Title      string
	TypeName   string // used by the "Add new <TypeName>" row
	Selectable bool
	Addable    bool
	Selected   int
	Quote      pricing.Quote
	Styles     *Styles
}

// ColumnWidth is the width of a column in cells: the declared padding when
// it fits the label plus one space either side, else that label width.
func ColumnWidth(d fields.FieldDescriptor) int {
	w := displayWidth(d.Label) + 2
	if d.Padding > w {
		return d.Padding
	}
	return w
}

// Width returns the inner width of a table with at least one item.
func Width(descriptors []fields.FieldDescriptor, selectable bool) int {
	return innerWidth(headerCells(descriptors, selectable))
}

// Render formats items into table lines. It never fails: values that are
// missing render as empty cells.
func Render(items []fields.Entity, descriptors []fields.FieldDescriptor, opts Options) []string {
	st := opts.Styles
	if st == nil {
		st = DefaultStyles()
	}

	empty := len(items) == 0
	headers := headerCells(descriptors, opts.Selectable)
	if empty {
		headers = []string{AlignCenter(EmptyMessage, DefaultWidth)}
	}
	width := innerWidth(headers)

	var lines []string
	lines = append(lines,
		border(st, width),
		st.Border.Render("| ")+st.Title.Render(AlignCenter(opts.Title, width-2))+st.Border.Render(" |"),
		border(st, width),
	)

	if empty {
		lines = append(lines, gapRow(st, headers), headerRow(st, headers), gapRow(st, headers))
	} else {
		lines = append(lines, headerRow(st, headers))
	}
	lines = append(lines, border(st, width))

	for i, item := range items {
		lines = append(lines, dataRow(st, item, descriptors, i, opts))
		if i < len(items)-1 {
			lines = append(lines, gapRow(st, headers))
		}
	}

	if opts.Addable {
		if !empty {
			lines = append(lines, border(st, width))
		}
		lines = append(lines, footerRow(st, len(items), width, opts), border(st, width))
	} else if !empty {
		lines = append(lines, border(st, width))
	}
	return lines
}

// String joins rendered lines with newlines.
func String(lines []string) string {
	return strings.Join(lines, "\n")
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

func headerCells(descriptors []fields.FieldDescriptor, selectable bool) []string {
	headers := make([]string, 0, len(descriptors)+1)
	if selectable {
		headers = append(headers, markerHeader)
	}
	for _, d := range descriptors {
		headers = append(headers, AlignCenter(" "+d.Label+" ", ColumnWidth(d)))
	}
	return headers
}

// innerWidth is the sum of the cells plus one bar between each pair.
func innerWidth(headers []string) int {
	w := 0
	for _, h := range headers {
		w += displayWidth(h)
	}
	if len(headers) > 1 {
		w += len(headers) - 1
	}
	return w
}

func border(st *Styles, width int) string {
	return st.Border.Render("+" + strings.Repeat("-", width) + "+")
}

func headerRow(st *Styles, headers []string) string {
	var b strings.Builder
	for _, h := range headers {
		b.WriteString(st.Border.Render("|"))
		b.WriteString(st.Header.Render(h))
	}
	b.WriteString(st.Border.Render("|"))
	return b.String()
}

func gapRow(st *Styles, headers []string) string {
	var b strings.Builder
	for _, h := range headers {
		b.WriteString("|" + strings.Repeat(" ", displayWidth(h)))
	}
	b.WriteString("|")
	return st.Border.Render(b.String())
}

func dataRow(st *Styles, item fields.Entity, descriptors []fields.FieldDescriptor, row int, opts Options) string {
	var b strings.Builder
	if opts.Selectable {
		b.WriteString(st.Border.Render("|"))
		if row == opts.Selected {
			b.WriteString(st.Marker.Render(markerOn))
		} else {
			b.WriteString(markerOff)
		}
	}
	for _, d := range descriptors {
		b.WriteString(st.Border.Render("|"))
		b.WriteString(cell(st, item, d, opts.Quote))
	}
	b.WriteString(st.Border.Render("|"))
	return b.String()
}

func footerRow(st *Styles, count, width int, opts Options) string {
	marker := "| [ ] |"
	if opts.Selected == count {
		marker = "| [X] |"
	}
	label := AlignLeft(fmt.Sprintf(" Add new %s ", opts.TypeName), width-6)
	return st.Border.Render(marker) + st.Footer.Render(label) + st.Border.Render("|")
}

// ---------------------------------------------------------------------------
// Cells
// ---------------------------------------------------------------------------

func cell(st *Styles, item fields.Entity, d fields.FieldDescriptor, quote pricing.Quote) string {
	width := ColumnWidth(d)
	value, ok := item.FieldValue(d.Name)
	if !ok || value == nil {
		return strings.Repeat(" ", width)
	}

	label, color, ok := formatValue(value, d, quote)
	if !ok {
		return strings.Repeat(" ", width)
	}
	return st.Color(color).Render(AlignCenter(" "+label+" ", width))
}

// formatValue applies the descriptor's format flags. The third return value
// is false when the value does not fit the declared kind.
func formatValue(value any, d fields.FieldDescriptor, quote pricing.Quote) (string, fields.Color, bool) {
	color := fields.ColorDefault
	if d.Kind.Has(fields.StaticColored) {
		color = d.Color
	}

	switch {
	case d.Kind.Has(fields.RarityColored):
		r, ok := rarityOf(value)
		if !ok {
			return "", color, false
		}
		color = RarityColor(r)
	case d.Kind.Has(fields.EnergyColored):
		n, ok := intOf(value)
		if !ok {
			return "", color, false
		}
		color = EnergyColor(n)
	}

	switch {
	case d.Kind.Has(fields.Currency):
		price, ok := intOf(value)
		if !ok {
			return "", color, false
		}
		effective := quote.Apply(price)
		if quote.Adjusted(price) {
			color = fields.ColorDarkGreen
		}
		return FormatCurrency(effective), color, true
	case d.Kind.Has(fields.Percentage):
		return FormatPercent(value), color, true
	}
	return fmt.Sprint(value), color, true
}

func rarityOf(v any) (domain.Rarity, bool) {
	switch x := v.(type) {
	case domain.Rarity:
		return x, true
	case string:
		r, err := domain.ParseRarity(x)
		return r, err == nil
	}
	return domain.RarityCommon, false
}

func intOf(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case int32:
		return int(x), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		return n, err == nil
	}
	return 0, false
}
