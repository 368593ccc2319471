// Package fields describes how the fields of an entity type are labelled,
// padded and coloured when rendered as table columns. Descriptors are static
// metadata registered once per type; entities expose their values through
// the Entity interface instead of runtime reflection.
package fields

import "strings"

// Entity is anything that can be rendered as a table row.
type Entity interface {
	// EntityType returns the registry key for the entity's type.
	EntityType() string

	// FieldValue returns the value of the named field. The second return
	// value is false when the entity has no such field.
	FieldValue(name string) (any, bool)
}

// FormatKind is a set of formatting flags. Plain is the empty set; a suffix
// flag (Percentage, Currency) may be combined with a color flag.
type FormatKind uint8

const (
	Plain      FormatKind = 0
	Percentage FormatKind = 1 << (iota - 1)
	Currency
	RarityColored
	EnergyColored
	StaticColored
)

var kindNames = []struct {
	kind FormatKind
	name string
}{
	{Percentage, "percentage"},
	{Currency, "currency"},
	{RarityColored, "rarity"},
	{EnergyColored, "energy"},
	{StaticColored, "static"},
}

// Has reports whether all flags in f are set on k.
func (k FormatKind) Has(f FormatKind) bool {
	return f != Plain && k&f == f
}

func (k FormatKind) String() string {
	if k == Plain {
		return "plain"
	}
	var parts []string
	for _, kn := range kindNames {
		if k.Has(kn.kind) {
			parts = append(parts, kn.name)
		}
	}
	return strings.Join(parts, "|")
}

// Color is a terminal color in ANSI 16-color notation.
type Color string

// Palette mirroring the classic console colors.
const (
	ColorDefault     Color = ""
	ColorGray        Color = "7"
	ColorDarkGray    Color = "8"
	ColorWhite       Color = "15"
	ColorBlue        Color = "12"
	ColorDarkMagenta Color = "5"
	ColorYellow      Color = "11"
	ColorDarkYellow  Color = "3"
	ColorDarkGreen   Color = "2"
	ColorGreen       Color = "10"
	ColorRed         Color = "9"
)

// FieldDescriptor is the immutable display metadata of one entity field.
type FieldDescriptor struct {
	Name    string
	Label   string
	Kind    FormatKind
	Padding int // fixed column width; 0 derives the width from Label
	Color   Color
}

// Option customises a FieldDescriptor at declaration time.
type Option func(*FieldDescriptor)

// Label overrides the display label (defaults to the field name).
func Label(label string) Option {
	return func(d *FieldDescriptor) { d.Label = label }
}

// Padding fixes the column width.
func Padding(width int) Option {
	return func(d *FieldDescriptor) {
		if width > 0 {
			d.Padding = width
		}
	}
}

// Format adds formatting flags.
func Format(kind FormatKind) Option {
	return func(d *FieldDescriptor) { d.Kind |= kind }
}

// Static renders the field in a fixed color.
func Static(c Color) Option {
	return func(d *FieldDescriptor) {
		d.Kind |= StaticColored
		d.Color = c
	}
}

// Field declares a field. Without options it is Plain with zero padding.
func Field(name string, opts ...Option) FieldDescriptor {
	d := FieldDescriptor{Name: name, Label: name}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

// TypeSpec is the ordered field list of one entity type.
type TypeSpec struct {
	name   string
	fields []FieldDescriptor
}

// Type groups descriptors, in declaration order, under a type name.
func Type(name string, descriptors ...FieldDescriptor) TypeSpec {
	return TypeSpec{name: name, fields: descriptors}
}

// Registry maps entity type names to their field descriptors.
type Registry struct {
	types map[string][]FieldDescriptor
}

// NewRegistry builds a registry from the given type specs. A later spec
// with the same name replaces an earlier one.
func NewRegistry(specs ...TypeSpec) *Registry {
	r := &Registry{types: make(map[string][]FieldDescriptor, len(specs))}
	for _, s := range specs {
		r.types[s.name] = append([]FieldDescriptor(nil), s.fields...)
	}
	return r
}

// Describe returns the descriptors of typeName in declaration order, minus
// the excluded field names. Unknown types yield an empty slice. The result
// is a fresh copy.
func (r *Registry) Describe(typeName string, exclude ...string) []FieldDescriptor {
	all := r.types[typeName]
	out := make([]FieldDescriptor, 0, len(all))
	for _, d := range all {
		if contains(exclude, d.Name) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Lookup returns a single descriptor.
func (r *Registry) Lookup(typeName, field string) (FieldDescriptor, bool) {
	for _, d := range r.types[typeName] {
		if d.Name == field {
			return d, true
		}
	}
	return FieldDescriptor{}, false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
