package table

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"horsemanager/internal/domain"
	"horsemanager/internal/fields"
)

// Styles maps field colors to lipgloss styles for one output renderer.
type Styles struct {
	r *lipgloss.Renderer

	Border lipgloss.Style
	Title  lipgloss.Style
	Header lipgloss.Style
	Marker lipgloss.Style
	Footer lipgloss.Style
}

// NewStyles builds styles bound to r.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		r:      r,
		Border: r.NewStyle(),
		Title:  r.NewStyle().Bold(true),
		Header: r.NewStyle().Foreground(lipgloss.Color(fields.ColorGray)),
		Marker: r.NewStyle().Bold(true).Foreground(lipgloss.Color(fields.ColorGreen)),
		Footer: r.NewStyle().Foreground(lipgloss.Color(fields.ColorGray)),
	}
}

// DefaultStyles uses the process-wide lipgloss renderer (stdout).
func DefaultStyles() *Styles {
	return NewStyles(lipgloss.DefaultRenderer())
}

// PlainStyles renders without any escape sequences.
func PlainStyles() *Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewStyles(r)
}

// Color returns a foreground style for c. ColorDefault leaves text unstyled.
func (s *Styles) Color(c fields.Color) lipgloss.Style {
	if c == fields.ColorDefault {
		return s.r.NewStyle()
	}
	return s.r.NewStyle().Foreground(lipgloss.Color(c))
}

// RarityColor is the four-way tier palette.
func RarityColor(r domain.Rarity) fields.Color {
	switch r {
	case domain.RarityCommon:
		return fields.ColorWhite
	case domain.RarityRare:
		return fields.ColorBlue
	case domain.RarityEpic:
		return fields.ColorDarkMagenta
	case domain.RarityLegendary:
		return fields.ColorYellow
	default:
		return fields.ColorGray
	}
}

// Energy band boundaries: [0, EnergyLow) is low, [EnergyLow, EnergyHigh) is
// mid, EnergyHigh and above is high.
const (
	EnergyLow  = 30
	EnergyHigh = 70
)

// EnergyColor is the three-band energy palette.
func EnergyColor(energy int) fields.Color {
	switch {
	case energy < EnergyLow:
		return fields.ColorRed
	case energy < EnergyHigh:
		return fields.ColorDarkYellow
	default:
		return fields.ColorGreen
	}
}
