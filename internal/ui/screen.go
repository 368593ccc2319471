// Package ui implements the screen and dialog navigation of the game and
// the bubbletea program that drives it.
package ui

import (
	"horsemanager/internal/domain"
)

// ScreenKind says how a screen renders and what Confirm does on it.
type ScreenKind int

const (
	MenuScreen ScreenKind = iota
	TableScreen
)

// MenuOption is one entry of a menu screen. Exactly one of Target, Back and
// Quit is meaningful.
type MenuOption struct {
	Label  string
	Target string // screen ID to show
	Back   bool
	Quit   bool
}

// Screen is a persistent page of the navigation stack.
type Screen struct {
	ID    string
	Title string
	Kind  ScreenKind

	// Menu screens.
	Options []MenuOption

	// Table screens.
	Catalog    domain.CatalogKind
	TypeName   string
	Direction  domain.Direction
	Exclude    []string
	Selectable bool
	Addable    bool
	AddTarget  string // screen ID shown from the "Add new" row

	selected int
}

// Selected returns the selection index, -1 when nothing can be selected.
func (s *Screen) Selected() int { return s.selected }

// selectionRange returns the valid selection bounds for a screen showing
// count rows. ok is false when nothing can be selected.
func (s *Screen) selectionRange(count int) (lo, hi int, ok bool) {
	switch {
	case s.Kind == MenuScreen:
		return 0, len(s.Options) - 1, len(s.Options) > 0
	case s.Addable:
		return 0, count, true
	default:
		return 0, count - 1, count > 0
	}
}

// clamp moves the selection back into range after the row count changed.
func (s *Screen) clamp(count int) {
	lo, hi, ok := s.selectionRange(count)
	switch {
	case !ok:
		s.selected = -1
	case s.selected < lo:
		s.selected = lo
	case s.selected > hi:
		s.selected = hi
	}
}

// DefaultScreens is the game's navigation map. The first screen is the
// root.
func DefaultScreens() []*Screen {
	noID := []string{"ID"}
	return []*Screen{
		{
			ID:    "main",
			Title: "Horse Manager",
			Kind:  MenuScreen,
			Options: []MenuOption{
				{Label: "Horse Shop", Target: "shop-horses"},
				{Label: "Jockey Shop", Target: "shop-jockeys"},
				{Label: "My Horses", Target: "stable-horses"},
				{Label: "My Jockeys", Target: "stable-jockeys"},
				{Label: "Exit", Quit: true},
			},
		},
		{
			ID: "shop-horses", Title: "Horse Shop", Kind: TableScreen,
			Catalog: domain.CatalogShop, TypeName: domain.HorseType, Direction: domain.Buying,
			Exclude: noID, Selectable: true,
		},
		{
			ID: "shop-jockeys", Title: "Jockey Shop", Kind: TableScreen,
			Catalog: domain.CatalogShop, TypeName: domain.JockeyType, Direction: domain.Buying,
			Exclude: noID, Selectable: true,
		},
		{
			ID: "stable-horses", Title: "Player Horses", Kind: TableScreen,
			Catalog: domain.CatalogPlayer, TypeName: domain.HorseType, Direction: domain.Selling,
			Exclude: noID, Selectable: true, Addable: true, AddTarget: "shop-horses",
		},
		{
			ID: "stable-jockeys", Title: "Player Jockeys", Kind: TableScreen,
			Catalog: domain.CatalogPlayer, TypeName: domain.JockeyType, Direction: domain.Selling,
			Exclude: noID, Selectable: true, Addable: true, AddTarget: "shop-jockeys",
		},
	}
}
