package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"horsemanager/internal/domain"
	"horsemanager/internal/exchange"
	"horsemanager/internal/fields"
	"horsemanager/internal/game"
	"horsemanager/internal/util"
)

// Game is what the navigator needs from the game state: the exchange books
// plus typed catalog listings.
type Game interface {
	exchange.Books
	ItemsOfType(kind domain.CatalogKind, typeName string) []domain.Item
	Calendar() *util.EventCalendar
}

// Navigator is the screen stack plus at most one open dialog. It is driven
// only by MoveSelection, Confirm, Cancel and Back.
type Navigator struct {
	game     Game
	engine   *exchange.Engine
	registry *fields.Registry
	logger   *slog.Logger

	screens map[string]*Screen
	stack   []*Screen
	dialog  *Dialog
	quit    bool

	// OnTrade, when set, is called after every successful exchange. Its
	// error is returned by Confirm.
	OnTrade func(exchange.Receipt) error
}

// NewNavigator builds a navigator over screens; the first one is the root
// and is shown immediately.
func NewNavigator(g Game, engine *exchange.Engine, registry *fields.Registry, logger *slog.Logger, screens ...*Screen) (*Navigator, error) {
	if len(screens) == 0 {
		return nil, errors.New("ui: navigator needs at least one screen")
	}
	if logger == nil {
		logger = util.Discard()
	}
	n := &Navigator{
		game:     g,
		engine:   engine,
		registry: registry,
		logger:   logger,
		screens:  make(map[string]*Screen, len(screens)),
	}
	for _, s := range screens {
		if _, dup := n.screens[s.ID]; dup {
			return nil, fmt.Errorf("ui: duplicate screen %q", s.ID)
		}
		n.screens[s.ID] = s
	}
	for _, s := range screens {
		if err := n.checkLinks(s); err != nil {
			return nil, err
		}
	}
	n.push(screens[0])
	return n, nil
}

func (n *Navigator) checkLinks(s *Screen) error {
	targets := []string{s.AddTarget}
	for _, o := range s.Options {
		targets = append(targets, o.Target)
	}
	for _, t := range targets {
		if _, ok := n.screens[t]; t != "" && !ok {
			return fmt.Errorf("ui: screen %q links to unknown screen %q", s.ID, t)
		}
	}
	return nil
}

// Active returns the top of the stack.
func (n *Navigator) Active() *Screen { return n.stack[len(n.stack)-1] }

// Depth returns the number of screens on the stack.
func (n *Navigator) Depth() int { return len(n.stack) }

// Dialog returns the open dialog, or nil.
func (n *Navigator) Dialog() *Dialog { return n.dialog }

// Quit reports whether the player chose to leave.
func (n *Navigator) Quit() bool { return n.quit }

// Items returns the rows of a table screen, rarest first.
func (n *Navigator) Items(s *Screen) []domain.Item {
	if s.Kind != TableScreen {
		return nil
	}
	return game.ByRarity(n.game.ItemsOfType(s.Catalog, s.TypeName))
}

func (n *Navigator) rowCount(s *Screen) int {
	return len(n.Items(s))
}

// Show makes the screen with the given ID active. A screen already on the
// stack is returned to by popping everything above it.
func (n *Navigator) Show(id string) error {
	s, ok := n.screens[id]
	if !ok {
		return fmt.Errorf("ui: unknown screen %q", id)
	}
	if i := slices.Index(n.stack, s); i >= 0 {
		n.stack = n.stack[:i+1]
	} else {
		n.push(s)
	}
	n.dialog = nil
	s.clamp(n.rowCount(s))
	n.logger.Debug("show screen", "screen", id, "depth", len(n.stack))
	return nil
}

func (n *Navigator) push(s *Screen) {
	s.selected = 0
	s.clamp(n.rowCount(s))
	n.stack = append(n.stack, s)
}

// Back pops the active screen. The root is never popped; Back reports
// whether anything changed.
func (n *Navigator) Back() bool {
	if n.dialog != nil || len(n.stack) == 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	top := n.Active()
	top.clamp(n.rowCount(top))
	return true
}

// MoveSelection moves the dialog focus when a dialog is open, else the
// active screen's selection, clamped to its range.
func (n *Navigator) MoveSelection(delta int) {
	if n.dialog != nil {
		n.dialog.move(delta)
		return
	}
	s := n.Active()
	count := n.rowCount(s)
	if _, _, ok := s.selectionRange(count); !ok {
		s.selected = -1
		return
	}
	s.selected += delta
	s.clamp(count)
}

// Confirm acts on the open dialog, or on the selected row or option of the
// active screen. The returned error is informational: failures are also
// shown to the player in a message dialog.
func (n *Navigator) Confirm(ctx context.Context) error {
	if n.dialog != nil {
		return n.confirmDialog(ctx)
	}

	s := n.Active()
	switch s.Kind {
	case MenuScreen:
		if s.selected < 0 || s.selected >= len(s.Options) {
			return nil
		}
		opt := s.Options[s.selected]
		switch {
		case opt.Quit:
			n.quit = true
		case opt.Back:
			n.Back()
		case opt.Target != "":
			return n.Show(opt.Target)
		}
		return nil

	case TableScreen:
		items := n.Items(s)
		switch {
		case s.selected < 0:
			return nil
		case s.Addable && s.selected == len(items):
			if s.AddTarget == "" {
				return nil
			}
			return n.Show(s.AddTarget)
		case s.selected < len(items):
			item := items[s.selected]
			n.dialog = newDialog(ConfirmRequest{
				Direction: s.Direction,
				Item:      item,
				Price:     n.engine.Price(n.game, item, s.Direction),
			}, s)
		}
	}
	return nil
}

func (n *Navigator) confirmDialog(ctx context.Context) error {
	d := n.dialog
	if !d.resolve() {
		return nil
	}
	n.dialog = nil

	req, ok := d.Request.(ConfirmRequest)
	if !ok {
		// Messages just close.
		return nil
	}
	if d.focus == ButtonNo {
		return nil
	}

	r, err := n.engine.Exchange(ctx, n.game, req.Item.Key(), req.Direction)
	if err != nil {
		n.dialog = newDialog(MessageRequest{
			Text: fmt.Sprintf("Could not %s %s: %v", req.Direction, req.Item.DisplayName(), err),
			Kind: ErrorMessage,
		}, d.Screen)
		return err
	}

	kind := SuccessMessage
	if !r.OK {
		kind = ErrorMessage
	}
	n.dialog = newDialog(MessageRequest{Text: r.Message(), Kind: kind}, d.Screen)
	d.Screen.clamp(n.rowCount(d.Screen))

	if r.OK && n.OnTrade != nil {
		if err := n.OnTrade(r); err != nil {
			return fmt.Errorf("after %s of %s: %w", req.Direction, req.Item.DisplayName(), err)
		}
	}
	return nil
}

// Cancel closes the open dialog without acting. With no dialog it goes back
// one screen.
func (n *Navigator) Cancel() {
	if n.dialog == nil {
		n.Back()
		return
	}
	if n.dialog.resolve() {
		n.dialog = nil
	}
}

// Refresh re-clamps the active selection after the game changed outside the
// navigator, such as a new day restocking the shop.
func (n *Navigator) Refresh() {
	s := n.Active()
	s.clamp(n.rowCount(s))
}
