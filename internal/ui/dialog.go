package ui

import (
	"fmt"
	"strings"

	"horsemanager/internal/domain"
	"horsemanager/internal/table"
)

// Request is the tagged payload of a dialog. The navigator dispatches on its
// concrete type.
type Request interface {
	isRequest()
}

// ConfirmRequest asks the player to approve an exchange at a quoted price.
type ConfirmRequest struct {
	Direction domain.Direction
	Item      domain.Item
	Price     int
}

// MessageKind selects the styling of a message dialog.
type MessageKind int

const (
	InfoMessage MessageKind = iota
	SuccessMessage
	ErrorMessage
)

func (k MessageKind) String() string {
	switch k {
	case SuccessMessage:
		return "success"
	case ErrorMessage:
		return "error"
	default:
		return "info"
	}
}

// MessageRequest only informs; confirming or cancelling closes it.
type MessageRequest struct {
	Text string
	Kind MessageKind
}

func (ConfirmRequest) isRequest() {}
func (MessageRequest) isRequest() {}

// Dialog buttons of a ConfirmRequest.
const (
	ButtonYes = 0
	ButtonNo  = 1
)

// Dialog is a modal overlay above a screen. It resolves at most once.
type Dialog struct {
	Request Request
	Screen  *Screen

	focus    int
	resolved bool
}

func newDialog(req Request, under *Screen) *Dialog {
	return &Dialog{Request: req, Screen: under}
}

// Focus returns the focused button.
func (d *Dialog) Focus() int { return d.focus }

// Resolved reports whether the dialog was confirmed or cancelled.
func (d *Dialog) Resolved() bool { return d.resolved }

// resolve marks the dialog resolved. Only the first call returns true.
func (d *Dialog) resolve() bool {
	if d.resolved {
		return false
	}
	d.resolved = true
	return true
}

func (d *Dialog) move(delta int) {
	if _, ok := d.Request.(ConfirmRequest); !ok {
		return
	}
	d.focus = min(max(d.focus+delta, ButtonYes), ButtonNo)
}

// Title is the dialog heading, e.g. "buy horse".
func (d *Dialog) Title() string {
	switch r := d.Request.(type) {
	case ConfirmRequest:
		return fmt.Sprintf("%s %s", r.Direction, strings.ToLower(r.Item.EntityType()))
	case MessageRequest:
		return r.Kind.String()
	}
	return ""
}

// Text is the body of the dialog.
func (d *Dialog) Text() string {
	switch r := d.Request.(type) {
	case ConfirmRequest:
		return fmt.Sprintf("Are you sure you want to %s %s for %s ?",
			r.Direction, r.Item.DisplayName(), table.FormatCurrency(r.Price))
	case MessageRequest:
		return r.Text
	}
	return ""
}
