// Package exchange executes buy and sell transactions between the shop and
// the player, pricing each one for the in-game day and recording it in the
// ledger.
package exchange

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"horsemanager/internal/domain"
	"horsemanager/internal/pricing"
	"horsemanager/internal/store"
	"horsemanager/internal/util"
)

var (
	// ErrInsufficientFunds is reported in a Receipt when the player cannot
	// afford an item. It is never returned as the error of Exchange.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrItemNotFound is returned when the item is not in the catalog the
	// direction takes it from.
	ErrItemNotFound = errors.New("item not found")
)

// Books is the game state an exchange reads and mutates.
type Books interface {
	Lookup(kind domain.CatalogKind, id string) (domain.Item, bool)
	Move(id string, from, to domain.CatalogKind) error
	Balance() int
	SetBalance(balance int)
	Today() time.Time
	TodayEvent() domain.CalendarEvent
}

// Receipt is the outcome of one exchange attempt.
type Receipt struct {
	TradeID      string
	Item         domain.Item
	Direction    domain.Direction
	Canonical    int
	Price        int
	Event        domain.CalendarEvent
	OK           bool
	Err          error
	BalanceAfter int
}

// Message is the sentence shown to the player for this receipt.
func (r Receipt) Message() string {
	name := r.Item.DisplayName()
	if r.OK {
		return fmt.Sprintf("%s was successfully %s!", name, r.Direction.Past())
	}
	if errors.Is(r.Err, ErrInsufficientFunds) {
		return fmt.Sprintf("You don't have enough money to %s %s!", r.Direction, name)
	}
	return fmt.Sprintf("Could not %s %s: %v", r.Direction, name, r.Err)
}

// Engine executes exchanges. It holds no game state of its own.
type Engine struct {
	policy pricing.Policy
	ledger store.Ledger
	logger *slog.Logger
	now    func() time.Time
}

// NewEngine creates a new Engine. A nil ledger records nothing; a nil logger
// discards.
func NewEngine(policy pricing.Policy, ledger store.Ledger, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = util.Discard()
	}
	return &Engine{
		policy: policy,
		ledger: ledger,
		logger: logger,
		now:    time.Now,
	}
}

// Quote binds the engine's policy to the books' current day.
func (e *Engine) Quote(books Books, dir domain.Direction) pricing.Quote {
	return pricing.Quote{Event: books.TodayEvent(), Direction: dir, Policy: e.policy}
}

// Price is the effective price of item today in the given direction.
func (e *Engine) Price(books Books, item domain.Exchangeable, dir domain.Direction) int {
	return e.Quote(books, dir).Apply(item.CanonicalPrice())
}

// Exchange buys or sells one item. A purchase the player cannot afford
// yields a Receipt with OK false and Err ErrInsufficientFunds, with nothing
// changed. The returned error is reserved for unknown items and ledger
// failures; in both cases nothing is changed either.
func (e *Engine) Exchange(ctx context.Context, books Books, itemID string, dir domain.Direction) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	from, to := dir.Source(), dir.Dest()
	item, ok := books.Lookup(from, itemID)
	if !ok {
		return Receipt{}, fmt.Errorf("%w: %s in %s", ErrItemNotFound, itemID, from)
	}

	quote := e.Quote(books, dir)
	r := Receipt{
		Item:      item,
		Direction: dir,
		Canonical: item.CanonicalPrice(),
		Price:     quote.Apply(item.CanonicalPrice()),
		Event:     quote.Event,
	}

	balance := books.Balance()
	if err := checkFunds(dir, balance, r.Price); err != nil {
		r.Err = err
		r.BalanceAfter = balance
		e.logger.Info("exchange refused",
			"direction", dir.String(),
			"item", item.DisplayName(),
			"price", r.Price,
			"balance", balance,
		)
		return r, nil
	}

	if dir == domain.Selling {
		r.BalanceAfter = balance + r.Price
	} else {
		r.BalanceAfter = balance - r.Price
	}
	r.TradeID = uuid.NewString()

	// The item moves before the ledger is written and moves back if the
	// write fails, so the ledger only ever holds trades that happened. The
	// balance changes last.
	if err := books.Move(itemID, from, to); err != nil {
		return Receipt{}, fmt.Errorf("moving %s: %w", item.DisplayName(), err)
	}
	if e.ledger != nil {
		if err := e.ledger.AppendTrade(ctx, e.record(books, r)); err != nil {
			if uerr := books.Move(itemID, to, from); uerr != nil {
				e.logger.Error("undoing move failed", "item", item.DisplayName(), "error", uerr)
			}
			return Receipt{}, fmt.Errorf("recording %s of %s: %w", dir, item.DisplayName(), err)
		}
	}
	books.SetBalance(r.BalanceAfter)
	r.OK = true

	e.logger.Info("exchange",
		"trade_id", r.TradeID,
		"direction", dir.String(),
		"item", item.DisplayName(),
		"canonical", r.Canonical,
		"price", r.Price,
		"event", r.Event.String(),
		"balance", r.BalanceAfter,
	)
	return r, nil
}

func (e *Engine) record(books Books, r Receipt) store.TradeRecord {
	return store.TradeRecord{
		ID:           r.TradeID,
		Day:          books.Today().Format(store.DayLayout),
		Timestamp:    e.now().UnixMilli(),
		Direction:    r.Direction.String(),
		ItemID:       r.Item.Key(),
		ItemType:     r.Item.EntityType(),
		ItemName:     r.Item.DisplayName(),
		Canonical:    int64(r.Canonical),
		Price:        int64(r.Price),
		Event:        r.Event.String(),
		BalanceAfter: int64(r.BalanceAfter),
	}
}
