// Package pricing computes the effective price of an item from its canonical
// price, the calendar event of the day and the direction of the exchange.
package pricing

import (
	"github.com/shopspring/decimal"

	"horsemanager/internal/domain"
)

// Policy holds the holiday price factors. Results are floored to whole
// currency units and never negative.
type Policy struct {
	HolidayDiscount decimal.Decimal // multiplier applied when buying
	HolidayMarkup   decimal.Decimal // multiplier applied when selling
}

// Default is the standard policy: 25% off when buying on a holiday, 25% on
// top when selling on a holiday.
var Default = Policy{
	HolidayDiscount: decimal.RequireFromString("0.75"),
	HolidayMarkup:   decimal.RequireFromString("1.25"),
}

// NewPolicy returns the default policy with a custom selling markup.
// Non-positive markups fall back to the default.
func NewPolicy(markup float64) Policy {
	p := Default
	if markup > 0 {
		p.HolidayMarkup = decimal.NewFromFloat(markup)
	}
	return p
}

func (p Policy) isZero() bool {
	return p.HolidayDiscount.IsZero() && p.HolidayMarkup.IsZero()
}

// EffectivePrice applies the policy. It is total: any input yields a
// result >= 0.
func (p Policy) EffectivePrice(price int, event domain.CalendarEvent, dir domain.Direction) int {
	if p.isZero() {
		p = Default
	}
	if price < 0 {
		return 0
	}
	if event != domain.EventHoliday {
		return price
	}

	factor := p.HolidayDiscount
	if dir == domain.Selling {
		factor = p.HolidayMarkup
	}
	adjusted := decimal.NewFromInt(int64(price)).Mul(factor).Floor().IntPart()
	if adjusted < 0 {
		return 0
	}
	return int(adjusted)
}

// EffectivePrice applies the Default policy.
func EffectivePrice(price int, event domain.CalendarEvent, dir domain.Direction) int {
	return Default.EffectivePrice(price, event, dir)
}

// Quote binds a policy to one day's event and a direction, so a renderer can
// price many items without knowing where the event came from.
type Quote struct {
	Event     domain.CalendarEvent
	Direction domain.Direction
	Policy    Policy
}

// Apply returns the effective price of a canonical price.
func (q Quote) Apply(price int) int {
	return q.Policy.EffectivePrice(price, q.Event, q.Direction)
}

// Adjusted reports whether the quote changes the given price.
func (q Quote) Adjusted(price int) bool {
	return q.Apply(price) != price
}
