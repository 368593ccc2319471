package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"horsemanager/internal/domain"
)

func TestHolidayBuyingDiscount(t *testing.T) {
	tests := []struct {
		price int
		want  int
	}{
		{500, 375},
		{600, 450},
		{700, 525},
		{800, 600},
		{900, 675},
		{1000, 750},
		{1300, 975},
		{1, 0},
		{3, 2},
	}
	for _, tt := range tests {
		got := EffectivePrice(tt.price, domain.EventHoliday, domain.Buying)
		if got != tt.want {
			t.Errorf("EffectivePrice(%d, holiday, buying) = %d, want %d", tt.price, got, tt.want)
		}
	}
}

func TestHolidaySellingMarkup(t *testing.T) {
	tests := []struct {
		price int
		want  int
	}{
		{500, 625},
		{600, 750},
		{1300, 1625},
		{3, 3},
	}
	for _, tt := range tests {
		got := EffectivePrice(tt.price, domain.EventHoliday, domain.Selling)
		if got != tt.want {
			t.Errorf("EffectivePrice(%d, holiday, selling) = %d, want %d", tt.price, got, tt.want)
		}
	}
}

func TestNegativePriceClamped(t *testing.T) {
	for _, ev := range []domain.CalendarEvent{domain.EventNone, domain.EventHoliday} {
		if got := EffectivePrice(-10, ev, domain.Buying); got != 0 {
			t.Errorf("EffectivePrice(-10, %v) = %d, want 0", ev, got)
		}
	}
}

func TestNewPolicyMarkup(t *testing.T) {
	p := NewPolicy(1.5)
	if got := p.EffectivePrice(600, domain.EventHoliday, domain.Selling); got != 900 {
		t.Errorf("markup 1.5 selling 600 = %d, want 900", got)
	}
	if got := p.EffectivePrice(600, domain.EventHoliday, domain.Buying); got != 450 {
		t.Errorf("markup policy buying 600 = %d, want 450", got)
	}
	if !NewPolicy(0).HolidayMarkup.Equal(decimal.RequireFromString("1.25")) {
		t.Error("NewPolicy(0) should keep the default markup")
	}
}

func TestZeroPolicyUsesDefault(t *testing.T) {
	q := Quote{Event: domain.EventHoliday, Direction: domain.Buying}
	if got := q.Apply(600); got != 450 {
		t.Errorf("zero-policy quote Apply(600) = %d, want 450", got)
	}
	if !q.Adjusted(600) {
		t.Error("Adjusted(600) = false on a holiday")
	}
	if (Quote{}).Adjusted(600) {
		t.Error("Adjusted(600) = true on an ordinary day")
	}
}

func TestPropertyNoEventIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		price := rapid.IntRange(0, 1_000_000).Draw(t, "price")
		dir := domain.Direction(rapid.IntRange(0, 1).Draw(t, "dir"))
		if got := EffectivePrice(price, domain.EventNone, dir); got != price {
			t.Fatalf("EffectivePrice(%d, none, %v) = %d, want unchanged", price, dir, got)
		}
	})
}

func TestPropertyHolidayBuyIsFloorOfThreeQuarters(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		price := rapid.IntRange(0, 1_000_000).Draw(t, "price")
		got := EffectivePrice(price, domain.EventHoliday, domain.Buying)
		if want := price * 3 / 4; got != want {
			t.Fatalf("EffectivePrice(%d, holiday, buying) = %d, want %d", price, got, want)
		}
		if sell := EffectivePrice(price, domain.EventHoliday, domain.Selling); sell < price {
			t.Fatalf("holiday selling price %d below canonical %d", sell, price)
		}
	})
}
