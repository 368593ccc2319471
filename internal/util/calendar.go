package util

import (
	"fmt"
	"sort"
	"time"

	"horsemanager/internal/domain"
)

// DefaultHolidays are the fixed-date national holidays of Portugal, as
// "MM-DD" strings.
var DefaultHolidays = []string{
	"01-01", // Ano Novo
	"04-25", // Dia da Liberdade
	"05-01", // Dia do Trabalhador
	"06-10", // Dia de Portugal
	"08-15", // Assunção de Nossa Senhora
	"10-05", // Implantação da República
	"11-01", // Todos os Santos
	"12-01", // Restauração da Independência
	"12-08", // Imaculada Conceição
	"12-25", // Natal
}

type monthDay struct {
	month time.Month
	day   int
}

// EventCalendar maps in-game dates to calendar events. Holidays recur every
// year on the same month and day.
type EventCalendar struct {
	holidays map[monthDay]bool
}

// NewEventCalendar parses a list of "MM-DD" holidays.
func NewEventCalendar(holidays []string) (*EventCalendar, error) {
	cal := &EventCalendar{holidays: make(map[monthDay]bool, len(holidays))}
	for _, h := range holidays {
		// 2024 is a leap year, so "02-29" parses.
		t, err := time.Parse("2006-01-02", "2024-"+h)
		if err != nil {
			return nil, fmt.Errorf("parsing holiday %q: %w", h, err)
		}
		cal.holidays[monthDay{t.Month(), t.Day()}] = true
	}
	return cal, nil
}

// MustEventCalendar is NewEventCalendar for static lists.
func MustEventCalendar(holidays []string) *EventCalendar {
	cal, err := NewEventCalendar(holidays)
	if err != nil {
		panic(err)
	}
	return cal
}

// EventOn returns the event in effect on the date of t.
func (c *EventCalendar) EventOn(t time.Time) domain.CalendarEvent {
	if c != nil && c.holidays[monthDay{t.Month(), t.Day()}] {
		return domain.EventHoliday
	}
	return domain.EventNone
}

// NextHoliday returns the first holiday strictly after t, or false if the
// calendar has none.
func (c *EventCalendar) NextHoliday(t time.Time) (time.Time, bool) {
	if c == nil || len(c.holidays) == 0 {
		return time.Time{}, false
	}
	d := DateOf(t)
	for i := 1; i <= 366; i++ {
		next := d.AddDate(0, 0, i)
		if c.EventOn(next) == domain.EventHoliday {
			return next, true
		}
	}
	return time.Time{}, false
}

// Holidays returns the configured holidays as sorted "MM-DD" strings.
func (c *EventCalendar) Holidays() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.holidays))
	for md := range c.holidays {
		out = append(out, fmt.Sprintf("%02d-%02d", int(md.month), md.day))
	}
	sort.Strings(out)
	return out
}

// DateOf truncates t to midnight UTC of its calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
