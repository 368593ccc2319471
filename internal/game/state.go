// Package game holds the in-memory game state: the player, the in-game
// clock and the item catalogs, plus random stock generation and search.
package game

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"horsemanager/internal/domain"
	"horsemanager/internal/util"
)

// ErrNotInCatalog is returned by Move when the item is not where the caller
// expects it.
var ErrNotInCatalog = errors.New("item not in catalog")

// Player is the person trading.
type Player struct {
	Name    string
	Balance int
}

// Catalog is an ordered, named collection of items. Membership is changed
// only through State.
type Catalog struct {
	Kind  domain.CatalogKind
	items []domain.Item
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Items returns a copy of the items in catalog order.
func (c *Catalog) Items() []domain.Item {
	return slices.Clone(c.items)
}

func (c *Catalog) index(id string) int {
	return slices.IndexFunc(c.items, func(it domain.Item) bool { return it.Key() == id })
}

func (c *Catalog) add(item domain.Item) {
	c.items = append(c.items, item)
}

func (c *Catalog) remove(id string) (domain.Item, bool) {
	i := c.index(id)
	if i < 0 {
		return nil, false
	}
	item := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)
	return item, true
}

// State is the whole game. It is not safe for concurrent use; the UI loop is
// its only mutator.
type State struct {
	player   Player
	date     time.Time
	seed     uint64
	calendar *util.EventCalendar
	catalogs map[domain.CatalogKind]*Catalog
}

// NewState creates a game with empty catalogs.
func NewState(player Player, date time.Time, seed uint64, cal *util.EventCalendar) *State {
	return &State{
		player:   player,
		date:     util.DateOf(date),
		seed:     seed,
		calendar: cal,
		catalogs: map[domain.CatalogKind]*Catalog{
			domain.CatalogShop:   {Kind: domain.CatalogShop},
			domain.CatalogPlayer: {Kind: domain.CatalogPlayer},
		},
	}
}

// Player returns the player.
func (s *State) Player() Player { return s.player }

// Seed returns the game seed.
func (s *State) Seed() uint64 { return s.seed }

// Balance returns the player's balance.
func (s *State) Balance() int { return s.player.Balance }

// SetBalance overwrites the player's balance.
func (s *State) SetBalance(b int) { s.player.Balance = b }

// Today returns the in-game date.
func (s *State) Today() time.Time { return s.date }

// TodayEvent returns the calendar event of the in-game date.
func (s *State) TodayEvent() domain.CalendarEvent {
	return s.calendar.EventOn(s.date)
}

// Calendar returns the event calendar.
func (s *State) Calendar() *util.EventCalendar { return s.calendar }

// AdvanceDay moves the clock forward by days and returns the new date.
func (s *State) AdvanceDay(days int) time.Time {
	s.date = s.date.AddDate(0, 0, days)
	return s.date
}

// Catalog returns the catalog of kind, creating it if needed.
func (s *State) Catalog(kind domain.CatalogKind) *Catalog {
	c, ok := s.catalogs[kind]
	if !ok {
		c = &Catalog{Kind: kind}
		s.catalogs[kind] = c
	}
	return c
}

// Items returns the items of a catalog in catalog order.
func (s *State) Items(kind domain.CatalogKind) []domain.Item {
	return s.Catalog(kind).Items()
}

// ItemsOfType returns the items of a catalog with the given entity type.
// An empty type name matches every item.
func (s *State) ItemsOfType(kind domain.CatalogKind, typeName string) []domain.Item {
	var out []domain.Item
	for _, it := range s.Catalog(kind).items {
		if typeName == "" || it.EntityType() == typeName {
			out = append(out, it)
		}
	}
	return out
}

// Lookup finds an item by ID in one catalog.
func (s *State) Lookup(kind domain.CatalogKind, id string) (domain.Item, bool) {
	c := s.Catalog(kind)
	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	return nil, false
}

// Locate finds an item by ID in any catalog.
func (s *State) Locate(id string) (domain.CatalogKind, domain.Item, bool) {
	for _, kind := range s.kinds() {
		if it, ok := s.Lookup(kind, id); ok {
			return kind, it, true
		}
	}
	return "", nil, false
}

// Move transfers an item between catalogs. The item is appended to the
// destination.
func (s *State) Move(id string, from, to domain.CatalogKind) error {
	item, ok := s.Catalog(from).remove(id)
	if !ok {
		return fmt.Errorf("%w: %s not in %s", ErrNotInCatalog, id, from)
	}
	s.Catalog(to).add(item)
	return nil
}

// Stock appends items to a catalog. Items whose ID is already present in
// any catalog are skipped; it returns how many were added.
func (s *State) Stock(kind domain.CatalogKind, items ...domain.Item) int {
	added := 0
	for _, it := range items {
		if _, _, dup := s.Locate(it.Key()); dup {
			continue
		}
		s.Catalog(kind).add(it)
		added++
	}
	return added
}

func (s *State) kinds() []domain.CatalogKind {
	kinds := make([]domain.CatalogKind, 0, len(s.catalogs))
	for k := range s.catalogs {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// ByRarity returns a copy of items ordered from the rarest tier down. Items
// of equal rarity keep their relative order.
func ByRarity(items []domain.Item) []domain.Item {
	out := slices.Clone(items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Tier() > out[j].Tier()
	})
	return out
}
