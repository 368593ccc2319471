// Package domain defines the core game types shared across the horsemanager
// packages: tradeable items, rarity tiers, catalogs, calendar events and the
// direction of an exchange.
package domain

import (
	"fmt"
	"strings"

	"horsemanager/internal/fields"
)

// ---------------------------------------------------------------------------
// Enumerations
// ---------------------------------------------------------------------------

// Rarity is the ordered tier of an item: Common < Rare < Epic < Legendary.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityRare
	RarityEpic
	RarityLegendary
)

var rarityNames = [...]string{"Common", "Rare", "Epic", "Legendary"}

func (r Rarity) String() string {
	if r < RarityCommon || r > RarityLegendary {
		return fmt.Sprintf("Rarity(%d)", int(r))
	}
	return rarityNames[r]
}

// ParseRarity converts a tier name (case-insensitive) to a Rarity.
func ParseRarity(s string) (Rarity, error) {
	for i, name := range rarityNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Rarity(i), nil
		}
	}
	return RarityCommon, fmt.Errorf("unknown rarity %q", s)
}

// CatalogKind identifies one of the named item collections.
type CatalogKind string

const (
	CatalogShop   CatalogKind = "shop"
	CatalogPlayer CatalogKind = "player"
)

// CalendarEvent is the condition derived from the current in-game date.
type CalendarEvent int

const (
	EventNone CalendarEvent = iota
	EventHoliday
)

func (e CalendarEvent) String() string {
	switch e {
	case EventHoliday:
		return "holiday"
	default:
		return "none"
	}
}

// Direction says whether the player is buying from or selling to the shop.
type Direction int

const (
	Buying Direction = iota
	Selling
)

// String returns the verb used in dialogs: "buy" or "sell".
func (d Direction) String() string {
	if d == Selling {
		return "sell"
	}
	return "buy"
}

// Past returns the past tense of the verb.
func (d Direction) Past() string {
	if d == Selling {
		return "sold"
	}
	return "bought"
}

// Source is the catalog an item leaves in this direction.
func (d Direction) Source() CatalogKind {
	if d == Selling {
		return CatalogPlayer
	}
	return CatalogShop
}

// Dest is the catalog an item enters in this direction.
func (d Direction) Dest() CatalogKind {
	if d == Selling {
		return CatalogShop
	}
	return CatalogPlayer
}

// ---------------------------------------------------------------------------
// Items
// ---------------------------------------------------------------------------

// Exchangeable is the capability of anything that can be bought or sold.
type Exchangeable interface {
	Key() string
	DisplayName() string
	CanonicalPrice() int
	Tier() Rarity
}

// Item is an exchangeable entity that can also be rendered in a table.
type Item interface {
	fields.Entity
	Exchangeable
}

// Entity type names, used as registry keys and in "Add new <type>" rows.
const (
	HorseType  = "Horse"
	JockeyType = "Jockey"
	TradeType  = "Trade"
)

// Horse is a racing horse. Price is the canonical price set at generation
// time and is never rewritten by event pricing.
type Horse struct {
	ID         string
	Name       string
	Rarity     Rarity
	Energy     int
	Resistance int
	Speed      int
	Age        int
	Price      int
}

var _ Item = Horse{}

func (h Horse) EntityType() string  { return HorseType }
func (h Horse) Key() string         { return h.ID }
func (h Horse) DisplayName() string { return h.Name }
func (h Horse) CanonicalPrice() int { return h.Price }
func (h Horse) Tier() Rarity        { return h.Rarity }

// FieldValue returns the value of the named field.
func (h Horse) FieldValue(name string) (any, bool) {
	switch name {
	case "ID":
		return h.ID, true
	case "Name":
		return h.Name, true
	case "Rarity":
		return h.Rarity, true
	case "Energy":
		return h.Energy, true
	case "Resistance":
		return h.Resistance, true
	case "Speed":
		return h.Speed, true
	case "Age":
		return h.Age, true
	case "Price":
		return h.Price, true
	}
	return nil, false
}

// Jockey is a rider that can be hired from the shop.
type Jockey struct {
	ID     string
	Name   string
	Rarity Rarity
	Skill  int
	Age    int
	Price  int
}

var _ Item = Jockey{}

func (j Jockey) EntityType() string  { return JockeyType }
func (j Jockey) Key() string         { return j.ID }
func (j Jockey) DisplayName() string { return j.Name }
func (j Jockey) CanonicalPrice() int { return j.Price }
func (j Jockey) Tier() Rarity        { return j.Rarity }

// FieldValue returns the value of the named field.
func (j Jockey) FieldValue(name string) (any, bool) {
	switch name {
	case "ID":
		return j.ID, true
	case "Name":
		return j.Name, true
	case "Rarity":
		return j.Rarity, true
	case "Skill":
		return j.Skill, true
	case "Age":
		return j.Age, true
	case "Price":
		return j.Price, true
	}
	return nil, false
}
