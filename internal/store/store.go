// Package store defines storage interfaces for persisting game state and the
// trade ledger, with SQLite and Parquet implementations.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"horsemanager/internal/domain"
)

// ErrNoSnapshot is returned by LoadSnapshot when no game was saved yet.
var ErrNoSnapshot = errors.New("store: no saved game")

// Ledger records completed exchanges.
type Ledger interface {
	// AppendTrade persists one trade.
	AppendTrade(ctx context.Context, trade TradeRecord) error

	// ListTrades returns the trades of an in-game day ("YYYY-MM-DD"), or of
	// every day when day is empty, oldest first.
	ListTrades(ctx context.Context, day string) ([]TradeRecord, error)
}

// SnapshotStore persists the full game state.
type SnapshotStore interface {
	// SaveSnapshot replaces the saved game.
	SaveSnapshot(ctx context.Context, snap *Snapshot) error

	// LoadSnapshot returns the saved game or ErrNoSnapshot.
	LoadSnapshot(ctx context.Context) (*Snapshot, error)
}

// ---------------------------------------------------------------------------
// Records
// ---------------------------------------------------------------------------

// DayLayout is the layout of in-game day strings.
const DayLayout = "2006-01-02"

// TradeRecord is one ledger entry. It doubles as the Parquet schema of the
// ledger export.
type TradeRecord struct {
	ID           string `parquet:"id"`
	Day          string `parquet:"day"`                              // in-game date, YYYY-MM-DD
	Timestamp    int64  `parquet:"timestamp,timestamp(millisecond)"` // wall clock, Unix ms
	Direction    string `parquet:"direction"`
	ItemID       string `parquet:"item_id"`
	ItemType     string `parquet:"item_type"`
	ItemName     string `parquet:"item_name"`
	Canonical    int64  `parquet:"canonical"`
	Price        int64  `parquet:"price"`
	Event        string `parquet:"event"`
	BalanceAfter int64  `parquet:"balance_after"`
}

// EntityType makes trades renderable as table rows.
func (t TradeRecord) EntityType() string { return domain.TradeType }

// FieldValue returns the value of the named ledger column.
func (t TradeRecord) FieldValue(name string) (any, bool) {
	switch name {
	case "ID":
		return t.ID, true
	case "Day":
		return t.Day, true
	case "Direction":
		return t.Direction, true
	case "Item":
		return t.ItemName, true
	case "Type":
		return t.ItemType, true
	case "Canonical":
		return t.Canonical, true
	case "Price":
		return t.Price, true
	case "Event":
		return t.Event, true
	case "Balance":
		return t.BalanceAfter, true
	}
	return nil, false
}

// ItemRecord is the flattened row of any item type. Fields an item type does
// not have stay zero.
type ItemRecord struct {
	ID         string
	Type       string
	Catalog    domain.CatalogKind
	Position   int
	Name       string
	Rarity     domain.Rarity
	Energy     int
	Resistance int
	Speed      int
	Skill      int
	Age        int
	Price      int
}

// PlayerRecord is the saved player and clock.
type PlayerRecord struct {
	Name    string
	Balance int
	Date    time.Time
	Seed    uint64
}

// Snapshot is a complete saved game.
type Snapshot struct {
	Player PlayerRecord
	Items  []ItemRecord
}

// ItemToRecord flattens an item at position pos of a catalog.
func ItemToRecord(item domain.Item, catalog domain.CatalogKind, pos int) (ItemRecord, error) {
	r := ItemRecord{
		ID:       item.Key(),
		Type:     item.EntityType(),
		Catalog:  catalog,
		Position: pos,
		Name:     item.DisplayName(),
		Rarity:   item.Tier(),
		Price:    item.CanonicalPrice(),
	}
	switch it := item.(type) {
	case domain.Horse:
		r.Energy, r.Resistance, r.Speed, r.Age = it.Energy, it.Resistance, it.Speed, it.Age
	case domain.Jockey:
		r.Skill, r.Age = it.Skill, it.Age
	default:
		return ItemRecord{}, fmt.Errorf("store: unsupported item type %s", item.EntityType())
	}
	return r, nil
}

// Item rebuilds the domain item.
func (r ItemRecord) Item() (domain.Item, error) {
	switch r.Type {
	case domain.HorseType:
		return domain.Horse{
			ID: r.ID, Name: r.Name, Rarity: r.Rarity,
			Energy: r.Energy, Resistance: r.Resistance, Speed: r.Speed,
			Age: r.Age, Price: r.Price,
		}, nil
	case domain.JockeyType:
		return domain.Jockey{
			ID: r.ID, Name: r.Name, Rarity: r.Rarity,
			Skill: r.Skill, Age: r.Age, Price: r.Price,
		}, nil
	}
	return nil, fmt.Errorf("store: unknown item type %q for %s", r.Type, r.ID)
}
