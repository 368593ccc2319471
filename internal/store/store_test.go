package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"horsemanager/internal/domain"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore(%q) returned error: %v", dbPath, err)
	}
	t.Cleanup(func() {
		if cerr := store.Close(); cerr != nil {
			t.Errorf("Close() returned error: %v", cerr)
		}
	})
	return store
}

func sampleTrades() []TradeRecord {
	return []TradeRecord{
		{ID: "t1", Day: "2026-12-24", Timestamp: 1000, Direction: "buy", ItemID: "h1", ItemType: "Horse",
			ItemName: "Abbey Ace", Canonical: 600, Price: 600, Event: "none", BalanceAfter: 400},
		{ID: "t2", Day: "2026-12-25", Timestamp: 2000, Direction: "buy", ItemID: "h2", ItemType: "Horse",
			ItemName: "Blue Comet", Canonical: 600, Price: 450, Event: "holiday", BalanceAfter: 0},
		{ID: "t3", Day: "2026-12-25", Timestamp: 3000, Direction: "sell", ItemID: "h1", ItemType: "Horse",
			ItemName: "Abbey Ace", Canonical: 600, Price: 750, Event: "holiday", BalanceAfter: 750},
	}
}

func TestSQLiteStoreOpen(t *testing.T) {
	store := newTestSQLite(t)

	// Verify the store is usable by pinging the database.
	if err := store.db.Ping(); err != nil {
		t.Fatalf("db.Ping() returned error: %v", err)
	}
	// Migrations are idempotent.
	if err := store.migrate(context.Background()); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestSQLiteStoreNoSnapshot(t *testing.T) {
	store := newTestSQLite(t)

	_, err := store.LoadSnapshot(context.Background())
	if !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("LoadSnapshot() error = %v, want ErrNoSnapshot", err)
	}
}

func TestSQLiteStoreSnapshotRoundTrip(t *testing.T) {
	store := newTestSQLite(t)
	ctx := context.Background()

	snap := &Snapshot{
		Player: PlayerRecord{Name: "Rita", Balance: 1234, Date: time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC), Seed: 99},
		Items: []ItemRecord{
			{ID: "h1", Type: domain.HorseType, Catalog: domain.CatalogShop, Position: 0, Name: "Abbey Ace",
				Rarity: domain.RarityCommon, Energy: 100, Resistance: 9, Speed: 8, Age: 10, Price: 600},
			{ID: "j1", Type: domain.JockeyType, Catalog: domain.CatalogShop, Position: 1, Name: "Zé Lima",
				Rarity: domain.RarityEpic, Skill: 77, Age: 31, Price: 900},
			{ID: "h2", Type: domain.HorseType, Catalog: domain.CatalogPlayer, Position: 0, Name: "Blue Comet",
				Rarity: domain.RarityLegendary, Energy: 100, Resistance: 17, Speed: 24, Age: 10, Price: 1300},
		},
	}
	if err := store.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	got, err := store.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if got.Player.Name != "Rita" || got.Player.Balance != 1234 || got.Player.Seed != 99 {
		t.Errorf("Player = %+v", got.Player)
	}
	if !got.Player.Date.Equal(snap.Player.Date) {
		t.Errorf("Player.Date = %v, want %v", got.Player.Date, snap.Player.Date)
	}
	if len(got.Items) != 3 {
		t.Fatalf("LoadSnapshot returned %d items, want 3", len(got.Items))
	}
	// player sorts before shop
	if got.Items[0].ID != "h2" || got.Items[1].ID != "h1" || got.Items[2].ID != "j1" {
		t.Errorf("item order = %s %s %s, want h2 h1 j1", got.Items[0].ID, got.Items[1].ID, got.Items[2].ID)
	}
	if got.Items[2] != snap.Items[1] {
		t.Errorf("jockey = %+v, want %+v", got.Items[2], snap.Items[1])
	}

	// A second save replaces the first.
	snap.Items = snap.Items[:1]
	snap.Player.Balance = 0
	if err := store.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("SaveSnapshot (second): %v", err)
	}
	got, err = store.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(got.Items) != 1 || got.Player.Balance != 0 {
		t.Errorf("after replace: %d items, balance %d", len(got.Items), got.Player.Balance)
	}
}

func TestSQLiteStoreLedger(t *testing.T) {
	store := newTestSQLite(t)
	ctx := context.Background()

	for _, tr := range sampleTrades() {
		if err := store.AppendTrade(ctx, tr); err != nil {
			t.Fatalf("AppendTrade(%s): %v", tr.ID, err)
		}
	}

	all, err := store.ListTrades(ctx, "")
	if err != nil {
		t.Fatalf("ListTrades: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListTrades returned %d trades, want 3", len(all))
	}
	if all[2] != sampleTrades()[2] {
		t.Errorf("trade = %+v, want %+v", all[2], sampleTrades()[2])
	}

	day, err := store.ListTrades(ctx, "2026-12-25")
	if err != nil {
		t.Fatalf("ListTrades(day): %v", err)
	}
	if len(day) != 2 || day[0].ID != "t2" || day[1].ID != "t3" {
		t.Errorf("ListTrades(2026-12-25) = %v", day)
	}

	if err := store.AppendTrade(ctx, sampleTrades()[0]); err == nil {
		t.Error("AppendTrade accepted a duplicate ID")
	}
}

func TestItemRecordRoundTrip(t *testing.T) {
	items := []domain.Item{
		domain.Horse{ID: "h", Name: "Abbey Ace", Rarity: domain.RarityRare, Energy: 80, Resistance: 11, Speed: 12, Age: 10, Price: 800},
		domain.Jockey{ID: "j", Name: "Rui Costa", Rarity: domain.RarityCommon, Skill: 40, Age: 22, Price: 500},
	}
	for i, item := range items {
		r, err := ItemToRecord(item, domain.CatalogPlayer, i)
		if err != nil {
			t.Fatalf("ItemToRecord(%s): %v", item.Key(), err)
		}
		if r.Catalog != domain.CatalogPlayer || r.Position != i {
			t.Errorf("record placement = %s/%d", r.Catalog, r.Position)
		}
		back, err := r.Item()
		if err != nil {
			t.Fatalf("Item(): %v", err)
		}
		if back != item {
			t.Errorf("round trip = %+v, want %+v", back, item)
		}
	}

	if _, err := (ItemRecord{ID: "x", Type: "Unicorn"}).Item(); err == nil {
		t.Error("Item() accepted an unknown type")
	}
}

func TestParquetLedgerPath(t *testing.T) {
	l := NewParquetLedger("/data")

	got := l.dayPath("2026-12-25")
	want := filepath.Join("/data", "ledger", "2026-12-25.parquet")
	if got != want {
		t.Errorf("dayPath mismatch:\n  got  %s\n  want %s", got, want)
	}
}

func TestParquetLedgerExport(t *testing.T) {
	l := NewParquetLedger(t.TempDir())
	ctx := context.Background()

	paths, err := l.Export(ctx, sampleTrades())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("Export wrote %d files, want 2", len(paths))
	}

	days, err := l.Days()
	if err != nil {
		t.Fatalf("Days: %v", err)
	}
	if len(days) != 2 || days[0] != "2026-12-24" || days[1] != "2026-12-25" {
		t.Errorf("Days() = %v", days)
	}

	got, err := l.ListTrades(ctx, "2026-12-25")
	if err != nil {
		t.Fatalf("ListTrades: %v", err)
	}
	if len(got) != 2 || got[0].ID != "t2" || got[1].Price != 750 {
		t.Errorf("ListTrades(2026-12-25) = %+v", got)
	}
}

func TestParquetLedgerMergeDedupes(t *testing.T) {
	l := NewParquetLedger(t.TempDir())
	ctx := context.Background()
	trades := sampleTrades()

	if _, err := l.Export(ctx, trades[:2]); err != nil {
		t.Fatalf("Export (first): %v", err)
	}
	// Re-exporting overlaps t2 and adds t3: should merge, not overwrite.
	if _, err := l.Export(ctx, trades[1:]); err != nil {
		t.Fatalf("Export (second): %v", err)
	}
	if err := l.AppendTrade(ctx, trades[0]); err != nil {
		t.Fatalf("AppendTrade: %v", err)
	}

	all, err := l.ListTrades(ctx, "")
	if err != nil {
		t.Fatalf("ListTrades: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListTrades returned %d trades after merge, want 3", len(all))
	}
}

func TestParquetLedgerExportKeepsUnreadableFile(t *testing.T) {
	l := NewParquetLedger(t.TempDir())
	path := l.dayPath("2026-12-24")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	garbage := []byte("not a parquet file")
	if err := os.WriteFile(path, garbage, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := l.Export(context.Background(), sampleTrades()[:1]); err == nil {
		t.Fatal("Export overwrote an unreadable day file")
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(got, garbage) {
		t.Error("unreadable day file was modified")
	}
}

func TestParquetLedgerEmpty(t *testing.T) {
	l := NewParquetLedger(t.TempDir())
	ctx := context.Background()

	got, err := l.ListTrades(ctx, "")
	if err != nil || len(got) != 0 {
		t.Errorf("ListTrades on empty ledger = %v, %v", got, err)
	}
	got, err = l.ListTrades(ctx, "2026-01-01")
	if err != nil || len(got) != 0 {
		t.Errorf("ListTrades for missing day = %v, %v", got, err)
	}
	if _, err := l.Export(ctx, []TradeRecord{{ID: "x"}}); err == nil {
		t.Error("Export accepted a trade without a day")
	}
}

func TestMemoryLedger(t *testing.T) {
	ctx := context.Background()
	m := &MemoryLedger{}
	for _, tr := range sampleTrades() {
		if err := m.AppendTrade(ctx, tr); err != nil {
			t.Fatalf("AppendTrade: %v", err)
		}
	}
	day, _ := m.ListTrades(ctx, "2026-12-24")
	if len(day) != 1 {
		t.Errorf("ListTrades(2026-12-24) returned %d trades, want 1", len(day))
	}

	m.Fail = errors.New("disk full")
	if err := m.AppendTrade(ctx, TradeRecord{ID: "t4"}); !errors.Is(err, m.Fail) {
		t.Errorf("AppendTrade error = %v, want %v", err, m.Fail)
	}
}

func TestTradeRecordFieldValues(t *testing.T) {
	tr := sampleTrades()[1]
	for _, d := range domain.Fields.Describe(domain.TradeType) {
		if _, ok := tr.FieldValue(d.Name); !ok {
			t.Errorf("TradeRecord has no value for declared field %q", d.Name)
		}
	}
	if v, _ := tr.FieldValue("Item"); v != "Blue Comet" {
		t.Errorf("Item = %v, want Blue Comet", v)
	}
	if v, _ := tr.FieldValue("Balance"); v != int64(0) {
		t.Errorf("Balance = %v, want 0", v)
	}
}
