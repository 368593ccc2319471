package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// Compile-time interface check.
var _ Ledger = (*ParquetLedger)(nil)

// ParquetLedger stores trades as one Parquet file per in-game day:
//
//	<DataDir>/ledger/<YYYY-MM-DD>.parquet
//
// It serves as the export target of the SQLite ledger and can also be used
// as a Ledger on its own.
type ParquetLedger struct {
	DataDir string
}

// NewParquetLedger creates a new ParquetLedger rooted at the given data
// directory.
func NewParquetLedger(dataDir string) *ParquetLedger {
	return &ParquetLedger{DataDir: dataDir}
}

// AppendTrade merges one trade into its day file.
func (l *ParquetLedger) AppendTrade(ctx context.Context, trade TradeRecord) error {
	_, err := l.Export(ctx, []TradeRecord{trade})
	return err
}

// Export writes trades grouped by day, merging with what each day file
// already holds. Trades are deduplicated by ID, newest write wins. It
// returns the paths written, sorted.
func (l *ParquetLedger) Export(_ context.Context, trades []TradeRecord) ([]string, error) {
	if len(trades) == 0 {
		return nil, nil
	}

	groups := make(map[string][]TradeRecord)
	for _, t := range trades {
		if t.Day == "" {
			return nil, fmt.Errorf("trade %s has no day", t.ID)
		}
		groups[t.Day] = append(groups[t.Day], t)
	}

	paths := make([]string, 0, len(groups))
	for day, records := range groups {
		path := l.dayPath(day)

		// A missing file just means nothing to merge. Any other read error
		// would lose the trades already in the file.
		existing, err := readParquetFile[TradeRecord](path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading ledger for %s: %w", day, err)
		}
		merged := mergeTradeRecords(existing, records)

		if err := writeParquetFile(path, merged); err != nil {
			return nil, fmt.Errorf("writing ledger for %s: %w", day, err)
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

// ListTrades reads one day file, or every day file when day is empty.
func (l *ParquetLedger) ListTrades(_ context.Context, day string) ([]TradeRecord, error) {
	days := []string{day}
	if day == "" {
		var err error
		if days, err = l.Days(); err != nil {
			return nil, err
		}
	}

	var trades []TradeRecord
	for _, d := range days {
		records, err := readParquetFile[TradeRecord](l.dayPath(d))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading ledger for %s: %w", d, err)
		}
		trades = append(trades, records...)
	}
	return trades, nil
}

// Days lists the days that have a ledger file, oldest first.
func (l *ParquetLedger) Days() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(l.DataDir, "ledger"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var days []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".parquet") {
			days = append(days, strings.TrimSuffix(e.Name(), ".parquet"))
		}
	}
	sort.Strings(days)
	return days, nil
}

// dayPath returns the filesystem path for a day's ledger file.
func (l *ParquetLedger) dayPath(day string) string {
	return filepath.Join(l.DataDir, "ledger", day+".parquet")
}

// ---------------------------------------------------------------------------
// Parquet file helpers
// ---------------------------------------------------------------------------

func writeParquetFile[T any](path string, records []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return parquet.WriteFile(path, records)
}

func readParquetFile[T any](path string) ([]T, error) {
	rows, err := parquet.ReadFile[T](path)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// mergeTradeRecords deduplicates trade records by ID, preferring new records
// over existing ones. Results are sorted by timestamp, then ID.
func mergeTradeRecords(existing, incoming []TradeRecord) []TradeRecord {
	seen := make(map[string]TradeRecord, len(existing)+len(incoming))
	for _, r := range existing {
		seen[r.ID] = r
	}
	for _, r := range incoming {
		seen[r.ID] = r
	}

	merged := make([]TradeRecord, 0, len(seen))
	for _, r := range seen {
		merged = append(merged, r)
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Timestamp != merged[j].Timestamp {
			return merged[i].Timestamp < merged[j].Timestamp
		}
		return merged[i].ID < merged[j].ID
	})
	return merged
}
