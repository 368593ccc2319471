package store

import (
	"context"
	"sync"
)

var _ Ledger = (*MemoryLedger)(nil)

// MemoryLedger keeps trades in memory. Fail, when set, is returned by
// AppendTrade instead of recording the trade.
type MemoryLedger struct {
	mu     sync.Mutex
	trades []TradeRecord
	Fail   error
}

func (m *MemoryLedger) AppendTrade(_ context.Context, t TradeRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	m.trades = append(m.trades, t)
	return nil
}

func (m *MemoryLedger) ListTrades(_ context.Context, day string) ([]TradeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []TradeRecord
	for _, t := range m.trades {
		if day == "" || t.Day == day {
			out = append(out, t)
		}
	}
	return out, nil
}
