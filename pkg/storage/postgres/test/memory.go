package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/Hassan-Naveed1/crypto-fx-tracker/pkg/storage/postgres"
)

// MemoryWatchlist is an in-memory stand-in for the Postgres watchlist store.
// It mirrors the real store's semantics (name-ordered listing, duplicate
// rejection, idempotent delete) so handler tests can exercise the same paths
// without a database.
type MemoryWatchlist struct {
	mu      sync.Mutex
	records []postgres.WatchlistRecord
}

func NewMemoryWatchlist() *MemoryWatchlist {
	return &MemoryWatchlist{
		records: make([]postgres.WatchlistRecord, 0),
	}
}

func (m *MemoryWatchlist) ListWatchlist(ctx context.Context) ([]postgres.WatchlistRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy to avoid race
	out := make([]postgres.WatchlistRecord, len(m.records))
	copy(out, m.records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemoryWatchlist) AddToWatchlist(ctx context.Context, record *postgres.WatchlistRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.records {
		if r.CoinID == record.CoinID {
			return postgres.ErrDuplicateCoin
		}
	}
	m.records = append(m.records, *record)
	return nil
}

func (m *MemoryWatchlist) RemoveFromWatchlist(ctx context.Context, coinID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range m.records {
		if r.CoinID == coinID {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return nil
}
