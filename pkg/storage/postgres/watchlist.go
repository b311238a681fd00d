package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm/clause"
)

// ErrDuplicateCoin is returned when adding a coin id that already exists in
// the watchlist.
var ErrDuplicateCoin = errors.New("coin already in watchlist")

// ListWatchlist returns all tracked coins ordered by display name ascending.
func (p *PostgresClient) ListWatchlist(ctx context.Context) ([]WatchlistRecord, error) {
	var records []WatchlistRecord
	err := p.DB.WithContext(ctx).
		Order("name ASC").
		Find(&records).Error

	if err != nil {
		return nil, err
	}
	return records, nil
}

// AddToWatchlist inserts a new entry. A conflicting coin_id is reported as
// ErrDuplicateCoin rather than a driver error.
func (p *PostgresClient) AddToWatchlist(ctx context.Context, record *WatchlistRecord) error {
	tx := p.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "coin_id"}},
		DoNothing: true,
	}).Create(record)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return ErrDuplicateCoin
	}

	return nil
}

// RemoveFromWatchlist deletes the entry for the given coin id. Deleting an
// absent id is not an error.
func (p *PostgresClient) RemoveFromWatchlist(ctx context.Context, coinID string) error {
	return p.DB.WithContext(ctx).
		Where("coin_id = ?", coinID).
		Delete(&WatchlistRecord{}).Error
}
