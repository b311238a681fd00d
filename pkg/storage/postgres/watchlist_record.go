package postgres

import "time"

// WatchlistRecord represents a tracked coin stored in the database.
type WatchlistRecord struct {
	ID uint `gorm:"primaryKey" json:"-"`

	CoinID string `gorm:"type:text;not null;uniqueIndex:idx_watchlist_coin_id" json:"coin_id"`
	Symbol string `gorm:"type:varchar(20);not null" json:"symbol"`
	Name   string `gorm:"type:text;not null;index:idx_watchlist_name" json:"name"`

	TargetPrice  *float64 `gorm:"type:numeric" json:"target_price"`
	AlertEnabled bool     `gorm:"not null;default:false" json:"alert_enabled"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

// TableName overrides the default table name for GORM.
func (WatchlistRecord) TableName() string {
	return "watchlist"
}
