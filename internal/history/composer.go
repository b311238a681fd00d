package history

import (
	"context"
	"strings"

	"github.com/Hassan-Naveed1/crypto-fx-tracker/pkg/market"
)

// KlineSource provides stablecoin-denominated hourly price history.
type KlineSource interface {
	GetHistory(ctx context.Context, coinID string, hours int) (market.PriceSeries, error)
}

// RateSource provides spot FX rates between fiat currency codes.
type RateSource interface {
	GetRate(ctx context.Context, from, to string) (market.FxQuote, error)
}

// Composer combines USDT-denominated candlestick history with a USD->target
// FX rate to produce a series in an arbitrary display currency. USDT is
// treated as exact USD parity; for a USD target no FX call is made at all.
type Composer struct {
	klines KlineSource
	rates  RateSource
}

func NewComposer(klines KlineSource, rates RateSource) *Composer {
	return &Composer{klines: klines, rates: rates}
}

// HistoryIn returns days*24 hourly samples (best effort, clamped upstream)
// for the coin, converted to the target currency. The history and FX calls
// run sequentially: the rate is only needed for non-USD targets, so a
// parallel FX call would be wasted in the common case. Failures from either
// source pass through unchanged; no partial series is ever returned.
func (c *Composer) HistoryIn(ctx context.Context, coinID, target string, days int) (market.PriceSeries, error) {
	series, err := c.klines.GetHistory(ctx, coinID, days*24)
	if err != nil {
		return nil, err
	}

	rate := 1.0
	if !strings.EqualFold(target, "usd") {
		quote, err := c.rates.GetRate(ctx, "USD", strings.ToUpper(target))
		if err != nil {
			return nil, err
		}
		rate = quote.Rate
	}

	out := make(market.PriceSeries, len(series))
	for i, p := range series {
		out[i] = market.PricePoint{TimestampMs: p.TimestampMs, Price: p.Price * rate}
	}
	return out, nil
}
