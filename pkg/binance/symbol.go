package binance

import "strings"

// knownSymbols maps canonical coin ids to their USDT trading pairs. Extend the
// map to cover new listings; the lookup logic never needs to change.
var knownSymbols = map[string]string{
	"bitcoin":  "BTCUSDT",
	"ethereum": "ETHUSDT",
	"solana":   "SOLUSDT",
}

// ToSymbol resolves a coin id to a Binance trading symbol. Ids outside the
// known table fall back to a heuristic (letters and digits only, uppercased,
// "USDT" appended, e.g. "cardano" -> "CARDANOUSDT"). The heuristic can produce
// unlisted symbols for exotic ids; that surfaces later as an upstream error,
// not here.
func ToSymbol(coinID string) string {
	if sym, ok := knownSymbols[coinID]; ok {
		return sym
	}

	var b strings.Builder
	for _, r := range coinID {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return strings.ToUpper(b.String()) + "USDT"
}
