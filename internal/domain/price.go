package domain

import "time"

// AssetPrice is one (symbol, day, close) observation. The ordered series for
// a symbol feeds the drift/volatility estimator and is never mutated after
// ingestion.
type AssetPrice struct {
	Symbol string
	Price  float64
	Date   time.Time
}
