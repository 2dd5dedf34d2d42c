package integration_tests

import (
	"context"

	"harvestladder/internal/repository"

	"github.com/shopspring/decimal"
)

// NewMockAlpacaRepositoryForTests returns a quote source with canned
// prices, so lifecycle tests never touch the real market data API.
func NewMockAlpacaRepositoryForTests() repository.AlpacaRepository {
	return mockAlpacaForTestsHandler{}
}

type mockAlpacaForTestsHandler struct {
}

func (m mockAlpacaForTestsHandler) IsMarketOpen() (bool, error) {
	return true, nil
}

func (m mockAlpacaForTestsHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	canned := map[string]decimal.Decimal{
		"AAPL": decimal.NewFromFloat(135.25),
		"GOOG": decimal.NewFromFloat(87.59),
		"META": decimal.NewFromFloat(272.87),
	}

	out := map[string]decimal.Decimal{}
	for _, symbol := range symbols {
		if price, ok := canned[symbol]; ok {
			out[symbol] = price
		}
	}

	return out, nil
}
