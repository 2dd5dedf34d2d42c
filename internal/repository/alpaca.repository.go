package repository

import (
	"context"
	"fmt"

	"harvestladder/internal/logger"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

type AlpacaRepository interface {
	IsMarketOpen() (bool, error)
	GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
}

func NewAlpacaRepository(apiKey, apiSecret string, endpoint string) AlpacaRepository {
	client := alpaca.NewClient(alpaca.ClientOpts{
		APIKey:     apiKey,
		APISecret:  apiSecret,
		BaseURL:    endpoint,
		RetryLimit: 3,
	})

	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return &alpacaRepositoryHandler{
		Client:   client,
		MdClient: mdClient,
	}
}

type alpacaRepositoryHandler struct {
	Client   *alpaca.Client
	MdClient *marketdata.Client
}

func (h alpacaRepositoryHandler) IsMarketOpen() (bool, error) {
	clock, err := h.Client.GetClock()
	if err != nil {
		return false, fmt.Errorf("failed to get market clock: %w", err)
	}

	return clock.IsOpen, nil
}

func (h alpacaRepositoryHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	if len(symbols) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	results, err := h.MdClient.GetLatestTrades(symbols, marketdata.GetLatestTradeRequest{})
	if err != nil {
		return nil, err
	}

	out := map[string]decimal.Decimal{}
	for symbol, result := range results {
		out[symbol] = decimal.NewFromFloat(result.Price)
		if out[symbol].IsZero() {
			return nil, fmt.Errorf("failed to get price for %s: got 0 price", symbol)
		}
	}
	for _, symbol := range symbols {
		if _, ok := out[symbol]; !ok {
			log.Warnf("no latest trade for %s", symbol)
		}
	}

	return out, nil
}
