package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"harvestladder/internal"
	"harvestladder/internal/db/models/postgres/public/model"
	"harvestladder/internal/domain"
	"harvestladder/internal/logger"
	"harvestladder/internal/repository"
)

// PriceService owns the daily bar store: refreshing it from the upstream
// provider and serving estimation windows out of it.
type PriceService interface {
	// UpdatePrices re-ingests history for the given symbols, registering
	// any unknown symbol as a tracked ticker. Empty symbols means all
	// tracked tickers.
	UpdatePrices(ctx context.Context, symbols []string, lookbackDays int) error
	// HistoryWindow returns the most recent windowDays bars for a tracked
	// symbol, oldest first. ErrSymbolNotFound when the symbol isn't
	// tracked.
	HistoryWindow(symbol string, windowDays int) ([]domain.AssetPrice, error)
	// HistoryRange returns a tracked symbol's bars between start and end
	// inclusive.
	HistoryRange(symbol string, start, end time.Time) ([]domain.AssetPrice, error)
}

type priceServiceHandler struct {
	Db                 *sql.DB
	TickerRepository   repository.TickerRepository
	DailyBarRepository repository.DailyBarRepository
}

func NewPriceService(
	db *sql.DB,
	tickerRepository repository.TickerRepository,
	dailyBarRepository repository.DailyBarRepository,
) PriceService {
	return &priceServiceHandler{
		Db:                 db,
		TickerRepository:   tickerRepository,
		DailyBarRepository: dailyBarRepository,
	}
}

func (h *priceServiceHandler) UpdatePrices(ctx context.Context, symbols []string, lookbackDays int) error {
	log := logger.FromContext(ctx)

	tx, err := h.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	if len(symbols) == 0 {
		err = internal.UpdateTrackedPrices(tx, lookbackDays, h.TickerRepository, h.DailyBarRepository)
		if err != nil {
			return err
		}
		return tx.Commit()
	}

	for _, symbol := range symbols {
		_, err = h.TickerRepository.GetOrCreate(tx, model.Ticker{Symbol: symbol})
		if err != nil {
			return err
		}
		err = internal.IngestPrices(tx, symbol, lookbackDays, h.DailyBarRepository)
		if err != nil {
			return err
		}
		log.Infof("refreshed bars for %s", symbol)
	}

	return tx.Commit()
}

func (h *priceServiceHandler) HistoryWindow(symbol string, windowDays int) ([]domain.AssetPrice, error) {
	if _, err := h.TickerRepository.GetBySymbol(symbol); err != nil {
		return nil, err
	}

	bars, err := h.DailyBarRepository.ListWindow(nil, symbol, windowDays)
	if err != nil {
		return nil, err
	}

	out := []domain.AssetPrice{}
	for _, b := range bars {
		out = append(out, domain.AssetPrice{
			Symbol: b.Symbol,
			Price:  b.AdjClose,
			Date:   b.Date,
		})
	}

	return out, nil
}

func (h *priceServiceHandler) HistoryRange(symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	if _, err := h.TickerRepository.GetBySymbol(symbol); err != nil {
		return nil, err
	}

	return h.DailyBarRepository.List(nil, symbol, start, end)
}
