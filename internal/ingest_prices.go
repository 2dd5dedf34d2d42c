package internal

import (
	"database/sql"
	"fmt"
	"time"

	"harvestladder/internal/db/models/postgres/public/model"
	"harvestladder/internal/domain"
	"harvestladder/internal/logger"
	"harvestladder/internal/repository"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// IngestPrices pulls daily bars for symbol over the trailing lookbackDays
// and upserts them. Returns ErrDataUnavailable when the provider has no
// bars for the symbol.
func IngestPrices(
	tx *sql.Tx,
	symbol string,
	lookbackDays int,
	dailyBarRepository repository.DailyBarRepository,
) error {
	now := time.Now()
	start := now.AddDate(0, 0, -lookbackDays)
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	models := []model.DailyPriceBar{}

	for iter.Next() {
		models = append(models, model.DailyPriceBar{
			Symbol:    symbol,
			Date:      time.Unix(int64(iter.Bar().Timestamp), 0).UTC(),
			Close:     iter.Bar().Close.InexactFloat64(),
			AdjClose:  iter.Bar().AdjClose.InexactFloat64(),
			CreatedAt: time.Now().UTC(),
		})
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}
	if len(models) == 0 {
		return fmt.Errorf("%w: no bars returned for %s", domain.ErrDataUnavailable, symbol)
	}

	err := dailyBarRepository.Add(tx, models)
	if err != nil {
		return err
	}

	return nil
}

// UpdateTrackedPrices refreshes bars for every tracked ticker. A failure
// on one symbol doesn't stop the rest.
func UpdateTrackedPrices(
	tx *sql.Tx,
	lookbackDays int,
	tickerRepository repository.TickerRepository,
	dailyBarRepository repository.DailyBarRepository,
) error {
	tickers, err := tickerRepository.List()
	if err != nil {
		return err
	}
	if len(tickers) == 0 {
		return fmt.Errorf("no tracked tickers found")
	}

	errors := []error{}

	for _, t := range tickers {
		err = IngestPrices(tx, t.Symbol, lookbackDays, dailyBarRepository)
		if err != nil {
			err = fmt.Errorf("failed to ingest historical prices for %s: %w", t.Symbol, err)
			logger.Error(err)
			errors = append(errors, err)
		} else {
			logger.Info("refreshed bars for %s", t.Symbol)
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("failed to update %d/%d tracked prices. first err: %w", len(errors), len(tickers), errors[0])
	}

	return nil
}
