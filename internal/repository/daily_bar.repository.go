package repository

import (
	"database/sql"
	"fmt"
	"time"

	"harvestladder/internal/db/models/postgres/public/model"
	. "harvestladder/internal/db/models/postgres/public/table"
	"harvestladder/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type DailyBarRepository interface {
	Add(tx *sql.Tx, bars []model.DailyPriceBar) error
	List(tx *sql.Tx, symbol string, start, end time.Time) ([]domain.AssetPrice, error)
	// ListWindow returns the most recent n bars in chronological order
	ListWindow(tx *sql.Tx, symbol string, n int) ([]model.DailyPriceBar, error)
}

func NewDailyBarRepository(db *sql.DB) DailyBarRepository {
	return dailyBarRepositoryHandler{Db: db}
}

type dailyBarRepositoryHandler struct {
	Db *sql.DB
}

func (h dailyBarRepositoryHandler) Add(tx *sql.Tx, bars []model.DailyPriceBar) error {
	if len(bars) == 0 {
		return nil
	}

	query := DailyPriceBar.
		INSERT(DailyPriceBar.AllColumns).
		MODELS(bars).
		ON_CONFLICT(
			DailyPriceBar.Symbol, DailyPriceBar.Date,
		).DO_UPDATE(
		SET(
			DailyPriceBar.Close.SET(DailyPriceBar.EXCLUDED.Close),
			DailyPriceBar.AdjClose.SET(DailyPriceBar.EXCLUDED.AdjClose),
			DailyPriceBar.CreatedAt.SET(DailyPriceBar.EXCLUDED.CreatedAt),
		),
	)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to add daily bars to db: %w", err)
	}

	return nil
}

func (h dailyBarRepositoryHandler) List(tx *sql.Tx, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	query := DailyPriceBar.SELECT(DailyPriceBar.AllColumns).
		WHERE(
			AND(
				DailyPriceBar.Symbol.EQ(String(symbol)),
				DailyPriceBar.Date.BETWEEN(DateT(start), DateT(end)),
			),
		).
		ORDER_BY(DailyPriceBar.Date.ASC())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	results := []model.DailyPriceBar{}
	err := query.Query(db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list bars for %s: %w", symbol, err)
	}

	out := []domain.AssetPrice{}
	for _, b := range results {
		out = append(out, domain.AssetPrice{
			Symbol: b.Symbol,
			Price:  b.AdjClose,
			Date:   b.Date,
		})
	}

	return out, nil
}

func (h dailyBarRepositoryHandler) ListWindow(tx *sql.Tx, symbol string, n int) ([]model.DailyPriceBar, error) {
	query := DailyPriceBar.SELECT(DailyPriceBar.AllColumns).
		WHERE(DailyPriceBar.Symbol.EQ(String(symbol))).
		ORDER_BY(DailyPriceBar.Date.DESC()).
		LIMIT(int64(n))

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	results := []model.DailyPriceBar{}
	err := query.Query(db, &results)
	if err != nil {
		return nil, fmt.Errorf("failed to list bar window for %s: %w", symbol, err)
	}

	// flip back to chronological
	for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
		results[i], results[j] = results[j], results[i]
	}

	return results, nil
}
