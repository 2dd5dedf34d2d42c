package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"harvestladder/internal/db/models/postgres/public/model"
	"harvestladder/internal/db/models/postgres/public/table"
	"harvestladder/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type TickerRepository interface {
	GetBySymbol(symbol string) (*model.Ticker, error)
	List() ([]model.Ticker, error)
	GetOrCreate(tx *sql.Tx, t model.Ticker) (*model.Ticker, error)
}

type tickerRepositoryHandler struct {
	Db *sql.DB
}

func NewTickerRepository(db *sql.DB) TickerRepository {
	return tickerRepositoryHandler{Db: db}
}

func (h tickerRepositoryHandler) List() ([]model.Ticker, error) {
	query := table.Ticker.SELECT(table.Ticker.AllColumns)
	result := []model.Ticker{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickers: %w", err)
	}

	return result, nil
}

func (h tickerRepositoryHandler) GetBySymbol(symbol string) (*model.Ticker, error) {
	query := table.Ticker.
		SELECT(table.Ticker.AllColumns).
		WHERE(table.Ticker.Symbol.EQ(postgres.String(symbol)))

	out := model.Ticker{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSymbolNotFound, symbol)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get ticker %s: %w", symbol, err)
	}

	return &out, nil
}

func (h tickerRepositoryHandler) GetOrCreate(tx *sql.Tx, t model.Ticker) (*model.Ticker, error) {
	query := table.Ticker.
		SELECT(table.Ticker.AllColumns).
		WHERE(table.Ticker.Symbol.EQ(postgres.String(t.Symbol)))

	out := model.Ticker{}
	err := query.Query(tx, &out)
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to get ticker %s: %w", t.Symbol, err)
	}

	t.CreatedAt = time.Now().UTC()
	insert := table.Ticker.
		INSERT(table.Ticker.MutableColumns).
		MODEL(t).
		RETURNING(table.Ticker.AllColumns)

	err = insert.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ticker %s: %w", t.Symbol, err)
	}

	return &out, nil
}
