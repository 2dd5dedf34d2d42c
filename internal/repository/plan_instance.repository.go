package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"harvestladder/internal/db/models/postgres/public/model"
	"harvestladder/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type PlanInstanceRepository interface {
	Add(tx *sql.Tx, pi model.PlanInstance) (*model.PlanInstance, error)
	Get(planInstanceID uuid.UUID) (*model.PlanInstance, error)
	// GetActiveBySymbol returns nil without error when the symbol has no
	// active plan
	GetActiveBySymbol(tx *sql.Tx, symbol string) (*model.PlanInstance, error)
	List(filter PlanInstanceListFilter) ([]model.PlanInstance, error)
	// SetStatus transitions the plan out of ACTIVE. It reports whether a
	// row was actually updated, so callers can detect races on the same
	// plan.
	SetStatus(tx *sql.Tx, planInstanceID uuid.UUID, status model.PlanStatus) (bool, error)
}

type planInstanceRepositoryHandler struct {
	Db *sql.DB
}

func NewPlanInstanceRepository(db *sql.DB) PlanInstanceRepository {
	return planInstanceRepositoryHandler{Db: db}
}

func (h planInstanceRepositoryHandler) Add(tx *sql.Tx, pi model.PlanInstance) (*model.PlanInstance, error) {
	pi.CreatedAt = time.Now().UTC()
	pi.ModifiedAt = time.Now().UTC()
	query := table.PlanInstance.
		INSERT(table.PlanInstance.MutableColumns).
		MODEL(pi).
		RETURNING(table.PlanInstance.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.PlanInstance{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert plan instance: %w", err)
	}

	return &out, nil
}

func (h planInstanceRepositoryHandler) Get(planInstanceID uuid.UUID) (*model.PlanInstance, error) {
	query := table.PlanInstance.
		SELECT(table.PlanInstance.AllColumns).
		WHERE(table.PlanInstance.PlanInstanceID.EQ(postgres.UUID(planInstanceID)))

	out := model.PlanInstance{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan instance %s: %w", planInstanceID.String(), err)
	}

	return &out, nil
}

func (h planInstanceRepositoryHandler) GetActiveBySymbol(tx *sql.Tx, symbol string) (*model.PlanInstance, error) {
	query := table.PlanInstance.
		SELECT(table.PlanInstance.AllColumns).
		WHERE(
			postgres.AND(
				table.PlanInstance.Symbol.EQ(postgres.String(symbol)),
				table.PlanInstance.Status.EQ(postgres.String(model.PlanStatus_Active.String())),
			),
		)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.PlanInstance{}
	err := query.Query(db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get active plan for %s: %w", symbol, err)
	}

	return &out, nil
}

type PlanInstanceListFilter struct {
	Symbol *string
	Status *model.PlanStatus
}

func (h planInstanceRepositoryHandler) List(filter PlanInstanceListFilter) ([]model.PlanInstance, error) {
	query := table.PlanInstance.SELECT(table.PlanInstance.AllColumns)

	conditions := []postgres.BoolExpression{}
	if filter.Symbol != nil {
		conditions = append(conditions, table.PlanInstance.Symbol.EQ(postgres.String(*filter.Symbol)))
	}
	if filter.Status != nil {
		conditions = append(conditions, table.PlanInstance.Status.EQ(postgres.String(filter.Status.String())))
	}
	if len(conditions) > 0 {
		query = query.WHERE(postgres.AND(conditions...))
	}
	query = query.ORDER_BY(table.PlanInstance.CreatedAt.DESC())

	result := []model.PlanInstance{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan instances: %w", err)
	}

	return result, nil
}

func (h planInstanceRepositoryHandler) SetStatus(tx *sql.Tx, planInstanceID uuid.UUID, status model.PlanStatus) (bool, error) {
	query := table.PlanInstance.
		UPDATE(table.PlanInstance.Status, table.PlanInstance.ModifiedAt).
		SET(
			postgres.String(status.String()),
			postgres.TimestampzT(time.Now().UTC()),
		).
		WHERE(
			postgres.AND(
				table.PlanInstance.PlanInstanceID.EQ(postgres.UUID(planInstanceID)),
				table.PlanInstance.Status.EQ(postgres.String(model.PlanStatus_Active.String())),
			),
		)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	result, err := query.Exec(db)
	if err != nil {
		return false, fmt.Errorf("failed to set plan %s to %s: %w", planInstanceID.String(), status.String(), err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return n == 1, nil
}
