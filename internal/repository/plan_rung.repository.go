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

type PlanRungRepository interface {
	AddMany(tx *sql.Tx, rungs []model.PlanRung) ([]model.PlanRung, error)
	Get(planRungID uuid.UUID) (*model.PlanRung, error)
	ListForPlan(planInstanceID uuid.UUID) ([]model.PlanRung, error)
	// NextPending returns the lowest-index PENDING rung, or nil when the
	// plan has none left
	NextPending(tx *sql.Tx, planInstanceID uuid.UUID) (*model.PlanRung, error)
	MarkAchieved(tx *sql.Tx, planRungID uuid.UUID, triggerPrice float64, triggeredAt time.Time) (bool, error)
	MarkExecuted(tx *sql.Tx, planRungID uuid.UUID, actuals RungExecution) (bool, error)
}

type RungExecution struct {
	ExecutedAt       time.Time
	ExecutedPrice    float64
	SharesSoldActual int32
	TaxPaidActual    float64
	NetHarvestActual float64
	Notes            *string
}

type planRungRepositoryHandler struct {
	Db *sql.DB
}

func NewPlanRungRepository(db *sql.DB) PlanRungRepository {
	return planRungRepositoryHandler{Db: db}
}

func (h planRungRepositoryHandler) AddMany(tx *sql.Tx, rungs []model.PlanRung) ([]model.PlanRung, error) {
	if len(rungs) == 0 {
		return []model.PlanRung{}, nil
	}

	now := time.Now().UTC()
	for i := range rungs {
		rungs[i].CreatedAt = now
		rungs[i].ModifiedAt = now
	}

	query := table.PlanRung.
		INSERT(table.PlanRung.MutableColumns).
		MODELS(rungs).
		RETURNING(table.PlanRung.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := []model.PlanRung{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert plan rungs: %w", err)
	}

	return out, nil
}

func (h planRungRepositoryHandler) Get(planRungID uuid.UUID) (*model.PlanRung, error) {
	query := table.PlanRung.
		SELECT(table.PlanRung.AllColumns).
		WHERE(table.PlanRung.PlanRungID.EQ(postgres.UUID(planRungID)))

	out := model.PlanRung{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan rung %s: %w", planRungID.String(), err)
	}

	return &out, nil
}

func (h planRungRepositoryHandler) ListForPlan(planInstanceID uuid.UUID) ([]model.PlanRung, error) {
	query := table.PlanRung.
		SELECT(table.PlanRung.AllColumns).
		WHERE(table.PlanRung.PlanInstanceID.EQ(postgres.UUID(planInstanceID))).
		ORDER_BY(table.PlanRung.RungIndex.ASC())

	out := []model.PlanRung{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list rungs for plan %s: %w", planInstanceID.String(), err)
	}

	return out, nil
}

func (h planRungRepositoryHandler) NextPending(tx *sql.Tx, planInstanceID uuid.UUID) (*model.PlanRung, error) {
	query := table.PlanRung.
		SELECT(table.PlanRung.AllColumns).
		WHERE(
			postgres.AND(
				table.PlanRung.PlanInstanceID.EQ(postgres.UUID(planInstanceID)),
				table.PlanRung.Status.EQ(postgres.String(model.RungStatus_Pending.String())),
			),
		).
		ORDER_BY(table.PlanRung.RungIndex.ASC()).
		LIMIT(1)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.PlanRung{}
	err := query.Query(db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get next pending rung for plan %s: %w", planInstanceID.String(), err)
	}

	return &out, nil
}

func (h planRungRepositoryHandler) MarkAchieved(tx *sql.Tx, planRungID uuid.UUID, triggerPrice float64, triggeredAt time.Time) (bool, error) {
	query := table.PlanRung.
		UPDATE(
			table.PlanRung.Status,
			table.PlanRung.TriggerPrice,
			table.PlanRung.TriggeredAt,
			table.PlanRung.ModifiedAt,
		).
		SET(
			postgres.String(model.RungStatus_Achieved.String()),
			postgres.Float(triggerPrice),
			postgres.TimestampzT(triggeredAt),
			postgres.TimestampzT(time.Now().UTC()),
		).
		WHERE(
			postgres.AND(
				table.PlanRung.PlanRungID.EQ(postgres.UUID(planRungID)),
				table.PlanRung.Status.EQ(postgres.String(model.RungStatus_Pending.String())),
			),
		)

	return h.execOne(tx, query, "mark rung achieved")
}

func (h planRungRepositoryHandler) MarkExecuted(tx *sql.Tx, planRungID uuid.UUID, actuals RungExecution) (bool, error) {
	notes := postgres.CAST(postgres.NULL).AS_TEXT()
	if actuals.Notes != nil {
		notes = postgres.String(*actuals.Notes)
	}

	query := table.PlanRung.
		UPDATE(
			table.PlanRung.Status,
			table.PlanRung.ExecutedAt,
			table.PlanRung.ExecutedPrice,
			table.PlanRung.SharesSoldActual,
			table.PlanRung.TaxPaidActual,
			table.PlanRung.NetHarvestActual,
			table.PlanRung.Notes,
			table.PlanRung.ModifiedAt,
		).
		SET(
			postgres.String(model.RungStatus_Executed.String()),
			postgres.TimestampzT(actuals.ExecutedAt),
			postgres.Float(actuals.ExecutedPrice),
			postgres.Int32(actuals.SharesSoldActual),
			postgres.Float(actuals.TaxPaidActual),
			postgres.Float(actuals.NetHarvestActual),
			notes,
			postgres.TimestampzT(time.Now().UTC()),
		).
		WHERE(
			postgres.AND(
				table.PlanRung.PlanRungID.EQ(postgres.UUID(planRungID)),
				table.PlanRung.Status.EQ(postgres.String(model.RungStatus_Achieved.String())),
			),
		)

	return h.execOne(tx, query, "mark rung executed")
}

func (h planRungRepositoryHandler) execOne(tx *sql.Tx, query postgres.UpdateStatement, action string) (bool, error) {
	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	result, err := query.Exec(db)
	if err != nil {
		return false, fmt.Errorf("failed to %s: %w", action, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return n == 1, nil
}
