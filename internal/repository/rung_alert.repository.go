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

// RungAlertRepository maintains the one-active-alert-per-plan invariant:
// each plan keeps a single ACTIVE alert, pointed at its next pending rung.
type RungAlertRepository interface {
	UpsertForRung(tx *sql.Tx, alert model.RungAlert) (*model.RungAlert, error)
	DisableOthersForPlan(tx *sql.Tx, planInstanceID, keepRungID uuid.UUID) error
	GetActiveForRung(tx *sql.Tx, rungID uuid.UUID) (*model.RungAlert, error)
	MarkFired(tx *sql.Tx, rungAlertID uuid.UUID, firedPrice float64, firedAt time.Time) (bool, error)
	ListActive() ([]model.RungAlert, error)
}

type rungAlertRepositoryHandler struct {
	Db *sql.DB
}

func NewRungAlertRepository(db *sql.DB) RungAlertRepository {
	return rungAlertRepositoryHandler{Db: db}
}

func (h rungAlertRepositoryHandler) UpsertForRung(tx *sql.Tx, alert model.RungAlert) (*model.RungAlert, error) {
	alert.CreatedAt = time.Now().UTC()
	alert.Status = model.AlertStatus_Active

	query := table.RungAlert.
		INSERT(table.RungAlert.MutableColumns).
		MODEL(alert).
		ON_CONFLICT(table.RungAlert.RungID).
		DO_UPDATE(
			postgres.SET(
				table.RungAlert.ThresholdPrice.SET(table.RungAlert.EXCLUDED.ThresholdPrice),
				table.RungAlert.Status.SET(table.RungAlert.EXCLUDED.Status),
			),
		).
		RETURNING(table.RungAlert.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.RungAlert{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert alert for rung %s: %w", alert.RungID.String(), err)
	}

	return &out, nil
}

func (h rungAlertRepositoryHandler) DisableOthersForPlan(tx *sql.Tx, planInstanceID, keepRungID uuid.UUID) error {
	query := table.RungAlert.
		UPDATE(table.RungAlert.Status).
		SET(postgres.String(model.AlertStatus_Disabled.String())).
		WHERE(
			postgres.AND(
				table.RungAlert.PlanInstanceID.EQ(postgres.UUID(planInstanceID)),
				table.RungAlert.Status.EQ(postgres.String(model.AlertStatus_Active.String())),
				table.RungAlert.RungID.NOT_EQ(postgres.UUID(keepRungID)),
			),
		)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to disable alerts for plan %s: %w", planInstanceID.String(), err)
	}

	return nil
}

func (h rungAlertRepositoryHandler) GetActiveForRung(tx *sql.Tx, rungID uuid.UUID) (*model.RungAlert, error) {
	query := table.RungAlert.
		SELECT(table.RungAlert.AllColumns).
		WHERE(
			postgres.AND(
				table.RungAlert.RungID.EQ(postgres.UUID(rungID)),
				table.RungAlert.Status.EQ(postgres.String(model.AlertStatus_Active.String())),
			),
		)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.RungAlert{}
	err := query.Query(db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get active alert for rung %s: %w", rungID.String(), err)
	}

	return &out, nil
}

func (h rungAlertRepositoryHandler) MarkFired(tx *sql.Tx, rungAlertID uuid.UUID, firedPrice float64, firedAt time.Time) (bool, error) {
	query := table.RungAlert.
		UPDATE(
			table.RungAlert.Status,
			table.RungAlert.FiredPrice,
			table.RungAlert.FiredAt,
		).
		SET(
			postgres.String(model.AlertStatus_Fired.String()),
			postgres.Float(firedPrice),
			postgres.TimestampzT(firedAt),
		).
		WHERE(
			postgres.AND(
				table.RungAlert.RungAlertID.EQ(postgres.UUID(rungAlertID)),
				table.RungAlert.Status.EQ(postgres.String(model.AlertStatus_Active.String())),
			),
		)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	result, err := query.Exec(db)
	if err != nil {
		return false, fmt.Errorf("failed to mark alert fired: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return n == 1, nil
}

func (h rungAlertRepositoryHandler) ListActive() ([]model.RungAlert, error) {
	query := table.RungAlert.
		SELECT(table.RungAlert.AllColumns).
		WHERE(table.RungAlert.Status.EQ(postgres.String(model.AlertStatus_Active.String())))

	out := []model.RungAlert{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list active alerts: %w", err)
	}

	return out, nil
}
