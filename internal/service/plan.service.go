package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"harvestladder/internal/calculator"
	"harvestladder/internal/db/models/postgres/public/model"
	"harvestladder/internal/domain"
	"harvestladder/internal/logger"
	"harvestladder/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlanService owns the plan lifecycle: building ladders into persisted
// plans, superseding the prior active plan for a symbol, and advancing
// rungs through PENDING -> ACHIEVED -> EXECUTED.
type PlanService interface {
	CreatePlan(ctx context.Context, in CreatePlanInput) (*PlanDetails, error)
	GetPlan(planInstanceID uuid.UUID) (*PlanDetails, error)
	ListPlans(filter repository.PlanInstanceListFilter) ([]model.PlanInstance, error)
	ArchivePlan(ctx context.Context, planInstanceID uuid.UUID) error
	AchieveRung(ctx context.Context, planRungID uuid.UUID, triggerPrice float64, triggeredAt time.Time) (*model.PlanRung, error)
	ExecuteRung(ctx context.Context, planRungID uuid.UUID, in ExecuteRungInput) (*model.PlanRung, error)
}

// PlanDetails is a plan row plus its ordered rungs.
type PlanDetails struct {
	Plan  model.PlanInstance
	Rungs []model.PlanRung
}

type CreatePlanInput struct {
	Symbol string
	// nil means search for the minimal feasible share count
	Position *domain.Position
	Params   domain.PlanParameters
	Notes    *string
}

type ExecuteRungInput struct {
	ExecutedPrice decimal.Decimal
	SharesSold    int32
	TaxPaid       decimal.Decimal
	ExecutedAt    time.Time
	Notes         *string
}

type planServiceHandler struct {
	Db                     *sql.DB
	TickerRepository       repository.TickerRepository
	DailyBarRepository     repository.DailyBarRepository
	PlanInstanceRepository repository.PlanInstanceRepository
	PlanRungRepository     repository.PlanRungRepository
	RungAlertRepository    repository.RungAlertRepository

	symbolLocksMu sync.Mutex
	symbolLocks   map[string]*sync.Mutex
}

func NewPlanService(
	db *sql.DB,
	tickerRepository repository.TickerRepository,
	dailyBarRepository repository.DailyBarRepository,
	planInstanceRepository repository.PlanInstanceRepository,
	planRungRepository repository.PlanRungRepository,
	rungAlertRepository repository.RungAlertRepository,
) PlanService {
	return &planServiceHandler{
		Db:                     db,
		TickerRepository:       tickerRepository,
		DailyBarRepository:     dailyBarRepository,
		PlanInstanceRepository: planInstanceRepository,
		PlanRungRepository:     planRungRepository,
		RungAlertRepository:    rungAlertRepository,
		symbolLocks:            map[string]*sync.Mutex{},
	}
}

// lockSymbol serializes plan builds per symbol within this process. The
// conditional UPDATE on supersession still guards against other writers.
func (h *planServiceHandler) lockSymbol(symbol string) *sync.Mutex {
	h.symbolLocksMu.Lock()
	defer h.symbolLocksMu.Unlock()

	lock, ok := h.symbolLocks[symbol]
	if !ok {
		lock = &sync.Mutex{}
		h.symbolLocks[symbol] = lock
	}
	return lock
}

func (h *planServiceHandler) CreatePlan(ctx context.Context, in CreatePlanInput) (*PlanDetails, error) {
	log := logger.FromContext(ctx)

	if in.Symbol == "" {
		return nil, fmt.Errorf("%w: symbol is required", domain.ErrInvalidParameters)
	}

	lock := h.lockSymbol(in.Symbol)
	lock.Lock()
	defer lock.Unlock()

	bars, err := h.DailyBarRepository.ListWindow(nil, in.Symbol, in.Params.HistoryWindowDays)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: no price history for %s", domain.ErrInsufficientHistory, in.Symbol)
	}

	closes := make([]float64, 0, len(bars))
	for _, b := range bars {
		closes = append(closes, b.AdjClose)
	}
	asOf := bars[len(bars)-1].Date
	startPrice := bars[len(bars)-1].AdjClose
	if in.Position != nil && in.Position.Price > 0 {
		startPrice = in.Position.Price
	}

	estimate, err := calculator.EstimateDriftAndVol(closes)
	if err != nil {
		return nil, err
	}

	hThreshold, err := calculator.ResolveThreshold(in.Params.Threshold, estimate.AnnualVol)
	if err != nil {
		return nil, err
	}

	var ladder *domain.Ladder
	if in.Position != nil {
		ladder, err = calculator.BuildLadder(calculator.LadderInput{
			StartPrice:  startPrice,
			StartShares: in.Position.Shares,
			H:           hThreshold,
			RDaily:      estimate.RDaily,
			Iterations:  in.Params.NIterations,
		})
	} else {
		ladder, err = calculator.FitInitialShares(startPrice, hThreshold, estimate.RDaily, in.Params.NIterations, in.Params.MaxS0)
	}
	if err != nil {
		return nil, err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = h.TickerRepository.GetOrCreate(tx, model.Ticker{Symbol: in.Symbol})
	if err != nil {
		return nil, err
	}

	supersedes, err := h.supersedeActivePlan(tx, in.Symbol)
	if err != nil {
		return nil, err
	}
	if supersedes != nil {
		log.Infof("superseding plan %s for %s", supersedes.String(), in.Symbol)
	}

	plan, err := h.PlanInstanceRepository.Add(tx, assemblePlanInstance(in, ladder, estimate.AnnualVol, hThreshold, asOf, supersedes))
	if err != nil {
		return nil, err
	}

	rungs, err := h.PlanRungRepository.AddMany(tx, assemblePlanRungs(plan.PlanInstanceID, ladder))
	if err != nil {
		return nil, err
	}

	if len(rungs) > 0 {
		err = h.refreshAlert(tx, *plan, rungs[0])
		if err != nil {
			return nil, err
		}
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit plan for %s: %w", in.Symbol, err)
	}

	return &PlanDetails{Plan: *plan, Rungs: rungs}, nil
}

// supersedeActivePlan retires the symbol's current ACTIVE plan, if any, and
// disables its alerts. The conditional status update guards against another
// writer; losing that race surfaces as ErrConcurrentModification.
func (h *planServiceHandler) supersedeActivePlan(tx *sql.Tx, symbol string) (*uuid.UUID, error) {
	existing, err := h.PlanInstanceRepository.GetActiveBySymbol(tx, symbol)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	updated, err := h.PlanInstanceRepository.SetStatus(tx, existing.PlanInstanceID, model.PlanStatus_Superseded)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: plan %s for %s changed underneath us", domain.ErrConcurrentModification, existing.PlanInstanceID.String(), symbol)
	}

	// uuid.Nil matches no rung, so all of the old plan's alerts go
	err = h.RungAlertRepository.DisableOthersForPlan(tx, existing.PlanInstanceID, uuid.Nil)
	if err != nil {
		return nil, err
	}

	return &existing.PlanInstanceID, nil
}

func (h *planServiceHandler) refreshAlert(tx *sql.Tx, plan model.PlanInstance, rung model.PlanRung) error {
	_, err := h.RungAlertRepository.UpsertForRung(tx, model.RungAlert{
		RungID:         rung.PlanRungID,
		PlanInstanceID: plan.PlanInstanceID,
		Symbol:         plan.Symbol,
		ThresholdPrice: rung.TargetPrice,
	})
	if err != nil {
		return err
	}

	return h.RungAlertRepository.DisableOthersForPlan(tx, plan.PlanInstanceID, rung.PlanRungID)
}

func (h *planServiceHandler) GetPlan(planInstanceID uuid.UUID) (*PlanDetails, error) {
	plan, err := h.PlanInstanceRepository.Get(planInstanceID)
	if err != nil {
		return nil, err
	}
	rungs, err := h.PlanRungRepository.ListForPlan(planInstanceID)
	if err != nil {
		return nil, err
	}

	return &PlanDetails{Plan: *plan, Rungs: rungs}, nil
}

func (h *planServiceHandler) ListPlans(filter repository.PlanInstanceListFilter) ([]model.PlanInstance, error) {
	return h.PlanInstanceRepository.List(filter)
}

func (h *planServiceHandler) ArchivePlan(ctx context.Context, planInstanceID uuid.UUID) error {
	tx, err := h.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	updated, err := h.PlanInstanceRepository.SetStatus(tx, planInstanceID, model.PlanStatus_Archived)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("%w: plan %s is not active", domain.ErrInvalidTransition, planInstanceID.String())
	}

	// uuid.Nil matches no rung, so every active alert on the plan goes
	err = h.RungAlertRepository.DisableOthersForPlan(tx, planInstanceID, uuid.Nil)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (h *planServiceHandler) AchieveRung(ctx context.Context, planRungID uuid.UUID, triggerPrice float64, triggeredAt time.Time) (*model.PlanRung, error) {
	if triggerPrice <= 0 {
		return nil, fmt.Errorf("%w: trigger price must be > 0, got %f", domain.ErrNonPositivePrice, triggerPrice)
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	updated, err := h.PlanRungRepository.MarkAchieved(tx, planRungID, triggerPrice, triggeredAt)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: rung %s is not pending", domain.ErrInvalidTransition, planRungID.String())
	}

	alert, err := h.RungAlertRepository.GetActiveForRung(tx, planRungID)
	if err != nil {
		return nil, err
	}
	if alert != nil {
		_, err = h.RungAlertRepository.MarkFired(tx, alert.RungAlertID, triggerPrice, triggeredAt)
		if err != nil {
			return nil, err
		}
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit rung achievement: %w", err)
	}

	return h.PlanRungRepository.Get(planRungID)
}

func (h *planServiceHandler) ExecuteRung(ctx context.Context, planRungID uuid.UUID, in ExecuteRungInput) (*model.PlanRung, error) {
	if in.SharesSold <= 0 {
		return nil, fmt.Errorf("%w: shares sold must be > 0, got %d", domain.ErrInvalidParameters, in.SharesSold)
	}
	if !in.ExecutedPrice.IsPositive() {
		return nil, fmt.Errorf("%w: executed price must be > 0, got %s", domain.ErrNonPositivePrice, in.ExecutedPrice.String())
	}

	gross := in.ExecutedPrice.Mul(decimal.NewFromInt32(in.SharesSold))
	net := gross.Sub(in.TaxPaid)

	rung, err := h.PlanRungRepository.Get(planRungID)
	if err != nil {
		return nil, err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	updated, err := h.PlanRungRepository.MarkExecuted(tx, planRungID, repository.RungExecution{
		ExecutedAt:       in.ExecutedAt,
		ExecutedPrice:    in.ExecutedPrice.InexactFloat64(),
		SharesSoldActual: in.SharesSold,
		TaxPaidActual:    in.TaxPaid.InexactFloat64(),
		NetHarvestActual: net.InexactFloat64(),
		Notes:            in.Notes,
	})
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: rung %s is not achieved", domain.ErrInvalidTransition, planRungID.String())
	}

	// point the plan's alert at whatever pending rung is next
	plan, err := h.PlanInstanceRepository.Get(rung.PlanInstanceID)
	if err != nil {
		return nil, err
	}
	next, err := h.PlanRungRepository.NextPending(tx, rung.PlanInstanceID)
	if err != nil {
		return nil, err
	}
	if next != nil {
		err = h.refreshAlert(tx, *plan, *next)
	} else {
		err = h.RungAlertRepository.DisableOthersForPlan(tx, rung.PlanInstanceID, uuid.Nil)
	}
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit rung execution: %w", err)
	}

	return h.PlanRungRepository.Get(planRungID)
}

func assemblePlanInstance(in CreatePlanInput, ladder *domain.Ladder, annualVol, hThreshold float64, asOf time.Time, supersedes *uuid.UUID) model.PlanInstance {
	pi := model.PlanInstance{
		Symbol:            in.Symbol,
		Status:            model.PlanStatus_Active,
		AsOfDate:          asOf,
		PriceAsOf:         ladder.StartPrice,
		SharesInitial:     int32(ladder.StartShares),
		V0Floor:           ladder.V0,
		RDaily:            ladder.RDaily,
		AnnualVol:         annualVol,
		HThreshold:        hThreshold,
		HistoryWindowDays: int32(in.Params.HistoryWindowDays),
		NIterations:       int32(in.Params.NIterations),
		TerminatedEarly:   ladder.TerminatedEarly,
		SupersedesPlanID:  supersedes,
		Notes:             in.Notes,
	}

	switch in.Params.Threshold.Mode {
	case domain.ThresholdModeFixed:
		fixedH := in.Params.Threshold.FixedH
		pi.FixedH = &fixedH
	case domain.ThresholdModeDynamic:
		alpha := in.Params.Threshold.Alpha
		minH := in.Params.Threshold.MinH
		maxH := in.Params.Threshold.MaxH
		pi.Alpha = &alpha
		pi.MinH = &minH
		pi.MaxH = &maxH
	}

	return pi
}

func assemblePlanRungs(planInstanceID uuid.UUID, ladder *domain.Ladder) []model.PlanRung {
	out := make([]model.PlanRung, 0, len(ladder.Rungs))
	for _, r := range ladder.Rungs {
		out = append(out, model.PlanRung{
			PlanInstanceID:           planInstanceID,
			RungIndex:                int32(r.Index),
			TargetPrice:              r.TargetPrice,
			SharesBefore:             int32(r.SharesBefore),
			SharesSoldPlanned:        int32(r.SharesSold),
			SharesAfterPlanned:       int32(r.SharesAfter),
			ExpectedDays:             r.ExpectedDays,
			GrossHarvestPlanned:      r.GrossHarvest,
			CumulativeHarvestPlanned: r.CumulativeHarvest,
			RemainingValuePlanned:    r.RemainingValue,
			TotalWealthPlanned:       r.TotalWealth,
			TotalReturnPlanned:       r.TotalReturn,
			Status:                   model.RungStatus_Pending,
		})
	}
	return out
}
