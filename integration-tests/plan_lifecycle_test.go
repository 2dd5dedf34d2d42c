package integration_tests

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"testing"
	"time"

	"harvestladder/internal"
	"harvestladder/internal/db/models/postgres/public/model"
	"harvestladder/internal/db/models/postgres/public/table"
	"harvestladder/internal/domain"
	"harvestladder/internal/repository"
	"harvestladder/internal/service"

	"github.com/gocarina/gocsv"
	"github.com/go-jet/jet/v2/postgres"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func seedPrices(db *sql.DB) error {
	f, err := os.Open("sample_prices.csv")
	if err != nil {
		return err
	}
	defer f.Close()

	type Row struct {
		Date     string  `csv:"date"`
		Symbol   string  `csv:"symbol"`
		Close    float64 `csv:"close"`
		AdjClose float64 `csv:"adj_close"`
	}
	rows := []Row{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return err
	}

	models := []model.DailyPriceBar{}
	for _, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return err
		}
		models = append(models, model.DailyPriceBar{
			Date:      date,
			Symbol:    row.Symbol,
			Close:     row.Close,
			AdjClose:  row.AdjClose,
			CreatedAt: time.Now().UTC(),
		})
	}

	query := table.DailyPriceBar.INSERT(table.DailyPriceBar.AllColumns).MODELS(models)
	_, err = query.Exec(db)
	return err
}

func cleanup(db *sql.DB) error {
	if _, err := table.RungAlert.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.PlanRung.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.PlanInstance.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.DailyPriceBar.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.Ticker.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.APIRequest.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	return nil
}

func Test_planLifecycle(t *testing.T) {
	if !strings.EqualFold(os.Getenv("HARVEST_ENV"), "test") {
		t.Skip("set HARVEST_ENV=test and run the test db to enable")
	}

	db, err := internal.NewTestDb()
	require.NoError(t, err)
	require.NoError(t, cleanup(db))
	require.NoError(t, seedPrices(db))

	tickerRepository := repository.NewTickerRepository(db)
	dailyBarRepository := repository.NewDailyBarRepository(db)
	planInstanceRepository := repository.NewPlanInstanceRepository(db)
	planRungRepository := repository.NewPlanRungRepository(db)
	rungAlertRepository := repository.NewRungAlertRepository(db)

	notificationService := service.NewNotificationService(nil, nil, "")
	planService := service.NewPlanService(db, tickerRepository, dailyBarRepository, planInstanceRepository, planRungRepository, rungAlertRepository)
	scannerService := service.NewScannerService(db, rungAlertRepository, planRungRepository, NewMockAlpacaRepositoryForTests(), notificationService)

	ctx := context.Background()

	details, err := planService.CreatePlan(ctx, service.CreatePlanInput{
		Symbol:   "AAPL",
		Position: &domain.Position{Shares: 100},
		Params: domain.PlanParameters{
			HistoryWindowDays: 90,
			NIterations:       3,
			Threshold:         domain.FixedThreshold(0.2),
		},
	})
	require.NoError(t, err)
	require.Equal(t, model.PlanStatus_Active, details.Plan.Status)
	require.Nil(t, details.Plan.SupersedesPlanID)
	require.Len(t, details.Rungs, 3)
	require.InDelta(t, 110.46*1.2, details.Rungs[0].TargetPrice, 0.01)

	// the alert points at the first rung
	alert, err := rungAlertRepository.GetActiveForRung(nil, details.Rungs[0].PlanRungID)
	require.NoError(t, err)
	require.NotNil(t, alert)
	require.InDelta(t, details.Rungs[0].TargetPrice, alert.ThresholdPrice, 1e-9)

	// rebuilding supersedes the first plan
	details2, err := planService.CreatePlan(ctx, service.CreatePlanInput{
		Symbol:   "AAPL",
		Position: &domain.Position{Shares: 100},
		Params: domain.PlanParameters{
			HistoryWindowDays: 90,
			NIterations:       3,
			Threshold:         domain.FixedThreshold(0.2),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, details2.Plan.SupersedesPlanID)
	require.Equal(t, details.Plan.PlanInstanceID, *details2.Plan.SupersedesPlanID)

	superseded, err := planInstanceRepository.Get(details.Plan.PlanInstanceID)
	require.NoError(t, err)
	require.Equal(t, model.PlanStatus_Superseded, superseded.Status)

	// archiving a superseded plan is rejected
	err = planService.ArchivePlan(ctx, details.Plan.PlanInstanceID)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	// the mock quote (135.25) is above rung 1's target, so the scan hits
	hits, err := scannerService.ScanAndNotify(ctx)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.Equal(t, "AAPL", hits[0].Symbol)
	require.Equal(t, details2.Rungs[0].PlanRungID, hits[0].RungID)

	firedAlert, err := rungAlertRepository.GetActiveForRung(nil, details2.Rungs[0].PlanRungID)
	require.NoError(t, err)
	require.Nil(t, firedAlert)

	// advance rung 1 through its lifecycle
	rung, err := planService.AchieveRung(ctx, details2.Rungs[0].PlanRungID, hits[0].CurrentPrice, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, model.RungStatus_Achieved, rung.Status)

	// achieved rungs can't be achieved again
	_, err = planService.AchieveRung(ctx, details2.Rungs[0].PlanRungID, hits[0].CurrentPrice, time.Now().UTC())
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	rung, err = planService.ExecuteRung(ctx, details2.Rungs[0].PlanRungID, service.ExecuteRungInput{
		ExecutedPrice: decimal.NewFromFloat(135.25),
		SharesSold:    rung.SharesSoldPlanned,
		TaxPaid:       decimal.NewFromFloat(100),
		ExecutedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	require.Equal(t, model.RungStatus_Executed, rung.Status)
	require.NotNil(t, rung.NetHarvestActual)
	require.InDelta(t, 135.25*float64(rung.SharesSoldPlanned)-100, *rung.NetHarvestActual, 0.01)

	// the alert has moved on to rung 2
	nextAlert, err := rungAlertRepository.GetActiveForRung(nil, details2.Rungs[1].PlanRungID)
	require.NoError(t, err)
	require.NotNil(t, nextAlert)

	// executed is terminal
	_, err = planService.ExecuteRung(ctx, details2.Rungs[0].PlanRungID, service.ExecuteRungInput{
		ExecutedPrice: decimal.NewFromFloat(140),
		SharesSold:    1,
		TaxPaid:       decimal.Zero,
		ExecutedAt:    time.Now().UTC(),
	})
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	// archiving the live plan works and kills its alert
	require.NoError(t, planService.ArchivePlan(ctx, details2.Plan.PlanInstanceID))
	archived, err := planInstanceRepository.Get(details2.Plan.PlanInstanceID)
	require.NoError(t, err)
	require.Equal(t, model.PlanStatus_Archived, archived.Status)

	goneAlert, err := rungAlertRepository.GetActiveForRung(nil, details2.Rungs[1].PlanRungID)
	require.NoError(t, err)
	require.Nil(t, goneAlert)
}
