package service

import (
	"testing"

	"harvestladder/internal/calculator"
	"harvestladder/internal/db/models/postgres/public/model"
	"harvestladder/internal/domain"
	mock_repository "harvestladder/internal/repository/mocks"
	"harvestladder/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_supersedeActivePlan(t *testing.T) {
	planID := uuid.New()

	newHandler := func(t *testing.T) (*planServiceHandler, *mock_repository.MockPlanInstanceRepository, *mock_repository.MockRungAlertRepository) {
		ctrl := gomock.NewController(t)
		planRepository := mock_repository.NewMockPlanInstanceRepository(ctrl)
		alertRepository := mock_repository.NewMockRungAlertRepository(ctrl)
		handler := &planServiceHandler{
			PlanInstanceRepository: planRepository,
			RungAlertRepository:    alertRepository,
		}
		return handler, planRepository, alertRepository
	}

	t.Run("no active plan leaves nothing to supersede", func(t *testing.T) {
		handler, planRepository, _ := newHandler(t)

		planRepository.EXPECT().GetActiveBySymbol(gomock.Nil(), "AAPL").Return(nil, nil)

		supersedes, err := handler.supersedeActivePlan(nil, "AAPL")
		require.NoError(t, err)
		require.Nil(t, supersedes)
	})

	t.Run("retires the active plan and kills its alerts", func(t *testing.T) {
		handler, planRepository, alertRepository := newHandler(t)

		planRepository.EXPECT().GetActiveBySymbol(gomock.Nil(), "AAPL").Return(&model.PlanInstance{
			PlanInstanceID: planID,
			Symbol:         "AAPL",
			Status:         model.PlanStatus_Active,
		}, nil)
		planRepository.EXPECT().SetStatus(gomock.Nil(), planID, model.PlanStatus_Superseded).Return(true, nil)
		alertRepository.EXPECT().DisableOthersForPlan(gomock.Nil(), planID, uuid.Nil).Return(nil)

		supersedes, err := handler.supersedeActivePlan(nil, "AAPL")
		require.NoError(t, err)
		require.Equal(t, &planID, supersedes)
	})

	t.Run("losing the status race is a concurrent modification", func(t *testing.T) {
		handler, planRepository, _ := newHandler(t)

		planRepository.EXPECT().GetActiveBySymbol(gomock.Nil(), "AAPL").Return(&model.PlanInstance{
			PlanInstanceID: planID,
			Symbol:         "AAPL",
			Status:         model.PlanStatus_Active,
		}, nil)
		// another writer already moved the plan out of ACTIVE
		planRepository.EXPECT().SetStatus(gomock.Nil(), planID, model.PlanStatus_Superseded).Return(false, nil)

		supersedes, err := handler.supersedeActivePlan(nil, "AAPL")
		require.ErrorIs(t, err, domain.ErrConcurrentModification)
		require.Nil(t, supersedes)
	})
}

func Test_assemblePlanInstance(t *testing.T) {
	ladder, err := calculator.BuildLadder(calculator.LadderInput{
		StartPrice:  100,
		StartShares: 100,
		H:           0.2,
		RDaily:      0.001,
		Iterations:  3,
	})
	require.NoError(t, err)

	asOf := util.NewDate(2024, 6, 3)

	t.Run("fixed threshold snapshot", func(t *testing.T) {
		in := CreatePlanInput{
			Symbol:   "AAPL",
			Position: &domain.Position{Shares: 100},
			Params: domain.PlanParameters{
				HistoryWindowDays: 90,
				NIterations:       3,
				Threshold:         domain.FixedThreshold(0.2),
			},
		}

		pi := assemblePlanInstance(in, ladder, 0.25, 0.2, asOf, nil)

		expected := model.PlanInstance{
			Symbol:            "AAPL",
			Status:            model.PlanStatus_Active,
			AsOfDate:          asOf,
			PriceAsOf:         100,
			SharesInitial:     100,
			V0Floor:           10000,
			RDaily:            0.001,
			AnnualVol:         0.25,
			HThreshold:        0.2,
			HistoryWindowDays: 90,
			NIterations:       3,
			FixedH:            floatPtr(0.2),
		}
		require.Empty(t, cmp.Diff(expected, pi))
	})

	t.Run("dynamic threshold snapshot carries bounds and supersession", func(t *testing.T) {
		prior := uuid.New()
		in := CreatePlanInput{
			Symbol:   "AAPL",
			Position: &domain.Position{Shares: 100},
			Params: domain.PlanParameters{
				HistoryWindowDays: 90,
				NIterations:       3,
				Threshold:         domain.DynamicThreshold(1.5, 0.1, 0.3),
			},
		}

		pi := assemblePlanInstance(in, ladder, 0.25, 0.3, asOf, &prior)

		require.Equal(t, floatPtr(1.5), pi.Alpha)
		require.Equal(t, floatPtr(0.1), pi.MinH)
		require.Equal(t, floatPtr(0.3), pi.MaxH)
		require.Nil(t, pi.FixedH)
		require.Equal(t, &prior, pi.SupersedesPlanID)
		require.Equal(t, 0.3, pi.HThreshold)
	})
}

func Test_assemblePlanRungs(t *testing.T) {
	ladder, err := calculator.BuildLadder(calculator.LadderInput{
		StartPrice:  100,
		StartShares: 100,
		H:           0.2,
		RDaily:      0.001,
		Iterations:  1,
	})
	require.NoError(t, err)

	planID := uuid.New()
	rungs := assemblePlanRungs(planID, ladder)
	require.Len(t, rungs, 1)

	expected := model.PlanRung{
		PlanInstanceID:           planID,
		RungIndex:                1,
		TargetPrice:              120,
		SharesBefore:             100,
		SharesSoldPlanned:        16,
		SharesAfterPlanned:       84,
		GrossHarvestPlanned:      1920,
		CumulativeHarvestPlanned: 1920,
		RemainingValuePlanned:    10080,
		TotalWealthPlanned:       12000,
		TotalReturnPlanned:       0.2,
		Status:                   model.RungStatus_Pending,
	}
	require.Empty(t, cmp.Diff(
		expected,
		rungs[0],
		cmpopts.EquateApprox(0, 1e-9),
		cmpopts.IgnoreFields(model.PlanRung{}, "ExpectedDays"),
	))
	require.NotNil(t, rungs[0].ExpectedDays)
}

func floatPtr(f float64) *float64 {
	return &f
}
