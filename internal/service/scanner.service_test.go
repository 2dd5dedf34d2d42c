package service

import (
	"context"
	"testing"

	"harvestladder/internal/db/models/postgres/public/model"
	"harvestladder/internal/domain"
	mock_repository "harvestladder/internal/repository/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_scannerServiceHandler_Scan(t *testing.T) {
	planID := uuid.New()
	rungID := uuid.New()

	newHandler := func(t *testing.T) (*scannerServiceHandler, *mock_repository.MockRungAlertRepository, *mock_repository.MockPlanRungRepository) {
		ctrl := gomock.NewController(t)
		alertRepository := mock_repository.NewMockRungAlertRepository(ctrl)
		rungRepository := mock_repository.NewMockPlanRungRepository(ctrl)
		handler := &scannerServiceHandler{
			RungAlertRepository: alertRepository,
			PlanRungRepository:  rungRepository,
		}
		return handler, alertRepository, rungRepository
	}

	t.Run("price at threshold is a hit", func(t *testing.T) {
		handler, alertRepository, rungRepository := newHandler(t)

		alertRepository.EXPECT().ListActive().Return([]model.RungAlert{
			{
				RungAlertID:    uuid.New(),
				RungID:         rungID,
				PlanInstanceID: planID,
				Symbol:         "AAPL",
				ThresholdPrice: 120,
				Status:         model.AlertStatus_Active,
			},
		}, nil)
		rungRepository.EXPECT().Get(rungID).Return(&model.PlanRung{
			PlanRungID:        rungID,
			PlanInstanceID:    planID,
			RungIndex:         1,
			TargetPrice:       120,
			SharesSoldPlanned: 16,
			Status:            model.RungStatus_Pending,
		}, nil)

		hits, err := handler.Scan(context.Background(), map[string]float64{"AAPL": 120})
		require.NoError(t, err)

		expected := []domain.HarvestHit{
			{
				Symbol:         "AAPL",
				PlanInstanceID: planID,
				RungID:         rungID,
				RungIndex:      1,
				TargetPrice:    120,
				CurrentPrice:   120,
				SharesToSell:   16,
			},
		}
		require.Empty(t, cmp.Diff(expected, hits))
	})

	t.Run("price just below threshold is not a hit", func(t *testing.T) {
		handler, alertRepository, _ := newHandler(t)

		alertRepository.EXPECT().ListActive().Return([]model.RungAlert{
			{
				RungID:         rungID,
				PlanInstanceID: planID,
				Symbol:         "AAPL",
				ThresholdPrice: 120,
				Status:         model.AlertStatus_Active,
			},
		}, nil)

		hits, err := handler.Scan(context.Background(), map[string]float64{"AAPL": 119.99})
		require.NoError(t, err)
		require.Empty(t, hits)
	})

	t.Run("missing quote skips the alert", func(t *testing.T) {
		handler, alertRepository, _ := newHandler(t)

		alertRepository.EXPECT().ListActive().Return([]model.RungAlert{
			{
				RungID:         rungID,
				PlanInstanceID: planID,
				Symbol:         "MSFT",
				ThresholdPrice: 300,
				Status:         model.AlertStatus_Active,
			},
		}, nil)

		hits, err := handler.Scan(context.Background(), map[string]float64{"AAPL": 999})
		require.NoError(t, err)
		require.Empty(t, hits)
	})

	t.Run("stale alert on a non-pending rung is ignored", func(t *testing.T) {
		handler, alertRepository, rungRepository := newHandler(t)

		alertRepository.EXPECT().ListActive().Return([]model.RungAlert{
			{
				RungID:         rungID,
				PlanInstanceID: planID,
				Symbol:         "AAPL",
				ThresholdPrice: 120,
				Status:         model.AlertStatus_Active,
			},
		}, nil)
		rungRepository.EXPECT().Get(rungID).Return(&model.PlanRung{
			PlanRungID: rungID,
			Status:     model.RungStatus_Executed,
		}, nil)

		hits, err := handler.Scan(context.Background(), map[string]float64{"AAPL": 500})
		require.NoError(t, err)
		require.Empty(t, hits)
	})

	t.Run("hits come back sorted by symbol", func(t *testing.T) {
		handler, alertRepository, rungRepository := newHandler(t)

		rungA := uuid.New()
		rungB := uuid.New()
		alertRepository.EXPECT().ListActive().Return([]model.RungAlert{
			{RungID: rungB, PlanInstanceID: planID, Symbol: "MSFT", ThresholdPrice: 10, Status: model.AlertStatus_Active},
			{RungID: rungA, PlanInstanceID: planID, Symbol: "AAPL", ThresholdPrice: 10, Status: model.AlertStatus_Active},
		}, nil)
		rungRepository.EXPECT().Get(rungB).Return(&model.PlanRung{PlanRungID: rungB, Status: model.RungStatus_Pending, TargetPrice: 10}, nil)
		rungRepository.EXPECT().Get(rungA).Return(&model.PlanRung{PlanRungID: rungA, Status: model.RungStatus_Pending, TargetPrice: 10}, nil)

		hits, err := handler.Scan(context.Background(), map[string]float64{"AAPL": 20, "MSFT": 20})
		require.NoError(t, err)
		require.Len(t, hits, 2)
		require.Equal(t, "AAPL", hits[0].Symbol)
		require.Equal(t, "MSFT", hits[1].Symbol)
	})
}
