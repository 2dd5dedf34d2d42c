package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"harvestladder/internal/db/models/postgres/public/model"
	"harvestladder/internal/domain"
	mock_repository "harvestladder/internal/repository/mocks"
	"harvestladder/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_notificationServiceHandler_GeneratePlanSummaryEmail(t *testing.T) {
	handler := &notificationServiceHandler{}

	days := 35.0
	details := PlanDetails{
		Plan: model.PlanInstance{
			PlanInstanceID: uuid.New(),
			Symbol:         "AAPL",
			Status:         model.PlanStatus_Active,
			AsOfDate:       util.NewDate(2024, 6, 3),
			PriceAsOf:      100,
			SharesInitial:  100,
			V0Floor:        10000,
			HThreshold:     0.2,
			AnnualVol:      0.25,
		},
		Rungs: []model.PlanRung{
			{
				RungIndex:                1,
				TargetPrice:              120,
				SharesSoldPlanned:        16,
				SharesAfterPlanned:       84,
				GrossHarvestPlanned:      1920,
				CumulativeHarvestPlanned: 1920,
				ExpectedDays:             &days,
				Status:                   model.RungStatus_Pending,
			},
			{
				RungIndex:          2,
				TargetPrice:        142.86,
				SharesSoldPlanned:  14,
				SharesAfterPlanned: 70,
				Status:             model.RungStatus_Pending,
			},
		},
	}

	subject, body := handler.GeneratePlanSummaryEmail(details)

	require.Equal(t, "Harvest plan for AAPL (2 rungs)", subject)
	for _, want := range []string{
		"Harvest plan for AAPL",
		"2024-06-03",
		"$120.00",
		"<td>16</td>",
		"<td>84</td>",
		"$1920.00",
		"<td>35</td>",
	} {
		require.True(t, strings.Contains(body, want), "body missing %q:\n%s", want, body)
	}

	// rung with no reachable target renders a dash
	require.True(t, strings.Contains(body, "<td>-</td>"))
}

func Test_notificationServiceHandler_SendPlanSummaryEmail(t *testing.T) {
	details := PlanDetails{
		Plan: model.PlanInstance{
			PlanInstanceID: uuid.New(),
			Symbol:         "AAPL",
			Status:         model.PlanStatus_Active,
			AsOfDate:       util.NewDate(2024, 6, 3),
			PriceAsOf:      100,
			SharesInitial:  100,
			V0Floor:        10000,
			HThreshold:     0.2,
			AnnualVol:      0.25,
		},
		Rungs: []model.PlanRung{
			{RungIndex: 1, TargetPrice: 120, SharesSoldPlanned: 16, SharesAfterPlanned: 84, Status: model.RungStatus_Pending},
		},
	}

	t.Run("no destination configured drops silently", func(t *testing.T) {
		handler := &notificationServiceHandler{}
		err := handler.SendPlanSummaryEmail(context.Background(), details)
		require.NoError(t, err)
	})

	t.Run("sends the rendered summary to the configured address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emailRepository := mock_repository.NewMockEmailRepository(ctrl)
		handler := &notificationServiceHandler{
			EmailRepository: emailRepository,
			ToEmail:         "dev@example.com",
		}

		subject, body := handler.GeneratePlanSummaryEmail(details)
		emailRepository.EXPECT().SendEmail("dev@example.com", subject, body).Return(nil)

		err := handler.SendPlanSummaryEmail(context.Background(), details)
		require.NoError(t, err)
	})

	t.Run("delivery failure names the symbol", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emailRepository := mock_repository.NewMockEmailRepository(ctrl)
		handler := &notificationServiceHandler{
			EmailRepository: emailRepository,
			ToEmail:         "dev@example.com",
		}

		emailRepository.EXPECT().SendEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(errSESDown)

		err := handler.SendPlanSummaryEmail(context.Background(), details)
		require.ErrorIs(t, err, errSESDown)
		require.Contains(t, err.Error(), "AAPL")
	})
}

var errSESDown = fmt.Errorf("ses unavailable")

func Test_notificationServiceHandler_NotifyHits(t *testing.T) {
	t.Run("no hits is a no-op", func(t *testing.T) {
		handler := &notificationServiceHandler{}
		err := handler.NotifyHits(context.Background(), nil)
		require.NoError(t, err)
	})

	t.Run("missing discord client drops silently", func(t *testing.T) {
		handler := &notificationServiceHandler{}
		err := handler.NotifyHits(context.Background(), []domain.HarvestHit{
			{Symbol: "AAPL", RungIndex: 1, TargetPrice: 120, CurrentPrice: 121, SharesToSell: 16},
		})
		require.NoError(t, err)
	})
}
