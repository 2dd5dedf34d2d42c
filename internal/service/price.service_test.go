package service

import (
	"fmt"
	"testing"

	"harvestladder/internal/db/models/postgres/public/model"
	"harvestladder/internal/domain"
	mock_repository "harvestladder/internal/repository/mocks"
	"harvestladder/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_priceServiceHandler_HistoryWindow(t *testing.T) {
	newHandler := func(t *testing.T) (*priceServiceHandler, *mock_repository.MockTickerRepository, *mock_repository.MockDailyBarRepository) {
		ctrl := gomock.NewController(t)
		tickerRepository := mock_repository.NewMockTickerRepository(ctrl)
		dailyBarRepository := mock_repository.NewMockDailyBarRepository(ctrl)
		handler := &priceServiceHandler{
			TickerRepository:   tickerRepository,
			DailyBarRepository: dailyBarRepository,
		}
		return handler, tickerRepository, dailyBarRepository
	}

	t.Run("untracked symbol is not found", func(t *testing.T) {
		handler, tickerRepository, _ := newHandler(t)

		tickerRepository.EXPECT().GetBySymbol("ZZZT").Return(nil, fmt.Errorf("%w: ZZZT", domain.ErrSymbolNotFound))

		prices, err := handler.HistoryWindow("ZZZT", 90)
		require.ErrorIs(t, err, domain.ErrSymbolNotFound)
		require.Nil(t, prices)
	})

	t.Run("maps bars onto adjusted close prices", func(t *testing.T) {
		handler, tickerRepository, dailyBarRepository := newHandler(t)

		tickerRepository.EXPECT().GetBySymbol("AAPL").Return(&model.Ticker{Symbol: "AAPL"}, nil)
		dailyBarRepository.EXPECT().ListWindow(gomock.Nil(), "AAPL", 90).Return([]model.DailyPriceBar{
			{Symbol: "AAPL", Date: util.NewDate(2024, 6, 3), Close: 101, AdjClose: 100},
			{Symbol: "AAPL", Date: util.NewDate(2024, 6, 4), Close: 103, AdjClose: 102},
		}, nil)

		prices, err := handler.HistoryWindow("AAPL", 90)
		require.NoError(t, err)

		expected := []domain.AssetPrice{
			{Symbol: "AAPL", Price: 100, Date: util.NewDate(2024, 6, 3)},
			{Symbol: "AAPL", Price: 102, Date: util.NewDate(2024, 6, 4)},
		}
		require.Empty(t, cmp.Diff(expected, prices))
	})
}

func Test_priceServiceHandler_HistoryRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	tickerRepository := mock_repository.NewMockTickerRepository(ctrl)
	dailyBarRepository := mock_repository.NewMockDailyBarRepository(ctrl)
	handler := &priceServiceHandler{
		TickerRepository:   tickerRepository,
		DailyBarRepository: dailyBarRepository,
	}

	start := util.NewDate(2024, 6, 1)
	end := util.NewDate(2024, 6, 30)

	tickerRepository.EXPECT().GetBySymbol("AAPL").Return(&model.Ticker{Symbol: "AAPL"}, nil)
	dailyBarRepository.EXPECT().List(gomock.Nil(), "AAPL", start, end).Return([]domain.AssetPrice{
		{Symbol: "AAPL", Price: 100, Date: util.NewDate(2024, 6, 3)},
	}, nil)

	prices, err := handler.HistoryRange("AAPL", start, end)
	require.NoError(t, err)
	require.Len(t, prices, 1)
	require.Equal(t, 100.0, prices[0].Price)
}
