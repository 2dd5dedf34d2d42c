package calculator

import (
	"math"
	"testing"

	"harvestladder/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_EstimateDriftAndVol(t *testing.T) {
	t.Run("constant growth series has zero vol", func(t *testing.T) {
		prices := []float64{}
		for i := 0; i < 30; i++ {
			prices = append(prices, 100*math.Pow(1.01, float64(i)))
		}

		est, err := EstimateDriftAndVol(prices)
		require.NoError(t, err)

		require.InDelta(t, 0.01, est.RDaily, 1e-9)
		require.InDelta(t, 0, est.AnnualVol, 1e-9)
	})

	t.Run("oscillating series has zero drift and positive vol", func(t *testing.T) {
		est, err := EstimateDriftAndVol([]float64{100, 200, 100, 200, 100})
		require.NoError(t, err)

		require.InDelta(t, 0, est.RDaily, 1e-9)

		// sample stddev of [ln2, -ln2, ln2, -ln2] annualized
		want := 2 * math.Log(2) / math.Sqrt(3) * math.Sqrt(252)
		require.InDelta(t, want, est.AnnualVol, 1e-9)
	})

	t.Run("too little history", func(t *testing.T) {
		_, err := EstimateDriftAndVol([]float64{100})
		require.ErrorIs(t, err, domain.ErrInsufficientHistory)

		_, err = EstimateDriftAndVol(nil)
		require.ErrorIs(t, err, domain.ErrInsufficientHistory)
	})

	t.Run("non-positive price", func(t *testing.T) {
		_, err := EstimateDriftAndVol([]float64{100, 0, 102})
		require.ErrorIs(t, err, domain.ErrNonPositivePrice)

		_, err = EstimateDriftAndVol([]float64{100, -5, 102})
		require.ErrorIs(t, err, domain.ErrNonPositivePrice)
	})
}
