package calculator

import (
	"math"
	"testing"

	"harvestladder/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func Test_BuildLadder(t *testing.T) {
	t.Run("single rung at 20pct threshold", func(t *testing.T) {
		// P0=100, s0=100 => V0=10000. First harvest line at 120.00,
		// sell floor(100 - 10000/120) = 16 shares.
		ladder, err := BuildLadder(LadderInput{
			StartPrice:  100,
			StartShares: 100,
			H:           0.20,
			RDaily:      0.01,
			Iterations:  1,
		})
		require.NoError(t, err)
		require.Len(t, ladder.Rungs, 1)
		require.False(t, ladder.TerminatedEarly)
		require.InDelta(t, 10000, ladder.V0, 1e-9)

		expectedDays := math.Log(1.2) / math.Log(1.01)
		diff := cmp.Diff(domain.LadderRung{
			Index:             1,
			TargetPrice:       120,
			SharesBefore:      100,
			SharesSold:        16,
			SharesAfter:       84,
			ExpectedDays:      &expectedDays,
			GrossHarvest:      1920,
			CumulativeHarvest: 1920,
			RemainingValue:    10080,
			TotalWealth:       12000,
			TotalReturn:       0.2,
		}, ladder.Rungs[0], cmpopts.EquateApprox(0, 1e-9))
		require.Empty(t, diff)
	})

	t.Run("targets and cumulative harvest strictly increase, floor preserved", func(t *testing.T) {
		for _, h := range []float64{0.05, 0.1, 0.2, 0.3} {
			for _, s0 := range []int{25, 100, 1000} {
				ladder, err := BuildLadder(LadderInput{
					StartPrice:  52.17,
					StartShares: s0,
					H:           h,
					RDaily:      0.002,
					Iterations:  8,
				})
				require.NoError(t, err)

				prevTarget := 0.0
				prevCumulative := 0.0
				for _, r := range ladder.Rungs {
					require.Greater(t, r.TargetPrice, prevTarget)
					require.Greater(t, r.CumulativeHarvest, prevCumulative)
					require.GreaterOrEqual(t, r.RemainingValue, ladder.V0)
					require.GreaterOrEqual(t, r.SharesSold, 1)
					require.Equal(t, r.SharesBefore-r.SharesSold, r.SharesAfter)
					prevTarget = r.TargetPrice
					prevCumulative = r.CumulativeHarvest
				}
			}
		}
	})

	t.Run("terminates early when a sale rounds to zero shares", func(t *testing.T) {
		// s=3, H=0.1: ceil(3/1.1)=3 > s-1, no rung is possible at all
		ladder, err := BuildLadder(LadderInput{
			StartPrice:  100,
			StartShares: 3,
			H:           0.1,
			RDaily:      0.01,
			Iterations:  4,
		})
		require.NoError(t, err)
		require.True(t, ladder.TerminatedEarly)
		require.Empty(t, ladder.Rungs)

		// s0=10, H=0.2 walks 10->9->8->7->6->5, then ceil(5/1.2)=5 blocks
		ladder, err = BuildLadder(LadderInput{
			StartPrice:  100,
			StartShares: 10,
			H:           0.2,
			RDaily:      0.01,
			Iterations:  10,
		})
		require.NoError(t, err)
		require.True(t, ladder.TerminatedEarly)
		require.Len(t, ladder.Rungs, 5)
	})

	t.Run("unreachable targets under non-positive drift", func(t *testing.T) {
		ladder, err := BuildLadder(LadderInput{
			StartPrice:  100,
			StartShares: 100,
			H:           0.2,
			RDaily:      -0.001,
			Iterations:  2,
		})
		require.NoError(t, err)
		require.Len(t, ladder.Rungs, 2)
		for _, r := range ladder.Rungs {
			require.Nil(t, r.ExpectedDays)
		}
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := BuildLadder(LadderInput{StartPrice: 100, StartShares: 100, H: 0, RDaily: 0.01, Iterations: 1})
		require.ErrorIs(t, err, domain.ErrInvalidParameters)

		_, err = BuildLadder(LadderInput{StartPrice: 100, StartShares: 100, H: 0.2, RDaily: 0.01, Iterations: 0})
		require.ErrorIs(t, err, domain.ErrInvalidParameters)

		_, err = BuildLadder(LadderInput{StartPrice: 0, StartShares: 100, H: 0.2, RDaily: 0.01, Iterations: 1})
		require.ErrorIs(t, err, domain.ErrInvalidParameters)

		_, err = BuildLadder(LadderInput{StartPrice: 100, StartShares: 0, H: 0.2, RDaily: 0.01, Iterations: 1})
		require.ErrorIs(t, err, domain.ErrInvalidParameters)
	})
}

func Test_FitInitialShares(t *testing.T) {
	t.Run("finds minimal feasible share count", func(t *testing.T) {
		// at H=0.2 the walk 8->7->6->5 is the smallest start that
		// survives three whole-share harvests
		ladder, err := FitInitialShares(100, 0.2, 0.01, 3, 1000)
		require.NoError(t, err)
		require.Equal(t, 8, ladder.StartShares)
		require.Len(t, ladder.Rungs, 3)
		require.False(t, ladder.TerminatedEarly)
	})

	t.Run("infeasible within cap", func(t *testing.T) {
		_, err := FitInitialShares(100, 0.2, 0.01, 5, 3)
		require.ErrorIs(t, err, domain.ErrInvalidParameters)
	})
}
