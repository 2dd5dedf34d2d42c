package calculator

import (
	"testing"

	"harvestladder/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_ResolveThreshold(t *testing.T) {
	t.Run("dynamic clamps to max", func(t *testing.T) {
		h, err := ResolveThreshold(domain.DynamicThreshold(0.5, 0.05, 0.30), 0.80)
		require.NoError(t, err)
		require.InDelta(t, 0.30, h, 1e-9)
	})

	t.Run("dynamic clamps to min", func(t *testing.T) {
		h, err := ResolveThreshold(domain.DynamicThreshold(0.5, 0.05, 0.30), 0.02)
		require.NoError(t, err)
		require.InDelta(t, 0.05, h, 1e-9)
	})

	t.Run("dynamic in band", func(t *testing.T) {
		h, err := ResolveThreshold(domain.DynamicThreshold(0.5, 0.05, 0.30), 0.40)
		require.NoError(t, err)
		require.InDelta(t, 0.20, h, 1e-9)
	})

	t.Run("fixed passes through", func(t *testing.T) {
		h, err := ResolveThreshold(domain.FixedThreshold(0.15), 99)
		require.NoError(t, err)
		require.InDelta(t, 0.15, h, 1e-9)
	})

	t.Run("invalid configs", func(t *testing.T) {
		_, err := ResolveThreshold(domain.FixedThreshold(0), 0.5)
		require.ErrorIs(t, err, domain.ErrInvalidParameters)

		_, err = ResolveThreshold(domain.DynamicThreshold(0.5, 0.30, 0.05), 0.5)
		require.ErrorIs(t, err, domain.ErrInvalidParameters)

		_, err = ResolveThreshold(domain.DynamicThreshold(0.5, 0, 0.30), 0.5)
		require.ErrorIs(t, err, domain.ErrInvalidParameters)

		_, err = ResolveThreshold(domain.Threshold{Mode: "GUESS"}, 0.5)
		require.ErrorIs(t, err, domain.ErrInvalidParameters)
	})
}
