package calculator

import (
	"fmt"

	"harvestladder/internal/domain"
)

// ResolveThreshold maps a threshold config (plus annualized volatility, for
// the dynamic variant) to the harvest threshold H. The dynamic transform is
// clamp(alpha * annualVol, minH, maxH). H must come out > 0 or no rung can
// ever be profitable.
func ResolveThreshold(t domain.Threshold, annualVol float64) (float64, error) {
	switch t.Mode {
	case domain.ThresholdModeFixed:
		if t.FixedH <= 0 {
			return 0, fmt.Errorf("%w: fixed H must be > 0, got %f", domain.ErrInvalidParameters, t.FixedH)
		}
		return t.FixedH, nil

	case domain.ThresholdModeDynamic:
		if t.MinH <= 0 || t.MaxH >= 1 || t.MinH > t.MaxH {
			return 0, fmt.Errorf("%w: need 0 < minH <= maxH < 1, got [%f, %f]", domain.ErrInvalidParameters, t.MinH, t.MaxH)
		}
		h := t.Alpha * annualVol
		if h < t.MinH {
			h = t.MinH
		}
		if h > t.MaxH {
			h = t.MaxH
		}
		return h, nil
	}

	return 0, fmt.Errorf("%w: unknown threshold mode %q", domain.ErrInvalidParameters, t.Mode)
}
