package calculator

import (
	"fmt"
	"math"

	"harvestladder/internal/domain"
)

type LadderInput struct {
	StartPrice  float64
	StartShares int
	H           float64
	RDaily      float64
	Iterations  int
}

// BuildLadder runs the whole-share harvest simulation. Each iteration finds
// the price at which the remaining position crosses (1+H)*V0, sells the most
// whole shares that keep remaining value >= V0, and rolls forward. When a
// sale would round to zero shares the ladder stops early without emitting a
// zero-sale rung; the skipped iteration is not consumed, the result just
// carries TerminatedEarly. Pure computation, no persistence.
func BuildLadder(in LadderInput) (*domain.Ladder, error) {
	if in.H <= 0 {
		return nil, fmt.Errorf("%w: harvest threshold must be > 0, got %f", domain.ErrInvalidParameters, in.H)
	}
	if in.Iterations <= 0 {
		return nil, fmt.Errorf("%w: iterations must be > 0, got %d", domain.ErrInvalidParameters, in.Iterations)
	}
	if in.StartPrice <= 0 {
		return nil, fmt.Errorf("%w: start price must be > 0, got %f", domain.ErrInvalidParameters, in.StartPrice)
	}
	if in.StartShares <= 0 {
		return nil, fmt.Errorf("%w: start shares must be > 0, got %d", domain.ErrInvalidParameters, in.StartShares)
	}

	v0 := float64(in.StartShares) * in.StartPrice
	shares := in.StartShares

	ladder := &domain.Ladder{
		StartPrice:  in.StartPrice,
		StartShares: in.StartShares,
		V0:          v0,
		H:           in.H,
		RDaily:      in.RDaily,
	}

	cumulative := 0.0
	for i := 1; i <= in.Iterations; i++ {
		// price at which the current share count's value crosses (1+H)*V0
		target := (1 + in.H) * v0 / float64(shares)

		// fewest whole shares to keep so remaining value stays >= V0;
		// algebraically ceil(shares / (1+H))
		minAfter := int(math.Ceil(v0 / target))
		if minAfter > shares-1 {
			ladder.TerminatedEarly = true
			break
		}

		sold := shares - minAfter
		gross := float64(sold) * target
		cumulative += gross
		remaining := float64(minAfter) * target
		wealth := remaining + cumulative

		ladder.Rungs = append(ladder.Rungs, domain.LadderRung{
			Index:             i,
			TargetPrice:       target,
			SharesBefore:      shares,
			SharesSold:        sold,
			SharesAfter:       minAfter,
			ExpectedDays:      daysToTarget(in.StartPrice, target, in.RDaily),
			GrossHarvest:      gross,
			CumulativeHarvest: cumulative,
			RemainingValue:    remaining,
			TotalWealth:       wealth,
			TotalReturn:       wealth/v0 - 1,
		})

		shares = minAfter
	}

	return ladder, nil
}

// daysToTarget projects how many days of compounding at rDaily it takes to
// move from the plan's as-of price to the target. Anchored at the as-of
// price, so the value is days-from-now rather than days since the prior
// rung. nil when the drift model cannot reach the target.
func daysToTarget(startPrice, target, rDaily float64) *float64 {
	if rDaily <= 0 || target <= startPrice {
		return nil
	}
	d := math.Log(target/startPrice) / math.Log(1+rDaily)
	return &d
}

// FitInitialShares searches [1, maxShares] for the smallest starting share
// count whose ladder reaches the full iteration count without terminating
// early. Used when the caller supplies no existing position.
func FitInitialShares(startPrice, h, rDaily float64, iterations, maxShares int) (*domain.Ladder, error) {
	if maxShares <= 0 {
		return nil, fmt.Errorf("%w: maxShares must be > 0, got %d", domain.ErrInvalidParameters, maxShares)
	}

	for s0 := 1; s0 <= maxShares; s0++ {
		ladder, err := BuildLadder(LadderInput{
			StartPrice:  startPrice,
			StartShares: s0,
			H:           h,
			RDaily:      rDaily,
			Iterations:  iterations,
		})
		if err != nil {
			return nil, err
		}
		if !ladder.TerminatedEarly && len(ladder.Rungs) == iterations {
			return ladder, nil
		}
	}

	return nil, fmt.Errorf("%w: no initial share count <= %d yields %d harvests", domain.ErrInvalidParameters, maxShares, iterations)
}
