package calculator

import (
	"fmt"
	"math"

	"harvestladder/internal/domain"

	"github.com/montanaflynn/stats"
)

// MinHistoryPoints is the fewest price points the estimator accepts. Two log
// returns are needed for a sample standard deviation, hence three points.
const MinHistoryPoints = 3

const tradingDaysPerYear = 252

type DriftVolEstimate struct {
	// constant daily growth rate that compounds the first price into the last
	RDaily float64
	// annualized sample stddev of daily log returns
	AnnualVol float64
}

// EstimateDriftAndVol derives drift and volatility from an ordered daily
// close series. Pure; the caller is responsible for loading the window.
func EstimateDriftAndVol(prices []float64) (*DriftVolEstimate, error) {
	if len(prices) < MinHistoryPoints {
		return nil, fmt.Errorf("%w: got %d price points, need at least %d", domain.ErrInsufficientHistory, len(prices), MinHistoryPoints)
	}
	for i, p := range prices {
		if p <= 0 {
			return nil, fmt.Errorf("%w: price %f at index %d", domain.ErrNonPositivePrice, p, i)
		}
	}

	n := float64(len(prices) - 1)
	rDaily := math.Pow(prices[len(prices)-1]/prices[0], 1/n) - 1

	logReturns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		logReturns = append(logReturns, math.Log(prices[i]/prices[i-1]))
	}

	stdev, err := stats.StandardDeviationSample(logReturns)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stdev of log returns: %w", err)
	}

	return &DriftVolEstimate{
		RDaily:    rDaily,
		AnnualVol: stdev * math.Sqrt(tradingDaysPerYear),
	}, nil
}
