package domain

// ThresholdMode selects how the harvest threshold H is derived.
type ThresholdMode string

const (
	ThresholdModeFixed   ThresholdMode = "FIXED"
	ThresholdModeDynamic ThresholdMode = "DYNAMIC"
)

// Threshold is a tagged variant: either a fixed H, or an affine-clamped
// transform of annualized volatility (alpha * sigma, clamped to [MinH, MaxH]).
type Threshold struct {
	Mode ThresholdMode

	// fixed variant
	FixedH float64

	// dynamic variant
	Alpha float64
	MinH  float64
	MaxH  float64
}

func FixedThreshold(h float64) Threshold {
	return Threshold{Mode: ThresholdModeFixed, FixedH: h}
}

func DynamicThreshold(alpha, minH, maxH float64) Threshold {
	return Threshold{Mode: ThresholdModeDynamic, Alpha: alpha, MinH: minH, MaxH: maxH}
}

// PlanParameters is the configuration a ladder is built from. Immutable once
// a plan instance has been created from it.
type PlanParameters struct {
	HistoryWindowDays int
	NIterations       int
	MaxS0             int
	Threshold         Threshold
}

// Position is an optional caller-supplied starting position. When absent the
// planner searches for the minimal feasible share count instead.
type Position struct {
	Shares int
	Price  float64
}

// LadderRung is one step of a computed ladder, all projections, no lifecycle
// state. Persisted rungs carry status on top of this.
type LadderRung struct {
	Index        int
	TargetPrice  float64
	SharesBefore int
	SharesSold   int
	SharesAfter  int

	// nil when the drift model cannot reach the target (r_daily <= 0)
	ExpectedDays *float64

	GrossHarvest      float64
	CumulativeHarvest float64
	RemainingValue    float64
	TotalWealth       float64
	TotalReturn       float64
}

// Ladder is the full projected harvest sequence for one plan. TerminatedEarly
// distinguishes a partial ladder (a computed sale rounded to zero shares) from
// a full NIterations-length one; both are successful outcomes.
type Ladder struct {
	StartPrice      float64
	StartShares     int
	V0              float64
	H               float64
	RDaily          float64
	Rungs           []LadderRung
	TerminatedEarly bool
}
