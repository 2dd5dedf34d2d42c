package domain

import "github.com/google/uuid"

// HarvestHit is emitted by the scanner when a live price has reached the next
// pending rung of an active plan. Detection only - marking the rung achieved
// is a separate lifecycle call.
type HarvestHit struct {
	Symbol         string
	PlanInstanceID uuid.UUID
	RungID         uuid.UUID
	RungIndex      int
	TargetPrice    float64
	CurrentPrice   float64
	SharesToSell   int
}
