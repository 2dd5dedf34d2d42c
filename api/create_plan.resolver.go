package api

import (
	"harvestladder/internal/domain"
	"harvestladder/internal/logger"
	"harvestladder/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	defaultHistoryWindowDays = 90
	defaultNIterations       = 10
	defaultMaxS0             = 1000
	defaultAlpha             = 1.0
	defaultMinH              = 0.05
	defaultMaxH              = 0.50
)

type createPlanRequest struct {
	Symbol   string `json:"symbol"`
	Position *struct {
		Shares int     `json:"shares"`
		Price  float64 `json:"price"`
	} `json:"position"`

	HistoryWindowDays *int `json:"historyWindowDays"`
	NIterations       *int `json:"nIterations"`
	MaxS0             *int `json:"maxS0"`

	// fixedH wins over the dynamic parameters when both are present
	FixedH *float64 `json:"fixedH"`
	Alpha  *float64 `json:"alpha"`
	MinH   *float64 `json:"minH"`
	MaxH   *float64 `json:"maxH"`

	Notes *string `json:"notes"`
}

func (r createPlanRequest) toServiceInput() service.CreatePlanInput {
	params := domain.PlanParameters{
		HistoryWindowDays: defaultHistoryWindowDays,
		NIterations:       defaultNIterations,
		MaxS0:             defaultMaxS0,
	}
	if r.HistoryWindowDays != nil {
		params.HistoryWindowDays = *r.HistoryWindowDays
	}
	if r.NIterations != nil {
		params.NIterations = *r.NIterations
	}
	if r.MaxS0 != nil {
		params.MaxS0 = *r.MaxS0
	}

	if r.FixedH != nil {
		params.Threshold = domain.FixedThreshold(*r.FixedH)
	} else {
		alpha, minH, maxH := defaultAlpha, defaultMinH, defaultMaxH
		if r.Alpha != nil {
			alpha = *r.Alpha
		}
		if r.MinH != nil {
			minH = *r.MinH
		}
		if r.MaxH != nil {
			maxH = *r.MaxH
		}
		params.Threshold = domain.DynamicThreshold(alpha, minH, maxH)
	}

	in := service.CreatePlanInput{
		Symbol: r.Symbol,
		Params: params,
		Notes:  r.Notes,
	}
	if r.Position != nil {
		in.Position = &domain.Position{
			Shares: r.Position.Shares,
			Price:  r.Position.Price,
		}
	}

	return in
}

func (m ApiHandler) createPlan(c *gin.Context) {
	var requestBody createPlanRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	details, err := m.PlanService.CreatePlan(c.Request.Context(), requestBody.toServiceInput())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	// the plan is already committed; a lost summary email shouldn't fail the build
	if err := m.NotificationService.SendPlanSummaryEmail(c.Request.Context(), *details); err != nil {
		logger.Error(err)
	}

	c.JSON(200, details)
}
