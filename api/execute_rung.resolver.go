package api

import (
	"fmt"
	"time"

	"harvestladder/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type executeRungRequest struct {
	ExecutedPrice float64    `json:"executedPrice"`
	SharesSold    int32      `json:"sharesSold"`
	TaxPaid       float64    `json:"taxPaid"`
	ExecutedAt    *time.Time `json:"executedAt"`
	Notes         *string    `json:"notes"`
}

func (m ApiHandler) executeRung(c *gin.Context) {
	rungID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid rung id: %w", err), c, 400)
		return
	}

	var requestBody executeRungRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	executedAt := time.Now().UTC()
	if requestBody.ExecutedAt != nil {
		executedAt = requestBody.ExecutedAt.UTC()
	}

	rung, err := m.PlanService.ExecuteRung(c.Request.Context(), rungID, service.ExecuteRungInput{
		ExecutedPrice: decimal.NewFromFloat(requestBody.ExecutedPrice),
		SharesSold:    requestBody.SharesSold,
		TaxPaid:       decimal.NewFromFloat(requestBody.TaxPaid),
		ExecutedAt:    executedAt,
		Notes:         requestBody.Notes,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, rung)
}
