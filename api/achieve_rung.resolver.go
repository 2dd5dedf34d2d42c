package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type achieveRungRequest struct {
	TriggerPrice float64    `json:"triggerPrice"`
	TriggeredAt  *time.Time `json:"triggeredAt"`
}

func (m ApiHandler) achieveRung(c *gin.Context) {
	rungID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid rung id: %w", err), c, 400)
		return
	}

	var requestBody achieveRungRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	triggeredAt := time.Now().UTC()
	if requestBody.TriggeredAt != nil {
		triggeredAt = requestBody.TriggeredAt.UTC()
	}

	rung, err := m.PlanService.AchieveRung(c.Request.Context(), rungID, requestBody.TriggerPrice, triggeredAt)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, rung)
}
