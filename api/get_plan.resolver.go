package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) getPlan(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid plan id: %w", err), c, 400)
		return
	}

	details, err := m.PlanService.GetPlan(planID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, details)
}
