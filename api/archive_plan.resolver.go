package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) archivePlan(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid plan id: %w", err), c, 400)
		return
	}

	err = m.PlanService.ArchivePlan(c.Request.Context(), planID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, map[string]string{"message": "ok"})
}
