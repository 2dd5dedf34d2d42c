package api

import (
	"fmt"
	"strings"

	"harvestladder/internal/db/models/postgres/public/model"
	"harvestladder/internal/repository"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getPlans(c *gin.Context) {
	filter := repository.PlanInstanceListFilter{}

	if symbol := c.Query("symbol"); symbol != "" {
		filter.Symbol = &symbol
	}

	status := strings.ToUpper(c.Query("status"))
	switch status {
	case "", "ALL":
	case "ACTIVE":
		s := model.PlanStatus_Active
		filter.Status = &s
	case "SUPERSEDED":
		s := model.PlanStatus_Superseded
		filter.Status = &s
	case "ARCHIVED":
		s := model.PlanStatus_Archived
		filter.Status = &s
	default:
		returnErrorJsonCode(fmt.Errorf("unknown status filter %q", status), c, 400)
		return
	}

	plans, err := m.PlanService.ListPlans(filter)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"plans": plans})
}
