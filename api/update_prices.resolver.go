package api

import (
	"github.com/gin-gonic/gin"
)

const defaultIngestLookbackDays = 365

type updatePricesRequest struct {
	// empty means every tracked ticker
	Symbols      []string `json:"symbols"`
	LookbackDays *int     `json:"lookbackDays"`
}

func (m ApiHandler) updatePrices(c *gin.Context) {
	var requestBody updatePricesRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	lookbackDays := defaultIngestLookbackDays
	if requestBody.LookbackDays != nil {
		lookbackDays = *requestBody.LookbackDays
	}

	err := m.PriceService.UpdatePrices(c.Request.Context(), requestBody.Symbols, lookbackDays)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, map[string]string{"message": "ok"})
}
