package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getPrices(c *gin.Context) {
	symbol := c.Param("symbol")

	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr != "" || endStr != "" {
		start, err := time.Parse(time.DateOnly, startStr)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid start date %q: %w", startStr, err), c, 400)
			return
		}
		end, err := time.Parse(time.DateOnly, endStr)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid end date %q: %w", endStr, err), c, 400)
			return
		}

		prices, err := m.PriceService.HistoryRange(symbol, start, end)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(200, gin.H{"prices": prices})
		return
	}

	days := defaultHistoryWindowDays
	if d := c.Query("days"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed <= 0 {
			returnErrorJsonCode(fmt.Errorf("invalid days parameter %q", d), c, 400)
			return
		}
		days = parsed
	}

	prices, err := m.PriceService.HistoryWindow(symbol, days)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"prices": prices})
}
