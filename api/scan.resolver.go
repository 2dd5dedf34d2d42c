package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) scan(c *gin.Context) {
	hits, err := m.ScannerService.ScanAndNotify(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"hits": hits})
}
