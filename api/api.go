package api

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"harvestladder/internal/db/models/postgres/public/model"
	"harvestladder/internal/domain"
	"harvestladder/internal/repository"
	"harvestladder/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                   *sql.DB
	PlanService          service.PlanService
	PriceService         service.PriceService
	ScannerService       service.ScannerService
	NotificationService  service.NotificationService
	ApiRequestRepository repository.ApiRequestRepository
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to harvestladder"})
	})
	router.POST("/plans", m.createPlan)
	router.GET("/plans", m.getPlans)
	router.GET("/plans/:id", m.getPlan)
	router.POST("/plans/:id/archive", m.archivePlan)
	router.POST("/rungs/:id/achieve", m.achieveRung)
	router.POST("/rungs/:id/execute", m.executeRung)
	router.POST("/scan", m.scan)
	router.GET("/prices/:symbol", m.getPrices)
	router.POST("/updatePrices", m.updatePrices)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

// statusFromError maps domain error kinds onto http status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidParameters),
		errors.Is(err, domain.ErrInsufficientHistory),
		errors.Is(err, domain.ErrNonPositivePrice):
		return 400
	case errors.Is(err, domain.ErrSymbolNotFound):
		return 404
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrConcurrentModification):
		return 409
	case errors.Is(err, domain.ErrDataUnavailable):
		return 502
	}
	return 500
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, statusFromError(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Println(fmt.Errorf("failed to get raw data: %w", err))
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Println(err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			log.Println(err)
		}
	}
}
