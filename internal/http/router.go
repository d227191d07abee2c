package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fortune-api/internal/service"
)

// NewRouter wires middleware and the MBTI routes. Per-user routes sit behind bearer auth.
func NewRouter(
	logger *zap.Logger,
	mbtiH *MBTIHandler,
	jwtSvc *service.JWTService,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	mbti := r.Group("/mbti")
	mbti.GET("/questions", mbtiH.ListQuestions)
	mbti.POST("/classify", mbtiH.Classify)
	mbti.GET("/types", mbtiH.ListTypes)
	mbti.GET("/types/:code", mbtiH.GetType)
	mbti.GET("/compatibility", mbtiH.GetCompatibility)
	mbti.POST("/reading", mbtiH.Reading)

	authed := mbti.Group("", JWTAuthMiddleware(jwtSvc))
	authed.POST("/results", mbtiH.SubmitResult)
	authed.GET("/results", mbtiH.ListResults)
	authed.GET("/results/latest", mbtiH.LatestResult)
	authed.GET("/results/:id/similar", mbtiH.SimilarResults)
	authed.PUT("/draft", mbtiH.SaveDraft)
	authed.GET("/draft", mbtiH.GetDraft)
	authed.DELETE("/draft", mbtiH.DeleteDraft)

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
