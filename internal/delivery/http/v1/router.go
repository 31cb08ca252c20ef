package v1

import (
	"time"

	"ats-resume-scorer/config"
	"ats-resume-scorer/internal/delivery/http/middleware"
	"ats-resume-scorer/internal/domain"
	"ats-resume-scorer/internal/usecase"
	"ats-resume-scorer/pkg/logger"
	"ats-resume-scorer/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AnalysisUC domain.AnalysisUsecase
	ContentUC  domain.ContentUsecase
	UploadUC   domain.UploadUsecase
	UserUC     domain.UserUsecase
	HealthUC   usecase.HealthUsecase
	// RateCounter is the shared (Redis) counter; nil means in-memory only.
	RateCounter middleware.WindowCounter
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	} else {
		logger.Log.Warn("gin validator engine is not validator/v10, custom validators not registered")
	}

	cfg := deps.Config
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	memory := middleware.NewMemoryCounter()

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowLocalhost: gin.Mode() != gin.ReleaseMode,
	})) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window),
		deps.RateCounter, memory,
	))

	api := r.Group("/api")

	NewHealthHandler(api, deps.HealthUC)
	NewAnalysisHandler(api, deps.AnalysisUC)
	NewContentHandler(api, deps.ContentUC)
	NewUploadHandler(api, deps.UploadUC, cfg.UploadMaxBytes,
		middleware.RateLimitMiddleware(
			middleware.UploadRateLimitConfig(cfg.RateLimitUploadThreshold, window),
			deps.RateCounter, memory,
		),
	)
	NewUserHandler(api, deps.UserUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
