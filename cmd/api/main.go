package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ats-resume-scorer/config"
	_ "ats-resume-scorer/docs" // Important for Swagger
	"ats-resume-scorer/internal/ai"
	"ats-resume-scorer/internal/ai/gemini"
	"ats-resume-scorer/internal/delivery/http/middleware"
	v1 "ats-resume-scorer/internal/delivery/http/v1"
	"ats-resume-scorer/internal/domain"
	"ats-resume-scorer/internal/repository/postgres"
	"ats-resume-scorer/internal/repository/sqlite"
	"ats-resume-scorer/internal/resume"
	"ats-resume-scorer/internal/scoring"
	"ats-resume-scorer/internal/usecase"
	"ats-resume-scorer/pkg/database"
	"ats-resume-scorer/pkg/logger"
	"ats-resume-scorer/pkg/redis"
	"ats-resume-scorer/pkg/security"
	"ats-resume-scorer/pkg/security/antivirus"
	"ats-resume-scorer/pkg/storage"

	"github.com/gin-gonic/gin"
)

const (
	writerTemperature   = 0.7
	analyzerTemperature = 0.3
	clamAVTimeout       = 30 * time.Second
)

// @title           ATS Resume Scorer API
// @version         1.0
// @description     Scores resumes against job descriptions the way applicant tracking systems do.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting ATS resume scorer", "port", cfg.Port)

	events := security.InitEventLogger("ats-resume-scorer", environment())
	defer events.Sync()

	ctx := context.Background()

	// 3. Setup Redis (optional)
	var rateCounter middleware.WindowCounter
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		if !errors.Is(err, redis.ErrNotConfigured) {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
		}
	} else {
		rateCounter = redis.NewWindowCounter(redis.Client())
		defer redis.Close()
	}

	// 4. Setup Database (optional)
	userRepo, closeDB, err := openUserRepository(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer closeDB()

	// 5. Setup AI generators (optional)
	writer, analyzer := newGenerators(ctx, cfg)

	// 6. Setup upload pipeline
	scanner := newScanner(cfg)
	var store domain.ObjectStore
	storageCfg := storage.Config{
		Provider:        storage.Provider(cfg.S3Provider),
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
	}
	if storageCfg.Enabled() {
		s3Store, err := storage.NewS3Store(ctx, storageCfg)
		if err != nil {
			logger.Log.Warn("Upload archive disabled", "error", err)
		} else {
			store = s3Store
			logger.Log.Info("Upload archive enabled", "provider", cfg.S3Provider, "bucket", cfg.S3Bucket)
		}
	}

	// 7. Setup UseCases
	normalizer := resume.NewNormalizer()
	analysisUC := usecase.NewAnalysisUsecase(normalizer, scoring.NewEngine(), usecase.NewSuggestionEnricher(analyzer))
	contentUC := usecase.NewContentUsecase(writer, analyzer)
	uploadUC := usecase.NewUploadUsecase(scanner, resume.NewExtractor(), normalizer, store, cfg.UploadMaxBytes)
	userUC := usecase.NewUserUsecase(userRepo)
	healthUC := usecase.NewHealthUsecase(analyzer != nil, userRepo != nil, redis.IsAvailable)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AnalysisUC:  analysisUC,
		ContentUC:   contentUC,
		UploadUC:    uploadUC,
		UserUC:      userUC,
		HealthUC:    healthUC,
		RateCounter: rateCounter,
		Config:      cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// openUserRepository returns a nil repository when persistence is disabled.
func openUserRepository(ctx context.Context, cfg *config.Config) (domain.UserRepository, func(), error) {
	noop := func() {}
	if !cfg.DatabaseEnabled {
		logger.Log.Info("Database disabled, user endpoints answer 501")
		return nil, noop, nil
	}

	driver, dsn, err := database.ParseURL(cfg.DatabaseURL)
	if err != nil {
		return nil, noop, err
	}

	switch driver {
	case database.DriverSQLite:
		db, err := database.OpenSQLite(dsn)
		if err != nil {
			return nil, noop, err
		}
		if err := sqlite.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, noop, err
		}
		return sqlite.NewUserRepository(db), closer(db), nil
	default:
		pool, err := database.NewPostgresPool(ctx, dsn)
		if err != nil {
			return nil, noop, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return postgres.NewUserRepository(pool), pool.Close, nil
	}
}

func closer(db *sql.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			logger.Log.Warn("Closing database failed", "error", err)
		}
	}
}

// newGenerators returns untyped nils when AI is disabled so the usecases see
// a nil interface and take their deterministic paths.
func newGenerators(ctx context.Context, cfg *config.Config) (writer, analyzer domain.ContentGenerator) {
	if !cfg.AIEnabled() {
		return nil, nil
	}

	gen, err := gemini.NewGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Log.Warn("Gemini unavailable, using deterministic fallbacks", "error", err)
		return nil, nil
	}
	logger.Log.Info("Gemini enabled", "model", gen.Model())

	return ai.Guard(gen.WithTemperature(writerTemperature), cfg.AITimeout),
		ai.Guard(gen.WithTemperature(analyzerTemperature), cfg.AITimeout)
}

func newScanner(cfg *config.Config) antivirus.Scanner {
	if len(cfg.ClamAVAddresses) == 0 {
		logger.Log.Warn("CLAMAV_ADDRESS not configured, uploads are not scanned for malware")
		return antivirus.NewNoOpScanner()
	}

	scanners := make([]antivirus.Scanner, 0, len(cfg.ClamAVAddresses))
	for _, addr := range cfg.ClamAVAddresses {
		scanners = append(scanners, antivirus.NewClamAVScanner(addr, clamAVTimeout))
	}
	chain := antivirus.NewChainScanner(scanners...)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if !chain.Available(ctx) {
		logger.Log.Warn("ClamAV not reachable yet, uploads will be rejected until it is", "addresses", cfg.ClamAVAddresses)
	}
	return chain
}

func environment() string {
	if gin.Mode() == gin.ReleaseMode {
		return "production"
	}
	return "development"
}
