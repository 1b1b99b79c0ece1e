package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs"
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/cache"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Job Board API
// @version         1.0
// @description     Job board backend: accounts, job postings, applications, candidate profiles, companies and contact.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	logger.Log.Info().Str("port", cfg.Port).Msg("starting job board backend")

	auditor := security.InitAuditor("go-jobboard-backend")
	defer func() { _ = auditor.Sync() }()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, dbPool); err != nil {
			logger.Log.Fatal().Err(err).Msg("schema migration failed")
		}
	}

	var redisPing usecase.Pinger
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn().Err(err).Msg("redis unavailable, rate limiting falls back to memory")
		}
		redisPing = usecase.PingFunc(redis.HealthCheck)
		defer redis.Close()
	}

	// The listing cache is optional; a nil ListCache disables it.
	var jobCache usecase.ListCache
	if cfg.JobCacheTTL > 0 {
		c, err := cache.New(ctx, cfg.JobCacheTTL)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("job listing cache disabled")
		} else {
			jobCache = c
			defer c.Close()
		}
	}

	validation.RegisterGinValidators()
	validate := validation.Validator()

	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	contactRepo := postgres.NewContactRepository(dbPool)
	savedJobRepo := postgres.NewSavedJobRepository(dbPool)

	var mailer *email.EmailService
	if svc := email.NewEmailService(cfg); svc.IsConfigured() {
		mailer = svc
	} else {
		logger.Log.Warn().Msg("SMTP not configured, contact notifications and reset codes will not be mailed")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	hasher := auth.NewHasher(cfg.BcryptCost)
	loginTracker := security.NewLoginTracker(security.DefaultLoginTrackerConfig(), auditor)

	var (
		resetMailer   usecase.ResetMailer
		contactMailer usecase.ContactMailer
	)
	if mailer != nil {
		resetMailer, contactMailer = mailer, mailer
	}

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        usecase.NewAuthUsecase(userRepo, tokens, hasher, resetMailer, loginTracker, cfg.ResetCodeTTL, validate),
		JobUC:         usecase.NewJobUsecase(jobRepo, userRepo, jobCache),
		ApplicationUC: usecase.NewApplicationUsecase(applicationRepo, jobRepo, jobCache, validate),
		CandidateUC:   usecase.NewCandidateUsecase(candidateRepo, validate),
		CompanyUC:     usecase.NewCompanyUsecase(companyRepo, validate),
		ContactUC:     usecase.NewContactUsecase(contactRepo, contactMailer, validate),
		SavedJobUC:    usecase.NewSavedJobUsecase(savedJobRepo, jobRepo),
		HealthUC:      usecase.NewHealthUsecase(dbPool, redisPing),
		Tokens:        tokens,
		Config:        cfg,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error().Err(err).Msg("listen failed")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error().Err(err).Msg("server forced to shutdown")
	}

	logger.Log.Info().Msg("server exiting")
}
