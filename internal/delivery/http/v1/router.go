package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	CandidateUC   domain.CandidateUsecase
	CompanyUC     domain.CompanyUsecase
	ContactUC     domain.ContactUsecase
	SavedJobUC    domain.SavedJobUsecase
	HealthUC      usecase.HealthUsecase
	Tokens        middleware.TokenParser
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	cfg := deps.Config
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	// CORS first so preflights are answered before anything else runs.
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		status, ok := deps.HealthUC.Check(c.Request.Context())
		code := http.StatusOK
		if !ok {
			code = http.StatusServiceUnavailable
		}
		body := gin.H{}
		for k, v := range status {
			body[k] = v
		}
		response.Success(c, code, body)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protected := v1.Group("", middleware.AuthMiddleware(deps.Tokens))
	candidate := protected.Group("", middleware.RequireRole(domain.RoleCandidate))
	recruiter := protected.Group("", middleware.RequireRole(domain.RoleRecruiter))

	strict := middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(cfg.RateLimitAuthThreshold, window))

	NewAuthHandler(v1, protected, deps.AuthUC, strict)
	NewJobHandler(v1, recruiter, deps.JobUC)
	NewApplicationHandler(protected, candidate, recruiter, deps.ApplicationUC)
	NewCandidateHandler(v1, candidate, deps.CandidateUC)
	NewCompanyHandler(v1, recruiter, deps.CompanyUC)
	NewContactHandler(v1, deps.ContactUC)
	NewSavedJobHandler(candidate, deps.SavedJobUC)

	return r
}
