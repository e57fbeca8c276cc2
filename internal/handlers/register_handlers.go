package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/trackspend/expense_tracker_app/internal/core/ports/services"
	"github.com/trackspend/expense_tracker_app/internal/dto"
	"github.com/trackspend/expense_tracker_app/internal/middleware"
	"github.com/trackspend/expense_tracker_app/internal/platform/config"
)

// RegisterRoutes wires every HTTP route onto the engine.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.Response{Success: true, Message: "Expense Tracker API is running"})
	})

	if !cfg.IsProduction {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api/v1")

	registerAuthRoutes(api, cfg, services.User)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		registerTransactionRoutes(protected, services.Transaction, services.Reporting)
		registerSummaryRoutes(protected, services.Reporting)
		registerDashboardRoutes(protected, services.Reporting)
	}
}

// registerAuthRoutes registers signup/signin behind a per-IP rate limit and
// the profile route behind JWT auth.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, us portssvc.UserSvcFacade) {
	h := newAuthHandler(us, cfg)

	rate := limiter.Rate{Period: cfg.AuthRateLimitPeriod, Limit: cfg.AuthRateLimitCount}
	authLimiter := limiter.New(memory.NewStore(), rate)

	auth := rg.Group("/auth")
	{
		auth.POST("/signup", middleware.RateLimit(authLimiter), h.signUp)
		auth.POST("/signin", middleware.RateLimit(authLimiter), h.signIn)
		auth.GET("/profile", middleware.AuthMiddleware(cfg.JWTSecret), h.getProfile)
	}
}
