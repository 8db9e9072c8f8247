package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"member-service/app/port"
	"member-service/app/rest/handlers"
	custommw "member-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger        *slog.Logger
	AuthUsecase   port.AuthUsecase
	OAuthUsecase  port.OAuthUsecase
	MemberUsecase port.MemberUsecase
	HealthChecks  map[string]handlers.HealthChecker
	EnableDebug   bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.OAuthUsecase, config.Logger)
	memberHandler := handlers.NewMemberHandler(config.MemberUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Logger, config.HealthChecks)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.AuthUsecase, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	member := v1.Group("/member")

	// Public endpoints
	member.POST("/signup", authHandler.SignUp)
	member.POST("/login", authHandler.Login)
	member.GET("/login/kakao", authHandler.KakaoAuthorize)
	member.GET("/login/kakao/callback", authHandler.KakaoCallback)
	member.POST("/reissue", authHandler.Reissue)
	member.POST("/password", authHandler.ResetPassword)

	// Profile pages are public but show more to their owner
	member.GET("/mypage/:nickname", memberHandler.Mypage, authMiddleware.OptionalAuth())
	member.GET("/:nickname/hobby", memberHandler.HobbyList, authMiddleware.OptionalAuth())

	// Protected endpoints
	protected := member.Group("")
	protected.Use(authMiddleware.RequireAuth())
	protected.POST("/logout", authHandler.Logout)
	protected.PUT("/mypage", memberHandler.UpdateProfile)
	protected.POST("/resign", memberHandler.Resign)
	protected.GET("/pending", memberHandler.PendingList)

	return e
}
