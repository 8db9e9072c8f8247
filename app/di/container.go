package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"member-service/app/config"
	"member-service/app/driver/kakao"
	"member-service/app/driver/mail"
	"member-service/app/driver/postgres"
	"member-service/app/driver/redis"
	"member-service/app/driver/s3"
	"member-service/app/gateway"
	"member-service/app/port"
	"member-service/app/rest"
	"member-service/app/rest/handlers"
	"member-service/app/usecase"
	"member-service/app/utils/token"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB          *postgres.DB
	Redis       *redis.Client
	KakaoClient *kakao.Client

	// Gateways
	OAuthGateway port.OAuthGateway
	MailSender   port.MailSender
	FileUploader port.FileUploader

	// Usecases
	AuthUsecase   port.AuthUsecase
	OAuthUsecase  port.OAuthUsecase
	MemberUsecase port.MemberUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.Redis, err = redis.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	container.KakaoClient, err = kakao.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize kakao client: %w", err)
	}

	container.MailSender, err = mail.NewMailer(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}

	container.FileUploader, err = s3.NewUploader(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize uploader: %w", err)
	}

	tokenProvider, err := token.NewProvider(cfg.TokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token provider: %w", err)
	}

	// Repositories and gateways
	memberRepository := postgres.NewMemberRepository(container.DB.Pool(), logger)
	hobbyRepository := postgres.NewHobbyRepository(container.DB.Pool(), logger)
	sessionCache := redis.NewSessionCache(container.Redis, logger)
	container.OAuthGateway = gateway.NewOAuthGateway(container.KakaoClient, logger)

	// Usecases
	container.AuthUsecase = usecase.NewAuthUseCase(memberRepository, tokenProvider, sessionCache, container.MailSender, logger)
	container.OAuthUsecase = usecase.NewOAuthUseCase(memberRepository, container.OAuthGateway, tokenProvider, sessionCache, logger)
	container.MemberUsecase = usecase.NewMemberUseCase(memberRepository, hobbyRepository, container.FileUploader, logger)

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:        c.Logger,
		AuthUsecase:   c.AuthUsecase,
		OAuthUsecase:  c.OAuthUsecase,
		MemberUsecase: c.MemberUsecase,
		HealthChecks: map[string]handlers.HealthChecker{
			"database": c.DB,
			"redis":    c.Redis,
		},
		EnableDebug: c.Config.LogLevel == "debug",
	}

	return rest.NewRouter(routerConfig)
}

// Close closes all resources
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("failed to close redis client", "error", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container closed")
	return nil
}
