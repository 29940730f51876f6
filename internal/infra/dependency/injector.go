// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ecommerce/backend/config"
	"github.com/ecommerce/backend/internal/application/adapter"
	"github.com/ecommerce/backend/internal/application/usecase/auth"
	"github.com/ecommerce/backend/internal/infra/server/router"
	"github.com/ecommerce/backend/internal/integration/adapters"
	"github.com/ecommerce/backend/internal/integration/entrypoint/controller"
	"github.com/ecommerce/backend/internal/integration/entrypoint/middleware"
	"github.com/ecommerce/backend/internal/integration/persistence"
)

// ErrMissingSecret is returned when no token signing secret is configured.
var ErrMissingSecret = errors.New("jwt secret must not be empty")

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case login attempts are only audited to the log.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	return NewInjectorWithClock(cfg, db, redisClient, time.Now)
}

// NewInjectorWithClock is NewInjector with the token clock replaced.
func NewInjectorWithClock(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, now func() time.Time) (*Injector, error) {
	if cfg.JWT.Secret == "" {
		return nil, ErrMissingSecret
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordServiceWithCost(cfg.Auth.BcryptCost)
	passwordValidator := adapters.NewPasswordValidator()
	tokenService := adapters.NewTokenServiceWithClock(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer, now)
	credentialVerifier, err := adapters.NewCredentialVerifier(userRepo, passwordService)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential verifier: %w", err)
	}

	// Audit sinks: the log always, Redis when configured
	auditSinks := []adapter.AuditLog{adapters.NewSlogAuditLog(slog.Default())}
	if redisClient != nil {
		auditSinks = append(auditSinks, persistence.NewAuditLogRepository(redisClient, cfg.Redis.AuditKey, cfg.Redis.AuditMaxSize))
	}
	auditLog := adapters.NewMultiAuditLog(auditSinks...)

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(credentialVerifier, tokenService, auditLog)
	authorizeUseCase := auth.NewAuthorizeRequestUseCase(tokenService, cfg.Auth.TokenPrefix)
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, passwordValidator)
	getUserUseCase := auth.NewGetUserUseCase(userRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker(db), redisHealthChecker(redisClient))
	userController := controller.NewUserController(registerUseCase, getUserUseCase)

	// Create middleware
	authGate := middleware.NewAuthenticationGate(loginUseCase, authorizeUseCase, cfg.Auth.HeaderName, cfg.Auth.TokenPrefix)

	// Create router
	r := router.NewRouter(healthController, userController, authGate)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}, nil
}

func dbHealthChecker(db *gorm.DB) func() bool {
	return func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}
}

func redisHealthChecker(client *redis.Client) func() bool {
	if client == nil {
		return nil
	}
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(ctx).Err() == nil
	}
}
