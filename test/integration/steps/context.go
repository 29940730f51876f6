// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecommerce/backend/config"
	"github.com/ecommerce/backend/internal/infra/dependency"
	"github.com/ecommerce/backend/internal/integration/persistence/model"
	"github.com/ecommerce/backend/test/integration/mock"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
	testAuditKey  = "test:auth:audit"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string

	// Backing stores
	db    *mock.Db
	redis *redis.Client
	clock *mock.Time

	// Config
	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerSetupSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerStoreSteps(ctx)
}

// newTestContext wires the full application against in-memory stores and a movable clock.
func newTestContext() (*TestContext, error) {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.JWT.Secret = testJWTSecret
	cfg.Auth.BcryptCost = bcrypt.MinCost
	cfg.Redis.AuditKey = testAuditKey

	database := mock.NewDb(&model.UserModel{})
	if err := database.ClearDB(); err != nil {
		return nil, fmt.Errorf("failed to clear database: %w", err)
	}

	redisClient := mock.NewRedis()
	if err := mock.ClearRedis(redisClient); err != nil {
		return nil, fmt.Errorf("failed to clear redis: %w", err)
	}

	clock := mock.NewTime()
	injector, err := dependency.NewInjectorWithClock(cfg, database.DbConn, redisClient, clock.Now)
	if err != nil {
		return nil, fmt.Errorf("failed to wire application: %w", err)
	}

	tc := &TestContext{
		requestHeaders: make(map[string]string),
		db:             database,
		redis:          redisClient,
		clock:          clock,
		cfg:            cfg,
	}
	tc.engine = injector.Router.Setup(cfg.Server.Environment)
	tc.server = httptest.NewServer(tc.engine)

	return tc, nil
}
