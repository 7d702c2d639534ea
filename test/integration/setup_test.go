//go:build integration

package integration

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/linskybing/freelance-market/internal/api/middleware"
	"github.com/linskybing/freelance-market/internal/api/routes"
	"github.com/linskybing/freelance-market/internal/application"
	"github.com/linskybing/freelance-market/internal/config"
	"github.com/linskybing/freelance-market/internal/config/db"
	"github.com/linskybing/freelance-market/internal/realtime"
	"github.com/linskybing/freelance-market/internal/repository"
	"github.com/linskybing/freelance-market/pkg/response"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	adminEmail    = "admin@integration.test"
	adminPassword = "integration-admin"
)

type TestContext struct {
	Router   *gin.Engine
	Services *application.Services
}

var testCtx *TestContext

func TestMain(m *testing.M) {
	cleanup, err := setupTestEnvironment()
	if err != nil {
		log.Fatalf("Failed to setup test environment: %v", err)
	}

	code := m.Run()

	cleanup()
	os.Exit(code)
}

// startPostgres uses TEST_DB_HOST when set, otherwise a throwaway container.
func startPostgres(ctx context.Context) (func(), error) {
	if host := os.Getenv("TEST_DB_HOST"); host != "" {
		_ = os.Setenv("DB_HOST", host)
		_ = os.Setenv("DB_PORT", getEnvOrDefault("TEST_DB_PORT", "5432"))
		_ = os.Setenv("DB_USER", getEnvOrDefault("TEST_DB_USER", "postgres"))
		_ = os.Setenv("DB_PASSWORD", getEnvOrDefault("TEST_DB_PASSWORD", "postgres"))
		_ = os.Setenv("DB_NAME", getEnvOrDefault("TEST_DB_NAME", "marketplace_test"))
		return func() {}, nil
	}

	req := testcontainers.ContainerRequest{
		Image: "postgres:16-alpine",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "marketplace",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("start postgres: %w", err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		return nil, err
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		return nil, err
	}

	_ = os.Setenv("DB_HOST", host)
	_ = os.Setenv("DB_PORT", port.Port())
	_ = os.Setenv("DB_USER", "test")
	_ = os.Setenv("DB_PASSWORD", "test")
	_ = os.Setenv("DB_NAME", "marketplace")

	return func() { _ = pg.Terminate(ctx) }, nil
}

func setupTestEnvironment() (func(), error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	ctx := context.Background()
	stopDB, err := startPostgres(ctx)
	if err != nil {
		return nil, err
	}

	_ = os.Setenv("JWT_SECRET", "test-secret-key-for-integration-testing")
	_ = os.Setenv("RESERVED_ADMIN_EMAIL", adminEmail)

	config.LoadConfig()
	middleware.Init()

	if err := db.Init(); err != nil {
		stopDB()
		return nil, err
	}
	if err := db.DB.Migrator().DropTable(db.Models()...); err != nil {
		stopDB()
		return nil, fmt.Errorf("failed to drop tables: %v", err)
	}
	if err := db.Migrate(db.DB); err != nil {
		stopDB()
		return nil, err
	}

	repos := repository.NewRepositories(db.DB)
	hub := realtime.NewHub()
	services := application.New(repos, application.Deps{
		Publisher:          hub,
		Policy:             config.DefaultPolicy(),
		ReservedAdminEmail: config.ReservedAdminEmail,
		TokenLifetime:      time.Hour,
	})
	if _, _, err := services.Account.EnsureAdmin(ctx, adminEmail, adminPassword, "Integration Admin"); err != nil {
		stopDB()
		return nil, err
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.RegisterRoutes(router, repos, services, hub)

	testCtx = &TestContext{Router: router, Services: services}
	return stopDB, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetTestContext() *TestContext {
	return testCtx
}

// login returns a client carrying the token issued for the credentials.
func login(t *testing.T, email, password string) *HTTPClient {
	t.Helper()
	resp, err := NewHTTPClient(testCtx.Router, "").POST("/api/auth/login", map[string]string{
		"email": email, "password": password,
	})
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s failed: %v %s", email, err, resp.Body)
	}
	var tok response.TokenResponse
	if err := resp.DecodeJSON(&tok); err != nil {
		t.Fatalf("decode token: %v", err)
	}
	return NewHTTPClient(testCtx.Router, tok.Token)
}

func register(t *testing.T, name, email, password, role string) {
	t.Helper()
	resp, err := NewHTTPClient(testCtx.Router, "").POST("/api/auth/register", map[string]string{
		"name": name, "email": email, "password": password, "role": role,
	})
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s failed: %v %s", email, err, resp.Body)
	}
}
