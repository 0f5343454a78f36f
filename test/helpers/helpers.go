// test/helpers/helpers.go
package helpers

import (
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/avidela/catalog-be/internal/core/domain"
	"github.com/avidela/catalog-be/internal/pkg/config"
)

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestRedis creates an in-process Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Cache: config.CacheConfig{
			Enabled: false,
			Host:    "localhost",
			Port:    "6379",
			TTL:     time.Minute,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8000",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestPayload creates a valid create payload
func CreateTestPayload(overrides ...func(*domain.ItemCreate)) domain.ItemCreate {
	payload := domain.ItemCreate{
		Name:        "Test Victorian Tea Set",
		Description: StrPtr("Antique porcelain tea set, circa 1890"),
		Price:       150.00,
		Quantity:    IntPtr(2),
	}

	for _, override := range overrides {
		override(&payload)
	}

	return payload
}

// CreateTestItem creates a test item record
func CreateTestItem(overrides ...func(*domain.Item)) domain.Item {
	item := domain.Item{
		ID:          1,
		Name:        "Test Victorian Tea Set",
		Description: StrPtr("Antique porcelain tea set, circa 1890"),
		Price:       150.00,
		Quantity:    2,
	}

	for _, override := range overrides {
		override(&item)
	}

	return item
}

// CreateTestPayloads creates multiple valid create payloads
func CreateTestPayloads(count int) []domain.ItemCreate {
	payloads := make([]domain.ItemCreate, count)
	for i := 0; i < count; i++ {
		payloads[i] = CreateTestPayload(func(p *domain.ItemCreate) {
			p.Name = fmt.Sprintf("Test Item %d", i+1)
			p.Price = float64(100 + i*50)
			p.Quantity = IntPtr(i % 3)
		})
	}
	return payloads
}

// StrPtr returns a pointer to the given string
func StrPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to the given int
func IntPtr(i int) *int {
	return &i
}

// Float64Ptr returns a pointer to the given float64
func Float64Ptr(f float64) *float64 {
	return &f
}

// BoolPtr returns a pointer to the given bool
func BoolPtr(b bool) *bool {
	return &b
}
