package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/zeynepecekiris/music-studio-AI-backend/internal/auth"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/client"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/config"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/handler"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/middleware"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/model"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/service"
)

const testJWTSecret = "test-secret-for-e2e"

// testApp holds all components needed for testing
type testApp struct {
	app *fiber.App
}

// setupApp creates a Fiber app identical to main.go but with unconfigured
// external clients, so all services take their mock/fallback paths. Audio
// lands in a per-test temp dir through the local storage client.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	// Redis (localhost — must be running)
	redisClient := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15, // use DB 15 for tests to avoid collision
	})

	// Asynq client
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr: "localhost:6379",
		DB:   15,
	})
	t.Cleanup(func() { asynqClient.Close() })

	validate := model.NewValidator()

	// External clients — no API keys, so services use mock fallbacks
	openaiClient := client.NewOpenAIClient(&config.OpenAIConfig{})
	elevenLabsClient := client.NewElevenLabsClient(&config.ElevenLabsConfig{})
	storage := client.NewLocalStorage(t.TempDir(), "")

	// Services
	lyricsService := service.NewLyricsService(openaiClient)
	musicService := service.NewMusicService(elevenLabsClient, storage)
	composeService := service.NewComposeService(redisClient, asynqClient)

	// Handlers
	lyricsHandler := handler.NewLyricsHandler(lyricsService, validate)
	musicHandler := handler.NewMusicHandler(musicService, composeService, validate)
	planHandler := handler.NewPlanHandler()

	// Auth handler (for /auth/verify)
	authHandler := handler.NewAuthHandler(nil, testJWTSecret)

	// Auth middleware — legacy HMAC only
	authMiddleware := middleware.NewLegacyAuthMiddleware(testJWTSecret)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024,
	})

	// Base routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"timestamp": 1234567890})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"services": fiber.Map{
				"openai":     false,
				"elevenlabs": false,
				"storage":    true,
				"auth":       true,
			},
		})
	})
	app.Get("/auth/verify", authHandler.Verify)

	// API routes (authenticated)
	api := app.Group("/api", authMiddleware.Authenticate())

	// Use very high rate limits so tests don't get blocked
	lyrics := api.Group("/lyrics", rateLimiter.LyricsLimit(10000))
	lyrics.Post("/generate", lyricsHandler.Generate)
	lyrics.Post("/improve", lyricsHandler.Improve)
	lyrics.Post("/title", lyricsHandler.Title)

	music := api.Group("/music")
	music.Post("/generate", rateLimiter.MusicLimit(10000), musicHandler.Generate)
	music.Post("/generate-async", rateLimiter.MusicLimit(10000), musicHandler.GenerateAsync)
	music.Get("/status/:jobId", musicHandler.Status)
	music.Get("/result/:jobId", musicHandler.Result)
	music.Post("/cancel/:jobId", musicHandler.Cancel)
	music.Get("/download/:audioId", musicHandler.Download)
	music.Post("/clone-voice", musicHandler.CloneVoice)

	plans := api.Group("/plans")
	plans.Get("/me", planHandler.Me)
	plans.Get("/:plan", planHandler.Get)

	return &testApp{app: app}
}

// generateToken creates a legacy HMAC JWT token carrying the given plan.
func generateToken(t *testing.T, plan model.PlanType) string {
	t.Helper()
	claims := auth.LegacyClaims{
		UserID: "test-user-123",
		Email:  "test@example.com",
		Plan:   string(plan),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "music-studio-api",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}
	return signed
}

// doRequest is a helper to perform HTTP requests against the test app.
func doRequest(app *fiber.App, method, path string, body string, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, path, bodyReader)
	if err != nil {
		return nil, err
	}

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.Test(req, -1)
}

// doAuthRequest performs an authenticated request on the free plan.
func doAuthRequest(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, error) {
	t.Helper()
	return doPlanRequest(t, app, method, path, body, model.PlanFree)
}

// doPlanRequest performs an authenticated request with a specific plan claim.
func doPlanRequest(t *testing.T, app *fiber.App, method, path, body string, plan model.PlanType) (*http.Response, error) {
	t.Helper()
	token := generateToken(t, plan)
	return doRequest(app, method, path, body, map[string]string{
		"Authorization": "Bearer " + token,
	})
}

// readBody reads and returns the response body as a string.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(b)
}

// parseJSON parses response body into a map.
func parseJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	body := readBody(t, resp)
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, body)
	}
	return result
}

// assertStatus checks the HTTP status code.
func assertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("expected status %d, got %d", expected, resp.StatusCode)
	}
}

// assertErrorCode checks the error envelope code.
func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatal("expected error object in response")
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %s, got %v", code, errObj["code"])
	}
}
