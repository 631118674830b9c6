package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/zeynepecekiris/music-studio-AI-backend/internal/auth"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/model"
	"github.com/zeynepecekiris/music-studio-AI-backend/pkg/response"
)

// AuthMiddleware authenticates API requests in direct (non-gateway)
// deployments. OIDC tokens are verified against the provider's JWKS;
// legacy HMAC tokens are accepted when a shared secret is configured.
type AuthMiddleware struct {
	verifier  auth.TokenVerifier
	jwtSecret string
}

// NewAuthMiddleware verifies OIDC tokens only
func NewAuthMiddleware(verifier auth.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// NewAuthMiddlewareWithFallback verifies OIDC tokens, falling back to
// legacy HMAC tokens while old sessions drain
func NewAuthMiddlewareWithFallback(verifier auth.TokenVerifier, jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, jwtSecret: jwtSecret}
}

// NewLegacyAuthMiddleware verifies HMAC tokens only (dev and tests)
func NewLegacyAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: jwtSecret}
}

// Authenticate validates the bearer token and stores the caller's
// identity and plan in the request locals.
func (m *AuthMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return response.Unauthorized(c, "Missing authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return response.Unauthorized(c, "Invalid authorization header format")
		}
		token := parts[1]

		if m.verifier != nil {
			claims, err := m.verifier.Validate(token)
			if err == nil {
				c.Locals("userId", claims.UserID)
				c.Locals("email", claims.Email)
				c.Locals("name", claims.Name)
				c.Locals("plan", normalizePlan(claims.Plan))
				c.Locals("claims", claims)
				return c.Next()
			}
			if m.jwtSecret == "" {
				return response.Unauthorized(c, "Invalid or expired token")
			}
		}

		if m.jwtSecret != "" {
			claims, err := auth.ValidateLegacyToken(token, m.jwtSecret)
			if err != nil {
				return response.Unauthorized(c, "Invalid or expired token")
			}
			c.Locals("userId", claims.UserID)
			c.Locals("email", claims.Email)
			c.Locals("plan", claims.PlanType())
			c.Locals("claims", claims)
			return c.Next()
		}

		return response.Unauthorized(c, "Authentication not configured")
	}
}

// normalizePlan maps an arbitrary plan claim onto a known tier,
// defaulting to free
func normalizePlan(plan string) model.PlanType {
	p := model.PlanType(plan)
	for _, valid := range model.ValidPlans {
		if p == valid {
			return p
		}
	}
	return model.PlanFree
}

// GetUserID returns the authenticated user's ID, or ""
func GetUserID(c *fiber.Ctx) string {
	if userID, ok := c.Locals("userId").(string); ok {
		return userID
	}
	return ""
}

// GetUserEmail returns the authenticated user's email, or ""
func GetUserEmail(c *fiber.Ctx) string {
	if email, ok := c.Locals("email").(string); ok {
		return email
	}
	return ""
}

// GetUserName returns the authenticated user's display name, or ""
func GetUserName(c *fiber.Ctx) string {
	if name, ok := c.Locals("name").(string); ok {
		return name
	}
	return ""
}

// GetUserPlan returns the caller's subscription tier. Requests that
// somehow reached a handler without auth resolve to the free tier.
func GetUserPlan(c *fiber.Ctx) model.PlanType {
	if plan, ok := c.Locals("plan").(model.PlanType); ok {
		return plan
	}
	return model.PlanFree
}

// GenerateToken issues a legacy HMAC token carrying the plan claim.
// Used by dev tooling and tests.
func (m *AuthMiddleware) GenerateToken(userID, email string, plan model.PlanType) (string, error) {
	if m.jwtSecret == "" {
		return "", jwt.ErrTokenNotValidYet
	}

	claims := auth.LegacyClaims{
		UserID: userID,
		Email:  email,
		Plan:   string(plan),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "music-studio-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.jwtSecret))
}
