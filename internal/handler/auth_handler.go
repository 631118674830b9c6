package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/zeynepecekiris/music-studio-AI-backend/internal/auth"
)

// AuthHandler answers Traefik ForwardAuth checks. On success it sets the
// X-User-* identity headers the gateway forwards to the API, including the
// subscription plan used for entitlement checks.
type AuthHandler struct {
	verifier  auth.TokenVerifier
	jwtSecret string
}

func NewAuthHandler(verifier auth.TokenVerifier, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		verifier:  verifier,
		jwtSecret: jwtSecret,
	}
}

// Verify handles GET /auth/verify. OIDC tokens are tried first; legacy
// HMAC tokens are accepted as a fallback while old sessions drain.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	if h.verifier != nil {
		if claims, err := h.verifier.Validate(token); err == nil {
			c.Set("X-User-Id", claims.UserID)
			c.Set("X-User-Email", claims.Email)
			c.Set("X-User-Name", claims.Name)
			c.Set("X-User-Plan", claims.Plan)
			return c.SendStatus(fiber.StatusOK)
		}
	}

	if h.jwtSecret != "" {
		if claims, err := auth.ValidateLegacyToken(token, h.jwtSecret); err == nil {
			c.Set("X-User-Id", claims.UserID)
			c.Set("X-User-Email", claims.Email)
			c.Set("X-User-Plan", string(claims.PlanType()))
			return c.SendStatus(fiber.StatusOK)
		}
	}

	return c.SendStatus(fiber.StatusUnauthorized)
}

// bearerToken extracts the token from the Authorization header, or ""
func bearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
