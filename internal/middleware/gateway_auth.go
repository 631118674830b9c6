package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zeynepecekiris/music-studio-AI-backend/pkg/response"
)

// Identity headers injected by the gateway after ForwardAuth succeeds.
const (
	headerUserID    = "X-User-Id"
	headerUserEmail = "X-User-Email"
	headerUserName  = "X-User-Name"
	headerUserPlan  = "X-User-Plan"
)

// GatewayAuthMiddleware trusts the identity headers set by Traefik
// ForwardAuth. Only usable when the API is not directly reachable;
// direct deployments must use AuthMiddleware instead.
func GatewayAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get(headerUserID)
		if userID == "" {
			return response.Unauthorized(c, "Missing user identity headers")
		}

		c.Locals("userId", userID)
		c.Locals("email", c.Get(headerUserEmail))
		c.Locals("name", c.Get(headerUserName))
		c.Locals("plan", normalizePlan(c.Get(headerUserPlan)))

		return c.Next()
	}
}
