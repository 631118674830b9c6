package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/zeynepecekiris/music-studio-AI-backend/internal/model"
)

// LegacyClaims represents legacy JWT claims (HMAC-signed tokens). Plan is
// the subscription tier; tokens minted before plans were introduced omit it
// and resolve to free.
type LegacyClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Plan   string `json:"plan,omitempty"`
	jwt.RegisteredClaims
}

// PlanType returns the claim's plan, defaulting to free when absent or unknown
func (c *LegacyClaims) PlanType() model.PlanType {
	p := model.PlanType(c.Plan)
	for _, valid := range model.ValidPlans {
		if p == valid {
			return p
		}
	}
	return model.PlanFree
}

// ValidateLegacyToken validates a token using HMAC signing
func ValidateLegacyToken(tokenString, secret string) (*LegacyClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &LegacyClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*LegacyClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
