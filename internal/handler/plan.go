package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zeynepecekiris/music-studio-AI-backend/internal/middleware"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/model"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/plan"
	"github.com/zeynepecekiris/music-studio-AI-backend/pkg/response"
)

type PlanHandler struct{}

func NewPlanHandler() *PlanHandler {
	return &PlanHandler{}
}

// planInfo is the limit record annotated with its plan name
type planInfo struct {
	Plan   model.PlanType `json:"plan"`
	Limits plan.Limits    `json:"limits"`
}

// Get handles GET /api/plans/:plan
// @Summary      Get plan limits
// @Description  Get the limit record for a subscription tier. Unknown plans return the free tier.
// @Tags         Plans
// @Produce      json
// @Param        plan path string true "Plan name"
// @Success      200 {object} planInfo
// @Security     BearerAuth
// @Router       /api/plans/{plan} [get]
func (h *PlanHandler) Get(c *fiber.Ctx) error {
	p := model.PlanType(c.Params("plan"))
	return response.OK(c, planInfo{
		Plan:   normalizedPlan(p),
		Limits: plan.ForPlan(p),
	})
}

// Me handles GET /api/plans/me
// @Summary      Get current user's plan limits
// @Description  Get the limit record for the authenticated user's subscription tier
// @Tags         Plans
// @Produce      json
// @Success      200 {object} planInfo
// @Failure      401 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/plans/me [get]
func (h *PlanHandler) Me(c *fiber.Ctx) error {
	p := middleware.GetUserPlan(c)
	return response.OK(c, planInfo{
		Plan:   p,
		Limits: plan.ForPlan(p),
	})
}

func normalizedPlan(p model.PlanType) model.PlanType {
	for _, valid := range model.ValidPlans {
		if p == valid {
			return p
		}
	}
	return model.PlanFree
}
