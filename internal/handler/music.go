package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/zeynepecekiris/music-studio-AI-backend/internal/client"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/middleware"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/model"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/plan"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/service"
	"github.com/zeynepecekiris/music-studio-AI-backend/pkg/response"
)

type MusicHandler struct {
	musicService   *service.MusicService
	composeService *service.ComposeService
	validator      *validator.Validate
}

func NewMusicHandler(musicSvc *service.MusicService, composeSvc *service.ComposeService, v *validator.Validate) *MusicHandler {
	return &MusicHandler{
		musicService:   musicSvc,
		composeService: composeSvc,
		validator:      v,
	}
}

// Generate handles POST /api/music/generate
// @Summary      Generate music
// @Description  Run the full generation pipeline synchronously and return the track URL
// @Tags         Music
// @Accept       json
// @Produce      json
// @Param        request body model.MusicGenerateRequest true "Generate request"
// @Success      200 {object} model.MusicGenerateResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      429 {object} response.ErrorResponse
// @Failure      502 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/music/generate [post]
func (h *MusicHandler) Generate(c *fiber.Ctx) error {
	var req model.MusicGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	req.Config.ApplyDefaults()
	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	planType := middleware.GetUserPlan(c)

	result, err := h.musicService.Generate(c.Context(), &req, planType)
	if err != nil {
		return mapGenerateError(c, err, planType)
	}

	return response.OK(c, result)
}

// GenerateAsync handles POST /api/music/generate-async
// @Summary      Start async music generation
// @Description  Queue a compose job and return its job ID
// @Tags         Music
// @Accept       json
// @Produce      json
// @Param        request body model.MusicGenerateRequest true "Generate request"
// @Success      202 {object} model.ComposeStartResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      429 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/music/generate-async [post]
func (h *MusicHandler) GenerateAsync(c *fiber.Ctx) error {
	var req model.MusicGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body", nil)
	}

	req.Config.ApplyDefaults()
	if err := h.validator.Struct(&req); err != nil {
		return response.ValidationError(c, "Validation failed", formatValidationErrors(err))
	}

	planType := middleware.GetUserPlan(c)

	// Entitlements are checked here, once; the worker trusts the payload
	if err := plan.Validate(&req.Config, planType); err != nil {
		return mapGenerateError(c, err, planType)
	}

	payload := &model.ComposeJobPayload{
		SongID: uuid.New().String(),
		Plan:   planType,
		Lyrics: req.Lyrics,
		Config: req.Config,
	}

	result, err := h.composeService.StartCompose(c.Context(), payload)
	if err != nil {
		return response.ServiceError(c, err.Error())
	}

	return response.Accepted(c, result)
}

// Status handles GET /api/music/status/:jobId
// @Summary      Get compose job status
// @Description  Get the current status and progress of a compose job
// @Tags         Music
// @Produce      json
// @Param        jobId path string true "Job ID"
// @Success      200 {object} model.ComposeStatusResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/music/status/{jobId} [get]
func (h *MusicHandler) Status(c *fiber.Ctx) error {
	jobID := c.Params("jobId")
	if jobID == "" {
		return response.ValidationError(c, "Job ID is required", nil)
	}

	result, err := h.composeService.GetStatus(c.Context(), jobID)
	if err != nil {
		if err.Error() == "job not found" {
			return response.NotFound(c, "Job not found")
		}
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, result)
}

// Result handles GET /api/music/result/:jobId
// @Summary      Get compose job result
// @Description  Get the finished track of a completed compose job
// @Tags         Music
// @Produce      json
// @Param        jobId path string true "Job ID"
// @Success      200 {object} model.MusicGenerateResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/music/result/{jobId} [get]
func (h *MusicHandler) Result(c *fiber.Ctx) error {
	jobID := c.Params("jobId")
	if jobID == "" {
		return response.ValidationError(c, "Job ID is required", nil)
	}

	result, err := h.composeService.GetResult(c.Context(), jobID)
	if err != nil {
		if err.Error() == "job not found" {
			return response.NotFound(c, "Job not found")
		}
		if err.Error() == "job not completed" {
			return response.ValidationError(c, "Job not completed yet", nil)
		}
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, result)
}

// Cancel handles POST /api/music/cancel/:jobId
// @Summary      Cancel compose job
// @Description  Cancel a running or queued compose job
// @Tags         Music
// @Produce      json
// @Param        jobId path string true "Job ID"
// @Success      200 {object} model.ComposeCancelResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/music/cancel/{jobId} [post]
func (h *MusicHandler) Cancel(c *fiber.Ctx) error {
	jobID := c.Params("jobId")
	if jobID == "" {
		return response.ValidationError(c, "Job ID is required", nil)
	}

	result, err := h.composeService.CancelCompose(c.Context(), jobID)
	if err != nil {
		if err.Error() == "job not found" {
			return response.NotFound(c, "Job not found")
		}
		if err.Error() == "job already completed" {
			return response.ValidationError(c, "Job already completed", nil)
		}
		return response.ServiceError(c, err.Error())
	}

	return response.OK(c, result)
}

// Download handles GET /api/music/download/:audioId
// @Summary      Download a generated track
// @Description  Stream the stored audio file for a completed generation
// @Tags         Music
// @Produce      audio/mpeg
// @Param        audioId path string true "Audio ID"
// @Success      200 {file} binary
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/music/download/{audioId} [get]
func (h *MusicHandler) Download(c *fiber.Ctx) error {
	audioID := c.Params("audioId")
	if audioID == "" {
		return response.ValidationError(c, "Audio ID is required", nil)
	}

	data, contentType, err := h.musicService.Download(c.Context(), audioID)
	if err != nil {
		return response.NotFound(c, "Audio not found")
	}

	c.Set("Content-Type", contentType)
	c.Set("Content-Disposition", `attachment; filename="`+audioID+`.mp3"`)
	return c.Send(data)
}

// CloneVoice handles POST /api/music/clone-voice
// @Summary      Clone voice
// @Description  Voice cloning is not supported by the current composition provider
// @Tags         Music
// @Produce      json
// @Failure      400 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /api/music/clone-voice [post]
func (h *MusicHandler) CloneVoice(c *fiber.Ctx) error {
	return response.Error(c, fiber.StatusBadRequest, response.CodeServiceError,
		"Voice cloning is not supported by the music generation API", nil)
}

// mapGenerateError translates pipeline errors to the proper error envelope
func mapGenerateError(c *fiber.Ctx, err error, planType model.PlanType) error {
	var limitErr *plan.LimitExceededError
	if errors.As(err, &limitErr) {
		return response.PlanLimit(c, limitErr.Message, fiber.Map{"plan": string(planType)})
	}

	var safetyErr *client.PromptSafetyError
	if errors.As(err, &safetyErr) {
		var details interface{}
		if safetyErr.Suggestion != "" {
			details = fiber.Map{"suggestion": safetyErr.Suggestion}
		}
		return response.BadPrompt(c, safetyErr.Message, details)
	}

	return response.AIError(c, err.Error())
}
