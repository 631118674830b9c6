package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"github.com/zeynepecekiris/music-studio-AI-backend/internal/client"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/mapping"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/model"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/service"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/websocket"
)

// ComposeWorker processes async compose jobs. Plan entitlements were
// validated at enqueue time; the worker does not re-check them.
type ComposeWorker struct {
	composeService *service.ComposeService
	musicService   *service.MusicService
	hub            *websocket.Hub
}

// NewComposeWorker creates a new compose worker
func NewComposeWorker(composeService *service.ComposeService, musicService *service.MusicService, hub *websocket.Hub) *ComposeWorker {
	return &ComposeWorker{
		composeService: composeService,
		musicService:   musicService,
		hub:            hub,
	}
}

// ProcessTask handles compose task processing
func (w *ComposeWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var taskPayload struct {
		JobID   string          `json:"jobId"`
		Payload json.RawMessage `json:"payload"`
	}

	if err := json.Unmarshal(t.Payload(), &taskPayload); err != nil {
		return fmt.Errorf("failed to unmarshal task payload: %w", err)
	}

	jobID := taskPayload.JobID
	log.Printf("Starting compose job: %s", jobID)

	var payload model.ComposeJobPayload
	if err := json.Unmarshal(taskPayload.Payload, &payload); err != nil {
		w.failJob(ctx, jobID, "Invalid payload")
		return fmt.Errorf("failed to unmarshal compose payload: %w", err)
	}

	if w.composeService.IsCanceled(ctx, jobID) {
		log.Printf("Compose job %s canceled before start", jobID)
		return nil
	}

	// Step 1: Map config to the composition payload
	w.updateProgress(ctx, jobID, 10, "Mapping configuration...")
	cfg := payload.Config
	cfg.ApplyDefaults()
	composePayload := mapping.MapToMusicAPI(&cfg)

	// Step 2: Compose
	w.updateProgress(ctx, jobID, 25, "Composing music...")
	audio, contentType, err := w.musicService.Compose(ctx, composePayload, payload.Lyrics)
	if err != nil {
		var safetyErr *client.PromptSafetyError
		if errors.As(err, &safetyErr) {
			msg := safetyErr.Message
			if safetyErr.Suggestion != "" {
				msg = fmt.Sprintf("%s (suggestion: %s)", safetyErr.Message, safetyErr.Suggestion)
			}
			w.failJob(ctx, jobID, msg)
			// Safety rejections are permanent; retrying the same prompt cannot succeed
			return nil
		}
		w.failJob(ctx, jobID, fmt.Sprintf("Composition failed: %v", err))
		return err
	}

	if w.composeService.IsCanceled(ctx, jobID) {
		log.Printf("Compose job %s canceled after composition", jobID)
		return nil
	}

	// Step 3: Upload
	w.updateProgress(ctx, jobID, 80, "Uploading track...")
	url, err := w.musicService.Store(ctx, payload.SongID, audio, contentType)
	if err != nil {
		w.failJob(ctx, jobID, fmt.Sprintf("Upload failed: %v", err))
		return err
	}

	// Step 4: Finalize
	w.updateProgress(ctx, jobID, 95, "Finalizing...")
	result := &model.MusicGenerateResponse{
		ID:        payload.SongID,
		Status:    "completed",
		URLMaster: url,
		Stems:     map[string]string{"master": url},
		Meta: model.MusicMeta{
			Genre:            composePayload.Genre,
			BPM:              composePayload.BPM,
			KeySignature:     composePayload.KeySignature,
			TimeSignature:    composePayload.TimeSignature,
			DurationSeconds:  composePayload.DurationSeconds,
			Voice:            composePayload.Voice,
			InstrumentPreset: composePayload.InstrumentPreset,
		},
		CreatedAt: time.Now(),
		FileSize:  int64(len(audio)),
	}

	if err := w.composeService.CompleteJob(ctx, jobID, result); err != nil {
		w.failJob(ctx, jobID, "Failed to save result")
		return err
	}

	w.hub.BroadcastComplete(jobID, result)
	log.Printf("Compose job %s completed", jobID)
	return nil
}

func (w *ComposeWorker) updateProgress(ctx context.Context, jobID string, progress int, step string) {
	if err := w.composeService.UpdateJobProgress(ctx, jobID, progress, step); err != nil {
		log.Printf("Failed to update progress: %v", err)
	}
	w.hub.BroadcastProgress(jobID, progress, model.JobStatusRunning, step)
}

func (w *ComposeWorker) failJob(ctx context.Context, jobID, errMsg string) {
	if err := w.composeService.FailJob(ctx, jobID, errMsg); err != nil {
		log.Printf("Failed to mark job as failed: %v", err)
	}
	w.hub.BroadcastError(jobID, "COMPOSE_FAILED", errMsg)
}
