package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zeynepecekiris/music-studio-AI-backend/internal/client"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/mapping"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/model"
	"github.com/zeynepecekiris/music-studio-AI-backend/internal/plan"
)

// MusicService runs the full generation pipeline: plan validation, config
// mapping, composition and storage.
type MusicService struct {
	composer client.MusicComposer
	storage  client.StorageClient
}

// NewMusicService creates a new music service
func NewMusicService(composer client.MusicComposer, storage client.StorageClient) *MusicService {
	return &MusicService{
		composer: composer,
		storage:  storage,
	}
}

// Generate runs the synchronous pipeline. Plan violations surface as
// *plan.LimitExceededError and safety rejections as
// *client.PromptSafetyError; the handler maps both to 400s.
func (s *MusicService) Generate(ctx context.Context, req *model.MusicGenerateRequest, planType model.PlanType) (*model.MusicGenerateResponse, error) {
	cfg := &req.Config
	cfg.ApplyDefaults()

	if err := plan.Validate(cfg, planType); err != nil {
		return nil, err
	}

	payload := mapping.MapToMusicAPI(cfg)

	songID := uuid.New().String()

	audio, contentType, err := s.compose(ctx, payload, req.Lyrics)
	if err != nil {
		return nil, err
	}

	key := storageKey(songID)
	url, err := s.storage.Upload(ctx, key, bytes.NewReader(audio), contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store audio: %w", err)
	}

	log.Printf("Music generated: id=%s genre=%s duration=%ds size=%d", songID, payload.Genre, payload.DurationSeconds, len(audio))

	return &model.MusicGenerateResponse{
		ID:        songID,
		Status:    "completed",
		URLMaster: url,
		Stems:     stemURLs(payload.Stems, url),
		Meta:      payloadMeta(payload),
		CreatedAt: time.Now(),
		FileSize:  int64(len(audio)),
	}, nil
}

// Compose maps the config and produces the track bytes without storing
// them. Used by the async worker, which handles storage and progress
// reporting itself.
func (s *MusicService) Compose(ctx context.Context, payload *model.ComposePayload, lyrics string) ([]byte, string, error) {
	return s.compose(ctx, payload, lyrics)
}

// Store uploads finished audio under the song's storage key
func (s *MusicService) Store(ctx context.Context, songID string, audio []byte, contentType string) (string, error) {
	return s.storage.Upload(ctx, storageKey(songID), bytes.NewReader(audio), contentType)
}

// Download fetches a stored track by its ID
func (s *MusicService) Download(ctx context.Context, audioID string) ([]byte, string, error) {
	return s.storage.Download(ctx, storageKey(audioID))
}

func (s *MusicService) compose(ctx context.Context, payload *model.ComposePayload, lyrics string) ([]byte, string, error) {
	if s.composer == nil || !s.composer.IsConfigured() {
		return s.mockAudio(payload), "audio/mpeg", nil
	}

	result, err := s.composer.Compose(ctx, &client.ComposeRequest{
		Prompt:        buildComposePrompt(payload, lyrics),
		MusicLengthMs: payload.DurationSeconds * 1000,
	})
	if err != nil {
		return nil, "", err
	}

	return result.Audio, result.ContentType, nil
}

// buildComposePrompt renders the normalized payload plus lyrics into the
// composition API's free-text prompt
func buildComposePrompt(payload *model.ComposePayload, lyrics string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Genre: %s. ", payload.Genre)
	fmt.Fprintf(&b, "Tempo: %d BPM, %s, %s time. ", payload.BPM, payload.KeySignature, payload.TimeSignature)
	fmt.Fprintf(&b, "Voice: %s. Instruments: %s. ", payload.Voice, payload.InstrumentPreset)
	if len(payload.Hooks) > 0 {
		fmt.Fprintf(&b, "Hooks: %s. ", strings.Join(payload.Hooks, ", "))
	}
	fmt.Fprintf(&b, "Duration: %d seconds.\n\nLyrics:\n%s", payload.DurationSeconds, lyrics)

	return b.String()
}

// payloadMeta extracts the response metadata from a mapped payload
func payloadMeta(payload *model.ComposePayload) model.MusicMeta {
	return model.MusicMeta{
		Genre:            payload.Genre,
		BPM:              payload.BPM,
		KeySignature:     payload.KeySignature,
		TimeSignature:    payload.TimeSignature,
		DurationSeconds:  payload.DurationSeconds,
		Voice:            payload.Voice,
		InstrumentPreset: payload.InstrumentPreset,
	}
}

// stemURLs maps requested stems to their URLs. Only the master is rendered
// as a separate file today; other stems point at the master track.
func stemURLs(stems []string, masterURL string) map[string]string {
	urls := make(map[string]string, len(stems))
	for _, stem := range stems {
		urls[stem] = masterURL
	}
	return urls
}

func storageKey(songID string) string {
	return fmt.Sprintf("music/%s.mp3", songID)
}

// mockAudio produces a deterministic placeholder MP3 when no composition
// client is configured. The header bytes make the file recognizable as
// MPEG audio to clients that sniff content.
func (s *MusicService) mockAudio(payload *model.ComposePayload) []byte {
	frame := []byte{0xFF, 0xFB, 0x90, 0x00}
	// ~1 frame per 26ms at 128kbps; enough frames to be proportional to duration
	frames := payload.DurationSeconds * 38

	buf := make([]byte, 0, frames*len(frame))
	for i := 0; i < frames; i++ {
		buf = append(buf, frame...)
	}
	return buf
}
