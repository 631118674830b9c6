package model

import "time"

// MusicGenerateRequest represents the request body for music generation,
// both sync and async. Lyrics come from a prior lyrics generation call.
type MusicGenerateRequest struct {
	Lyrics string         `json:"lyrics" validate:"required,min=10"`
	Config GenerateConfig `json:"config" validate:"required"`
}

// MusicMeta summarizes the resolved generation parameters returned to the
// caller alongside the audio URL.
type MusicMeta struct {
	Genre            string `json:"genre"`
	BPM              int    `json:"bpm"`
	KeySignature     string `json:"key_signature"`
	TimeSignature    string `json:"time_signature"`
	DurationSeconds  int    `json:"duration_seconds"`
	Voice            string `json:"voice"`
	InstrumentPreset string `json:"instrument_preset"`
}

// MusicGenerateResponse represents the response for synchronous music
// generation and for completed async compose jobs.
type MusicGenerateResponse struct {
	ID        string            `json:"id"`
	Status    string            `json:"status"`
	URLMaster string            `json:"url_master"`
	Stems     map[string]string `json:"stems"`
	Meta      MusicMeta         `json:"meta"`
	CreatedAt time.Time         `json:"created_at"`
	FileSize  int64             `json:"file_size,omitempty"`
}

// ComposeStartResponse is returned when an async compose job is queued
type ComposeStartResponse struct {
	JobID             string    `json:"jobId"`
	Status            JobStatus `json:"status"`
	EstimatedDuration int       `json:"estimatedDuration"` // seconds
	CreatedAt         time.Time `json:"createdAt"`
}

// ComposeStatusResponse describes the current state of a compose job
type ComposeStatusResponse struct {
	JobID       string     `json:"jobId"`
	Status      JobStatus  `json:"status"`
	Progress    int        `json:"progress"`
	CurrentStep string     `json:"currentStep,omitempty"`
	Error       *string    `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	RetryCount  int        `json:"retryCount"`
}

// ComposeCancelResponse is returned when a compose job is canceled
type ComposeCancelResponse struct {
	Success bool      `json:"success"`
	JobID   string    `json:"jobId"`
	Status  JobStatus `json:"status"`
}
