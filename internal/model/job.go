package model

import "time"

// Job represents a background job in the system
type Job struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Status      JobStatus  `json:"status"`
	Progress    int        `json:"progress"`
	CurrentStep string     `json:"currentStep,omitempty"`
	Error       *string    `json:"error,omitempty"`
	Payload     []byte     `json:"payload,omitempty"`
	Result      []byte     `json:"result,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	RetryCount  int        `json:"retryCount"`
}

// Job types
const (
	JobTypeCompose = "compose"
)

// ComposeJobPayload contains the data for an async compose job. The config
// has already passed plan validation at enqueue time; workers do not
// re-check entitlements.
type ComposeJobPayload struct {
	SongID string         `json:"songId"`
	Plan   PlanType       `json:"plan"`
	Lyrics string         `json:"lyrics,omitempty"`
	Config GenerateConfig `json:"config"`
}
