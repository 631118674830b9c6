// Package plan holds the subscription tier limit table and the entitlement
// validator that gates generation configs before they reach the mapping
// pipeline.
package plan

import (
	"fmt"
	"sort"

	"github.com/zeynepecekiris/music-studio-AI-backend/internal/model"
)

// Limits is the fixed limit record for a plan tier
type Limits struct {
	MaxDuration       int      `json:"max_duration"` // seconds
	AllowedStems      []string `json:"allowed_stems"`
	MasteringControls bool     `json:"mastering_controls"`
	MaxCreativity     float64  `json:"max_creativity"`
	BatchAllowed      bool     `json:"batch_allowed"`
}

var planLimits = map[model.PlanType]Limits{
	model.PlanFree: {
		MaxDuration:       90,
		AllowedStems:      []string{"master"},
		MasteringControls: false,
		MaxCreativity:     0.5,
		BatchAllowed:      false,
	},
	model.PlanPro: {
		MaxDuration:       150,
		AllowedStems:      []string{"master", "vocals", "instrumental"},
		MasteringControls: false,
		MaxCreativity:     0.75,
		BatchAllowed:      false,
	},
	model.PlanStudio: {
		MaxDuration:       210,
		AllowedStems:      []string{"master", "vocals", "drums", "bass", "instruments", "fx"},
		MasteringControls: true,
		MaxCreativity:     1.0,
		BatchAllowed:      false,
	},
	model.PlanLabel: {
		MaxDuration:       300,
		AllowedStems:      []string{"master", "vocals", "drums", "bass", "instruments", "fx", "midi"},
		MasteringControls: true,
		MaxCreativity:     1.0,
		BatchAllowed:      true,
	},
}

// LimitExceededError is returned when a config violates its plan's limits.
// The message is user-facing and includes upgrade guidance.
type LimitExceededError struct {
	Plan    model.PlanType
	Message string
}

func (e *LimitExceededError) Error() string {
	return e.Message
}

// ForPlan returns the limit record for a plan. Unknown plans fall back to
// the free tier.
func ForPlan(p model.PlanType) Limits {
	if limits, ok := planLimits[p]; ok {
		return limits
	}
	return planLimits[model.PlanFree]
}

// Validate checks a config against its plan's limits. Checks run in a fixed
// order and the first violation wins: duration, stems, mastering defaults,
// creativity. Returns nil when the config is within limits.
func Validate(cfg *model.GenerateConfig, p model.PlanType) error {
	limits := ForPlan(p)

	if cfg.Structure.DurationSec > limits.MaxDuration {
		return &LimitExceededError{
			Plan: p,
			Message: fmt.Sprintf(
				"Duration %ds exceeds %s plan limit of %ds. Upgrade to use longer durations.",
				cfg.Structure.DurationSec, p, limits.MaxDuration),
		}
	}

	if invalid := disallowedStems(cfg.Structure.Stems, limits.AllowedStems); len(invalid) > 0 {
		return &LimitExceededError{
			Plan: p,
			Message: fmt.Sprintf(
				"Stems %v not allowed in %s plan. Allowed stems: %v. Upgrade for more stems.",
				invalid, p, limits.AllowedStems),
		}
	}

	if !limits.MasteringControls {
		mastering := cfg.Production.Mastering
		width := model.DefaultStereoWidth
		if mastering.StereoWidth != nil {
			width = *mastering.StereoWidth
		}
		if mastering.TargetLUFS != model.DefaultTargetLUFS ||
			width != model.DefaultStereoWidth ||
			mastering.Limiter != model.DefaultLimiter {
			return &LimitExceededError{
				Plan: p,
				Message: fmt.Sprintf(
					"Mastering controls not available in %s plan. Upgrade to studio or label plan for custom mastering.",
					p),
			}
		}
	}

	creativity := 0.0
	if cfg.AI.Creativity != nil {
		creativity = *cfg.AI.Creativity
	}
	if creativity > limits.MaxCreativity {
		return &LimitExceededError{
			Plan: p,
			Message: fmt.Sprintf(
				"Creativity %g exceeds %s plan limit of %g. Upgrade for higher creativity.",
				creativity, p, limits.MaxCreativity),
		}
	}

	return nil
}

// disallowedStems returns requested stems that the plan does not allow,
// deduplicated and sorted for stable error messages.
func disallowedStems(requested, allowed []string) []string {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, s := range allowed {
		allowedSet[s] = struct{}{}
	}

	seen := make(map[string]struct{})
	var invalid []string
	for _, s := range requested {
		if _, ok := allowedSet[s]; ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		invalid = append(invalid, s)
	}

	sort.Strings(invalid)
	return invalid
}
