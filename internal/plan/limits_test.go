package plan

import (
	"strings"
	"testing"

	"github.com/zeynepecekiris/music-studio-AI-backend/internal/model"
)

func validConfig() *model.GenerateConfig {
	cfg := &model.GenerateConfig{
		Theme: "love",
		Music: model.MusicConfig{Genre: "pop"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestForPlan_UnknownFallsBackToFree(t *testing.T) {
	free := ForPlan(model.PlanFree)
	unknown := ForPlan(model.PlanType("enterprise"))

	if unknown.MaxDuration != free.MaxDuration || unknown.MaxCreativity != free.MaxCreativity {
		t.Errorf("unknown plan should resolve to free limits, got %+v", unknown)
	}
}

func TestValidate_DurationBoundary(t *testing.T) {
	cfg := validConfig()

	cfg.Structure.DurationSec = 90
	if err := Validate(cfg, model.PlanFree); err != nil {
		t.Errorf("90s should be within free plan limit, got %v", err)
	}

	cfg.Structure.DurationSec = 91
	err := Validate(cfg, model.PlanFree)
	if err == nil {
		t.Fatal("91s should exceed free plan limit")
	}

	limitErr, ok := err.(*LimitExceededError)
	if !ok {
		t.Fatalf("expected *LimitExceededError, got %T", err)
	}
	if limitErr.Plan != model.PlanFree {
		t.Errorf("error plan: got %s", limitErr.Plan)
	}
	if !strings.Contains(limitErr.Message, "91s") || !strings.Contains(limitErr.Message, "90s") {
		t.Errorf("message should state both values: %s", limitErr.Message)
	}
	if !strings.Contains(limitErr.Message, "Upgrade") {
		t.Errorf("message should include upgrade guidance: %s", limitErr.Message)
	}
}

func TestValidate_Stems(t *testing.T) {
	cfg := validConfig()
	cfg.Structure.Stems = []string{"master", "vocals"}

	if err := Validate(cfg, model.PlanFree); err == nil {
		t.Error("vocals stem should not be allowed in free plan")
	}
	if err := Validate(cfg, model.PlanPro); err != nil {
		t.Errorf("vocals stem should be allowed in pro plan, got %v", err)
	}

	cfg.Structure.Stems = []string{"master", "midi"}
	if err := Validate(cfg, model.PlanStudio); err == nil {
		t.Error("midi stem should not be allowed in studio plan")
	}
	if err := Validate(cfg, model.PlanLabel); err != nil {
		t.Errorf("midi stem should be allowed in label plan, got %v", err)
	}
}

func TestValidate_MasteringControls(t *testing.T) {
	cfg := validConfig()
	cfg.Production.Mastering.TargetLUFS = -9

	if err := Validate(cfg, model.PlanPro); err == nil {
		t.Error("custom mastering should be rejected for pro plan")
	}
	if err := Validate(cfg, model.PlanStudio); err != nil {
		t.Errorf("custom mastering should be allowed for studio plan, got %v", err)
	}

	// Defaults pass even on plans without mastering controls
	cfg = validConfig()
	if err := Validate(cfg, model.PlanFree); err != nil {
		t.Errorf("default mastering should pass on free plan, got %v", err)
	}
}

func TestValidate_MasteringStereoWidth(t *testing.T) {
	cfg := validConfig()
	w := 80
	cfg.Production.Mastering.StereoWidth = &w

	if err := Validate(cfg, model.PlanFree); err == nil {
		t.Error("non-default stereo width should be rejected for free plan")
	}

	zero := 0
	cfg.Production.Mastering.StereoWidth = &zero
	if err := Validate(cfg, model.PlanFree); err == nil {
		t.Error("explicit zero stereo width is a custom value and should be rejected for free plan")
	}
	if err := Validate(cfg, model.PlanLabel); err != nil {
		t.Errorf("explicit zero stereo width should be allowed for label plan, got %v", err)
	}
}

func TestValidate_Creativity(t *testing.T) {
	tests := []struct {
		plan       model.PlanType
		creativity float64
		wantErr    bool
	}{
		{model.PlanFree, 0.5, false},
		{model.PlanFree, 0.51, true},
		{model.PlanPro, 0.75, false},
		{model.PlanPro, 0.76, true},
		{model.PlanStudio, 1.0, false},
		{model.PlanLabel, 1.0, false},
	}

	for _, tt := range tests {
		cfg := validConfig()
		c := tt.creativity
		cfg.AI.Creativity = &c

		err := Validate(cfg, tt.plan)
		if tt.wantErr && err == nil {
			t.Errorf("plan %s creativity %v: expected error", tt.plan, tt.creativity)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("plan %s creativity %v: unexpected error %v", tt.plan, tt.creativity, err)
		}
	}
}

func TestValidate_FirstViolationWins(t *testing.T) {
	cfg := validConfig()
	cfg.Structure.DurationSec = 300
	cfg.Structure.Stems = []string{"master", "midi"}
	c := 1.0
	cfg.AI.Creativity = &c

	err := Validate(cfg, model.PlanFree)
	if err == nil {
		t.Fatal("expected a violation")
	}
	// Duration is checked first
	if !strings.Contains(err.Error(), "Duration") {
		t.Errorf("duration violation should win: %s", err.Error())
	}
}

func TestValidate_StemMessageStable(t *testing.T) {
	cfg := validConfig()
	cfg.Structure.Stems = []string{"vocals", "drums", "vocals"}

	err := Validate(cfg, model.PlanFree)
	if err == nil {
		t.Fatal("expected a stems violation")
	}
	// Deduplicated and sorted: drums before vocals, vocals once
	msg := err.Error()
	if strings.Count(msg, "vocals") != 1 {
		t.Errorf("duplicate stems should be reported once: %s", msg)
	}
	if strings.Index(msg, "drums") > strings.Index(msg, "vocals") {
		t.Errorf("stems should be sorted in the message: %s", msg)
	}
}
