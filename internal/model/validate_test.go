package model

import "testing"

func validGenerateConfig() *GenerateConfig {
	cfg := &GenerateConfig{
		Theme: "love",
		Music: MusicConfig{Genre: "pop"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestNewValidator_ValidConfig(t *testing.T) {
	v := NewValidator()
	if err := v.Struct(validGenerateConfig()); err != nil {
		t.Errorf("defaulted config should validate, got %v", err)
	}
}

func TestNewValidator_CustomRules(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		mutate  func(*GenerateConfig)
		wantErr bool
	}{
		{"valid rhyme scheme", func(c *GenerateConfig) { c.Lyrics.RhymeScheme = "AABB" }, false},
		{"lowercase rhyme scheme", func(c *GenerateConfig) { c.Lyrics.RhymeScheme = "aabb" }, true},
		{"valid sharp key", func(c *GenerateConfig) { c.Music.Key = "F#" }, false},
		{"valid flat key", func(c *GenerateConfig) { c.Music.Key = "Bb" }, false},
		{"invalid key letter", func(c *GenerateConfig) { c.Music.Key = "H" }, true},
		{"valid time signature", func(c *GenerateConfig) { c.Music.TimeSignature = "7/8" }, false},
		{"invalid time signature", func(c *GenerateConfig) { c.Music.TimeSignature = "four-four" }, true},
		{"language split sums to 100", func(c *GenerateConfig) {
			c.Vocal.LanguageSplit = map[string]int{"tr": 60, "en": 40}
		}, false},
		{"language split under 100", func(c *GenerateConfig) {
			c.Vocal.LanguageSplit = map[string]int{"tr": 60, "en": 30}
		}, true},
		{"language split over 100", func(c *GenerateConfig) {
			c.Vocal.LanguageSplit = map[string]int{"tr": 60, "en": 50}
		}, true},
		{"bpm out of range", func(c *GenerateConfig) { c.Music.BPM = 300 }, true},
		{"duration out of range", func(c *GenerateConfig) { c.Structure.DurationSec = 600 }, true},
		{"lufs out of range", func(c *GenerateConfig) { c.Production.Mastering.TargetLUFS = -30 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validGenerateConfig()
			tt.mutate(cfg)

			err := v.Struct(cfg)
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &GenerateConfig{
		Theme: "love",
		Music: MusicConfig{Genre: "pop"},
	}
	cfg.ApplyDefaults()

	if cfg.Music.BPM != 120 || cfg.Music.Key != "C" || cfg.Music.Scale != ScaleMajor || cfg.Music.TimeSignature != "4/4" {
		t.Errorf("music defaults wrong: %+v", cfg.Music)
	}
	if cfg.Structure.DurationSec != 150 {
		t.Errorf("duration default: got %d", cfg.Structure.DurationSec)
	}
	if len(cfg.Structure.Stems) != 1 || cfg.Structure.Stems[0] != "master" {
		t.Errorf("stems default: got %v", cfg.Structure.Stems)
	}
	if cfg.Production.Mastering.TargetLUFS != DefaultTargetLUFS ||
		*cfg.Production.Mastering.StereoWidth != DefaultStereoWidth ||
		cfg.Production.Mastering.Limiter != DefaultLimiter {
		t.Errorf("mastering defaults wrong: %+v", cfg.Production.Mastering)
	}
	if *cfg.AI.Creativity != 0.5 || cfg.AI.Guidance != 7.5 || *cfg.AI.RepetitionPenalty != 1.0 {
		t.Errorf("AI defaults wrong: %+v", cfg.AI)
	}
	if len(cfg.Language) != 1 || cfg.Language[0] != "tr" {
		t.Errorf("language default: got %v", cfg.Language)
	}
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	zeroWidth := 0
	zeroCreativity := 0.0
	cfg := &GenerateConfig{
		Theme: "love",
		Music: MusicConfig{Genre: "pop", BPM: 90},
		Production: ProductionConfig{
			Mastering: MasteringConfig{StereoWidth: &zeroWidth},
		},
		AI: AIConfig{Creativity: &zeroCreativity},
	}
	cfg.ApplyDefaults()

	if cfg.Music.BPM != 90 {
		t.Errorf("explicit BPM overwritten: %d", cfg.Music.BPM)
	}
	if *cfg.Production.Mastering.StereoWidth != 0 {
		t.Errorf("explicit zero stereo width overwritten: %d", *cfg.Production.Mastering.StereoWidth)
	}
	if *cfg.AI.Creativity != 0 {
		t.Errorf("explicit zero creativity overwritten: %v", *cfg.AI.Creativity)
	}
}
