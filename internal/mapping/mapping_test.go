package mapping

import (
	"reflect"
	"strings"
	"testing"

	"github.com/zeynepecekiris/music-studio-AI-backend/internal/model"
)

func baseConfig() *model.GenerateConfig {
	cfg := &model.GenerateConfig{
		Theme: "love",
		Music: model.MusicConfig{Genre: "pop"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestBuildLyricsPrompt_AllSegments(t *testing.T) {
	cfg := baseConfig()
	cfg.Subtheme = "longing"
	cfg.Persona = "storyteller"
	cfg.Lyrics.Keywords = []string{"sea", "night"}
	cfg.Lyrics.Style = model.StylePoetic
	cfg.Lyrics.RhymeScheme = "AABB"
	cfg.Language = []string{"tr", "en"}

	got := BuildLyricsPrompt(cfg)
	want := "Theme: love | Subtheme: longing | Persona: storyteller | Keywords: sea, night | Style: poetic | Rhyme: AABB | Language: tr, en"
	if got != want {
		t.Errorf("prompt mismatch:\ngot:  %s\nwant: %s", got, want)
	}
}

func TestBuildLyricsPrompt_OptionalSegmentsOmitted(t *testing.T) {
	cfg := baseConfig()

	got := BuildLyricsPrompt(cfg)
	if strings.Contains(got, "Subtheme:") || strings.Contains(got, "Persona:") || strings.Contains(got, "Keywords:") {
		t.Errorf("optional segments should be omitted entirely: %s", got)
	}
	if !strings.HasPrefix(got, "Theme: love | Style: ") {
		t.Errorf("unexpected segment order: %s", got)
	}
}

func TestMergeGenreFusion(t *testing.T) {
	tests := []struct {
		name   string
		genre  string
		fusion []string
		want   string
	}{
		{"no fusion", "pop", nil, "pop"},
		{"single tag", "pop", []string{"synthwave"}, "pop_synthwave"},
		{"mapped tag", "pop", []string{"turkish_makam"}, "pop_anatolian_flavor"},
		{"two tags", "rnb", []string{"afrobeat", "latin"}, "rnb_afrobeat_latin_fusion"},
		{"third tag dropped", "pop", []string{"synthwave", "afrobeat", "latin"}, "pop_synthwave_afrobeat"},
		{"unknown genre passthrough", "vaporwave", []string{"oriental"}, "vaporwave_oriental_fusion"},
		{"unknown tag passthrough", "pop", []string{"klezmer"}, "pop_klezmer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeGenreFusion(tt.genre, tt.fusion); got != tt.want {
				t.Errorf("MergeGenreFusion(%q, %v) = %q, want %q", tt.genre, tt.fusion, got, tt.want)
			}
		})
	}
}

func TestChooseInstrumentPreset(t *testing.T) {
	tests := []struct {
		name    string
		lead    string
		support []string
		genre   string
		want    string
	}{
		{"exact match", "piano", []string{"pad", "808"}, "pop", "piano_pad_pop"},
		{"support order irrelevant", "piano", []string{"808", "pad"}, "pop", "piano_pad_pop"},
		{"lead-only match", "baglama", nil, "pop", "anatolian_pop"},
		{"lead fallback over unknown combo", "baglama", []string{"accordion"}, "pop", "anatolian_pop"},
		{"synthesized solo", "oud", nil, "world", "oud_solo_world"},
		{"synthesized with summary", "oud", []string{"ney", "davul"}, "world", "oud_davul_ney_world"},
		{"summary capped at two", "oud", []string{"ney", "davul", "kanun"}, "world", "oud_davul_kanun_world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.Music.Genre = tt.genre
			cfg.Instrumentation.LeadInstrument = tt.lead
			cfg.Instrumentation.SupportInstruments = tt.support

			got := ChooseInstrumentPreset(cfg)
			if got != tt.want {
				t.Errorf("ChooseInstrumentPreset() = %q, want %q", got, tt.want)
			}
			if got == "" {
				t.Error("preset resolution must never return empty")
			}
		})
	}
}

func TestChooseInstrumentPreset_DoesNotMutateInput(t *testing.T) {
	cfg := baseConfig()
	cfg.Instrumentation.LeadInstrument = "piano"
	cfg.Instrumentation.SupportInstruments = []string{"pad", "808"}

	ChooseInstrumentPreset(cfg)

	if !reflect.DeepEqual(cfg.Instrumentation.SupportInstruments, []string{"pad", "808"}) {
		t.Errorf("support instruments mutated: %v", cfg.Instrumentation.SupportInstruments)
	}
}

func TestChooseVoicePreset(t *testing.T) {
	tests := []struct {
		name     string
		gender   model.VocalGender
		register model.VocalRegister
		persona  string
		genre    string
		want     string
	}{
		{"exact with persona", model.GenderFemale, model.RegisterAiry, "duet", "pop", "duet_soft_airy"},
		{"plain female airy", model.GenderFemale, model.RegisterAiry, "", "pop", "female_soft_airy"},
		{"persona ignored when unmatched", model.GenderMale, model.RegisterChesty, "pirate", "pop", "male_chest_pop"},
		{"synthesized fallback", model.GenderNonbinary, model.RegisterPowerful, "", "edm", "nonbinary_powerful_edm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.Music.Genre = tt.genre
			cfg.Persona = tt.persona
			cfg.Vocal.VocalGender = tt.gender
			cfg.Vocal.VocalRegister = tt.register

			got := ChooseVoicePreset(cfg)
			if got != tt.want {
				t.Errorf("ChooseVoicePreset() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChooseVoicePreset_DuetPersonaPromotion(t *testing.T) {
	cfg := baseConfig()
	cfg.Persona = "duet"
	cfg.Vocal.VocalGender = model.GenderFemale
	cfg.Vocal.VocalRegister = model.RegisterAiry

	// "duet" moves to the gender slot: duet|airy| resolves before female|airy|duet
	if got := ChooseVoicePreset(cfg); got != "duet_soft_airy" {
		t.Errorf("duet promotion: got %q, want %q", got, "duet_soft_airy")
	}
}

func TestToKeySignature(t *testing.T) {
	if got := ToKeySignature("C", model.ScaleMajor); got != "C major" {
		t.Errorf("got %q, want %q", got, "C major")
	}
	if got := ToKeySignature("F#", model.ScaleDorian); got != "F# dorian" {
		t.Errorf("got %q, want %q", got, "F# dorian")
	}
}

func TestMapToMusicAPI(t *testing.T) {
	cfg := baseConfig()
	cfg.Music.Genre = "pop"
	cfg.Music.Fusion = []string{"synthwave"}
	cfg.Music.BPM = 104
	cfg.Instrumentation.LeadInstrument = "piano"
	cfg.Instrumentation.SupportInstruments = []string{"pad", "808"}
	cfg.Instrumentation.Hooks = []string{"whistle"}
	cfg.Structure.DurationSec = 150
	cfg.Structure.Stems = []string{"master", "vocals"}

	payload := MapToMusicAPI(cfg)

	if payload.Genre != "pop_synthwave" {
		t.Errorf("genre: got %q, want %q", payload.Genre, "pop_synthwave")
	}
	if payload.KeySignature != "C major" {
		t.Errorf("key signature: got %q, want %q", payload.KeySignature, "C major")
	}
	if payload.BPM != 104 {
		t.Errorf("bpm: got %d, want 104", payload.BPM)
	}
	if payload.InstrumentPreset != "piano_pad_pop" {
		t.Errorf("instrument preset: got %q", payload.InstrumentPreset)
	}
	if payload.Voice != "female_soft_airy" {
		t.Errorf("voice: got %q", payload.Voice)
	}
	if payload.DurationSeconds != 150 {
		t.Errorf("duration: got %d", payload.DurationSeconds)
	}
	if payload.Mastering.TargetLUFS != -14 || payload.Mastering.StereoWidth != 60 || payload.Mastering.Limiter != model.LimiterBalanced {
		t.Errorf("mastering defaults not carried: %+v", payload.Mastering)
	}
	if payload.Creativity != 0.5 || payload.Guidance != 7.5 || payload.RepetitionPenalty != 1.0 {
		t.Errorf("AI defaults not carried: creativity=%v guidance=%v rep=%v",
			payload.Creativity, payload.Guidance, payload.RepetitionPenalty)
	}
	if !reflect.DeepEqual(payload.Stems, []string{"master", "vocals"}) {
		t.Errorf("stems: got %v", payload.Stems)
	}
}

func TestMapToMusicAPI_Deterministic(t *testing.T) {
	cfg := baseConfig()
	cfg.Music.Fusion = []string{"afrobeat"}
	cfg.Lyrics.Keywords = []string{"road", "home"}

	first := MapToMusicAPI(cfg)
	second := MapToMusicAPI(cfg)

	if !reflect.DeepEqual(first, second) {
		t.Error("mapping must be deterministic for identical configs")
	}
}
