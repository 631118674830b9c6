// Package mapping converts a validated GenerateConfig into the normalized
// payload consumed by the composition API. Every function here is pure and
// total: unknown genres, fusion tags or preset combinations degrade to
// passthrough or synthesized names, never to errors.
package mapping

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zeynepecekiris/music-studio-AI-backend/internal/model"
)

// genreMap resolves a base genre to its canonical token. Unknown genres
// pass through unchanged.
var genreMap = map[string]string{
	"pop":       "pop",
	"rnb":       "rnb",
	"trap":      "trap",
	"edm":       "edm",
	"indie":     "indie",
	"lofi":      "lofi",
	"synthwave": "synthwave",
	"cinematic": "cinematic",
	"world":     "world",
	"reggaeton": "reggaeton",
	"rock":      "rock",
	"folk":      "folk",
	"jazz":      "jazz",
	"classical": "classical",
	"hiphop":    "hiphop",
	"blues":     "blues",
	"country":   "country",
	"metal":     "metal",
}

// fusionTags resolves a fusion tag to its canonical token. Unknown tags
// pass through unchanged.
var fusionTags = map[string]string{
	"turkish_makam": "anatolian_flavor",
	"synthwave":     "synthwave",
	"afrobeat":      "afrobeat",
	"latin":         "latin_fusion",
	"oriental":      "oriental_fusion",
}

// instrumentPresets maps a composite key of lead instrument plus sorted
// support instruments to a preset name. Keys are built by presetKey.
var instrumentPresets = map[string]string{
	presetKey("piano", "pad", "808"):     "piano_pad_pop",
	presetKey("piano", "strings"):        "piano_strings_cinematic",
	presetKey("guitar", "pad"):           "guitar_ambient",
	presetKey("baglama"):                 "anatolian_pop",
	presetKey("baglama", "davul", "ney"): "turkish_traditional",
	presetKey("synth", "bass", "drums"):  "synth_pop",
	presetKey("guitar", "bass", "drums"): "rock_standard",
	presetKey("piano", "violin"):         "classical_duet",
	presetKey("808", "hi_hat", "clap"):   "trap_minimal",
}

// voicePresets maps (gender, register, persona) to a preset name. An empty
// persona component means "no persona".
var voicePresets = map[string]string{
	voiceKey("female", "airy", "duet"):  "female_soft_airy_duet",
	voiceKey("female", "airy", ""):      "female_soft_airy",
	voiceKey("female", "chesty", ""):    "female_chest_pop",
	voiceKey("female", "powerful", ""):  "female_powerful_belt",
	voiceKey("female", "breathy", ""):   "female_breathy_intimate",
	voiceKey("female", "soft", ""):      "female_soft_ballad",
	voiceKey("male", "airy", ""):        "male_soft_airy",
	voiceKey("male", "chesty", ""):      "male_chest_pop",
	voiceKey("male", "powerful", ""):    "male_powerful_rock",
	voiceKey("male", "breathy", ""):     "male_breathy_rnb",
	voiceKey("male", "soft", ""):        "male_soft_folk",
	voiceKey("duet", "airy", ""):        "duet_soft_airy",
	voiceKey("duet", "chesty", ""):      "duet_balanced",
	voiceKey("nonbinary", "airy", ""):   "androgynous_airy",
}

// presetKey builds the composite lookup key for instrument combinations.
// The caller is responsible for sorting the support instruments.
func presetKey(parts ...string) string {
	return strings.Join(parts, "|")
}

// voiceKey builds the composite lookup key for voice combinations
func voiceKey(gender, register, persona string) string {
	return gender + "|" + register + "|" + persona
}

// ToKeySignature formats tonic and scale as "C major", "A minor" etc.
func ToKeySignature(key string, scale model.Scale) string {
	return fmt.Sprintf("%s %s", key, scale)
}

// BuildLyricsPrompt assembles the lyrics prompt from theme, subtheme,
// persona, keywords, style, rhyme and languages. Segment order is fixed;
// optional segments are omitted entirely when absent.
func BuildLyricsPrompt(cfg *model.GenerateConfig) string {
	parts := []string{fmt.Sprintf("Theme: %s", cfg.Theme)}

	if cfg.Subtheme != "" {
		parts = append(parts, fmt.Sprintf("Subtheme: %s", cfg.Subtheme))
	}
	if cfg.Persona != "" {
		parts = append(parts, fmt.Sprintf("Persona: %s", cfg.Persona))
	}
	if len(cfg.Lyrics.Keywords) > 0 {
		parts = append(parts, fmt.Sprintf("Keywords: %s", strings.Join(cfg.Lyrics.Keywords, ", ")))
	}

	parts = append(parts,
		fmt.Sprintf("Style: %s", cfg.Lyrics.Style),
		fmt.Sprintf("Rhyme: %s", cfg.Lyrics.RhymeScheme),
		fmt.Sprintf("Language: %s", strings.Join(cfg.Language, ", ")),
	)

	return strings.Join(parts, " | ")
}

// ChooseInstrumentPreset selects a preset from the instrumentation config.
// Resolution order: exact lead+support match, lead-only match, then a
// synthesized "<lead>_<support summary>_<genre>" fallback.
func ChooseInstrumentPreset(cfg *model.GenerateConfig) string {
	inst := cfg.Instrumentation

	support := append([]string(nil), inst.SupportInstruments...)
	sort.Strings(support)

	key := presetKey(append([]string{inst.LeadInstrument}, support...)...)
	if name, ok := instrumentPresets[key]; ok {
		return name
	}

	if name, ok := instrumentPresets[presetKey(inst.LeadInstrument)]; ok {
		return name
	}

	summary := "solo"
	if len(support) > 0 {
		if len(support) > 2 {
			support = support[:2]
		}
		summary = strings.Join(support, "_")
	}
	return fmt.Sprintf("%s_%s_%s", inst.LeadInstrument, summary, cfg.Music.Genre)
}

// ChooseVoicePreset selects a voice preset from the vocal config. A "duet"
// persona is promoted to the gender slot and dropped from the persona slot.
func ChooseVoicePreset(cfg *model.GenerateConfig) string {
	gender := string(cfg.Vocal.VocalGender)
	persona := cfg.Persona
	if cfg.Persona == "duet" {
		gender = "duet"
		persona = ""
	}
	register := string(cfg.Vocal.VocalRegister)

	if name, ok := voicePresets[voiceKey(gender, register, persona)]; ok {
		return name
	}
	if name, ok := voicePresets[voiceKey(gender, register, "")]; ok {
		return name
	}

	return fmt.Sprintf("%s_%s_%s", gender, register, cfg.Music.Genre)
}

// MergeGenreFusion combines the base genre with up to two fusion tags,
// joined by underscores in their original order. Tags beyond the second
// are dropped silently.
func MergeGenreFusion(genre string, fusion []string) string {
	base := genre
	if mapped, ok := genreMap[genre]; ok {
		base = mapped
	}

	if len(fusion) == 0 {
		return base
	}

	tags := fusion
	if len(tags) > 2 {
		tags = tags[:2]
	}

	mapped := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t, ok := fusionTags[tag]; ok {
			mapped = append(mapped, t)
		} else {
			mapped = append(mapped, tag)
		}
	}

	return base + "_" + strings.Join(mapped, "_")
}

// MapToMusicAPI builds the composition payload from a validated config.
// Pure function with no fallible paths; plan entitlements must have been
// checked before calling.
func MapToMusicAPI(cfg *model.GenerateConfig) *model.ComposePayload {
	return &model.ComposePayload{
		LyricsPrompt: BuildLyricsPrompt(cfg),

		Genre:           MergeGenreFusion(cfg.Music.Genre, cfg.Music.Fusion),
		BPM:             cfg.Music.BPM,
		KeySignature:    ToKeySignature(cfg.Music.Key, cfg.Music.Scale),
		TimeSignature:   cfg.Music.TimeSignature,
		DurationSeconds: cfg.Structure.DurationSec,

		Voice:            ChooseVoicePreset(cfg),
		InstrumentPreset: ChooseInstrumentPreset(cfg),
		Hooks:            cfg.Instrumentation.Hooks,

		Mixing: model.MixingOut{
			TapeSat:  cfg.Production.MixBus.TapeSat,
			GlueComp: cfg.Production.MixBus.GlueComp,
		},
		VocalsFX: cfg.Production.VocalsFX,
		Mastering: model.MasteringOut{
			TargetLUFS:  cfg.Production.Mastering.TargetLUFS,
			StereoWidth: *cfg.Production.Mastering.StereoWidth,
			Limiter:     cfg.Production.Mastering.Limiter,
		},

		Stems: cfg.Structure.Stems,
		FxSfx: cfg.Production.FxSfx,

		Seed:              cfg.AI.Seed,
		Creativity:        *cfg.AI.Creativity,
		Guidance:          cfg.AI.Guidance,
		RepetitionPenalty: *cfg.AI.RepetitionPenalty,

		Safety: model.SafetyOut{
			ExplicitOK: cfg.ExplicitOK,
		},
	}
}
