package model

// GenerateConfig is the full user-supplied generation configuration.
// Field constraints mirror the public API contract; validation happens in
// the handler layer before the config reaches the mapping pipeline.
type GenerateConfig struct {
	Theme      string   `json:"theme" validate:"required,min=1"`
	Subtheme   string   `json:"subtheme,omitempty"`
	Language   []string `json:"language" validate:"min=1,dive,min=1"`
	Persona    string   `json:"persona,omitempty"`
	ExplicitOK bool     `json:"explicit_ok"`

	Lyrics          LyricsConfig          `json:"lyrics"`
	Music           MusicConfig           `json:"music" validate:"required"`
	Instrumentation InstrumentationConfig `json:"instrumentation"`
	Vocal           VocalConfig           `json:"vocal"`
	Structure       StructureConfig       `json:"structure"`
	Production      ProductionConfig      `json:"production"`
	AI              AIConfig              `json:"ai"`
}

// LyricsConfig controls lyric style and content hints
type LyricsConfig struct {
	Style           LyricsStyle     `json:"style" validate:"omitempty,oneof=poetic conversational narrative abstract"`
	RhymeScheme     string          `json:"rhyme_scheme" validate:"omitempty,rhyme_scheme"`
	SyllableDensity SyllableDensity `json:"syllable_density" validate:"omitempty,oneof=low med high"`
	Keywords        []string        `json:"keywords"`
}

// MusicConfig holds music theory and style parameters
type MusicConfig struct {
	Genre         string       `json:"genre" validate:"required,min=1"`
	Fusion        []string     `json:"fusion"`
	BPM           int          `json:"bpm" validate:"omitempty,gte=40,lte=200"`
	Key           string       `json:"key" validate:"omitempty,pitch_key"`
	Scale         Scale        `json:"scale" validate:"omitempty,oneof=major minor dorian phrygian lydian mixolydian"`
	TimeSignature string       `json:"time_signature" validate:"omitempty,time_sig"`
	TempoCurve    TempoCurve   `json:"tempo_curve" validate:"omitempty,oneof=steady build drop dynamic"`
	ChordPalette  ChordPalette `json:"chord_palette" validate:"omitempty,oneof=diatonic extended modal chromatic"`
}

// InstrumentationConfig selects instruments and hooks
type InstrumentationConfig struct {
	LeadInstrument     string   `json:"lead_instrument"`
	SupportInstruments []string `json:"support_instruments"`
	PercussionStyle    string   `json:"percussion_style"`
	Hooks              []string `json:"hooks"`
}

// VocalConfig holds vocal delivery parameters. LanguageSplit maps a
// language code to a percentage; the percentages must sum to exactly 100.
type VocalConfig struct {
	VocalGender   VocalGender    `json:"vocal_gender" validate:"omitempty,oneof=female male nonbinary duet"`
	VocalRegister VocalRegister  `json:"vocal_register" validate:"omitempty,oneof=airy chesty breathy powerful soft"`
	Multilayer    []string       `json:"multilayer"`
	LanguageSplit map[string]int `json:"language_split" validate:"omitempty,lang_split"`
}

// StructureConfig holds song structure parameters
type StructureConfig struct {
	Form        []string `json:"form"`
	DropType    string   `json:"drop_type,omitempty"`
	DurationSec int      `json:"duration_sec" validate:"omitempty,gte=30,lte=300"`
	Stems       []string `json:"stems"`
}

// MixBusConfig holds mix bus settings
type MixBusConfig struct {
	GlueComp GlueComp `json:"glue_comp" validate:"omitempty,oneof=off light med heavy"`
	TapeSat  bool     `json:"tape_sat"`
}

// MasteringConfig holds mastering settings. StereoWidth is a pointer so a
// deliberate 0 survives defaulting.
type MasteringConfig struct {
	TargetLUFS  int     `json:"target_lufs" validate:"omitempty,gte=-20,lte=-6"`
	StereoWidth *int    `json:"stereo_width" validate:"omitempty,gte=0,lte=100"`
	Limiter     Limiter `json:"limiter" validate:"omitempty,oneof=transparent balanced brick"`
}

// ProductionConfig groups mixing, mastering and FX settings
type ProductionConfig struct {
	MixBus    MixBusConfig    `json:"mix_bus"`
	VocalsFX  []string        `json:"vocals_fx"`
	Mastering MasteringConfig `json:"mastering"`
	FxSfx     []string        `json:"fx_sfx"`
}

// AIConfig holds generation parameters for the composition model.
// Creativity and RepetitionPenalty are pointers because 0 is a valid value.
type AIConfig struct {
	Seed              *int64   `json:"seed,omitempty"`
	Creativity        *float64 `json:"creativity" validate:"omitempty,gte=0,lte=1"`
	Guidance          float64  `json:"guidance" validate:"omitempty,gte=1,lte=20"`
	RepetitionPenalty *float64 `json:"repetition_penalty" validate:"omitempty,gte=0,lte=2"`
}

// Mastering defaults. Plans without mastering controls must keep these.
const (
	DefaultTargetLUFS  = -14
	DefaultStereoWidth = 60
	DefaultLimiter     = LimiterBalanced
)

// ApplyDefaults fills unset fields with the documented defaults. Must be
// called before validation so the mapping pipeline always sees a complete
// config.
func (c *GenerateConfig) ApplyDefaults() {
	if len(c.Language) == 0 {
		c.Language = []string{"tr"}
	}

	if c.Lyrics.Style == "" {
		c.Lyrics.Style = StylePoetic
	}
	if c.Lyrics.RhymeScheme == "" {
		c.Lyrics.RhymeScheme = "ABAB"
	}
	if c.Lyrics.SyllableDensity == "" {
		c.Lyrics.SyllableDensity = DensityMed
	}

	if c.Music.BPM == 0 {
		c.Music.BPM = 120
	}
	if c.Music.Key == "" {
		c.Music.Key = "C"
	}
	if c.Music.Scale == "" {
		c.Music.Scale = ScaleMajor
	}
	if c.Music.TimeSignature == "" {
		c.Music.TimeSignature = "4/4"
	}
	if c.Music.TempoCurve == "" {
		c.Music.TempoCurve = TempoSteady
	}
	if c.Music.ChordPalette == "" {
		c.Music.ChordPalette = ChordsDiatonic
	}

	if c.Instrumentation.LeadInstrument == "" {
		c.Instrumentation.LeadInstrument = "piano"
	}
	if c.Instrumentation.PercussionStyle == "" {
		c.Instrumentation.PercussionStyle = "acoustic"
	}

	if c.Vocal.VocalGender == "" {
		c.Vocal.VocalGender = GenderFemale
	}
	if c.Vocal.VocalRegister == "" {
		c.Vocal.VocalRegister = RegisterAiry
	}
	if len(c.Vocal.LanguageSplit) == 0 {
		c.Vocal.LanguageSplit = map[string]int{"tr": 100}
	}

	if len(c.Structure.Form) == 0 {
		c.Structure.Form = []string{"intro", "v1", "ch", "v2", "ch", "bridge", "ch", "outro"}
	}
	if c.Structure.DurationSec == 0 {
		c.Structure.DurationSec = 150
	}
	if len(c.Structure.Stems) == 0 {
		c.Structure.Stems = []string{"master"}
	}

	if c.Production.MixBus.GlueComp == "" {
		c.Production.MixBus.GlueComp = GlueLight
	}
	if c.Production.Mastering.TargetLUFS == 0 {
		c.Production.Mastering.TargetLUFS = DefaultTargetLUFS
	}
	if c.Production.Mastering.StereoWidth == nil {
		w := DefaultStereoWidth
		c.Production.Mastering.StereoWidth = &w
	}
	if c.Production.Mastering.Limiter == "" {
		c.Production.Mastering.Limiter = DefaultLimiter
	}

	if c.AI.Creativity == nil {
		v := 0.5
		c.AI.Creativity = &v
	}
	if c.AI.Guidance == 0 {
		c.AI.Guidance = 7.5
	}
	if c.AI.RepetitionPenalty == nil {
		v := 1.0
		c.AI.RepetitionPenalty = &v
	}
}
