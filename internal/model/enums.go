package model

// Plan tiers
type PlanType string

const (
	PlanFree   PlanType = "free"
	PlanPro    PlanType = "pro"
	PlanStudio PlanType = "studio"
	PlanLabel  PlanType = "label"
)

var ValidPlans = []PlanType{PlanFree, PlanPro, PlanStudio, PlanLabel}

// Lyrics styles
type LyricsStyle string

const (
	StylePoetic         LyricsStyle = "poetic"
	StyleConversational LyricsStyle = "conversational"
	StyleNarrative      LyricsStyle = "narrative"
	StyleAbstract       LyricsStyle = "abstract"
)

// Syllable density levels
type SyllableDensity string

const (
	DensityLow  SyllableDensity = "low"
	DensityMed  SyllableDensity = "med"
	DensityHigh SyllableDensity = "high"
)

// Scales (modes)
type Scale string

const (
	ScaleMajor      Scale = "major"
	ScaleMinor      Scale = "minor"
	ScaleDorian     Scale = "dorian"
	ScalePhrygian   Scale = "phrygian"
	ScaleLydian     Scale = "lydian"
	ScaleMixolydian Scale = "mixolydian"
)

// Tempo curves
type TempoCurve string

const (
	TempoSteady  TempoCurve = "steady"
	TempoBuild   TempoCurve = "build"
	TempoDrop    TempoCurve = "drop"
	TempoDynamic TempoCurve = "dynamic"
)

// Chord palettes
type ChordPalette string

const (
	ChordsDiatonic  ChordPalette = "diatonic"
	ChordsExtended  ChordPalette = "extended"
	ChordsModal     ChordPalette = "modal"
	ChordsChromatic ChordPalette = "chromatic"
)

// Vocal genders
type VocalGender string

const (
	GenderFemale    VocalGender = "female"
	GenderMale      VocalGender = "male"
	GenderNonbinary VocalGender = "nonbinary"
	GenderDuet      VocalGender = "duet"
)

// Vocal registers
type VocalRegister string

const (
	RegisterAiry     VocalRegister = "airy"
	RegisterChesty   VocalRegister = "chesty"
	RegisterBreathy  VocalRegister = "breathy"
	RegisterPowerful VocalRegister = "powerful"
	RegisterSoft     VocalRegister = "soft"
)

// Glue compressor settings
type GlueComp string

const (
	GlueOff   GlueComp = "off"
	GlueLight GlueComp = "light"
	GlueMed   GlueComp = "med"
	GlueHeavy GlueComp = "heavy"
)

// Limiter profiles
type Limiter string

const (
	LimiterTransparent Limiter = "transparent"
	LimiterBalanced    Limiter = "balanced"
	LimiterBrick       Limiter = "brick"
)

// Lyrics themes
type Theme string

const (
	ThemeLove        Theme = "love"
	ThemeFriendship  Theme = "friendship"
	ThemeHeartbreak  Theme = "heartbreak"
	ThemeHappiness   Theme = "happiness"
	ThemeSadness     Theme = "sadness"
	ThemeCelebration Theme = "celebration"
	ThemeCountry     Theme = "country"
	ThemeNostalgia   Theme = "nostalgia"
	ThemeHope        Theme = "hope"
	ThemeFamily      Theme = "family"
	ThemeAdventure   Theme = "adventure"
	ThemeMotivation  Theme = "motivation"
	ThemePeace       Theme = "peace"
)

var ValidThemes = []Theme{
	ThemeLove, ThemeFriendship, ThemeHeartbreak, ThemeHappiness,
	ThemeSadness, ThemeCelebration, ThemeCountry, ThemeNostalgia,
	ThemeHope, ThemeFamily, ThemeAdventure, ThemeMotivation, ThemePeace,
}

// Job status
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCanceled  JobStatus = "canceled"
)
