package model

// ComposePayload is the normalized request body for the composition API.
// Built once per request by the mapping pipeline and never mutated after.
type ComposePayload struct {
	LyricsPrompt string `json:"lyrics_prompt"`

	Genre           string `json:"genre"`
	BPM             int    `json:"bpm"`
	KeySignature    string `json:"key_signature"`
	TimeSignature   string `json:"time_signature"`
	DurationSeconds int    `json:"duration_seconds"`

	Voice            string   `json:"voice"`
	InstrumentPreset string   `json:"instrument_preset"`
	Hooks            []string `json:"hooks"`

	Mixing    MixingOut    `json:"mixing"`
	VocalsFX  []string     `json:"vocals_fx"`
	Mastering MasteringOut `json:"mastering"`

	Stems []string `json:"stems"`
	FxSfx []string `json:"fx_sfx"`

	Seed              *int64  `json:"seed"`
	Creativity        float64 `json:"creativity"`
	Guidance          float64 `json:"guidance"`
	RepetitionPenalty float64 `json:"repetition_penalty"`

	Safety SafetyOut `json:"safety"`
}

// MixingOut is the mix bus subset forwarded to the composition API
type MixingOut struct {
	TapeSat  bool     `json:"tape_sat"`
	GlueComp GlueComp `json:"glue_comp"`
}

// MasteringOut is the mastering subset forwarded to the composition API
type MasteringOut struct {
	TargetLUFS  int     `json:"target_lufs"`
	StereoWidth int     `json:"stereo_width"`
	Limiter     Limiter `json:"limiter"`
}

// SafetyOut carries content safety flags
type SafetyOut struct {
	ExplicitOK bool `json:"explicit_ok"`
}
