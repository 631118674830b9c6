package model

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	rhymeSchemeRe = regexp.MustCompile(`^[A-Z]+$`)
	pitchKeyRe    = regexp.MustCompile(`^[A-G](#|b)?$`)
	timeSigRe     = regexp.MustCompile(`^\d+/\d+$`)
)

// NewValidator returns a validator with the domain rules registered:
// rhyme_scheme, pitch_key, time_sig pattern checks and the lang_split
// sum-to-100 invariant.
func NewValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("rhyme_scheme", func(fl validator.FieldLevel) bool {
		return rhymeSchemeRe.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("pitch_key", func(fl validator.FieldLevel) bool {
		return pitchKeyRe.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("time_sig", func(fl validator.FieldLevel) bool {
		return timeSigRe.MatchString(fl.Field().String())
	})

	// language_split percentages must sum to exactly 100
	_ = v.RegisterValidation("lang_split", func(fl validator.FieldLevel) bool {
		split, ok := fl.Field().Interface().(map[string]int)
		if !ok {
			return false
		}
		total := 0
		for _, pct := range split {
			total += pct
		}
		return total == 100
	})

	return v
}
