package validation

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Letters, digits and . _ - only.
var usernameRegex = regexp.MustCompile(`^[\p{L}0-9._-]+$`)

var rules = map[string]validator.Func{
	"valid_username": ValidUsername,
	"no_emoji":       NoEmoji,
}

// RegisterValidators installs the custom tags used by request bodies.
func RegisterValidators(v *validator.Validate) {
	for tag, fn := range rules {
		_ = v.RegisterValidation(tag, fn)
	}
}

// ValidUsername accepts handles made of letters, digits, dots, underscores and dashes.
// Empty values pass so the tag composes with omitempty and required.
func ValidUsername(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || usernameRegex.MatchString(s)
}

// NoEmoji rejects pictographs and other symbol runes.
func NoEmoji(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if isPictograph(r) {
			return false
		}
	}
	return true
}

func isPictograph(r rune) bool {
	return r > 0x1F000 || unicode.In(r, unicode.So, unicode.Sk)
}
