package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Allow letters, spaces, and common name punctuation: . ' - / & ( ) ,
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)

	// E164-like phone: optional +, digits 7-15 length. Spaces, dashes and
	// parentheses are stripped before matching.
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	phoneStrip = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

var (
	shared     *validator.Validate
	sharedOnce sync.Once
	ginOnce    sync.Once
)

// Validator returns the process-wide validator with custom rules registered.
// Field names in errors are the json names.
func Validator() *validator.Validate {
	sharedOnce.Do(func() {
		shared = validator.New()
		shared.RegisterTagNameFunc(jsonTagName)
		RegisterValidators(shared)
	})
	return shared
}

// RegisterGinValidators adds the custom rules to gin's binding validator so
// `binding:"..."` tags can use them.
func RegisterGinValidators() {
	ginOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonTagName)
			RegisterValidators(v)
		}
	})
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("job_status", enumRule(domain.IsValidJobStatus))
	_ = v.RegisterValidation("job_type", enumRule(domain.IsValidJobType))
	_ = v.RegisterValidation("application_status", enumRule(domain.IsValidApplicationStatus))
	_ = v.RegisterValidation("document_type", enumRule(domain.IsValidDocumentType))
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// enumRule accepts an empty value; pair with required when needed.
func enumRule(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		return val == "" || valid(val)
	}
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(phoneStrip.Replace(val))
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		// Supplementary planes are mostly emoji and pictographs
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}
