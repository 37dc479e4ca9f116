package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// CURP: 4 uppercase letters, 6 digits (birth date YYMMDD), sex letter
	// H or M, 5 uppercase letters, 2 alphanumeric characters. 18 total.
	CURPPattern = `^[A-Z]{4}\d{6}[HM][A-Z]{5}[A-Z\d]{2}$`

	// Elector key: 18 uppercase alphanumeric characters
	ClaveElectorPattern = `^[A-Z0-9]{18}$`

	// CURP fixed length, checked by the HTTP layer before the pattern
	CURPLength = 18
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	CURP         *regexp.Regexp
	ClaveElector *regexp.Regexp
}{
	CURP:         regexp.MustCompile(CURPPattern),
	ClaveElector: regexp.MustCompile(ClaveElectorPattern),
}

// validate is the shared validator instance for struct rules
var validate = validator.New()

// IsValidCURP reports whether curp matches the CURP format. Pure function,
// same answer for the same input on every call.
func IsValidCURP(curp string) bool {
	return CompiledPatterns.CURP.MatchString(curp)
}

// IsValidPersonaID reports whether id is usable as a persona identifier.
func IsValidPersonaID(id int64) bool {
	return id > 0
}

// ValidateStruct runs the struct-tag validation rules of the given value.
// Request DTOs carry their required/optional rules as validator tags.
func ValidateStruct(v interface{}) error {
	return validate.Struct(v)
}
