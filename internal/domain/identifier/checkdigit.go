package identifier

import (
	"github.com/atelier/backend/internal/domain/shared"
)

// Identifier domain errors
var (
	ErrInvalidInput         = shared.NewDomainError("INVALID_INPUT", "Payload must contain only digits")
	ErrMissingConfiguration = shared.NewDomainError("MISSING_CONFIGURATION", "Identifier configuration is incomplete")
	ErrUnsupportedFormat    = shared.NewDomainError("UNSUPPORTED_FORMAT", "Unsupported identifier format")
)

// CheckDigit computes the GS1 modulo-10 check digit for a numeric payload.
// Weighting starts at 3 on the leftmost digit and alternates 3,1,3,1,...
// left to right. Returns ErrInvalidInput if the payload is empty or
// contains non-digit characters.
func CheckDigit(payload string) (int, error) {
	if !isDigits(payload) {
		return 0, ErrInvalidInput
	}
	sum := 0
	for i := 0; i < len(payload); i++ {
		d := int(payload[i] - '0')
		if i%2 == 0 {
			sum += d * 3
		} else {
			sum += d
		}
	}
	return (10 - sum%10) % 10, nil
}

// Validate reports whether code is a digit string whose final digit is
// the correct check digit for the preceding payload. A single-digit code
// has an empty payload, whose check digit is 0. Non-numeric or empty
// input is reported as invalid, never as an error.
func Validate(code string) bool {
	if !isDigits(code) {
		return false
	}
	payload := code[:len(code)-1]
	expected := int(code[len(code)-1] - '0')
	actual := 0
	if payload != "" {
		var err error
		actual, err = CheckDigit(payload)
		if err != nil {
			return false
		}
	}
	return actual == expected
}

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
