package utils

import (
	"regexp"
)

const _maxEmailLength = 254

var _emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail is the check behind email fields of dynamic forms.
func IsValidEmail(email string) bool {
	return len(email) <= _maxEmailLength && _emailPattern.MatchString(email)
}
