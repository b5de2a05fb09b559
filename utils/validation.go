// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// Matches an optional + prefix followed by 7-15 digits (E.164-ish)
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	cleaned := phoneSeparators.Replace(phone)
	return phonePattern.MatchString(cleaned)
}
