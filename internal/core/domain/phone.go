package domain

import (
	"regexp"
	"strings"
)

// phonePattern accepts either a Ghanaian local-format number (leading 0 or
// the +233 country code, then a digit 2-9 and eight more digits) or a
// generic international number (1-3 digit country code plus 7-14 digits).
var phonePattern = regexp.MustCompile(`^(\+233|0)[2-9]\d{8}$|^(\+\d{1,3})\d{7,14}$`)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// ValidPhoneNumber reports whether phone matches the accepted format after
// stripping spaces, dashes, and parentheses.
func ValidPhoneNumber(phone string) bool {
	return phonePattern.MatchString(phoneSeparators.Replace(phone))
}
