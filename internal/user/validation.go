package user

import (
	"regexp"
	"strings"
)

var (
	nonDigitRegex = regexp.MustCompile(`\D`)
	phoneRegex    = regexp.MustCompile(`^[6-9]\d{9}$`)
	phoneFmtRegex = regexp.MustCompile(`^(\d{3})(\d{3})(\d{4})$`)
)

// ValidatePhone accepts ten-digit numbers starting with 6-9, ignoring any
// separators the user typed.
func ValidatePhone(phone string) bool {
	clean := nonDigitRegex.ReplaceAllString(phone, "")
	return phoneRegex.MatchString(clean)
}

// FormatPhone renders a complete number as XXX-XXX-XXXX; partial input is
// returned digits-only.
func FormatPhone(value string) string {
	cleaned := nonDigitRegex.ReplaceAllString(value, "")
	if m := phoneFmtRegex.FindStringSubmatch(cleaned); m != nil {
		return strings.Join([]string{m[1], m[2], m[3]}, "-")
	}
	return cleaned
}
