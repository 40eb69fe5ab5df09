package utils

import "strings"

// TitleFromCode turns "barrier-reef" into "Barrier reef": dashes become
// spaces and only the first letter is upper-cased.
func TitleFromCode(code string) string {
	s := strings.ReplaceAll(strings.TrimSpace(code), "-", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
