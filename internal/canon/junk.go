package canon

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsJunk reports whether a raw line is not an ingredient at all: recipe
// section headers, instruction fragments, equipment, or strings too short to
// carry a name. It runs on the raw text, before Normalize, so junk never
// reaches the matcher.
func IsJunk(raw string) bool {
	s := strings.ToLower(strings.TrimSpace(raw))

	if utf8.RuneCountInString(s) <= 2 {
		return true
	}
	if strings.HasSuffix(s, ":") {
		return true
	}
	for _, p := range sectionHeaderPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	if !containsLetter(s) {
		return true
	}
	if reEquipment.MatchString(s) {
		return true
	}
	if fields := strings.Fields(s); len(fields) == 1 {
		if _, ok := junkSingleWords[fields[0]]; ok {
			return true
		}
	}
	return false
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
