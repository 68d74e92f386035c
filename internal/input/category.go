package input

import "strings"

// ValidateCategory reports whether name is a usable category. When allowed
// is non-empty it must also be a member of that list.
func ValidateCategory(name string, allowed []string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	if len(allowed) == 0 {
		return true
	}

	for _, candidate := range allowed {
		if candidate == name {
			return true
		}
	}
	return false
}
