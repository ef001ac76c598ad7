package intake

import (
	"fmt"
	"strings"
)

var (
	yesWords = map[string]bool{"yes": true, "y": true, "true": true, "1": true}
	noWords  = map[string]bool{"no": true, "n": true, "false": true, "0": true}
)

// ParseYesNo parses a Yes/No-style string into a strict boolean. Matching
// is case-insensitive and whitespace-tolerant. label is the human-readable
// field name used in error messages.
func ParseYesNo(s, label string) (bool, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	if raw == "" {
		return false, fmt.Errorf("%s is required and must be Yes or No", label)
	}
	switch {
	case yesWords[raw]:
		return true, nil
	case noWords[raw]:
		return false, nil
	}
	return false, fmt.Errorf("%s must be Yes/No (accepted: yes/y/true/1 or no/n/false/0), got %q", label, s)
}
