package domaintree

import (
	"strings"
)

// splitPattern breaks s into its labels, top-level label first. A leading dot
// marks a wildcard pattern and a single trailing dot is dropped. Any other empty
// label makes s invalid.
func splitPattern(s string) (labels []string, wildcard bool, reason string) {
	if s == "" {
		return nil, false, "empty"
	}
	if strings.HasPrefix(s, ".") {
		wildcard = true
		s = s[1:]
	}
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return nil, false, "no labels"
	}

	labels = strings.Split(s, ".")
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}
	for _, l := range labels {
		if l == "" {
			return nil, false, "empty label"
		}
	}
	return labels, wildcard, ""
}
