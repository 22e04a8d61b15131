package telemetry

import (
	"slices"
	"strings"
)

// Key renders the canonical identity of a series: the bare name when there are
// no labels, otherwise name{k1=v1,k2=v2} with label names sorted.
func Key(name string, labels Labels) string {
	if len(labels) == 0 {
		return name
	}

	names := make([]string, 0, len(labels))
	for k := range labels {
		names = append(names, k)
	}
	slices.Sort(names)

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i, k := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(labels[k])
	}
	b.WriteByte('}')
	return b.String()
}

// MatchesName reports whether key belongs to the series family of name.
func MatchesName(key, name string) bool {
	return key == name || strings.HasPrefix(key, name+"{")
}
