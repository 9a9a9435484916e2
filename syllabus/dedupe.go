package syllabus

import (
	"strings"

	"github.com/tieubaoca/docextractor/types"
)

// DedupeTopics splits every topic on commas and keeps the first occurrence of
// each trimmed piece. Applying it to its own output changes nothing.
func DedupeTopics(topics []string) []string {
	seen := make(map[string]struct{}, len(topics))
	out := make([]string, 0, len(topics))
	for _, topic := range topics {
		for _, piece := range strings.Split(topic, ",") {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			if _, ok := seen[piece]; ok {
				continue
			}
			seen[piece] = struct{}{}
			out = append(out, piece)
		}
	}
	return out
}

// DedupeUnits returns a copy of units with each topic list deduplicated on
// its own.
func DedupeUnits(units []types.Unit) []types.Unit {
	out := make([]types.Unit, len(units))
	for i, unit := range units {
		unit.Topics = DedupeTopics(unit.Topics)
		out[i] = unit
	}
	return out
}
