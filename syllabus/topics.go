package syllabus

import (
	"regexp"
	"strings"
)

var (
	// <prefix> - <subtopic>, <subtopic>.
	// The prefix may hold "." or "," only when no whitespace follows, as in
	// "Node.js" or "802.11".
	expansionPattern = regexp.MustCompile(`((?:[^.,]|[.,]\S)*?) - ([^.]*)\.`)
	hoursPattern     = regexp.MustCompile(`\d+\s?\+\s?\d+\s?Hours`)
)

// ExpandTopics turns the topic prose of a unit into a flat topic list.
// "Linear models - Regression, Classification." becomes
// "Linear models - Regression" and "Linear models - Classification"; text
// between such groups is read as a plain list of topics.
func ExpandTopics(topicText string) []string {
	raw := collapseLines(topicText)
	topics := []string{}
	last := 0
	for _, m := range expansionPattern.FindAllStringSubmatchIndex(raw, -1) {
		topics = append(topics, splitTopics(raw[last:m[0]])...)
		topics = append(topics, expand(raw[m[2]:m[3]], raw[m[4]:m[5]])...)
		last = m[1]
	}
	return append(topics, expandRemainder(raw[last:])...)
}

// expandRemainder handles the text after the last complete group. Only a part
// holding both " - " and an unsplit comma is expanded again.
func expandRemainder(rest string) []string {
	out := []string{}
	for _, part := range splitTopics(rest) {
		if strings.Contains(part, " - ") && strings.Contains(part, ",") {
			prefix, items, _ := strings.Cut(part, " - ")
			out = append(out, expand(prefix, items)...)
			continue
		}
		out = append(out, part)
	}
	return out
}

func expand(prefix, subtopics string) []string {
	prefix = strings.TrimSpace(prefix)
	items := splitTrim(subtopics, ",")
	if len(items) == 0 {
		if prefix == "" {
			return nil
		}
		return []string{prefix}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, prefix+" - "+item)
	}
	return out
}

// ExtractExperientialLearning returns the items listed between the
// "Experiential learning:" label and the next "N + M Hours" token of body.
func ExtractExperientialLearning(body string) []string {
	_, after, found := strings.Cut(body, experientialLabel)
	if !found {
		return []string{}
	}
	loc := hoursPattern.FindStringIndex(after)
	if loc == nil {
		return []string{}
	}
	return splitTopics(collapseLines(after[:loc[0]]))
}
