package syllabus

import (
	"regexp"
	"strings"

	"github.com/tieubaoca/docextractor/types"
)

const experientialLabel = "Experiential learning:"

var (
	unitHeaderPattern   = regexp.MustCompile(`Unit\s?(\d+):\s`)
	unitBoundaryPattern = regexp.MustCompile(`Unit\s?\d+:`)
)

// ExtractUnits splits text into unit blocks, left to right, and decomposes
// each block into its raw topic list and experiential-learning notes. Unit
// numbers are kept as written; nothing is renumbered or synthesized.
func ExtractUnits(text string) []types.Unit {
	var units []types.Unit
	pos := 0
	for pos < len(text) {
		loc := unitHeaderPattern.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		headerEnd := pos + loc[1]
		digits := text[pos+loc[2] : pos+loc[3]]

		// the title runs to the end of the header line; a header on the last
		// line has no body and neither does any header after it
		newline := strings.IndexByte(text[headerEnd:], '\n')
		if newline < 0 {
			break
		}
		titleEnd := headerEnd + newline
		bodyStart := titleEnd + 1
		bodyEnd := unitBodyEnd(text, bodyStart)

		units = append(units, newUnit(digits, text[headerEnd:titleEnd], text[bodyStart:bodyEnd]))
		pos = bodyEnd
	}
	return units
}

// unitBodyEnd finds where a unit body starting at from stops: the next unit
// header, the book lists, or the end of text (ignoring one final line break).
func unitBodyEnd(text string, from int) int {
	end := len(text)
	if strings.HasSuffix(text, "\n") && end-1 >= from {
		end--
	}
	rest := text[from:]
	if loc := unitBoundaryPattern.FindStringIndex(rest); loc != nil && from+loc[0] < end {
		end = from + loc[0]
	}
	for _, sentinel := range []string{textBooksLabel, referenceBooksLabel} {
		if i := strings.Index(rest, sentinel); i >= 0 && from+i < end {
			end = from + i
		}
	}
	return end
}

func newUnit(digits, title, body string) types.Unit {
	topicText := body
	if i := strings.Index(body, experientialLabel); i >= 0 {
		topicText = body[:i]
	}
	return types.Unit{
		Key:                  types.UnitKey(digits),
		Number:               types.UnitNumber(digits),
		Title:                strings.TrimSpace(title),
		Topics:               ExpandTopics(topicText),
		ExperientialLearning: ExtractExperientialLearning(body),
	}
}
