package types

import (
	"sort"
	"strconv"
	"strings"
)

// Keys of a CourseMetadata map.
const (
	KeyCourseCode       = "Course Code"
	KeyTitle            = "Title"
	KeyCredits          = "Credits"
	KeyCourseObjectives = "Course Objectives"
	KeyCourseOutcomes   = "Course Outcomes"
	KeyCourseOverview   = "Course Overview"
	KeyTextBooks        = "Text Books"
	KeyReferenceBooks   = "Reference Books"
)

// CourseMetadata holds the header fields and labeled sections of a syllabus.
// A key is only present when its label or pattern was found in the text.
type CourseMetadata map[string]string

func (m CourseMetadata) CourseCode() (string, bool) {
	code, ok := m[KeyCourseCode]
	return code, ok
}

// Merge copies every key of other into m.
func (m CourseMetadata) Merge(other CourseMetadata) CourseMetadata {
	for k, v := range other {
		m[k] = v
	}
	return m
}

type Unit struct {
	Key                  string   `json:"-" bson:"-"`
	Number               int      `json:"-" bson:"-"`
	Title                string   `json:"title" bson:"title"`
	Topics               []string `json:"topics" bson:"topics"`
	ExperientialLearning []string `json:"experiential_learning" bson:"experiential_learning"`
}

// UnitKey returns the record key for a unit number as written in the source.
func UnitKey(digits string) string {
	return "unit_" + digits
}

// UnitNumber parses the digits of a unit header. Values too large for an int
// yield 0; the key still carries the verbatim digits.
func UnitNumber(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// SyllabusRecord maps unit_<N> to its unit.
type SyllabusRecord map[string]Unit

// NewSyllabusRecord builds a record from units in encounter order. A later
// unit with the same key replaces an earlier one.
func NewSyllabusRecord(units []Unit) SyllabusRecord {
	record := make(SyllabusRecord, len(units))
	for _, unit := range units {
		record[unit.Key] = unit
	}
	return record
}

// Keys returns the unit keys ordered by unit number. Keys with equal numbers
// fall back to string order.
func (r SyllabusRecord) Keys() []string {
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni := UnitNumber(strings.TrimPrefix(keys[i], "unit_"))
		nj := UnitNumber(strings.TrimPrefix(keys[j], "unit_"))
		if ni != nj {
			return ni < nj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Extraction is the structured result of one document.
type Extraction struct {
	Metadata CourseMetadata `json:"metadata"`
	Units    []Unit         `json:"-"`
	Syllabus SyllabusRecord `json:"syllabus"`
}
