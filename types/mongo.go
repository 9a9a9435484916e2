package types

import (
	"bytes"
	"encoding/json"
)

// SyllabusDocument is stored in the syllabi collection.
type SyllabusDocument struct {
	ID         string         `json:"-" bson:"_id,omitempty"`
	CourseCode string         `json:"course_code" bson:"course_code"`
	Units      SyllabusRecord `json:"units" bson:"units"`
	CreatedAt  int64          `json:"created_at" bson:"created_at"`
}

func (d SyllabusDocument) RecordKey() string {
	return d.CourseCode
}

// MarshalJSON flattens the units next to course_code, so clients read
// unit_<N> at the top level of the course payload. Units follow course_code
// in unit number order.
func (d SyllabusDocument) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	code, err := json.Marshal(d.CourseCode)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`{"course_code":`)
	buf.Write(code)
	for _, key := range d.Units.Keys() {
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		unit, err := json.Marshal(d.Units[key])
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(unit)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CourseDocument is stored in the othersections collection.
type CourseDocument struct {
	ID         string         `json:"-" bson:"_id,omitempty"`
	CourseCode string         `json:"course_code" bson:"course_code"`
	Sections   CourseMetadata `json:"sections" bson:"sections"`
	CreatedAt  int64          `json:"created_at" bson:"created_at"`
}

func (d CourseDocument) RecordKey() string {
	return d.CourseCode
}

func (d CourseDocument) Title() string {
	if title, ok := d.Sections[KeyTitle]; ok {
		return title
	}
	return "Unknown"
}

type CourseSummary struct {
	CourseCode string `json:"course_code"`
	Title      string `json:"title"`
}

// TopicHit is a single match from the topic search index.
type TopicHit struct {
	CourseCode string  `json:"course_code"`
	Unit       string  `json:"unit"`
	UnitTitle  string  `json:"unit_title"`
	Topic      string  `json:"topic"`
	Distance   float64 `json:"distance"`
}
