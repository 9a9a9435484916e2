package syllabus

import "github.com/tieubaoca/docextractor/types"

const (
	textBooksLabel      = "Text Books:"
	referenceBooksLabel = "Reference Books:"
)

type section struct {
	key      string
	label    string
	sentinel string
}

var sections = []section{
	{key: types.KeyCourseObjectives, label: "Course Objectives:", sentinel: "Course Outcomes:"},
	{key: types.KeyCourseOutcomes, label: "Course Outcomes:", sentinel: "Course Overview:"},
	{key: types.KeyCourseOverview, label: "Course Overview:", sentinel: "Course Content:"},
	{key: types.KeyTextBooks, label: textBooksLabel, sentinel: referenceBooksLabel},
	{key: types.KeyReferenceBooks, label: referenceBooksLabel},
}

// ExtractSections captures the labeled free-text sections anywhere in text.
// A section is omitted when its label, or the label that closes it, is missing.
func ExtractSections(text string) types.CourseMetadata {
	out := types.CourseMetadata{}
	for _, s := range sections {
		if captured, ok := captureUntil(text, s.label, s.sentinel); ok {
			out[s.key] = collapseLines(captured)
		}
	}
	return out
}
