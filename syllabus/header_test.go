package syllabus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tieubaoca/docextractor/types"
)

func TestExtractHeader(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.CourseMetadata
	}{
		{
			name: "code title and credits",
			text: "UQ21CSE305B Data Structures\n(3-0-2)\nCourse Objectives:",
			want: types.CourseMetadata{
				types.KeyCourseCode: "UQ21CSE305B",
				types.KeyTitle:      "Data Structures",
				types.KeyCredits:    "3-0-2",
			},
		},
		{
			name: "surrounding whitespace",
			text: "   UQ22MA101 Engineering Mathematics   \n  (4)  \n",
			want: types.CourseMetadata{
				types.KeyCourseCode: "UQ22MA101",
				types.KeyTitle:      "Engineering Mathematics",
				types.KeyCredits:    "4",
			},
		},
		{
			name: "crlf line endings",
			text: "UQ21CSE305B Data Structures\r\n(3-0-2)\r\n",
			want: types.CourseMetadata{
				types.KeyCourseCode: "UQ21CSE305B",
				types.KeyTitle:      "Data Structures",
				types.KeyCredits:    "3-0-2",
			},
		},
		{
			name: "credits missing",
			text: "UQ21CSE305B Data Structures\nCredits: three\n",
			want: types.CourseMetadata{
				types.KeyCourseCode: "UQ21CSE305B",
				types.KeyTitle:      "Data Structures",
			},
		},
		{
			name: "course line does not match",
			text: "Data Structures UQ21CSE305B\n(3-0-2)\n",
			want: types.CourseMetadata{types.KeyCredits: "3-0-2"},
		},
		{
			name: "lowercase prefix",
			text: "uq21cse305b Data Structures\n(3-0-2)\n",
			want: types.CourseMetadata{types.KeyCredits: "3-0-2"},
		},
		{
			name: "code without title",
			text: "UQ21CSE305B\n(3-0-2)\n",
			want: types.CourseMetadata{types.KeyCredits: "3-0-2"},
		},
		{
			name: "single line",
			text: "UQ21CSE305B Data Structures\n",
			want: types.CourseMetadata{},
		},
		{
			name: "empty",
			text: "",
			want: types.CourseMetadata{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractHeader(tt.text))
		})
	}
}

func TestExtractHeaderReadsOnlyFirstTwoLines(t *testing.T) {
	header := ExtractHeader("\nUQ21CSE305B Data Structures\n(3-0-2)\n")

	_, ok := header.CourseCode()
	assert.False(t, ok)
	assert.NotContains(t, header, types.KeyCredits)
}
