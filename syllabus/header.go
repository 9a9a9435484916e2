package syllabus

import (
	"regexp"
	"strings"

	"github.com/tieubaoca/docextractor/types"
)

var (
	courseLinePattern  = regexp.MustCompile(`^(?P<code>UQ\d{2}[A-Z]+\d+[A-Z]?)\s+(?P<title>.+)`)
	creditsLinePattern = regexp.MustCompile(`^\((?P<credits>[\d-]+)\)`)
)

// ExtractHeader reads the course code, title and credits from the first two
// lines of text. Fields whose line does not match are left out.
func ExtractHeader(text string) types.CourseMetadata {
	header := types.CourseMetadata{}
	lines := splitLines(text)
	if len(lines) < 2 {
		return header
	}

	if m := courseLinePattern.FindStringSubmatch(strings.TrimSpace(lines[0])); m != nil {
		header[types.KeyCourseCode] = m[courseLinePattern.SubexpIndex("code")]
		header[types.KeyTitle] = strings.TrimSpace(m[courseLinePattern.SubexpIndex("title")])
	}
	if m := creditsLinePattern.FindStringSubmatch(strings.TrimSpace(lines[1])); m != nil {
		header[types.KeyCredits] = m[creditsLinePattern.SubexpIndex("credits")]
	}
	return header
}
