// Package syllabus turns the decoded text of a course syllabus into course
// metadata and a unit-by-unit topic breakdown. Everything here is a pure
// function of the input text; a label that is not found simply leaves its
// field out of the result.
package syllabus

import (
	"golang.org/x/sync/errgroup"

	"github.com/tieubaoca/docextractor/types"
)

// ExtractMetadata returns the header fields and the labeled sections.
func ExtractMetadata(text string) types.CourseMetadata {
	return ExtractHeader(text).Merge(ExtractSections(text))
}

// Extract runs the header, section and unit extractors over text and
// deduplicates the unit topics. The extractors share no state and run
// concurrently.
func Extract(text string) *types.Extraction {
	var (
		header   types.CourseMetadata
		sections types.CourseMetadata
		units    []types.Unit
		g        errgroup.Group
	)
	g.Go(func() error {
		header = ExtractHeader(text)
		return nil
	})
	g.Go(func() error {
		sections = ExtractSections(text)
		return nil
	})
	g.Go(func() error {
		units = DedupeUnits(ExtractUnits(text))
		return nil
	})
	_ = g.Wait()

	return &types.Extraction{
		Metadata: header.Merge(sections),
		Units:    units,
		Syllabus: types.NewSyllabusRecord(units),
	}
}
