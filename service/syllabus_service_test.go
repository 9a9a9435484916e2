package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tieubaoca/docextractor/database"
	"github.com/tieubaoca/docextractor/logger"
	"github.com/tieubaoca/docextractor/repository"
	"github.com/tieubaoca/docextractor/types"
)

const validSyllabus = `UQ21CSE305B Data Structures
(3-0-2)
Course Objectives: Learn X.
Course Outcomes: Apply X.
Course Overview: Overview.
Course Content:
Unit 1: Basics
Algebra - Groups, Rings. Calculus.
Experiential learning: Build a robot, Write a report. 10 + 5 Hours
Unit 3: More
Sorting - Merge, Quick.
Text Books: Cormen.
Reference Books: Knuth.
`

type staticDecoder struct {
	text string
	err  error
}

func (d staticDecoder) ExtractText([]byte) (string, error) {
	return d.text, d.err
}

type fakeIndex struct {
	indexed []types.SyllabusDocument
	hits    []types.TopicHit
	err     error
}

func (f *fakeIndex) IndexSyllabus(_ context.Context, doc types.SyllabusDocument) error {
	f.indexed = append(f.indexed, doc)
	return f.err
}

func (f *fakeIndex) Search(context.Context, string, int) ([]types.TopicHit, error) {
	return f.hits, nil
}

type failingStore[T database.Record] struct {
	database.DocumentStore[T]
}

func (failingStore[T]) Put(context.Context, T) error {
	return errors.New("write failed")
}

type stores struct {
	syllabi  *database.MemoryStore[types.SyllabusDocument]
	sections *database.MemoryStore[types.CourseDocument]
}

func newStores() stores {
	return stores{
		syllabi:  database.NewMemoryStore[types.SyllabusDocument](),
		sections: database.NewMemoryStore[types.CourseDocument](),
	}
}

func newTestService(text string, st stores, opts ...Option) *SyllabusService {
	repo := repository.NewCourseRepo(st.syllabi, st.sections)
	return NewSyllabusService(staticDecoder{text: text}, repo, logger.Nop(), opts...)
}

func TestIngestStoresBothRecords(t *testing.T) {
	ctx := context.Background()
	st := newStores()
	index := &fakeIndex{}
	svc := newTestService(validSyllabus, st, WithTopicIndex(index))

	res, err := svc.Ingest(ctx, "ds.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "UQ21CSE305B", res.CourseCode)
	assert.Equal(t, 2, res.Units)

	course, err := svc.GetCourse(ctx, "UQ21CSE305B")
	require.NoError(t, err)
	require.Contains(t, course.Units, "unit_1")
	require.Contains(t, course.Units, "unit_3")
	assert.NotContains(t, course.Units, "unit_2")
	assert.Equal(t, []string{"Algebra - Groups", "Algebra - Rings", "Calculus"}, course.Units["unit_1"].Topics)
	assert.Equal(t, []string{"Build a robot", "Write a report"}, course.Units["unit_1"].ExperientialLearning)

	sections, err := svc.GetCourseSections(ctx, "UQ21CSE305B")
	require.NoError(t, err)
	assert.Equal(t, "Data Structures", sections.Sections[types.KeyTitle])
	assert.Equal(t, "3-0-2", sections.Sections[types.KeyCredits])
	assert.Equal(t, "Learn X.", sections.Sections[types.KeyCourseObjectives])

	courses, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.CourseSummary{{CourseCode: "UQ21CSE305B", Title: "Data Structures"}}, courses)

	require.Len(t, index.indexed, 1)
	assert.Equal(t, "UQ21CSE305B", index.indexed[0].CourseCode)
}

func TestIngestRejectsMissingCourseCode(t *testing.T) {
	ctx := context.Background()
	st := newStores()
	index := &fakeIndex{}
	svc := newTestService("Draft syllabus\n(3-0-2)\nUnit 1: Basics\nAlgebra.\n", st, WithTopicIndex(index))

	_, err := svc.Ingest(ctx, "draft.pdf", []byte("%PDF-1.4"))
	assert.ErrorIs(t, err, ErrInvalidSyllabus)

	syllabi, err := st.syllabi.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, syllabi)
	sections, err := st.sections.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sections)
	assert.Empty(t, index.indexed)
}

func TestIngestRejectsNonPDF(t *testing.T) {
	svc := newTestService(validSyllabus, newStores())

	_, err := svc.Ingest(context.Background(), "syllabus.docx", []byte("data"))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestIngestDecoderError(t *testing.T) {
	repo := repository.NewCourseRepo(database.NewMemoryStore[types.SyllabusDocument](), database.NewMemoryStore[types.CourseDocument]())
	svc := NewSyllabusService(staticDecoder{err: ErrUndecodablePDF}, repo, logger.Nop())

	_, err := svc.Ingest(context.Background(), "broken.pdf", []byte("junk"))
	assert.ErrorIs(t, err, ErrUndecodablePDF)
}

func TestIngestSectionsFailureKeepsSyllabus(t *testing.T) {
	ctx := context.Background()
	syllabi := database.NewMemoryStore[types.SyllabusDocument]()
	repo := repository.NewCourseRepo(syllabi, failingStore[types.CourseDocument]{database.NewMemoryStore[types.CourseDocument]()})
	svc := NewSyllabusService(staticDecoder{text: validSyllabus}, repo, logger.Nop())

	_, err := svc.Ingest(ctx, "ds.pdf", []byte("%PDF-1.4"))
	assert.ErrorContains(t, err, "failed to save course sections")

	_, err = syllabi.Get(ctx, "UQ21CSE305B")
	assert.NoError(t, err)
}

func TestIngestIndexFailureIsNotFatal(t *testing.T) {
	index := &fakeIndex{err: errors.New("weaviate down")}
	svc := newTestService(validSyllabus, newStores(), WithTopicIndex(index))

	_, err := svc.Ingest(context.Background(), "ds.pdf", []byte("%PDF-1.4"))
	assert.NoError(t, err)
}

func TestIngestArchivesUpload(t *testing.T) {
	files, err := NewFileService(t.TempDir())
	require.NoError(t, err)
	svc := newTestService(validSyllabus, newStores(), WithArchive(files))

	_, err = svc.Ingest(context.Background(), "ds.pdf", []byte("%PDF-1.4 body"))
	require.NoError(t, err)

	path, err := svc.DocumentPath("UQ21CSE305B")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 body", string(data))
}

func TestReuploadKeepsNewest(t *testing.T) {
	ctx := context.Background()
	st := newStores()
	first := newTestService(validSyllabus, st)
	_, err := first.Ingest(ctx, "ds.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)

	second := newTestService("UQ21CSE305B Data Structures II\n(4)\nUnit 2: Only\nTrees.\n", st)
	_, err = second.Ingest(ctx, "ds2.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)

	course, err := second.GetCourse(ctx, "UQ21CSE305B")
	require.NoError(t, err)
	assert.Contains(t, course.Units, "unit_2")
	assert.NotContains(t, course.Units, "unit_1")

	all, err := st.syllabi.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSearchTopics(t *testing.T) {
	svc := newTestService(validSyllabus, newStores())
	_, err := svc.SearchTopics(context.Background(), "graphs", 5)
	assert.ErrorIs(t, err, ErrSearchDisabled)

	index := &fakeIndex{hits: []types.TopicHit{{CourseCode: "UQ21CSE305B", Topic: "Graphs - BFS"}}}
	svc = newTestService(validSyllabus, newStores(), WithTopicIndex(index))
	hits, err := svc.SearchTopics(context.Background(), "graphs", 5)
	require.NoError(t, err)
	assert.Equal(t, index.hits, hits)
}

func TestDocumentPathWithoutArchive(t *testing.T) {
	svc := newTestService(validSyllabus, newStores())

	_, err := svc.DocumentPath("UQ21CSE305B")
	assert.ErrorIs(t, err, ErrNoArchive)
}
