package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tieubaoca/docextractor/database"
	"github.com/tieubaoca/docextractor/types"
)

type CourseRepo interface {
	SaveSyllabus(ctx context.Context, doc *types.SyllabusDocument) error
	SaveSections(ctx context.Context, doc *types.CourseDocument) error
	GetSyllabus(ctx context.Context, courseCode string) (*types.SyllabusDocument, error)
	GetSections(ctx context.Context, courseCode string) (*types.CourseDocument, error)
	ListCourses(ctx context.Context) ([]types.CourseSummary, error)
}

type courseRepo struct {
	syllabi  database.DocumentStore[types.SyllabusDocument]
	sections database.DocumentStore[types.CourseDocument]
}

func NewCourseRepo(
	syllabi database.DocumentStore[types.SyllabusDocument],
	sections database.DocumentStore[types.CourseDocument],
) CourseRepo {
	return &courseRepo{
		syllabi:  syllabi,
		sections: sections,
	}
}

// assignID sets a time-ordered UUIDv7, so ids break created_at ties in
// insertion order.
func assignID(id *string) error {
	if *id != "" {
		return nil
	}
	v7, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate id: %w", err)
	}
	*id = v7.String()
	return nil
}

func (r *courseRepo) SaveSyllabus(ctx context.Context, doc *types.SyllabusDocument) error {
	if err := assignID(&doc.ID); err != nil {
		return err
	}
	return r.syllabi.Put(ctx, *doc)
}

func (r *courseRepo) SaveSections(ctx context.Context, doc *types.CourseDocument) error {
	if err := assignID(&doc.ID); err != nil {
		return err
	}
	return r.sections.Put(ctx, *doc)
}

func (r *courseRepo) GetSyllabus(ctx context.Context, courseCode string) (*types.SyllabusDocument, error) {
	doc, err := r.syllabi.Get(ctx, courseCode)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *courseRepo) GetSections(ctx context.Context, courseCode string) (*types.CourseDocument, error) {
	doc, err := r.sections.Get(ctx, courseCode)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListCourses lists every stored course once, with the title of its newest
// upload.
func (r *courseRepo) ListCourses(ctx context.Context) ([]types.CourseSummary, error) {
	docs, err := r.sections.List(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(docs))
	courses := make([]types.CourseSummary, 0, len(docs))
	for _, doc := range docs {
		summary := types.CourseSummary{CourseCode: doc.CourseCode, Title: doc.Title()}
		if i, ok := index[doc.CourseCode]; ok {
			courses[i] = summary
			continue
		}
		index[doc.CourseCode] = len(courses)
		courses = append(courses, summary)
	}
	return courses, nil
}
