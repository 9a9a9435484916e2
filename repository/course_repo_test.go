package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tieubaoca/docextractor/database"
	"github.com/tieubaoca/docextractor/types"
)

func newTestRepo() CourseRepo {
	return NewCourseRepo(
		database.NewMemoryStore[types.SyllabusDocument](),
		database.NewMemoryStore[types.CourseDocument](),
	)
}

func TestCourseRepoSaveAssignsID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	doc := &types.SyllabusDocument{CourseCode: "UQ21CSE305B", Units: types.SyllabusRecord{}}
	require.NoError(t, repo.SaveSyllabus(ctx, doc))
	assert.NotEmpty(t, doc.ID)

	got, err := repo.GetSyllabus(ctx, "UQ21CSE305B")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
}

func TestCourseRepoGetMissing(t *testing.T) {
	repo := newTestRepo()

	_, err := repo.GetSyllabus(context.Background(), "UQ21CSE305B")
	assert.ErrorIs(t, err, database.ErrNotFound)
	_, err = repo.GetSections(context.Background(), "UQ21CSE305B")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestCourseRepoListCourses(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	require.NoError(t, repo.SaveSections(ctx, &types.CourseDocument{
		CourseCode: "UQ21CSE305B",
		Sections:   types.CourseMetadata{types.KeyCourseCode: "UQ21CSE305B", types.KeyTitle: "Data Structures"},
	}))
	require.NoError(t, repo.SaveSections(ctx, &types.CourseDocument{
		CourseCode: "UQ22MA101",
		Sections:   types.CourseMetadata{types.KeyCourseCode: "UQ22MA101"},
	}))
	require.NoError(t, repo.SaveSections(ctx, &types.CourseDocument{
		CourseCode: "UQ21CSE305B",
		Sections:   types.CourseMetadata{types.KeyCourseCode: "UQ21CSE305B", types.KeyTitle: "Data Structures II"},
	}))

	courses, err := repo.ListCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.CourseSummary{
		{CourseCode: "UQ21CSE305B", Title: "Data Structures II"},
		{CourseCode: "UQ22MA101", Title: "Unknown"},
	}, courses)
}

func TestCourseRepoIDsFollowInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	var prev string
	for i := 0; i < 50; i++ {
		doc := &types.CourseDocument{CourseCode: "UQ21CSE305B", CreatedAt: 1}
		require.NoError(t, repo.SaveSections(ctx, doc))

		id, err := uuid.Parse(doc.ID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())
		assert.Greater(t, doc.ID, prev)
		prev = doc.ID
	}
}

func TestCourseRepoKeepsGivenID(t *testing.T) {
	repo := newTestRepo()
	doc := &types.SyllabusDocument{ID: "fixed", CourseCode: "UQ21CSE305B"}
	require.NoError(t, repo.SaveSyllabus(context.Background(), doc))
	assert.Equal(t, "fixed", doc.ID)
}
