package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tieubaoca/docextractor/types"
)

func TestMemoryStorePutGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[types.SyllabusDocument]()

	doc := types.SyllabusDocument{
		ID:         "a",
		CourseCode: "UQ21CSE305B",
		Units: types.SyllabusRecord{
			"unit_1": {Title: "Intro", Topics: []string{"Arrays"}, ExperientialLearning: []string{"Lab"}},
		},
		CreatedAt: 1,
	}
	require.NoError(t, store.Put(ctx, doc))

	got, err := store.Get(ctx, "UQ21CSE305B")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, "Intro", got.Units["unit_1"].Title)
	assert.Equal(t, []string{"Arrays"}, got.Units["unit_1"].Topics)
	assert.Equal(t, []string{"Lab"}, got.Units["unit_1"].ExperientialLearning)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore[types.CourseDocument]()

	_, err := store.Get(context.Background(), "UQ00X0")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreKeepsEveryVersion(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[types.CourseDocument]()

	require.NoError(t, store.Put(ctx, types.CourseDocument{CourseCode: "UQ1", Sections: types.CourseMetadata{types.KeyTitle: "Old"}}))
	require.NoError(t, store.Put(ctx, types.CourseDocument{CourseCode: "UQ2", Sections: types.CourseMetadata{types.KeyTitle: "Other"}}))
	require.NoError(t, store.Put(ctx, types.CourseDocument{CourseCode: "UQ1", Sections: types.CourseMetadata{types.KeyTitle: "New"}}))

	got, err := store.Get(ctx, "UQ1")
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title())

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Old", all[0].Title())
	assert.Equal(t, "New", all[1].Title())
	assert.Equal(t, "Other", all[2].Title())
}

func TestMemoryStoreIsolatesCallers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[types.CourseDocument]()
	sections := types.CourseMetadata{types.KeyTitle: "Data Structures"}

	require.NoError(t, store.Put(ctx, types.CourseDocument{CourseCode: "UQ1", Sections: sections}))
	sections[types.KeyTitle] = "changed"

	got, err := store.Get(ctx, "UQ1")
	require.NoError(t, err)
	assert.Equal(t, "Data Structures", got.Title())
}
