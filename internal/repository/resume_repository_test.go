package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/fadilmartias/starplan/internal/model"
	"github.com/fadilmartias/starplan/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryResumeRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryResumeRepository()

	doc := &model.ResumeDocument{UserID: "u1", FileName: "resume-1.pdf", ExtractedText: "Go developer"}
	require.NoError(t, repo.Create(ctx, doc))
	require.NotEqual(t, uuid.Nil, doc.ID)
	assert.False(t, doc.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, doc.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Go developer", found.ExtractedText)

	deleted, err := repo.Delete(ctx, doc.ID.String())
	require.NoError(t, err)
	assert.Equal(t, doc.ID, deleted.ID)

	_, err = repo.FindByID(ctx, doc.ID.String())
	assert.ErrorIs(t, err, repository.ErrResumeNotFound)
	_, err = repo.Delete(ctx, doc.ID.String())
	assert.ErrorIs(t, err, repository.ErrResumeNotFound)
}

func TestMemoryResumeRepository_FindByID_InvalidID(t *testing.T) {
	_, err := repository.NewMemoryResumeRepository().FindByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, repository.ErrResumeNotFound)
}

func TestMemoryResumeRepository_ListFiltersAndPaginates(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryResumeRepository()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &model.ResumeDocument{
			UserID:    "u1",
			FileName:  "resume.pdf",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, repo.Create(ctx, &model.ResumeDocument{UserID: "u2", CreatedAt: base}))

	page1, total, err := repo.List(ctx, "u1", 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, page1, 2)
	assert.True(t, page1[0].CreatedAt.After(page1[1].CreatedAt), "newest first")

	page3, _, err := repo.List(ctx, "u1", 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)

	empty, _, err := repo.List(ctx, "u1", 9, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)

	all, total, err := repo.List(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 6, total)
	assert.Len(t, all, 6)
}
