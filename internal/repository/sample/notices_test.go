package sample

import (
	"context"
	"testing"

	"github.com/dormlife/notice-service/internal/apperr"
	"github.com/dormlife/notice-service/internal/dto"
	"github.com/dormlife/notice-service/internal/model"
	"github.com/dormlife/notice-service/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListServesFixtureDataset(t *testing.T) {
	repo := New()

	page, err := repo.List(context.Background(), query.Params{Limit: query.DefaultLimit})
	require.NoError(t, err)
	assert.Len(t, page.Notices, len(Notices))
	assert.Equal(t, len(Notices), page.Total)
}

func TestListFilters(t *testing.T) {
	repo := New()
	pinned := true

	page, err := repo.List(context.Background(), query.Params{Pinned: &pinned, Limit: query.DefaultLimit})
	require.NoError(t, err)
	for _, n := range page.Notices {
		assert.True(t, n.IsPinned)
	}
	assert.Equal(t, 2, page.Total)

	page, err = repo.List(context.Background(), query.Params{Category: "events", Limit: query.DefaultLimit})
	require.NoError(t, err)
	for _, n := range page.Notices {
		assert.Equal(t, model.CategoryEvents, n.Category)
	}
}

func TestListSearchIsCaseInsensitive(t *testing.T) {
	repo := New()

	// "guidelines" appears only inside notice 3's markdown content.
	page, err := repo.List(context.Background(), query.Params{Search: "GUIDELINES", Limit: query.DefaultLimit})
	require.NoError(t, err)
	require.Len(t, page.Notices, 1)
	assert.Equal(t, "3", page.Notices[0].ID)
}

func TestGetByID(t *testing.T) {
	repo := New()

	notice, err := repo.GetByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Maintenance Schedule", notice.Title)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestWritesAlwaysFail(t *testing.T) {
	repo := New()
	ctx := context.Background()

	_, err := repo.Create(ctx, dto.CreateNoticeRequest{Title: "x", Description: "y", Content: "z", Category: "events"})
	assert.ErrorIs(t, err, apperr.ErrStoreUnavailable)

	title := "renamed"
	assert.ErrorIs(t, repo.Update(ctx, "1", dto.UpdateNoticeRequest{Title: &title}), apperr.ErrStoreUnavailable)
	assert.ErrorIs(t, repo.Delete(ctx, "1"), apperr.ErrStoreUnavailable)

	// The fixture set itself must stay untouched.
	page, err := repo.List(ctx, query.Params{Limit: query.DefaultLimit})
	require.NoError(t, err)
	assert.Len(t, page.Notices, len(Notices))
}
