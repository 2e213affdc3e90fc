package query

import (
	"testing"

	"github.com/dormlife/notice-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

// testNotices is in insertion order; n2 and n3 share a day on purpose.
func testNotices() []model.Notice {
	return []model.Notice{
		{ID: "n1", Title: "Laundry room closed", Description: "Machines offline", Content: "All washers are down for repairs", Category: model.CategoryMaintenance, CreatedAt: "2024-03-01"},
		{ID: "n2", Title: "Spring festival", Description: "Annual spring party", Content: "Food and music in the courtyard", Category: model.CategoryEvents, IsPinned: true, CreatedAt: "2024-03-03"},
		{ID: "n3", Title: "Quiet hours reminder", Description: "Exam season", Content: "Please keep noise down after 10pm", Category: model.CategoryAnnouncements, CreatedAt: "2024-03-03"},
		{ID: "n4", Title: "Elevator Maintenance", Description: "Scheduled work", Content: "The main elevator will be serviced", Category: model.CategoryMaintenance, IsPinned: true, CreatedAt: "2024-03-05"},
		{ID: "n5", Title: "Movie night", Description: "Weekly screening", Content: "This week we are showing a classic", Category: model.CategoryEvents, CreatedAt: "2024-03-04"},
	}
}

func ids(notices []model.Notice) []string {
	out := make([]string, 0, len(notices))
	for _, n := range notices {
		out = append(out, n.ID)
	}
	return out
}

func TestRunOrdering(t *testing.T) {
	page := Run(testNotices(), Params{Limit: DefaultLimit})

	// createdAt descending; n2 before n3 because n2 was inserted first.
	assert.Equal(t, []string{"n4", "n5", "n2", "n3", "n1"}, ids(page.Notices))
	assert.Equal(t, 5, page.Total)
}

func TestRunIdempotent(t *testing.T) {
	p := Params{Category: "events", Limit: DefaultLimit}
	first := Run(testNotices(), p)
	second := Run(testNotices(), p)
	assert.Equal(t, first, second)
}

func TestRunCategoryFilter(t *testing.T) {
	page := Run(testNotices(), Params{Category: "events", Limit: DefaultLimit})

	require.Len(t, page.Notices, 2)
	assert.Equal(t, 2, page.Total)
	for _, n := range page.Notices {
		assert.Equal(t, model.CategoryEvents, n.Category)
	}
}

func TestRunPinnedFilter(t *testing.T) {
	page := Run(testNotices(), Params{Pinned: boolPtr(true), Limit: DefaultLimit})
	assert.Equal(t, []string{"n4", "n2"}, ids(page.Notices))
	for _, n := range page.Notices {
		assert.True(t, n.IsPinned)
	}

	page = Run(testNotices(), Params{Pinned: boolPtr(false), Limit: DefaultLimit})
	assert.Equal(t, []string{"n5", "n3", "n1"}, ids(page.Notices))
}

func TestRunSearch(t *testing.T) {
	t.Run("case insensitive across fields", func(t *testing.T) {
		// "maintenance" appears only in n4's title, capitalized.
		page := Run(testNotices(), Params{Search: "maintenance", Limit: DefaultLimit})
		assert.Equal(t, []string{"n4"}, ids(page.Notices))
	})

	t.Run("matches description or content", func(t *testing.T) {
		page := Run(testNotices(), Params{Search: "SHOWING", Limit: DefaultLimit})
		assert.Equal(t, []string{"n5"}, ids(page.Notices))

		page = Run(testNotices(), Params{Search: "exam", Limit: DefaultLimit})
		assert.Equal(t, []string{"n3"}, ids(page.Notices))
	})

	t.Run("no match", func(t *testing.T) {
		page := Run(testNotices(), Params{Search: "swimming pool", Limit: DefaultLimit})
		assert.Empty(t, page.Notices)
		assert.Equal(t, 0, page.Total)
	})
}

func TestRunSearchCombinesWithFilters(t *testing.T) {
	page := Run(testNotices(), Params{Category: "maintenance", Search: "elevator", Limit: DefaultLimit})
	assert.Equal(t, []string{"n4"}, ids(page.Notices))
	assert.Equal(t, 1, page.Total)
}

func TestRunOffsetPagination(t *testing.T) {
	first := Run(testNotices(), Params{Limit: 2, Offset: 0})
	second := Run(testNotices(), Params{Limit: 2, Offset: 2})

	// Adjacent windows join with no duplicates or gaps.
	assert.Equal(t, []string{"n4", "n5"}, ids(first.Notices))
	assert.Equal(t, []string{"n2", "n3"}, ids(second.Notices))
	assert.Equal(t, 5, first.Total)
	assert.Equal(t, 5, second.Total)

	beyond := Run(testNotices(), Params{Limit: 2, Offset: 10})
	assert.Empty(t, beyond.Notices)
	assert.Equal(t, 5, beyond.Total)
}

func TestRunCursorWalk(t *testing.T) {
	var (
		collected []string
		cursor    string
	)
	for {
		page := Run(testNotices(), Params{ModeCursor: true, Cursor: cursor, Limit: 2})
		assert.Equal(t, 5, page.Total)
		collected = append(collected, ids(page.Notices)...)
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	// Every filtered item exactly once, in ordering order.
	assert.Equal(t, []string{"n4", "n5", "n2", "n3", "n1"}, collected)
}

func TestRunCursorLastPageHasNoCursor(t *testing.T) {
	page := Run(testNotices(), Params{ModeCursor: true, Limit: 5})
	assert.Len(t, page.Notices, 5)
	assert.Empty(t, page.NextCursor)

	// A page that exactly reaches the end must not hand out a cursor either.
	page = Run(testNotices(), Params{ModeCursor: true, Cursor: "n3", Limit: 1})
	assert.Equal(t, []string{"n1"}, ids(page.Notices))
	assert.Empty(t, page.NextCursor)
}

func TestRunStaleCursorRestartsFromBeginning(t *testing.T) {
	page := Run(testNotices(), Params{ModeCursor: true, Cursor: "deleted-id", Limit: 2})
	assert.Equal(t, []string{"n4", "n5"}, ids(page.Notices))
	assert.Equal(t, "n5", page.NextCursor)
}

func TestRunCursorRespectsFilters(t *testing.T) {
	page := Run(testNotices(), Params{ModeCursor: true, Category: "events", Limit: 1})
	assert.Equal(t, []string{"n5"}, ids(page.Notices))
	assert.Equal(t, 2, page.Total)
	require.Equal(t, "n5", page.NextCursor)

	page = Run(testNotices(), Params{ModeCursor: true, Category: "events", Cursor: page.NextCursor, Limit: 1})
	assert.Equal(t, []string{"n2"}, ids(page.Notices))
	assert.Empty(t, page.NextCursor)
}

func TestRunEmptySet(t *testing.T) {
	page := Run(nil, Params{Limit: DefaultLimit})
	assert.Empty(t, page.Notices)
	assert.Equal(t, 0, page.Total)

	page = Run(nil, Params{ModeCursor: true, Limit: DefaultPageSize})
	assert.Empty(t, page.Notices)
	assert.Empty(t, page.NextCursor)
}
