package query

import (
	"sort"
	"strings"

	"github.com/dormlife/notice-service/internal/model"
)

// Page is one result page of a notice query. Total counts the whole filtered
// set, not the page. NextCursor is set in cursor mode iff more items remain
// beyond the page.
type Page struct {
	Notices    []model.Notice
	Total      int
	NextCursor string
}

// Run applies p to the given notice set and produces a result page.
//
// The pipeline is: order by createdAt descending (ties keep the input order,
// which the stores guarantee to be insertion order), filter by category,
// pinned and search, record the total, then paginate in the requested mode.
// Search is a case-insensitive substring match over title, description or
// content. An unknown cursor restarts from the beginning of the filtered set;
// a stale cursor must not break the caller.
func Run(notices []model.Notice, p Params) Page {
	ordered := make([]model.Notice, len(notices))
	copy(ordered, notices)
	sort.SliceStable(ordered, func(i, j int) bool {
		// YYYY-MM-DD strings order lexicographically.
		return ordered[i].CreatedAt > ordered[j].CreatedAt
	})

	filtered := ordered[:0:len(ordered)]
	term := strings.ToLower(p.Search)
	for _, n := range ordered {
		if p.Category != "" && string(n.Category) != p.Category {
			continue
		}
		if p.Pinned != nil && n.IsPinned != *p.Pinned {
			continue
		}
		if term != "" && !matchesSearch(n, term) {
			continue
		}
		filtered = append(filtered, n)
	}

	if p.ModeCursor {
		return cursorPage(filtered, p)
	}
	return offsetPage(filtered, p)
}

func matchesSearch(n model.Notice, term string) bool {
	return strings.Contains(strings.ToLower(n.Title), term) ||
		strings.Contains(strings.ToLower(n.Description), term) ||
		strings.Contains(strings.ToLower(n.Content), term)
}

func offsetPage(filtered []model.Notice, p Params) Page {
	page := Page{Total: len(filtered), Notices: []model.Notice{}}

	start := p.Offset
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + p.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	page.Notices = append(page.Notices, filtered[start:end]...)
	return page
}

func cursorPage(filtered []model.Notice, p Params) Page {
	page := Page{Total: len(filtered), Notices: []model.Notice{}}

	start := 0
	if p.Cursor != "" {
		for i, n := range filtered {
			if n.ID == p.Cursor {
				start = i + 1
				break
			}
		}
	}

	end := start + p.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	page.Notices = append(page.Notices, filtered[start:end]...)

	if end < len(filtered) && len(page.Notices) > 0 {
		page.NextCursor = page.Notices[len(page.Notices)-1].ID
	}
	return page
}
