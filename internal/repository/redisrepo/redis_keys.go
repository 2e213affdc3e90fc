package redisrepo

import (
	"fmt"

	"github.com/dormlife/notice-service/internal/query"
)

const (
	NOTICE_LIST   = "notices:list:%s"
	NOTICE_DETAIL = "notices:detail:%s"

	// NOTICE_LIST_PATTERN matches every list key for coarse invalidation.
	NOTICE_LIST_PATTERN = "notices:list:*"
)

// NoticeListKey builds a cache key unique per normalized parameter
// combination, so every distinct query is its own cache entry.
func NoticeListKey(p query.Params) string {
	pinned := "-"
	if p.Pinned != nil {
		pinned = fmt.Sprintf("%t", *p.Pinned)
	}
	mode := fmt.Sprintf("o:%d", p.Offset)
	if p.ModeCursor {
		mode = "c:" + p.Cursor
	}
	return fmt.Sprintf(NOTICE_LIST, fmt.Sprintf("%s:%s:%s:%d:%s", p.Category, p.Search, pinned, p.Limit, mode))
}

func NoticeDetailKey(id string) string {
	return fmt.Sprintf(NOTICE_DETAIL, id)
}
