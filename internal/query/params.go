package query

import (
	"net/url"
	"strconv"

	"github.com/dormlife/notice-service/internal/apperr"
	"github.com/dormlife/notice-service/internal/model"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	// DefaultPageSize applies to cursor (feed) pagination only.
	DefaultPageSize = 10

	maxSearchLen = 100
)

// Params is a normalized notice query. Empty Category/Search and nil Pinned
// mean "no filter". Exactly one of the two pagination modes is in effect:
// cursor mode when ModeCursor is set, offset mode otherwise.
type Params struct {
	Category string
	Search   string
	Pinned   *bool

	Limit  int
	Offset int

	ModeCursor bool
	Cursor     string
}

// ParseParams normalizes raw URL query parameters into offset-mode Params.
// Empty-string values behave exactly like absent parameters. Limit and offset
// are clamped rather than rejected; non-numeric numbers, unknown categories,
// over-long search terms and non-boolean pinned values are field violations.
func ParseParams(values url.Values) (Params, error) {
	p := Params{Limit: DefaultLimit}
	var violations []apperr.FieldError

	if v := values.Get("category"); v != "" {
		if !model.ValidCategory(v) {
			violations = append(violations, apperr.FieldError{Field: "category", Message: "must be one of events, announcements, maintenance"})
		} else {
			p.Category = v
		}
	}

	if v := values.Get("search"); v != "" {
		if len(v) > maxSearchLen {
			violations = append(violations, apperr.FieldError{Field: "search", Message: "must be at most 100 characters"})
		} else {
			p.Search = v
		}
	}

	if v := values.Get("pinned"); v != "" {
		switch v {
		case "true":
			t := true
			p.Pinned = &t
		case "false":
			f := false
			p.Pinned = &f
		default:
			violations = append(violations, apperr.FieldError{Field: "pinned", Message: "must be true or false"})
		}
	}

	if v := values.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			violations = append(violations, apperr.FieldError{Field: "limit", Message: "must be an integer"})
		} else {
			p.Limit = clampLimit(n)
		}
	}

	if v := values.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			violations = append(violations, apperr.FieldError{Field: "offset", Message: "must be an integer"})
		} else if n > 0 {
			p.Offset = n
		}
	}

	if len(violations) > 0 {
		return Params{}, apperr.NewValidationError(violations...)
	}
	return p, nil
}

// ParseFeedParams normalizes raw URL query parameters into cursor-mode Params
// for the infinite-scroll feed. The page size parameter is named "limit" like
// the offset endpoint but defaults to DefaultPageSize.
func ParseFeedParams(values url.Values) (Params, error) {
	raw := url.Values{}
	for _, k := range []string{"category", "search", "pinned", "limit"} {
		if v := values.Get(k); v != "" {
			raw.Set(k, v)
		}
	}

	p, err := ParseParams(raw)
	if err != nil {
		return Params{}, err
	}

	p.ModeCursor = true
	p.Cursor = values.Get("cursor")
	if values.Get("limit") == "" {
		p.Limit = DefaultPageSize
	}
	return p, nil
}

func clampLimit(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}
