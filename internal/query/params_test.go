package query

import (
	"net/url"
	"strings"
	"testing"

	"github.com/dormlife/notice-service/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParamsDefaults(t *testing.T) {
	p, err := ParseParams(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)
	assert.Empty(t, p.Category)
	assert.Empty(t, p.Search)
	assert.Nil(t, p.Pinned)
	assert.False(t, p.ModeCursor)
}

func TestParseParamsEmptyStringsAreAbsent(t *testing.T) {
	values := url.Values{}
	values.Set("category", "")
	values.Set("search", "")
	values.Set("limit", "")
	values.Set("offset", "")
	values.Set("pinned", "")

	p, err := ParseParams(values)
	require.NoError(t, err)

	defaults, err := ParseParams(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, defaults, p)
}

func TestParseParamsValues(t *testing.T) {
	values := url.Values{}
	values.Set("category", "events")
	values.Set("search", "social night")
	values.Set("pinned", "true")
	values.Set("limit", "50")
	values.Set("offset", "5")

	p, err := ParseParams(values)
	require.NoError(t, err)

	assert.Equal(t, "events", p.Category)
	assert.Equal(t, "social night", p.Search)
	require.NotNil(t, p.Pinned)
	assert.True(t, *p.Pinned)
	assert.Equal(t, 50, p.Limit)
	assert.Equal(t, 5, p.Offset)
}

func TestParseParamsPinnedFalse(t *testing.T) {
	values := url.Values{}
	values.Set("pinned", "false")

	p, err := ParseParams(values)
	require.NoError(t, err)
	require.NotNil(t, p.Pinned)
	assert.False(t, *p.Pinned)
}

func TestParseParamsClamps(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "500")
	values.Set("offset", "-3")

	p, err := ParseParams(values)
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)

	values.Set("limit", "0")
	p, err = ParseParams(values)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Limit)
}

func TestParseParamsViolations(t *testing.T) {
	values := url.Values{}
	values.Set("category", "parties")
	values.Set("pinned", "yes")
	values.Set("limit", "abc")
	values.Set("search", strings.Repeat("x", 101))

	_, err := ParseParams(values)
	require.Error(t, err)

	vErr, ok := apperr.AsValidation(err)
	require.True(t, ok)

	fields := make([]string, 0, len(vErr.Fields))
	for _, f := range vErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"category", "pinned", "limit", "search"}, fields)
}

func TestParseFeedParams(t *testing.T) {
	values := url.Values{}
	values.Set("cursor", "abc123")
	values.Set("category", "events")

	p, err := ParseFeedParams(values)
	require.NoError(t, err)

	assert.True(t, p.ModeCursor)
	assert.Equal(t, "abc123", p.Cursor)
	assert.Equal(t, "events", p.Category)
	assert.Equal(t, DefaultPageSize, p.Limit)
}

func TestParseFeedParamsExplicitLimit(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "25")

	p, err := ParseFeedParams(values)
	require.NoError(t, err)
	assert.Equal(t, 25, p.Limit)
	assert.Empty(t, p.Cursor)
}

func TestParseFeedParamsViolations(t *testing.T) {
	values := url.Values{}
	values.Set("category", "nope")

	_, err := ParseFeedParams(values)
	require.Error(t, err)
	_, ok := apperr.AsValidation(err)
	assert.True(t, ok)
}
