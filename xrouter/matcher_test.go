package xrouter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcherStaticPath(t *testing.T) {
	route := NewRoute("/about", nil)

	ok, params := route.matcher("/about")
	assert.True(t, ok)
	assert.Empty(t, params)

	ok, _ = route.matcher("/about/team")
	assert.False(t, ok)
}

func TestMatcherDynamicSegment(t *testing.T) {
	route := NewRoute("/users/:id", nil)

	ok, params := route.matcher("/users/123")
	assert.True(t, ok)
	assert.Equal(t, "123", params["id"])

	ok, _ = route.matcher("/users")
	assert.False(t, ok)

	ok, _ = route.matcher("/users/123/posts")
	assert.False(t, ok)
}

func TestMatcherOptionalSegments(t *testing.T) {
	route := NewRoute("/archive/:year?/:month?", nil)

	cases := []struct {
		path   string
		match  bool
		params map[string]string
	}{
		{"/archive/2023", true, map[string]string{"year": "2023"}},
		{"/archive/2023/08", true, map[string]string{"year": "2023", "month": "08"}},
		{"/archive", true, map[string]string{}},
		{"/archive/2023/08/15", false, nil},
	}

	for _, tc := range cases {
		ok, params := route.matcher(tc.path)
		assert.Equal(t, tc.match, ok, "path %s", tc.path)
		if tc.match {
			assert.Equal(t, tc.params, params, "path %s", tc.path)
		}
	}
}

func TestMatcherWildcardCapturesRemainder(t *testing.T) {
	route := NewRoute("/files/*rest", nil)

	ok, params := route.matcher("/files/a/b/c.txt")
	assert.True(t, ok)
	assert.Equal(t, "a/b/c.txt", params["rest"])

	ok, _ = route.matcher("/files")
	assert.False(t, ok)
}

func TestMatcherRegexFilterRejectsNonMatchingParam(t *testing.T) {
	route := NewRoute("/users/:id", nil)
	route.MatchFilters["id"] = `^\d+$`

	ok, _ := route.matcher("/users/123")
	assert.True(t, ok)

	ok, _ = route.matcher("/users/abc")
	assert.False(t, ok)
}

func TestMatcherFuncFilterRejectsNonMatchingParam(t *testing.T) {
	route := NewRoute("/users/:id", nil)
	route.MatchFilters["id"] = func(v string) bool { return v == "admin" }

	ok, _ := route.matcher("/users/admin")
	assert.True(t, ok)

	ok, _ = route.matcher("/users/guest")
	assert.False(t, ok)
}

func TestMatcherAllowsPartialMatchWithChildren(t *testing.T) {
	route := NewRoute("/dashboard", nil)
	route.Children = []*Route{NewRoute("/settings", nil)}
	route.matcher = compileMatcher(route)

	ok, _ := route.matcher("/dashboard/settings")
	assert.True(t, ok)
}
