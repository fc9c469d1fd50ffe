package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollapseSlashes(t *testing.T) {
	cases := map[string]string{
		"http://x//foo":          "http://x/foo",
		"http://x///a////b/":     "http://x/a/b/",
		"https:///host":          "https://host",
		"//a//b":                 "/a/b",
		"http://127.0.0.1:3000/": "http://127.0.0.1:3000/",
		"x:/y":                   "x:/y",
		"":                       "",
	}
	for in, want := range cases {
		assert.Equal(t, want, CollapseSlashes(in), in)
	}
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "http://x/foo", JoinURL("http://x//", "//foo"))
	assert.Equal(t, "http://x/mock/users", JoinURL("http://x/mock", "users"))
}

func TestBuildMockAPIURL(t *testing.T) {
	got, err := BuildMockAPIURL("http://x//", "//foo", "7")
	require.NoError(t, err)
	assert.Equal(t, "http://x/foo?mockID=7", got)

	got, err = BuildMockAPIURL("http://127.0.0.1:13928/mock/", "/users?page=2", "abc")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:13928/mock/users?page=2&mockID=abc", got)
}

func TestBuildMockAPIURL_RelativeBaseUsesFallback(t *testing.T) {
	got, err := BuildMockAPIURL("", "pets/{id}", "9")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/pets/{id}?mockID=9", got)
}

func TestBuildMockAPIURL_ReplacesExistingMockID(t *testing.T) {
	got, err := BuildMockAPIURL("http://x", "/a?mockID=old", "new")
	require.NoError(t, err)
	assert.Equal(t, "http://x/a?mockID=new", got)
}

func TestBuildMockAPIURL_KeepsQueryOrder(t *testing.T) {
	got, err := BuildMockAPIURL("http://x", "/a?z=1&mockID=old&b=2&mockID=dup&a=3", "new")
	require.NoError(t, err)
	assert.Equal(t, "http://x/a?z=1&mockID=new&b=2&a=3", got)
}
