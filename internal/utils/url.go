package utils

import (
	"net/url"
	"strings"
)

// FallbackBaseURL resolves relative mock urls, matching what the frontend
// does when no mock server is known.
const FallbackBaseURL = "https://github.com/"

// CollapseSlashes squeezes every run of two or more '/' into one, except a
// run directly after ':' which keeps two so "scheme://" survives.
func CollapseSlashes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '/' {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && s[j] == '/' {
			j++
		}
		run := j - i
		switch {
		case i > 0 && s[i-1] == ':' && run >= 2:
			b.WriteString("//")
		default:
			b.WriteByte('/')
		}
		i = j
	}
	return b.String()
}

// JoinURL concatenates base and path with a '/' and collapses the result.
func JoinURL(base, path string) string {
	return CollapseSlashes(base + "/" + path)
}

// WithQueryParam resolves raw against FallbackBaseURL, sets key=value and
// returns the percent-decoded string. Other query pairs keep their order.
func WithQueryParam(raw, key, value string) (string, error) {
	base, _ := url.Parse(FallbackBaseURL)
	ref, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	u := base.ResolveReference(ref)
	u.RawQuery = setQueryParam(u.RawQuery, key, value)

	out := u.String()
	if decoded, err := url.PathUnescape(out); err == nil {
		return decoded, nil
	}
	return out, nil
}

// BuildMockAPIURL joins the mock base url with an api path and tags the
// result with the api id as the mockID query parameter.
func BuildMockAPIURL(base, path, mockID string) (string, error) {
	return WithQueryParam(JoinURL(base, path), "mockID", mockID)
}

// setQueryParam replaces the first key pair in place, drops any later ones
// and appends key when it is absent.
func setQueryParam(rawQuery, key, value string) string {
	pair := url.QueryEscape(key) + "=" + url.QueryEscape(value)
	out := make([]string, 0, strings.Count(rawQuery, "&")+2)
	replaced := false
	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		name, _, _ := strings.Cut(part, "=")
		if k, err := url.QueryUnescape(name); err == nil && k == key {
			if !replaced {
				out = append(out, pair)
				replaced = true
			}
			continue
		}
		out = append(out, part)
	}
	if !replaced {
		out = append(out, pair)
	}
	return strings.Join(out, "&")
}
