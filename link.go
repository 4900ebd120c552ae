package jobkpi

import (
	"regexp"
	"strings"
)

var schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:`)

// ResolveLink turns a listing href into an absolute address.
//
// An href that already starts with a scheme is returned unchanged. Otherwise
// base and href are joined with exactly one slash between them; no other
// path normalization is done. An empty href yields an empty string, meaning
// the link was not captured.
func ResolveLink(base, href string) string {
	if href == "" {
		return ""
	}
	if schemeRe.MatchString(href) {
		return href
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(href, "/")
}
