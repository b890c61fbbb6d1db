// Package urlutil holds the pure string functions the crawler and the
// offline builders use to normalize, admit and resolve URLs. It is the Go
// port of the original implementation's crawler/url_utils.hpp, adapted from
// boost::regex searches to stdlib strings/regexp.
package urlutil

import (
	"regexp"
	"strings"
)

// badExtensions lists the extensions that disqualify a URL from admission,
// per the spec's URL invariants.
var badExtensions = map[string]bool{
	"xml": true,
	"php": true,
	"js":  true,
	"jpg": true,
	"png": true,
}

// wikiNamespaceRegexp matches any of the reserved wiki-namespace prefixes
// (and their _talk variants) anywhere in the URL, mirroring the original's
// subsection_regex search (not anchored to the start of the string).
var wikiNamespaceRegexp = regexp.MustCompile(`(?i)(Special|User_talk|User|Wikipedia_talk|Template|MediaWiki|Talk|Wikipedia|Help|File):`)

var schemeRegexp = regexp.MustCompile(`(?i)^(https?://)`)

// Domain returns the host portion of u: everything up to (but excluding)
// the first '/' once an optional scheme prefix has been stripped.
func Domain(u string) string {
	u = schemeRegexp.ReplaceAllString(u, "")
	if idx := strings.IndexByte(u, '/'); idx >= 0 {
		return u[:idx]
	}
	return u
}

// Extension returns the lowercased file extension of u (without the dot),
// ignoring any scheme, query string or fragment.
func Extension(u string) string {
	u = schemeRegexp.ReplaceAllString(u, "")
	if idx := strings.IndexAny(u, "?#"); idx >= 0 {
		u = u[:idx]
	}
	idx := strings.LastIndexByte(u, '.')
	if idx < 0 {
		return ""
	}
	ext := u[idx+1:]
	if strings.ContainsAny(ext, "/") {
		return ""
	}
	return strings.ToLower(ext)
}

// AddHTMLExtension appends ".html" to u unless it already carries the
// extension (case-insensitively, matching the original's html_extension_regex
// search).
func AddHTMLExtension(u string) string {
	if strings.Contains(strings.ToLower(u), ".html") {
		return u
	}
	return u + ".html"
}

// Preprocess strips a leading scheme and surrounding slashes from u.
func Preprocess(u string) string {
	u = schemeRegexp.ReplaceAllString(u, "")
	u = strings.Trim(u, "/")
	return u
}

// hasBadExtension reports whether u ends in one of the disqualifying
// extensions.
func hasBadExtension(u string) bool {
	return badExtensions[Extension(u)]
}

// hasWikiNamespace reports whether u contains a reserved wiki-namespace
// prefix anywhere in its text.
func hasWikiNamespace(u string) bool {
	return wikiNamespaceRegexp.MatchString(u)
}

// IsAllowed reports whether u is eligible for crawling/graphing relative to
// seed: same registered domain, no disqualifying extension, no fragment, no
// reserved wiki namespace and no query string.
func IsAllowed(seed, u string) bool {
	if Domain(u) != Domain(seed) {
		return false
	}
	if hasBadExtension(u) {
		return false
	}
	if strings.Contains(u, "#") {
		return false
	}
	if hasWikiNamespace(u) {
		return false
	}
	if strings.Contains(u, "?") {
		return false
	}
	return true
}
