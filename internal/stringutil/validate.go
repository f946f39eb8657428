// Package stringutil provides shape predicates for string-valued payload
// fields.
package stringutil

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var hexDigestRegex = regexp.MustCompile(`^[0-9a-fA-F]{32,}$`)

// IsoDateLayout is the calendar date layout accepted by IsISODate.
const IsoDateLayout = "2006-01-02"

// IsHTTPURL reports whether s parses as an absolute URL with an http or
// https scheme and a non-empty host.
func IsHTTPURL(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsDomainSelector reports whether s is a bare hostname or subdomain
// ("sec.gov", "news.example.com") or a leading-dot bare extension (".gov").
// Values carrying a scheme, path, port, userinfo, query, fragment, or any
// whitespace are rejected, as are names with neither a dot nor a leading dot.
func IsDomainSelector(s string) bool {
	if s == "" {
		return false
	}
	if strings.Contains(s, "://") || strings.ContainsAny(s, "/:@?#") {
		return false
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return false
	}
	if strings.HasPrefix(s, ".") {
		return len(s) > 1
	}
	return strings.Contains(s, ".")
}

// IsISODate reports whether s is a valid YYYY-MM-DD calendar date.
func IsISODate(s string) bool {
	_, err := time.Parse(IsoDateLayout, s)
	return err == nil
}

// IsHexDigest reports whether s is a hex string of at least 32 characters.
// Upper and lower case digits are both accepted.
func IsHexDigest(s string) bool {
	return hexDigestRegex.MatchString(s)
}
