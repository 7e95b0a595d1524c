// Package urlcheck provides a pure predicate for validating outbound
// endpoint URLs before they are queued or dialed. It accepts http, https,
// ftp, and ftps URLs pointing at a dotted hostname, localhost, or an IPv4
// address, with an optional port and path. No network access is performed.
package urlcheck

import "regexp"

// Pattern adapted from the BGS-Tally request manager validator.
var urlPattern = regexp.MustCompile(`(?i)^(?:http|ftp)s?://` +
	`(?:(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+(?:[A-Z]{2,6}\.?|[A-Z0-9-]{2,}\.?)|` +
	`localhost|` +
	`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})` +
	`(?::\d+)?` +
	`(?:/?|[/?]\S+)$`)

// IsValid reports whether raw is a well-formed http(s) or ftp(s) URL.
// Empty input is invalid. The check is a pure string test and never
// touches the network.
func IsValid(raw string) bool {
	if raw == "" {
		return false
	}
	return urlPattern.MatchString(raw)
}
