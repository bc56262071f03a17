package util

import "net/url"

// RelayURL routes target through a URL-rewriting relay for cross-origin
// access. The relay is an opaque prefix that receives the escaped target as
// its query; with no relay configured the target passes through untouched.
func RelayURL(relay, target string) string {
	if relay == "" {
		return target
	}
	return relay + url.QueryEscape(target)
}
