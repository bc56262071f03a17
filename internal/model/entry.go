package model

// RecentDate is the display date used when an entry's pubDate cannot be parsed
const RecentDate = "Recent"

// Entry is a single feed item. The link doubles as its stable identifier and
// cache key. Entries are produced fresh on every feed fetch and never persisted.
type Entry struct {
	Link        string // canonical post URL
	Title       string
	DisplayDate string // "Jan 2" style, or RecentDate
	RawBody     string // content:encoded HTML, falling back to description; may be empty
}
