package feed

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/arbiterhq/arbiter/internal/model"
	"github.com/arbiterhq/arbiter/internal/util"
)

// Sentinel errors so callers can distinguish transport failures from a feed
// that was retrieved but could not be parsed.
var (
	ErrFeedUnavailable = errors.New("feed unavailable")
	ErrFeedMalformed   = errors.New("feed malformed")
)

// pubDate formats seen in the wild; RFC 2822 variants first
var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
}

// Reader retrieves and parses the chronicle RSS feed
type Reader struct {
	httpClient *http.Client
	feedURL    string
	relayURL   string
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker // nil when robots checking is disabled
}

// NewReader creates a Reader for the configured feed
func NewReader(cfg model.FeedConfig, httpCfg model.HTTPConfig) *Reader {
	var robots *util.RobotsChecker
	if cfg.RespectRobots {
		robots = util.NewRobotsChecker(httpCfg.UserAgent, httpCfg.Timeout)
	}

	return &Reader{
		httpClient: &http.Client{
			Timeout: httpCfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		feedURL:   cfg.URL,
		relayURL:  cfg.RelayURL,
		userAgent: httpCfg.UserAgent,
		maxBytes:  httpCfg.MaxBodyBytes,
		robots:    robots,
	}
}

// rssDocument mirrors the subset of RSS 2.0 the pipeline reads. The encoded
// element is matched by local name so any content-module namespace prefix works.
type rssDocument struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title          string `xml:"title"`
	Link           string `xml:"link"`
	PubDate        string `xml:"pubDate"`
	Description    string `xml:"description"`
	ContentEncoded string `xml:"encoded"`
}

// Fetch retrieves the feed and returns its entries in document order, which
// the source publishes newest-first.
func (r *Reader) Fetch(ctx context.Context) ([]model.Entry, error) {
	if r.robots != nil {
		allowed, err := r.robots.CanFetch(ctx, r.feedURL)
		if err == nil && !allowed {
			return nil, fmt.Errorf("%w: disallowed by robots.txt", ErrFeedUnavailable)
		}
	}

	fetchURL := util.RelayURL(r.relayURL, r.feedURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrFeedUnavailable, err)
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "application/rss+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFeedUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, r.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFeedUnavailable, err)
	}

	return parseEntries(body)
}

// parseEntries decodes the RSS document into entries
func parseEntries(doc []byte) ([]model.Entry, error) {
	var rss rssDocument
	if err := xml.Unmarshal(doc, &rss); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedMalformed, err)
	}

	entries := make([]model.Entry, 0, len(rss.Channel.Items))
	for _, item := range rss.Channel.Items {
		body := item.ContentEncoded
		if body == "" {
			body = item.Description
		}
		entries = append(entries, model.Entry{
			Link:        item.Link,
			Title:       item.Title,
			DisplayDate: formatPubDate(item.PubDate),
			RawBody:     body,
		})
	}

	return entries, nil
}

// formatPubDate renders a pubDate string as a short display date,
// tolerating unparseable input
func formatPubDate(raw string) string {
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2")
		}
	}
	return model.RecentDate
}
