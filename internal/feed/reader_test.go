package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arbiterhq/arbiter/internal/model"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
  <title>The Innermost Loop</title>
  <item>
    <title>Acceleration Week 42</title>
    <link>https://example.com/p/week-42</link>
    <pubDate>Wed, 24 Dec 2025 09:00:00 +0000</pubDate>
    <description>Short summary.</description>
    <content:encoded><![CDATA[<p>Full post with <b>markup</b>.</p>]]></content:encoded>
  </item>
  <item>
    <title>Acceleration Week 41</title>
    <link>https://example.com/p/week-41</link>
    <pubDate>not a date</pubDate>
    <description><![CDATA[Description only body.]]></description>
  </item>
</channel>
</rss>`

func testReader(serverURL string) *Reader {
	cfg := model.DefaultConfig()
	cfg.Feed.URL = serverURL
	cfg.HTTP.Timeout = 5 * time.Second
	return NewReader(cfg.Feed, cfg.HTTP)
}

func TestReader_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	entries, err := testReader(server.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Link != "https://example.com/p/week-42" {
		t.Errorf("Unexpected link: %s", first.Link)
	}
	if first.DisplayDate != "Dec 24" {
		t.Errorf("Expected display date Dec 24, got %s", first.DisplayDate)
	}
	if first.RawBody != "<p>Full post with <b>markup</b>.</p>" {
		t.Errorf("Expected content:encoded body, got %q", first.RawBody)
	}

	second := entries[1]
	if second.DisplayDate != model.RecentDate {
		t.Errorf("Expected fallback date %q, got %q", model.RecentDate, second.DisplayDate)
	}
	if second.RawBody != "Description only body." {
		t.Errorf("Expected description fallback body, got %q", second.RawBody)
	}
}

func TestReader_Fetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testReader(server.URL).Fetch(context.Background())
	if !errors.Is(err, ErrFeedUnavailable) {
		t.Errorf("Expected ErrFeedUnavailable, got %v", err)
	}
}

func TestReader_Fetch_MalformedXML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<rss><channel><item>broken"))
	}))
	defer server.Close()

	_, err := testReader(server.URL).Fetch(context.Background())
	if !errors.Is(err, ErrFeedMalformed) {
		t.Errorf("Expected ErrFeedMalformed, got %v", err)
	}
}

func TestReader_Fetch_Relay(t *testing.T) {
	var requestedURI string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedURI = r.URL.RequestURI()
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	cfg := model.DefaultConfig()
	cfg.Feed.URL = "https://upstream.example/feed"
	cfg.Feed.RelayURL = server.URL + "/?"
	cfg.HTTP.Timeout = 5 * time.Second

	_, err := NewReader(cfg.Feed, cfg.HTTP).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if requestedURI != "/?https%3A%2F%2Fupstream.example%2Ffeed" {
		t.Errorf("Relay did not receive escaped target: %s", requestedURI)
	}
}

func TestFormatPubDate(t *testing.T) {
	if got := formatPubDate("Thu, 18 Dec 2025 12:30:00 GMT"); got != "Dec 18" {
		t.Errorf("Expected Dec 18, got %s", got)
	}
	if got := formatPubDate(""); got != model.RecentDate {
		t.Errorf("Expected %q for empty date, got %q", model.RecentDate, got)
	}
}
