package pipeline

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/arbiterhq/arbiter/internal/cache"
	"github.com/arbiterhq/arbiter/internal/model"
)

// stubSource serves a fixed entry list
type stubSource struct {
	entries []model.Entry
	err     error
}

func (s *stubSource) Fetch(ctx context.Context) ([]model.Entry, error) {
	return s.entries, s.err
}

// stubExtractor returns canned claims per post URL and counts invocations
type stubExtractor struct {
	byPost map[string][]model.Claim
	calls  map[string]int
}

func newStubExtractor(byPost map[string][]model.Claim) *stubExtractor {
	return &stubExtractor{byPost: byPost, calls: make(map[string]int)}
}

func (s *stubExtractor) Extract(ctx context.Context, text, postURL, postDate string) []model.Claim {
	s.calls[postURL]++
	return s.byPost[postURL]
}

func entry(link, title, date, body string) model.Entry {
	return model.Entry{Link: link, Title: title, DisplayDate: date, RawBody: body}
}

func extractedClaim(post string) model.Claim {
	return model.Claim{
		ID:         post,
		PostID:     post,
		Category:   model.CategoryModels,
		ClaimText:  "claim",
		Entities:   []string{},
		Confidence: model.ConfidenceHigh,
		Sentiment:  model.SentimentNeutral,
	}
}

func newTestPipeline(source FeedSource, extractor ClaimExtractor, maxEntries int) (*Pipeline, *cache.ClaimStore) {
	store := cache.NewClaimStore(cache.NewMemoryCache())
	return New(source, extractor, store, maxEntries, nil), store
}

func TestPipeline_CacheShortCircuitsExtraction(t *testing.T) {
	post := "https://example.com/p/1"
	source := &stubSource{entries: []model.Entry{entry(post, "T", "Dec 24", "<p>body</p>")}}
	extractor := newStubExtractor(map[string][]model.Claim{post: {extractedClaim(post)}})

	p, store := newTestPipeline(source, extractor, 2)

	// Warm the cache
	first := p.FetchClaims(context.Background())
	if len(first) != 1 {
		t.Fatalf("Expected 1 claim on first run, got %d", len(first))
	}
	if extractor.calls[post] != 1 {
		t.Fatalf("Expected 1 extractor call, got %d", extractor.calls[post])
	}
	if _, found := store.Get(post); !found {
		t.Fatal("Expected successful extraction to be cached")
	}

	// Second run must not touch the extractor
	second := p.FetchClaims(context.Background())
	if extractor.calls[post] != 1 {
		t.Errorf("Expected cache hit to skip extraction, got %d calls", extractor.calls[post])
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected idempotent results with a warm cache")
	}
}

func TestPipeline_FallbackClaimNotCached(t *testing.T) {
	post := "https://example.com/p/roundup"
	source := &stubSource{entries: []model.Entry{entry(post, "Weekly Roundup", "Dec 24", "<p>body</p>")}}
	extractor := newStubExtractor(nil) // extraction always empty

	p, store := newTestPipeline(source, extractor, 2)

	claims := p.FetchClaims(context.Background())
	if len(claims) != 1 {
		t.Fatalf("Expected exactly one fallback claim, got %d", len(claims))
	}

	fb := claims[0]
	if fb.ClaimText != "Weekly Roundup" {
		t.Errorf("Expected title as claim text, got %q", fb.ClaimText)
	}
	if fb.Category != model.CategoryModels {
		t.Errorf("Expected MODELS category, got %s", fb.Category)
	}
	if fb.Confidence != model.ConfidenceHigh {
		t.Errorf("Expected high confidence, got %s", fb.Confidence)
	}
	if len(fb.Entities) != 0 {
		t.Errorf("Expected empty entities, got %v", fb.Entities)
	}
	if !fb.ModelRelevance {
		t.Error("Expected model_relevance true on fallback")
	}
	if fb.SourceURL != post {
		t.Errorf("Expected source URL %s, got %s", post, fb.SourceURL)
	}

	if _, found := store.Get(post); found {
		t.Error("Fallback claim must never be written to the cache")
	}

	// Extraction is retried on the next run since nothing was pinned
	p.FetchClaims(context.Background())
	if extractor.calls[post] != 2 {
		t.Errorf("Expected transient failure to self-heal via retry, got %d calls", extractor.calls[post])
	}
}

func TestPipeline_FeedFailureReturnsEmpty(t *testing.T) {
	source := &stubSource{err: errors.New("connection refused")}
	p, _ := newTestPipeline(source, newStubExtractor(nil), 2)

	claims := p.FetchClaims(context.Background())
	if claims == nil || len(claims) != 0 {
		t.Errorf("Expected non-nil empty slice on feed failure, got %v", claims)
	}
}

func TestPipeline_MaxEntriesBound(t *testing.T) {
	entries := []model.Entry{
		entry("https://example.com/p/1", "A", "Dec 24", "<p>a</p>"),
		entry("https://example.com/p/2", "B", "Dec 23", "<p>b</p>"),
		entry("https://example.com/p/3", "C", "Dec 22", "<p>c</p>"),
	}
	extractor := newStubExtractor(nil)
	p, _ := newTestPipeline(&stubSource{entries: entries}, extractor, 2)

	p.FetchClaims(context.Background())
	if extractor.calls["https://example.com/p/3"] != 0 {
		t.Error("Expected third entry to be skipped by the maxEntries bound")
	}
	if extractor.calls["https://example.com/p/1"] != 1 || extractor.calls["https://example.com/p/2"] != 1 {
		t.Error("Expected the two most recent entries to be processed")
	}
}

func TestPipeline_OrderingAcrossEntries(t *testing.T) {
	p1, p2 := "https://example.com/p/1", "https://example.com/p/2"
	entries := []model.Entry{
		entry(p1, "A", "Dec 24", "<p>a</p>"),
		entry(p2, "B", "Dec 23", "<p>b</p>"),
	}
	byPost := map[string][]model.Claim{
		p1: {
			{ID: p1 + "-0", PostID: p1, Category: model.CategoryModels, ClaimText: "n1", Confidence: model.ConfidenceHigh},
			{ID: p1 + "-1", PostID: p1, Category: model.CategoryModels, ClaimText: "n2", Confidence: model.ConfidenceHigh},
		},
		p2: {
			{ID: p2 + "-0", PostID: p2, Category: model.CategoryModels, ClaimText: "o1", Confidence: model.ConfidenceHigh},
		},
	}
	p, _ := newTestPipeline(&stubSource{entries: entries}, newStubExtractor(byPost), 2)

	claims := p.FetchClaims(context.Background())
	var texts []string
	for _, c := range claims {
		texts = append(texts, c.ClaimText)
	}
	want := []string{"n1", "n2", "o1"}
	if !reflect.DeepEqual(texts, want) {
		t.Errorf("Expected newest-first entry order with extractor order preserved, got %v", texts)
	}
}

func TestPipeline_EmptyBodySkipped(t *testing.T) {
	post := "https://example.com/p/empty"
	source := &stubSource{entries: []model.Entry{entry(post, "Empty", "Dec 24", "")}}
	extractor := newStubExtractor(nil)
	p, _ := newTestPipeline(source, extractor, 2)

	claims := p.FetchClaims(context.Background())
	if len(claims) != 0 {
		t.Errorf("Expected bodyless entry to yield no claims, got %d", len(claims))
	}
	if extractor.calls[post] != 0 {
		t.Error("Expected bodyless entry to skip extraction")
	}
}

func TestPipeline_BadEntryIsolated(t *testing.T) {
	good := "https://example.com/p/good"
	entries := []model.Entry{
		entry("", "No link", "Dec 24", "<p>x</p>"), // unreadable entry
		entry(good, "Good", "Dec 23", "<p>y</p>"),
	}
	extractor := newStubExtractor(map[string][]model.Claim{good: {extractedClaim(good)}})
	p, _ := newTestPipeline(&stubSource{entries: entries}, extractor, 2)

	claims := p.FetchClaims(context.Background())
	if len(claims) != 1 {
		t.Fatalf("Expected sibling entry to survive a bad entry, got %d claims", len(claims))
	}
	if claims[0].PostID != good {
		t.Errorf("Expected claim from the good entry, got %s", claims[0].PostID)
	}
}
