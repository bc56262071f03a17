package extract

import (
	"strings"
	"testing"
)

func TestNormalizeHTML_StripsTags(t *testing.T) {
	html := `<p>Gemini 3 Flash achieves <b>81.2%</b> on MMMU Pro.</p>`
	got := NormalizeHTML(html)
	want := "Gemini 3 Flash achieves 81.2% on MMMU Pro."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestNormalizeHTML_SkipsScriptsAndStyles(t *testing.T) {
	html := `
	<html><body>
		<script>var hidden = "secret";</script>
		<style>.x { color: red; }</style>
		<p>Visible text.</p>
	</body></html>`

	got := NormalizeHTML(html)
	if strings.Contains(got, "secret") || strings.Contains(got, "color") {
		t.Errorf("Expected script/style content stripped, got %q", got)
	}
	if !strings.Contains(got, "Visible text.") {
		t.Errorf("Expected visible text preserved, got %q", got)
	}
}

func TestNormalizeHTML_Truncates(t *testing.T) {
	long := strings.Repeat("a", MaxExtractionChars+500)
	got := NormalizeHTML("<p>" + long + "</p>")
	if len([]rune(got)) != MaxExtractionChars {
		t.Errorf("Expected %d runes, got %d", MaxExtractionChars, len([]rune(got)))
	}
}

func TestNormalizeHTML_Empty(t *testing.T) {
	if got := NormalizeHTML(""); got != "" {
		t.Errorf("Expected empty output for empty input, got %q", got)
	}
}
