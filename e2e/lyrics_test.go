package e2e

import (
	"strings"
	"testing"
)

func TestLyricsGenerate_Success(t *testing.T) {
	ta := setupApp(t)

	body := `{
		"story": "Bir yaz akşamı sahilde tanıştık. Denize karşı saatlerce konuştuk ve o gün hayatım değişti.",
		"theme": "love",
		"language": "tr"
	}`

	resp, err := doAuthRequest(t, ta.app, "POST", "/api/lyrics/generate", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, 200)

	result := parseJSON(t, resp)
	lyrics, ok := result["lyrics"].(string)
	if !ok || lyrics == "" {
		t.Fatal("expected non-empty lyrics in response")
	}
	// Mock lyrics keep the verse/chorus format
	if !strings.Contains(lyrics, "[Verse 1]") || !strings.Contains(lyrics, "[Chorus]") {
		t.Errorf("lyrics should be structured with verse/chorus sections:\n%s", lyrics)
	}
	if result["theme"] != "love" {
		t.Errorf("expected theme love, got %v", result["theme"])
	}
	if result["language"] != "tr" {
		t.Errorf("expected language tr, got %v", result["language"])
	}
	if result["id"] == "" || result["id"] == nil {
		t.Error("expected generated lyrics ID")
	}
	if wc, ok := result["word_count"].(float64); !ok || wc <= 0 {
		t.Errorf("expected positive word count, got %v", result["word_count"])
	}
}

func TestLyricsGenerate_DefaultLanguage(t *testing.T) {
	ta := setupApp(t)

	body := `{
		"story": "We met on a summer evening by the sea and talked for hours.",
		"theme": "love"
	}`

	resp, err := doAuthRequest(t, ta.app, "POST", "/api/lyrics/generate", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, 200)

	result := parseJSON(t, resp)
	if result["language"] != "tr" {
		t.Errorf("language should default to tr, got %v", result["language"])
	}
}

func TestLyricsGenerate_NoAuth(t *testing.T) {
	ta := setupApp(t)

	body := `{"story": "A story long enough to pass validation.", "theme": "love"}`

	resp, err := doRequest(ta.app, "POST", "/api/lyrics/generate", body, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, 401)
	assertErrorCode(t, parseJSON(t, resp), "UNAUTHORIZED")
}

func TestLyricsGenerate_ValidationErrors(t *testing.T) {
	ta := setupApp(t)

	tests := []struct {
		name string
		body string
	}{
		{"story too short", `{"story": "short", "theme": "love"}`},
		{"missing theme", `{"story": "A story long enough to pass validation."}`},
		{"unknown theme", `{"story": "A story long enough to pass validation.", "theme": "cyberpunk"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := doAuthRequest(t, ta.app, "POST", "/api/lyrics/generate", tt.body)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			assertStatus(t, resp, 400)
			assertErrorCode(t, parseJSON(t, resp), "VALIDATION_ERROR")
		})
	}
}

func TestLyricsImprove_Success(t *testing.T) {
	ta := setupApp(t)

	body := `{
		"original_lyrics": "[Verse 1]\nDenize karşı oturduk\nSaatlerce konuştuk\n\n[Chorus]\nO gün değişti her şey",
		"story": "Bir yaz akşamı sahilde tanıştık ve hayatım değişti.",
		"theme": "love"
	}`

	resp, err := doAuthRequest(t, ta.app, "POST", "/api/lyrics/improve", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, 200)

	result := parseJSON(t, resp)
	if result["improved_lyrics"] == "" || result["improved_lyrics"] == nil {
		t.Error("expected improved lyrics in response")
	}
	if result["original_lyrics"] == "" || result["original_lyrics"] == nil {
		t.Error("expected original lyrics echoed in response")
	}
}

func TestLyricsTitle_Success(t *testing.T) {
	ta := setupApp(t)

	body := `{
		"lyrics": "[Verse 1]\nDenize karşı oturduk\nSaatlerce konuştuk",
		"theme": "love"
	}`

	resp, err := doAuthRequest(t, ta.app, "POST", "/api/lyrics/title", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, 200)

	result := parseJSON(t, resp)
	title, ok := result["title"].(string)
	if !ok || title == "" {
		t.Fatal("expected non-empty title")
	}
	// Unconfigured client falls back to the theme-based title
	if title != "Love Song" {
		t.Errorf("expected fallback title, got %q", title)
	}
}
