package e2e

import "testing"

func TestRoot(t *testing.T) {
	ta := setupApp(t)

	resp, err := doRequest(ta.app, "GET", "/", "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, 200)

	result := parseJSON(t, resp)
	if _, ok := result["timestamp"]; !ok {
		t.Error("expected timestamp in root response")
	}
}

func TestHealth(t *testing.T) {
	ta := setupApp(t)

	resp, err := doRequest(ta.app, "GET", "/health", "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, 200)

	result := parseJSON(t, resp)
	if result["status"] != "ok" {
		t.Errorf("expected status ok, got %v", result["status"])
	}

	services, ok := result["services"].(map[string]interface{})
	if !ok {
		t.Fatal("expected services object")
	}
	for _, name := range []string{"openai", "elevenlabs", "storage", "auth"} {
		if _, ok := services[name]; !ok {
			t.Errorf("expected %s in services", name)
		}
	}
}

func TestHealth_NoAuthRequired(t *testing.T) {
	ta := setupApp(t)

	// Health endpoint must be reachable without a token
	resp, err := doRequest(ta.app, "GET", "/health", "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, 200)
}
