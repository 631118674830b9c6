package e2e

import (
	"testing"

	"github.com/zeynepecekiris/music-studio-AI-backend/internal/model"
)

func TestPlanGet(t *testing.T) {
	ta := setupApp(t)

	resp, err := doAuthRequest(t, ta.app, "GET", "/api/plans/pro", "")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, 200)

	result := parseJSON(t, resp)
	if result["plan"] != "pro" {
		t.Errorf("expected plan pro, got %v", result["plan"])
	}
	limits, ok := result["limits"].(map[string]interface{})
	if !ok {
		t.Fatal("expected limits object")
	}
	if limits["max_duration"] != float64(150) {
		t.Errorf("expected pro max duration 150, got %v", limits["max_duration"])
	}
	if limits["max_creativity"] != 0.75 {
		t.Errorf("expected pro max creativity 0.75, got %v", limits["max_creativity"])
	}
}

func TestPlanGet_UnknownFallsBackToFree(t *testing.T) {
	ta := setupApp(t)

	resp, err := doAuthRequest(t, ta.app, "GET", "/api/plans/enterprise", "")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, 200)

	result := parseJSON(t, resp)
	if result["plan"] != "free" {
		t.Errorf("unknown plan should normalize to free, got %v", result["plan"])
	}
	limits := result["limits"].(map[string]interface{})
	if limits["max_duration"] != float64(90) {
		t.Errorf("expected free max duration 90, got %v", limits["max_duration"])
	}
}

func TestPlanMe(t *testing.T) {
	ta := setupApp(t)

	resp, err := doPlanRequest(t, ta.app, "GET", "/api/plans/me", "", model.PlanStudio)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, 200)

	result := parseJSON(t, resp)
	if result["plan"] != "studio" {
		t.Errorf("expected plan studio from token claim, got %v", result["plan"])
	}
	limits := result["limits"].(map[string]interface{})
	if limits["mastering_controls"] != true {
		t.Errorf("expected mastering controls for studio plan, got %v", limits["mastering_controls"])
	}
}

func TestPlanMe_DefaultsToFree(t *testing.T) {
	ta := setupApp(t)

	// Token without a recognized plan claim resolves to the free tier
	resp, err := doPlanRequest(t, ta.app, "GET", "/api/plans/me", "", model.PlanType("enterprise"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, 200)

	result := parseJSON(t, resp)
	if result["plan"] != "free" {
		t.Errorf("unrecognized plan claim should default to free, got %v", result["plan"])
	}
}

func TestPlanRoutes_RequireAuth(t *testing.T) {
	ta := setupApp(t)

	resp, err := doRequest(ta.app, "GET", "/api/plans/me", "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, 401)
	assertErrorCode(t, parseJSON(t, resp), "UNAUTHORIZED")
}
