package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func doRequest(t *testing.T, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS header on every response")
	}
}

func TestHandleScenes(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/scenes", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var scenes []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &scenes); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if len(scenes) != 6 {
		t.Errorf("Expected 6 scenes, got %d", len(scenes))
	}
	for _, s := range scenes {
		if s.Name == "" || s.Description == "" {
			t.Errorf("Scene entry missing fields: %+v", s)
		}
	}
}

func TestHandleRender(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/render?scene=noise-orb&width=8&samples=1&workers=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	if rec.Header().Get("X-Render-Samples") != "64" {
		t.Errorf("Expected 64 samples header, got %q", rec.Header().Get("X-Render-Samples"))
	}

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("Expected 8x8 image, got %v", img.Bounds())
	}
}

func TestHandleRender_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
	}{
		{"unknown scene", "/api/render?scene=nope&width=8&samples=1", http.StatusNotFound},
		{"bad width", "/api/render?width=abc", http.StatusBadRequest},
		{"width out of range", "/api/render?width=0", http.StatusBadRequest},
		{"width above limit", "/api/render?width=1001&samples=1", http.StatusBadRequest},
		{"samples above limit", "/api/render?width=8&samples=2001", http.StatusBadRequest},
		{"negative workers", "/api/render?width=8&workers=-1", http.StatusBadRequest},
		{"bad seed", "/api/render?width=8&seed=x", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, http.MethodGet, tt.target, "")
			if rec.Code != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["error"] == "" {
				t.Errorf("Expected JSON error body, got %q", rec.Body.String())
			}
		})
	}
}

const postedScene = `{
	"camera": {
		"center": {"x": 0, "y": 0, "z": 1},
		"lookAt": {"x": 0, "y": 0, "z": 0},
		"up": {"x": 0, "y": 1, "z": 0},
		"vfov": 60,
		"width": 4,
		"samplesPerPixel": 2,
		"defocusAngle": -1,
		"focusDistance": 1
	},
	"ambient": {"x": 0.5, "y": 0.5, "z": 0.5},
	"spheres": [
		{
			"center": {"x": 0, "y": 0, "z": 0},
			"radius": 0.5,
			"material": {"type": "emissive", "emission": {"x": 1, "y": 0, "z": 0}}
		}
	]
}`

func TestHandleRenderScene(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/render?workers=1", postedScene)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("Expected width 4 from the posted camera, got %d", img.Bounds().Dx())
	}
}

func TestHandleRenderScene_TooLarge(t *testing.T) {
	body := strings.Replace(postedScene, `"width": 4`, `"width": 5000`, 1)
	rec := doRequest(t, http.MethodPost, "/api/render", body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestHandleRenderScene_Invalid(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/render", `{"spheres": [{"radius": -1}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestHandleRenderStream(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/render/stream?scene=noise-orb&width=6&samples=1&workers=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Expected text/event-stream, got %q", ct)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "event: progress") {
		t.Error("Expected progress events")
	}
	if !strings.Contains(body, "event: console") {
		t.Error("Expected console events")
	}
	if strings.Contains(body, "event: error") {
		t.Errorf("Unexpected error event: %s", body)
	}

	idx := strings.LastIndex(body, "event: complete\ndata: ")
	if idx < 0 {
		t.Fatal("Expected a complete event")
	}
	data := strings.TrimSpace(body[idx+len("event: complete\ndata: "):])
	var complete CompleteUpdate
	if err := json.Unmarshal([]byte(data), &complete); err != nil {
		t.Fatalf("Failed to decode complete event: %v", err)
	}
	if complete.ImageData == "" {
		t.Error("Expected image data in complete event")
	}
	if complete.Stats.TotalPixels != 36 {
		t.Errorf("Expected 36 pixels, got %d", complete.Stats.TotalPixels)
	}
	if complete.Scene != "noise-orb" {
		t.Errorf("Expected scene noise-orb, got %q", complete.Scene)
	}
}

func TestHandleInspect(t *testing.T) {
	// Row 3 of 9 looks slightly above the axis at the glowing back wall, which sits on the focus plane
	rec := doRequest(t, http.MethodGet, "/api/inspect?scene=checker-room&width=9&x=4&y=3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp InspectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if !resp.Hit {
		t.Fatal("Expected a hit")
	}
	if resp.MaterialType != "checker" {
		t.Errorf("Expected checker material, got %q", resp.MaterialType)
	}
	if resp.GeometryType != "triangle" {
		t.Errorf("Expected triangle geometry, got %q", resp.GeometryType)
	}
	if math.Abs(resp.Point[2]+1.25) > 1e-9 {
		t.Errorf("Expected hit on z = -1.25, got %v", resp.Point)
	}
	if math.Abs(resp.Distance-1) > 1e-9 {
		t.Errorf("Expected distance 1, got %v", resp.Distance)
	}

	materialProps, ok := resp.Properties["material"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected material properties, got %v", resp.Properties)
	}
	if _, ok := materialProps["selected"]; !ok {
		t.Error("Expected the selected checker sub-material")
	}
}

func TestHandleInspect_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  url.Values
		status int
	}{
		{"missing x", url.Values{"width": {"9"}, "y": {"1"}}, http.StatusBadRequest},
		{"x out of bounds", url.Values{"width": {"9"}, "x": {"9"}, "y": {"1"}}, http.StatusBadRequest},
		{"bad y", url.Values{"width": {"9"}, "x": {"1"}, "y": {"a"}}, http.StatusBadRequest},
		{"unknown scene", url.Values{"scene": {"nope"}, "x": {"1"}, "y": {"1"}}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, http.MethodGet, "/api/inspect?"+tt.query.Encode(), "")
			if rec.Code != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestParseIntParam(t *testing.T) {
	values := url.Values{"n": {"5"}, "bad": {"x"}}

	if v, err := parseIntParam(values, "missing", 7, 0, 10); err != nil || v != 7 {
		t.Errorf("Expected default 7, got %d (%v)", v, err)
	}
	if v, err := parseIntParam(values, "n", 0, 0, 10); err != nil || v != 5 {
		t.Errorf("Expected 5, got %d (%v)", v, err)
	}
	if _, err := parseIntParam(values, "n", 0, 6, 10); err == nil {
		t.Error("Expected range error")
	}
	if _, err := parseIntParam(values, "bad", 0, 0, 10); err == nil {
		t.Error("Expected parse error")
	}
}
