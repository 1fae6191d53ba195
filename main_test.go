package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"checker-room scene", "checker-room", false},
		{"sphere-field scene", "sphere-field", false},
		{"noise-orb scene", "noise-orb", false},
		{"sphere-cloud scene", "sphere-cloud", false},
		{"spiral scene", "spiral", false},
		{"mirror-box scene", "mirror-box", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType, "", renderer.CameraConfig{Width: 16})

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene.CameraConfig.Width != 16 {
				t.Errorf("Expected width override 16, got %d", scene.CameraConfig.Width)
			}
			if scene.GetPrimitiveCount() == 0 {
				t.Errorf("Expected primitives in scene '%s'", tt.sceneType)
			}
		})
	}
}

func TestCreateScene_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.json")
	data := `{
		"camera": {
			"center": {"x": 0, "y": 0, "z": 0},
			"lookAt": {"x": 0, "y": 0, "z": -1},
			"up": {"x": 0, "y": 1, "z": 0},
			"vfov": 40, "width": 20, "samplesPerPixel": 1,
			"defocusAngle": -1, "focusDistance": 1
		},
		"ambient": {"x": 1, "y": 1, "z": 1},
		"spheres": [{"center": {"x": 0, "y": 0, "z": -1}, "radius": 0.5, "material": {"type": "noise"}}]
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}

	// The file takes precedence over the scene name
	scene, err := createScene("nonexistent", path, renderer.CameraConfig{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if scene.Name != "custom" {
		t.Errorf("Expected unnamed file scene to be called custom, got %s", scene.Name)
	}
	if scene.CameraConfig.Width != 20 {
		t.Errorf("Expected width 20 from the file, got %d", scene.CameraConfig.Width)
	}

	if _, err := createScene("", filepath.Join(t.TempDir(), "missing.json"), renderer.CameraConfig{}); err == nil {
		t.Error("Expected error for a missing scene file")
	}
}

func TestOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	got := outputPath("spiral", now)
	expected := filepath.Join("output", "spiral", "render_20240309_140507.png")
	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}
