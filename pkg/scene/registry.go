package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type builtinScene struct {
	info   SceneInfo
	create func(cameraOverrides ...renderer.CameraConfig) *Scene
}

var builtinScenes = map[string]builtinScene{
	"checker-room": {SceneInfo{"checker-room", "Mirror-walled room with a glowing checkerboard back wall"}, NewCheckerRoomScene},
	"sphere-field": {SceneInfo{"sphere-field", "Metal and glowing spheres scattered over a checkered floor"}, NewSphereFieldScene},
	"noise-orb":    {SceneInfo{"noise-orb", "Procedural noise sphere beside a white light"}, NewNoiseOrbScene},
	"sphere-cloud": {SceneInfo{"sphere-cloud", "Cloud of small white spheres in a colored box"}, NewSphereCloudScene},
	"spiral":       {SceneInfo{"spiral", "Helix of rainbow metal spheres under an orange sun"}, NewSpiralScene},
	"mirror-box":   {SceneInfo{"mirror-box", "Blended-metal snowman in a room of mirrors"}, NewMirrorBoxScene},
}

// List returns the built-in scenes sorted by name
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, s := range builtinScenes {
		scenes = append(scenes, s.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Create builds the named built-in scene with optional camera overrides
func Create(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	s, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return s.create(cameraOverrides...), nil
}
