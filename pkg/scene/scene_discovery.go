package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned for a scene name with no registered builder
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type builtinScene struct {
	info  SceneInfo
	build func() (*Scene, error)
}

var builtinScenes = map[string]builtinScene{
	"default": {SceneInfo{"default", "Light, glass lens, mirror bar and diffuse hexagon"}, NewDefaultScene},
	"lens":    {SceneInfo{"lens", "Biconvex lens focusing a light onto a screen"}, NewLensScene},
	"prism":   {SceneInfo{"prism", "Directional beam through an absorptive prism"}, NewPrismScene},
	"emitter": {SceneInfo{"emitter", "Single emissive circle, no occluders"}, NewEmitterScene},
	"dark":    {SceneInfo{"dark", "Diffuse and mirror geometry without light"}, NewDarkScene},
}

// ListBuiltinScenes returns the built-in scenes sorted by name
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, s := range builtinScenes {
		scenes = append(scenes, s.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// NewBuiltinScene builds the named built-in scene
func NewBuiltinScene(name string) (*Scene, error) {
	s, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	scene, err := s.build()
	if err != nil {
		return nil, fmt.Errorf("building scene %q: %w", name, err)
	}
	return scene, nil
}
