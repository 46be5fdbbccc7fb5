package scene

import (
	"slices"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

// ErrTypeUnknownScene is the error type of requests for a scene that is not registered
const ErrTypeUnknownScene = "unknown_scene"

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type entry struct {
	info   SceneInfo
	create func(Options) *Scene
}

var registry = []entry{
	{SceneInfo{"bouncing-spheres", "Random spheres of every material, diffuse ones in motion"}, NewBouncingSpheres},
	{SceneInfo{"checkered-spheres", "Two spheres sharing a 3D checker texture"}, NewCheckeredSpheres},
	{SceneInfo{"earth", "A globe with an image texture"}, NewEarth},
	{SceneInfo{"perlin-spheres", "Marble spheres from Perlin turbulence"}, NewPerlinSpheres},
	{SceneInfo{"quads", "Five colored quads"}, NewQuads},
	{SceneInfo{"simple-light", "Marble spheres lit by emissive geometry"}, NewSimpleLight},
	{SceneInfo{"cornell-box", "Cornell box with two rotated blocks"}, NewCornellBox},
	{SceneInfo{"cornell-smoke", "Cornell box with blocks of smoke and fog"}, NewCornellSmoke},
	{SceneInfo{"final", "Every feature in one scene"}, NewFinal},
}

// Names returns the names of the built-in scenes in presentation order
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, e := range registry {
		names = append(names, e.info.Name)
	}
	return names
}

// List returns the built-in scenes in presentation order
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(registry))
	for _, e := range registry {
		infos = append(infos, e.info)
	}
	return infos
}

// Create builds the named scene
func Create(name string, opts Options) (*Scene, error) {
	i := slices.IndexFunc(registry, func(e entry) bool {
		return e.info.Name == name
	})
	if i < 0 {
		return nil, errors.New("unknown scene").
			WithType(ErrTypeUnknownScene).
			WithTag("scene", name)
	}
	return registry[i].create(opts), nil
}
