package scene

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/render3d/engine/core"
)

// Demo is everything a scene layer needs to draw one of the demo scenes.
type Demo struct {
	Name      string
	Meshes    []core.MeshDesc
	Textured  bool // bind the tile texture
	UseCamera bool // false draws with an identity MVP
}

type builder func(RoomParams) Demo

var builders = map[string]builder{
	// Flat square straight in clip space.
	"quad": func(RoomParams) Demo {
		return Demo{Meshes: []core.MeshDesc{Quad2D(1)}}
	},
	// Tiled floor under the free camera.
	"plane": func(p RoomParams) Demo {
		return Demo{Meshes: []core.MeshDesc{Floor(p)}, Textured: true, UseCamera: true}
	},
	// Floor plus four walls.
	"room": func(p RoomParams) Demo {
		return Demo{Meshes: Room(p), Textured: true, UseCamera: true}
	},
	// A single textured wall facing the default camera.
	"wall": func(p RoomParams) Demo {
		x := p.Width / 2
		return Demo{
			Meshes: []core.MeshDesc{TexturedQuad([4]mgl32.Vec3{
				{x, 0, 0}, {-x, 0, 0}, {-x, p.Height, 0}, {x, p.Height, 0},
			}, p.repeats(p.Width), p.repeats(p.Height))},
			Textured:  true,
			UseCamera: true,
		}
	},
}

// Names lists the known demo scenes, sorted.
func Names() []string {
	out := make([]string, 0, len(builders))
	for n := range builders {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Build returns the named demo scene.
func Build(name string, room RoomParams) (Demo, error) {
	b, ok := builders[name]
	if !ok {
		return Demo{}, fmt.Errorf("unknown scene %q (have %v)", name, Names())
	}
	d := b(room)
	d.Name = name
	return d, nil
}
