package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/render3d/engine/core"
)

// Two triangles over corners 0..3.
var quadIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
}

// PositionLayout is a bare vec2 position.
func PositionLayout() core.VertexLayout {
	var l core.VertexLayout
	l.PushFloat(2)
	return l
}

// TexturedLayout is vec3 position + vec2 uv.
func TexturedLayout() core.VertexLayout {
	var l core.VertexLayout
	l.PushFloat(3).PushFloat(2)
	return l
}

// Quad2D is a flat size x size square centered on the origin in the XY plane.
func Quad2D(size float32) core.MeshDesc {
	h := size / 2
	return core.MeshDesc{
		Vertices: []float32{
			-h, -h, // 0
			h, -h, // 1
			h, h, // 2
			-h, h, // 3
		},
		Indices: append([]uint32(nil), quadIndices...),
		Layout:  PositionLayout(),
	}
}

// TexturedQuad spans corners in order bottom-left, bottom-right, top-right,
// top-left. The texture repeats uRepeat times along the bottom edge and
// vRepeat times up the side.
func TexturedQuad(corners [4]mgl32.Vec3, uRepeat, vRepeat float32) core.MeshDesc {
	uvs := [4][2]float32{{0, 0}, {uRepeat, 0}, {uRepeat, vRepeat}, {0, vRepeat}}
	verts := make([]float32, 0, 4*5)
	for i, c := range corners {
		verts = append(verts, c[0], c[1], c[2], uvs[i][0], uvs[i][1])
	}
	return core.MeshDesc{
		Vertices: verts,
		Indices:  append([]uint32(nil), quadIndices...),
		Layout:   TexturedLayout(),
	}
}

// RoomParams sizes the textured room, in world units.
type RoomParams struct {
	Width    float32 `yaml:"width"`     // along X
	Depth    float32 `yaml:"depth"`     // along Z
	Height   float32 `yaml:"height"`    // along Y
	TileSize float32 `yaml:"tile_size"` // world units per texture repeat
}

func DefaultRoomParams() RoomParams {
	return RoomParams{Width: 10, Depth: 10, Height: 3, TileSize: 1}
}

func (p RoomParams) repeats(length float32) float32 {
	if p.TileSize <= 0 {
		return 1
	}
	return length / p.TileSize
}

// Floor is the room's floor quad at y=0.
func Floor(p RoomParams) core.MeshDesc {
	x, z := p.Width/2, p.Depth/2
	return TexturedQuad([4]mgl32.Vec3{
		{-x, 0, -z},
		{x, 0, -z},
		{x, 0, z},
		{-x, 0, z},
	}, p.repeats(p.Width), p.repeats(p.Depth))
}

// Walls are the four inward-facing wall quads standing on the floor's edges.
func Walls(p RoomParams) []core.MeshDesc {
	x, z, h := p.Width/2, p.Depth/2, p.Height
	uw, ud, uh := p.repeats(p.Width), p.repeats(p.Depth), p.repeats(p.Height)
	wall := func(a, b mgl32.Vec3, u float32) core.MeshDesc {
		return TexturedQuad([4]mgl32.Vec3{
			a,
			b,
			{b[0], h, b[2]},
			{a[0], h, a[2]},
		}, u, uh)
	}
	return []core.MeshDesc{
		wall(mgl32.Vec3{x, 0, z}, mgl32.Vec3{-x, 0, z}, uw),   // +Z
		wall(mgl32.Vec3{-x, 0, -z}, mgl32.Vec3{x, 0, -z}, uw), // -Z
		wall(mgl32.Vec3{-x, 0, z}, mgl32.Vec3{-x, 0, -z}, ud), // -X
		wall(mgl32.Vec3{x, 0, -z}, mgl32.Vec3{x, 0, z}, ud),   // +X
	}
}

// Room is the floor followed by the walls.
func Room(p RoomParams) []core.MeshDesc {
	return append([]core.MeshDesc{Floor(p)}, Walls(p)...)
}
