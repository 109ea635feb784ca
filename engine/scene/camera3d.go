package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Action is one thing a key can make the camera do.
type Action int

const (
	MoveForward Action = iota
	MoveBack
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	YawLeft
	YawRight
	PitchUp
	PitchDown
)

const (
	MinPitch = -90
	MaxPitch = 90
)

// CameraParams configures a FreeCamera. Speeds are per frame.
type CameraParams struct {
	Position  [3]float32 `yaml:"position"`
	Yaw       float32    `yaml:"yaw"`        // degrees
	Pitch     float32    `yaml:"pitch"`      // degrees
	MoveSpeed float32    `yaml:"move_speed"` // units per frame
	TurnSpeed float32    `yaml:"turn_speed"` // degrees per frame
	FovY      float32    `yaml:"fov"`        // degrees
	Near      float32    `yaml:"near"`
	Far       float32    `yaml:"far"`
}

func DefaultCameraParams() CameraParams {
	return CameraParams{
		Position:  [3]float32{0, 1, -3},
		MoveSpeed: 0.05,
		TurnSpeed: 1.5,
		FovY:      45,
		Near:      0.1,
		Far:       100,
	}
}

// FreeCamera is a perspective camera driven by velocity accumulation.
// Movement intent is kept as signed local axes (x left, y up, z forward) and
// turned into a world velocity with the yaw of the moment, so a press and its
// release always cancel exactly.
type FreeCamera struct {
	Position   mgl32.Vec3
	Yaw, Pitch float32 // degrees
	MoveSpeed  float32
	TurnSpeed  float32

	FovY, Near, Far float32
	Aspect          float32

	move mgl32.Vec3 // local axes
	turn mgl32.Vec2 // yaw, pitch
}

func NewFreeCamera(p CameraParams, aspect float32) *FreeCamera {
	return &FreeCamera{
		Position:  mgl32.Vec3(p.Position),
		Yaw:       WrapYaw(p.Yaw),
		Pitch:     ClampPitch(p.Pitch),
		MoveSpeed: p.MoveSpeed,
		TurnSpeed: p.TurnSpeed,
		FovY:      p.FovY,
		Near:      p.Near,
		Far:       p.Far,
		Aspect:    aspect,
	}
}

// Press starts a. Must be paired with Release.
func (c *FreeCamera) Press(a Action) { c.apply(a, 1) }

// Release undoes a Press.
func (c *FreeCamera) Release(a Action) { c.apply(a, -1) }

func (c *FreeCamera) apply(a Action, sign float32) {
	switch a {
	case MoveForward:
		c.move[2] += sign
	case MoveBack:
		c.move[2] -= sign
	case MoveLeft:
		c.move[0] += sign
	case MoveRight:
		c.move[0] -= sign
	case MoveUp:
		c.move[1] += sign
	case MoveDown:
		c.move[1] -= sign
	case YawLeft:
		c.turn[0] -= sign
	case YawRight:
		c.turn[0] += sign
	case PitchUp:
		c.turn[1] += sign
	case PitchDown:
		c.turn[1] -= sign
	}
}

// Velocity is the world-space displacement applied on the next Tick.
func (c *FreeCamera) Velocity() mgl32.Vec3 {
	return RotateYaw(c.move.Mul(c.MoveSpeed), c.Yaw)
}

// AngularVelocity is the (yaw, pitch) change in degrees applied on the next Tick.
func (c *FreeCamera) AngularVelocity() mgl32.Vec2 {
	return c.turn.Mul(c.TurnSpeed)
}

// Tick integrates one frame.
func (c *FreeCamera) Tick() {
	c.Position = c.Position.Add(c.Velocity())
	av := c.AngularVelocity()
	c.Yaw = WrapYaw(c.Yaw + av[0])
	c.Pitch = ClampPitch(c.Pitch + av[1])
}

// Forward is the unit view direction.
func (c *FreeCamera) Forward() mgl32.Vec3 { return Forward(c.Yaw, c.Pitch) }

// Right is the horizontal unit vector to the camera's right.
func (c *FreeCamera) Right() mgl32.Vec3 { return RotateYaw(mgl32.Vec3{-1, 0, 0}, c.Yaw) }

// Up is perpendicular to Forward and Right, so it stays valid looking straight up or down.
func (c *FreeCamera) Up() mgl32.Vec3 { return c.Right().Cross(c.Forward()) }

// Target is the look-at point one unit ahead.
func (c *FreeCamera) Target() mgl32.Vec3 { return c.Position.Add(c.Forward()) }

func (c *FreeCamera) SetViewportPixels(w, h int) {
	if w > 0 && h > 0 {
		c.Aspect = float32(w) / float32(h)
	}
}

func (c *FreeCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target(), c.Up())
}

func (c *FreeCamera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

func (c *FreeCamera) ViewProjection() mgl32.Mat4 { return c.Projection().Mul4(c.View()) }

// Forward returns (-sin(yaw)cos(pitch), sin(pitch), cos(yaw)cos(pitch)).
func Forward(yawDeg, pitchDeg float32) mgl32.Vec3 {
	y, p := mgl32.DegToRad(yawDeg), mgl32.DegToRad(pitchDeg)
	cp := math32.Cos(p)
	return mgl32.Vec3{-math32.Sin(y) * cp, math32.Sin(p), math32.Cos(y) * cp}
}

// RotateYaw turns v about +Y so that local +Z maps to Forward(yaw, 0).
func RotateYaw(v mgl32.Vec3, yawDeg float32) mgl32.Vec3 {
	y := mgl32.DegToRad(yawDeg)
	s, c := math32.Sin(y), math32.Cos(y)
	return mgl32.Vec3{v[0]*c - v[2]*s, v[1], v[0]*s + v[2]*c}
}

// WrapYaw maps any angle into (-180, 180].
func WrapYaw(deg float32) float32 {
	r := math32.Mod(180-deg, 360)
	if r < 0 {
		r += 360
	}
	if r >= 360 {
		r -= 360
	}
	return 180 - r
}

// ClampPitch limits deg to [MinPitch, MaxPitch].
func ClampPitch(deg float32) float32 {
	return mgl32.Clamp(deg, MinPitch, MaxPitch)
}
