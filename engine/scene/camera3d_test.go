package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	near := func(a, b float32) bool { return math32.Abs(a-b) < eps }
	assert.Truef(t, want.ApproxFuncEqual(got, near), "want %v, got %v", want, got)
}

func newTestCamera(yaw float32) *FreeCamera {
	p := DefaultCameraParams()
	p.Position = [3]float32{}
	p.Yaw = yaw
	p.MoveSpeed = 0.5
	p.TurnSpeed = 2
	return NewFreeCamera(p, 4.0/3.0)
}

func TestForward(t *testing.T) {
	assertVec3(t, mgl32.Vec3{0, 0, 1}, Forward(0, 0))
	assertVec3(t, mgl32.Vec3{-1, 0, 0}, Forward(90, 0))
	assertVec3(t, mgl32.Vec3{0, 1, 0}, Forward(0, 90))
	assert.InDelta(t, 1, Forward(37, -21).Len(), eps)
}

func TestRelativeMove(t *testing.T) {
	tests := []struct {
		name   string
		yaw    float32
		action Action
		want   mgl32.Vec3
	}{
		{"forward yaw 0", 0, MoveForward, mgl32.Vec3{0, 0, 0.5}},
		{"forward yaw 90", 90, MoveForward, mgl32.Vec3{-0.5, 0, 0}},
		{"back yaw 0", 0, MoveBack, mgl32.Vec3{0, 0, -0.5}},
		{"right yaw 0", 0, MoveRight, mgl32.Vec3{-0.5, 0, 0}},
		{"left yaw 90", 90, MoveLeft, mgl32.Vec3{0, 0, 0.5}},
		{"up ignores yaw", 45, MoveUp, mgl32.Vec3{0, 0.5, 0}},
		{"down", 0, MoveDown, mgl32.Vec3{0, -0.5, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCamera(tt.yaw)
			c.Press(tt.action)
			assertVec3(t, tt.want, c.Velocity())
		})
	}
}

func TestRightMatchesMoveRight(t *testing.T) {
	for _, yaw := range []float32{0, 30, 90, -120, 180} {
		c := newTestCamera(yaw)
		c.Press(MoveRight)
		assertVec3(t, c.Right().Mul(c.MoveSpeed), c.Velocity())
	}
}

func TestPressReleaseRoundTrip(t *testing.T) {
	actions := []Action{MoveForward, MoveBack, MoveLeft, MoveRight, MoveUp, MoveDown, YawLeft, YawRight, PitchUp, PitchDown}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		c := newTestCamera(float32(rng.Intn(360) - 180))
		// Random set of held keys as the baseline.
		for _, a := range actions {
			if rng.Intn(2) == 0 {
				c.Press(a)
			}
		}
		v0, w0 := c.Velocity(), c.AngularVelocity()

		a := actions[rng.Intn(len(actions))]
		c.Press(a)
		c.Release(a)
		assert.Equal(t, v0, c.Velocity())
		assert.Equal(t, w0, c.AngularVelocity())
	}
}

func TestOppositeKeysDoNotCancelEachOther(t *testing.T) {
	c := newTestCamera(0)
	c.Press(MoveForward)
	c.Press(MoveBack)
	assertVec3(t, mgl32.Vec3{}, c.Velocity())

	c.Release(MoveForward)
	assertVec3(t, mgl32.Vec3{0, 0, -0.5}, c.Velocity())
}

func TestPressWPressDReleaseW(t *testing.T) {
	c := newTestCamera(30)
	c.Press(MoveForward)
	c.Press(MoveRight)
	c.Release(MoveForward)

	want := RotateYaw(mgl32.Vec3{-c.MoveSpeed, 0, 0}, c.Yaw)
	assertVec3(t, want, c.Velocity())
}

func TestRoundTripAcrossYawChange(t *testing.T) {
	c := newTestCamera(0)
	c.Press(MoveForward)
	c.Press(YawRight)
	for i := 0; i < 20; i++ {
		c.Tick()
	}
	c.Release(MoveForward)
	assertVec3(t, mgl32.Vec3{}, c.Velocity())
}

// Held movement is re-expressed in the current facing every tick.
func TestVelocityFollowsFacing(t *testing.T) {
	c := newTestCamera(0)
	c.Press(MoveForward)
	assertVec3(t, mgl32.Vec3{0, 0, 0.5}, c.Velocity())

	c.Press(YawRight)
	for i := 0; i < 45; i++ {
		c.Tick()
	}
	require.InDelta(t, 90, c.Yaw, 1e-3)
	assertVec3(t, mgl32.Vec3{-0.5, 0, 0}, c.Velocity())
	assertVec3(t, c.Forward().Mul(c.MoveSpeed), c.Velocity())
}

func TestWrapYaw(t *testing.T) {
	tests := []struct{ in, want float32 }{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{360, 0},
		{540, 180},
		{-721, -1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, WrapYaw(tt.in), 1e-3, "WrapYaw(%v)", tt.in)
	}

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		y := WrapYaw((rng.Float32()*2 - 1) * 1e4)
		require.Greater(t, y, float32(-180))
		require.LessOrEqual(t, y, float32(180))
	}
}

func TestClampPitch(t *testing.T) {
	assert.Equal(t, float32(90), ClampPitch(91))
	assert.Equal(t, float32(-90), ClampPitch(-1000))
	assert.Equal(t, float32(12.5), ClampPitch(12.5))
}

func TestTickIntegrates(t *testing.T) {
	c := newTestCamera(0)
	c.Press(MoveForward)
	c.Press(PitchUp)
	for i := 0; i < 100; i++ {
		c.Tick()
		require.LessOrEqual(t, c.Pitch, float32(MaxPitch))
	}
	assertVec3(t, mgl32.Vec3{0, 0, 50}, c.Position)
	assert.Equal(t, float32(MaxPitch), c.Pitch)
}

func TestTickWrapsYaw(t *testing.T) {
	c := newTestCamera(179)
	c.Press(YawRight)
	c.Tick()
	assert.InDelta(t, -179, c.Yaw, 1e-4)
}

func TestTargetAndView(t *testing.T) {
	c := newTestCamera(0)
	c.Position = mgl32.Vec3{1, 2, 3}
	assertVec3(t, mgl32.Vec3{1, 2, 4}, c.Target())

	// The camera position maps to the view-space origin.
	p := c.View().Mul4x1(c.Position.Vec4(1))
	assertVec3(t, mgl32.Vec3{}, p.Vec3())

	// Straight up still yields a finite view.
	c.Pitch = 90
	for _, v := range c.View() {
		assert.False(t, math.IsNaN(float64(v)), "NaN in view matrix")
	}
}

func TestSetViewportPixels(t *testing.T) {
	c := newTestCamera(0)
	c.SetViewportPixels(800, 400)
	assert.Equal(t, float32(2), c.Aspect)
	c.SetViewportPixels(0, 0)
	assert.Equal(t, float32(2), c.Aspect)
}
