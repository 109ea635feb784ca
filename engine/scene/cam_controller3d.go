package scene

import "github.com/hubastard/render3d/engine/core"

// DefaultBindings: WASD move, Space/LeftShift up/down, Q/E yaw, R/F pitch.
func DefaultBindings() map[core.Key]Action {
	return map[core.Key]Action{
		core.KeyW:         MoveForward,
		core.KeyS:         MoveBack,
		core.KeyA:         MoveLeft,
		core.KeyD:         MoveRight,
		core.KeySpace:     MoveUp,
		core.KeyLeftShift: MoveDown,
		core.KeyQ:         YawLeft,
		core.KeyE:         YawRight,
		core.KeyR:         PitchUp,
		core.KeyF:         PitchDown,
	}
}

// CameraController samples the engine's key state once per frame and turns
// changes since the previous frame into camera presses and releases.
type CameraController struct {
	Camera   *FreeCamera
	Bindings map[core.Key]Action

	// keys whose press has reached the camera
	applied map[core.Key]bool
}

func NewCameraController(cam *FreeCamera) *CameraController {
	return &CameraController{
		Camera:   cam,
		Bindings: DefaultBindings(),
		applied:  map[core.Key]bool{},
	}
}

// Update applies bound key transitions seen in input, then integrates one
// frame. Input already drops repeats and clears on focus loss, so a key that
// vanished from it is released here.
func (cc *CameraController) Update(in *core.Input) {
	for k, a := range cc.Bindings {
		down := in.IsKeyDown(k)
		if down == cc.applied[k] {
			continue
		}
		if down {
			cc.applied[k] = true
			cc.Camera.Press(a)
		} else {
			delete(cc.applied, k)
			cc.Camera.Release(a)
		}
	}
	cc.Camera.Tick()
}
