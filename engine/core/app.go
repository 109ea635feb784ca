package core

import "time"

// App defines the demo hooks.
type App interface {
	OnStart(e *Engine)           // called once after window/renderer init
	OnUpdate(e *Engine)          // called once per frame, after input polling
	OnRender(e *Engine)          // called once per frame, after clear
	OnEvent(e *Engine, ev Event) // input/window events
	OnShutdown(e *Engine)        // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   LayerStack
	Frame    uint64
	start    time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer is the frame-level part of the graphics backend the loop needs.
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

// EventKey is a key transition. Repeat is set for OS auto-repeat while held.
type EventKey struct {
	Key    Key
	Down   bool
	Repeat bool
	Mods   Mod
}

func (EventKey) isEvent() {}

// EventFocus reports the window gaining or losing keyboard focus.
type EventFocus struct{ Focused bool }

func (EventFocus) isEvent() {}

// Key/mod enums (subset).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyLeftShift
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyR
	KeyF
)

var keyNames = map[Key]string{
	KeyEscape:    "Escape",
	KeySpace:     "Space",
	KeyLeftShift: "LeftShift",
	KeyW:         "W",
	KeyA:         "A",
	KeyS:         "S",
	KeyD:         "D",
	KeyQ:         "Q",
	KeyE:         "E",
	KeyR:         "R",
	KeyF:         "F",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "Unknown"
}

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	GLMajor    int
	GLMinor    int
	GLDebug    bool
	ClearColor [4]float32 // RGBA
}
