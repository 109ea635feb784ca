package core

import (
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
)

// Run wires the platform window + renderer and executes the main loop.
//
// One frame is: clear, render, swap, poll, update. There is no delta time;
// anything that moves does so in units per frame, paced by vsync.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(), start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		if r, ok := ev.(EventResize); ok && r.W > 0 && r.H > 0 {
			rend.Resize(r.W, r.H)
		}
		app.OnEvent(eng, ev)
		eng.Layers.ForEachReverse(func(l Layer) bool { return l.OnEvent(eng, ev) })
	})

	app.OnStart(eng)
	eng.Layers.ForEach(func(l Layer) { l.OnAttach(eng) })

	clear := cfg.ClearColor
	for !win.ShouldClose() {
		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		app.OnRender(eng)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng) })

		win.SwapBuffers()

		// Platform emits events through the callback during the poll.
		win.PollEvents()

		app.OnUpdate(eng)
		eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng) })
		eng.Frame++
	}

	// Detach top-down so later layers release before the ones they sit on.
	for {
		l, ok := eng.Layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(eng)
	}
	app.OnShutdown(eng)
	log.Info().Uint64("frames", eng.Frame).Dur("uptime", eng.Uptime()).Msg("engine exit")
	return nil
}
