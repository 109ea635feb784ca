package core

// Input tracks which keys are currently held, fed from window events.
type Input struct {
	keys map[Key]bool
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if e.Repeat {
			return
		}
		in.keys[e.Key] = e.Down
	case EventFocus:
		if !e.Focused {
			clear(in.keys)
		}
	}
}

func (in *Input) IsKeyDown(k Key) bool { return in.keys[k] }
