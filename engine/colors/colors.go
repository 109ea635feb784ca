package colors

// Color is linear RGBA. It decodes from a YAML/JSON list of four numbers.
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Black    = Color{0, 0, 0, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)
