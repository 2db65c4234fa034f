package colors

type Color [4]float32

var (
	White  = Color{1, 1, 1, 1}
	Black  = Color{0, 0, 0, 1}
	Orange = Color{1.0, 0.5, 0.2, 1.0}
	Teal   = Color{0.2, 0.3, 0.3, 1.0}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// RGBA splits the color for GL calls.
func (c Color) RGBA() (r, g, b, a float32) { return c[0], c[1], c[2], c[3] }
