package paint

// GradientKind selects the gradient geometry.
type GradientKind string

const (
	GradientLinear GradientKind = "linear"
	GradientRadial GradientKind = "radial"
)

// Stop is one entry in a gradient's ordered color ramp. Color may be a
// concrete value or a token reference string; offsets are in [0, 1].
type Stop struct {
	Offset  float64
	Color   any
	Opacity float64
}

// Gradient describes a multi-stop color ramp. Coordinates are in the unit
// square of whatever shape the gradient is painted into.
type Gradient struct {
	Kind GradientKind

	// Linear axis
	X1, Y1 float64
	X2, Y2 float64

	// Radial center and radius
	CX, CY float64
	Radius float64

	Stops []Stop
}

// NewLinear creates a horizontal linear gradient with the given stops.
func NewLinear(stops ...Stop) *Gradient {
	return &Gradient{
		Kind:  GradientLinear,
		X2:    1,
		Stops: stops,
	}
}

// NewRadial creates a centered radial gradient with the given stops.
func NewRadial(stops ...Stop) *Gradient {
	return &Gradient{
		Kind:   GradientRadial,
		CX:     0.5,
		CY:     0.5,
		Radius: 0.5,
		Stops:  stops,
	}
}

// Clone creates a copy of the gradient with its own stop slice.
// Stop values are copied element-wise; stop colors are shared.
func (g *Gradient) Clone() *Gradient {
	clone := *g

	if g.Stops != nil {
		clone.Stops = make([]Stop, len(g.Stops))
		copy(clone.Stops, g.Stops)
	}

	return &clone
}

// Pattern is an opaque image-based paint. Patterns carry no token
// references and are never rewritten by resolution.
type Pattern struct {
	Name   string
	Source string
	Repeat bool
}
