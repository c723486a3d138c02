// Package paint defines the paint value model: colors, gradients, patterns
// and the free-form drawing style consumed by token resolution.
package paint

// LineCap represents the line cap style.
type LineCap int

const (
	LineCapButt   LineCap = 0
	LineCapRound  LineCap = 1
	LineCapSquare LineCap = 2
)

// LineJoin represents the line join style.
type LineJoin int

const (
	LineJoinMiter LineJoin = 0
	LineJoinRound LineJoin = 1
	LineJoinBevel LineJoin = 2
)

// Style is a property bag for drawing. Fill and Stroke hold a color value:
// a plain color string, a *Gradient, a *Pattern, or a token reference
// string. Extra carries properties unknown to this package so that callers
// can round-trip styles without loss.
type Style struct {
	Fill   any
	Stroke any

	// Line drawing parameters
	LineWidth   float64
	LineCap     LineCap
	LineJoin    LineJoin
	MiterLimit  float64
	DashPattern []float64
	DashPhase   float64

	// Transparency
	FillOpacity   float64
	StrokeOpacity float64

	// Unrecognized properties, preserved verbatim
	Extra map[string]any
}

// Clone creates a shallow copy of the style. The dash pattern and the Extra
// map get their own storage; everything else is copied by value or shared.
func (s *Style) Clone() *Style {
	clone := *s

	if s.DashPattern != nil {
		clone.DashPattern = make([]float64, len(s.DashPattern))
		copy(clone.DashPattern, s.DashPattern)
	}

	if s.Extra != nil {
		clone.Extra = make(map[string]any, len(s.Extra))
		for k, v := range s.Extra {
			clone.Extra[k] = v
		}
	}

	return &clone
}
