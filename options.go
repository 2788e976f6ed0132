package chipview

// DefaultScale is the display magnification applied when WithScale is not
// given. A 64x32 screen draws at 576x288.
const DefaultScale float32 = 9

// Option configures a View during creation.
//
// Example:
//
//	// Default presentation: 9x scale, phosphor-green tint
//	v, err := chipview.NewView(backend, scr)
//
//	// Custom presentation
//	v, err := chipview.NewView(backend, scr,
//	    chipview.WithScale(4),
//	    chipview.WithTint(chipview.RGB(1, 1, 1)))
type Option func(*viewOptions)

// viewOptions holds optional configuration for View creation.
type viewOptions struct {
	scale float32
	tint  RGBA
	label string
}

// defaultViewOptions returns the default presentation state.
func defaultViewOptions() viewOptions {
	return viewOptions{
		scale: DefaultScale,
		tint:  DefaultTint,
		label: "chipview_display",
	}
}

// WithScale sets the display magnification factor. Non-positive values are
// ignored and the default is kept.
func WithScale(s float32) Option {
	return func(o *viewOptions) {
		if s > 0 {
			o.scale = s
		}
	}
}

// WithTint sets the tint the GUI layer applies when drawing the display.
func WithTint(c RGBA) Option {
	return func(o *viewOptions) {
		o.tint = c
	}
}

// WithLabel sets the debug label attached to the view's GPU resources.
// Useful when several views share one backend.
func WithLabel(label string) Option {
	return func(o *viewOptions) {
		if label != "" {
			o.label = label
		}
	}
}
