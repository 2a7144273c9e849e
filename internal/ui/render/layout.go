package render

// Rect is a screen region in cell coordinates.
type Rect struct {
	X, Y, W, H int
}

// Layout places the trace pane on the left half and the directory panel
// on the right half of the screen; the modal viewer reuses the panel
// region. Matches the original split with minimum sizes clamped so border
// drawing never underflows.
type Layout struct {
	Trace Rect
	Panel Rect
}

// ComputeLayout splits a w×h screen into the two pane regions.
func ComputeLayout(w, h int) Layout {
	if h < 3 {
		h = 3
	}
	panelX := w / 2
	panelW := w - panelX
	if panelW < 4 {
		panelW = 4
	}
	return Layout{
		Trace: Rect{X: 0, Y: 0, W: panelX, H: h},
		Panel: Rect{X: panelX, Y: 0, W: panelW, H: h},
	}
}
