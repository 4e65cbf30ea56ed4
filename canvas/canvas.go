// Package canvas is the drawing surface the particle field renders onto.
package canvas

import "image/color"

// Canvas is a 2D drawing context. Coordinates are device-independent pixels;
// implementations apply their own pixel ratio.
type Canvas interface {
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, clr color.NRGBA)
	// StrokeLine strokes a segment of the given width.
	StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA)
	// FillRadialGradient fills the disc of radius r around (cx, cy) with a
	// gradient from inner at the center to outer at the rim.
	FillRadialGradient(cx, cy, r float64, inner, outer color.NRGBA)
}
