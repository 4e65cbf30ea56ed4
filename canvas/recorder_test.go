package canvas

import (
	"image/color"
	"testing"
)

func TestRecorderFilterKeepsOrder(t *testing.T) {
	var r Recorder
	var c Canvas = &r

	c.FillRect(0, 0, 10, 10, color.NRGBA{A: 0x10})
	c.StrokeLine(1, 2, 3, 4, 1, color.NRGBA{A: 1})
	c.FillRadialGradient(5, 5, 3, color.NRGBA{A: 2}, color.NRGBA{})
	c.StrokeLine(5, 6, 7, 8, 1, color.NRGBA{A: 3})

	if got := r.Count(OpStrokeLine); got != 2 {
		t.Fatalf("Count(OpStrokeLine) = %d, want 2", got)
	}
	lines := r.Filter(OpStrokeLine)
	if lines[0].X0 != 1 || lines[1].X0 != 5 {
		t.Errorf("lines out of order: %+v", lines)
	}
	grad := r.Filter(OpRadialGradient)[0]
	if grad.Radius != 3 || grad.Color.A != 2 {
		t.Errorf("gradient = %+v", grad)
	}

	r.Reset()
	if len(r.Ops) != 0 {
		t.Errorf("Reset left %d ops", len(r.Ops))
	}
}
