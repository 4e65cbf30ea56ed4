package canvas

import "image/color"

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpStrokeLine
	OpRadialGradient
)

// Op is one recorded drawing call. Unused coordinates are zero.
type Op struct {
	Kind           OpKind
	X0, Y0, X1, Y1 float64
	Width, Height  float64
	Radius         float64
	Color          color.NRGBA
	Outer          color.NRGBA
}

// Recorder is a Canvas that stores calls instead of drawing them.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X0: x, Y0: y, Width: w, Height: h, Color: clr})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: clr})
}

func (r *Recorder) FillRadialGradient(cx, cy, radius float64, inner, outer color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpRadialGradient, X0: cx, Y0: cy, Radius: radius, Color: inner, Outer: outer})
}

// Count returns the number of recorded calls of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls of kind k in order.
func (r *Recorder) Filter(k OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
