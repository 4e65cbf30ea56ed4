package canvas

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Ebiten draws onto an offscreen *ebiten.Image sized in device pixels.
type Ebiten struct {
	dst      *ebiten.Image
	scale    float64
	segments int

	// Reused every gradient fill
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewEbiten wraps dst. scale is the pixel ratio applied to every coordinate.
func NewEbiten(dst *ebiten.Image, scale float64, segments int) *Ebiten {
	if segments < 3 {
		segments = 3
	}
	e := &Ebiten{
		dst:      dst,
		scale:    scale,
		segments: segments,
		vertices: make([]ebiten.Vertex, 0, segments+1),
		indices:  make([]uint16, 0, segments*3),
	}
	e.buildIndices()
	return e
}

// Image returns the backing image.
func (e *Ebiten) Image() *ebiten.Image {
	return e.dst
}

// Scale returns the pixel ratio.
func (e *Ebiten) Scale() float64 {
	return e.scale
}

func (e *Ebiten) FillRect(x, y, w, h float64, clr color.NRGBA) {
	s := e.scale
	vector.FillRect(e.dst, float32(x*s), float32(y*s), float32(w*s), float32(h*s), clr, false)
}

func (e *Ebiten) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	s := e.scale
	vector.StrokeLine(e.dst, float32(x0*s), float32(y0*s), float32(x1*s), float32(y1*s), float32(width*s), clr, true)
}

func (e *Ebiten) FillRadialGradient(cx, cy, r float64, inner, outer color.NRGBA) {
	if r <= 0 {
		return
	}
	s := e.scale
	cx, cy, r = cx*s, cy*s, r*s

	ir, ig, ib, ia := premultiplied(inner)
	or, og, ob, oa := premultiplied(outer)

	e.vertices = e.vertices[:0]
	e.vertices = append(e.vertices, ebiten.Vertex{
		DstX: float32(cx), DstY: float32(cy),
		SrcX: 1.5, SrcY: 1.5,
		ColorR: ir, ColorG: ig, ColorB: ib, ColorA: ia,
	})
	for i := 0; i < e.segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(e.segments)
		e.vertices = append(e.vertices, ebiten.Vertex{
			DstX: float32(cx + r*math.Cos(theta)), DstY: float32(cy + r*math.Sin(theta)),
			SrcX: 1.5, SrcY: 1.5,
			ColorR: or, ColorG: og, ColorB: ob, ColorA: oa,
		})
	}

	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	}
	e.dst.DrawTriangles(e.vertices, e.indices, white(), op)
}

// buildIndices lays out a fan around vertex 0.
func (e *Ebiten) buildIndices() {
	n := uint16(e.segments)
	for i := uint16(0); i < n; i++ {
		next := (i+1)%n + 1
		e.indices = append(e.indices, 0, i+1, next)
	}
}

func premultiplied(c color.NRGBA) (r, g, b, a float32) {
	a = float32(c.A) / 0xff
	r = float32(c.R) / 0xff * a
	g = float32(c.G) / 0xff * a
	b = float32(c.B) / 0xff * a
	return r, g, b, a
}
