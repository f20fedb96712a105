// Package raster is a reference retained.Surface that paints into an RGBA
// image. It exists for the replay tool and for tests; real window systems
// supply their own surface.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/agiangrant/simplekit/retained"
	"github.com/agiangrant/simplekit/tw"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FaceSource resolves CSS font strings to faces. *textmeasure.FaceMeasurer
// implements it.
type FaceSource interface {
	Face(cssFont string) (font.Face, error)
}

type origin struct{ x, y float32 }

// Surface paints onto an *image.RGBA.
type Surface struct {
	img   *image.RGBA
	faces FaceSource

	cur   origin
	stack []origin
}

// New creates a surface of the given size filled with background. faces may
// be nil, in which case text is not drawn.
func New(width, height int, background string, faces FaceSource) *Surface {
	s := &Surface{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		faces: faces,
	}
	if c, ok := tw.ParseColor(background); ok {
		draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	}
	return s
}

// Image returns the painted image.
func (s *Surface) Image() *image.RGBA { return s.img }

// Save pushes the current origin.
func (s *Surface) Save() {
	s.stack = append(s.stack, s.cur)
}

// Restore pops the origin pushed by the matching Save.
func (s *Surface) Restore() {
	if n := len(s.stack); n > 0 {
		s.cur = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
}

// Translate moves the origin.
func (s *Surface) Translate(dx, dy float32) {
	s.cur.x += dx
	s.cur.y += dy
}

func (s *Surface) rect(x, y, width, height float32) image.Rectangle {
	x0 := int(s.cur.x + x + 0.5)
	y0 := int(s.cur.y + y + 0.5)
	x1 := int(s.cur.x + x + width + 0.5)
	y1 := int(s.cur.y + y + height + 0.5)
	return image.Rect(x0, y0, x1, y1)
}

// FillRect fills a rectangle. Unparseable colours paint nothing.
func (s *Surface) FillRect(x, y, width, height float32, colour string) {
	c, ok := tw.ParseColor(colour)
	if !ok || c.A == 0 || width <= 0 || height <= 0 {
		return
	}
	s.fill(s.rect(x, y, width, height), c)
}

func (s *Surface) fill(r image.Rectangle, c color.RGBA) {
	draw.Draw(s.img, r.Intersect(s.img.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}

// StrokeRect outlines a rectangle with the line centred on its edges.
func (s *Surface) StrokeRect(x, y, width, height float32, colour string, lineWidth float32) {
	c, ok := tw.ParseColor(colour)
	if !ok || c.A == 0 || lineWidth <= 0 {
		return
	}
	h := lineWidth / 2
	s.fill(s.rect(x-h, y-h, width+lineWidth, lineWidth), c)        // top
	s.fill(s.rect(x-h, y+height-h, width+lineWidth, lineWidth), c) // bottom
	s.fill(s.rect(x-h, y+h, lineWidth, height-lineWidth), c)       // left
	s.fill(s.rect(x+width-h, y+h, lineWidth, height-lineWidth), c) // right
}

// FillText draws a single line of text vertically centred on y.
func (s *Surface) FillText(text string, x, y float32, cssFont, colour string, align retained.TextAlign) {
	if s.faces == nil || text == "" {
		return
	}
	c, ok := tw.ParseColor(colour)
	if !ok {
		return
	}
	face, err := s.faces.Face(cssFont)
	if err != nil {
		return
	}

	d := &font.Drawer{Dst: s.img, Src: image.NewUniform(c), Face: face}
	adv := d.MeasureString(text)
	m := face.Metrics()

	px := fixed.Int26_6((s.cur.x + x) * 64)
	switch align {
	case retained.AlignCentre:
		px -= adv / 2
	case retained.AlignRight:
		px -= adv
	}
	// Baseline such that the ascent/descent box is centred on y.
	py := fixed.Int26_6((s.cur.y + y) * 64) + (m.Ascent-m.Descent)/2
	d.Dot = fixed.Point26_6{X: px, Y: py}
	d.DrawString(text)
}

// WritePNG encodes the image as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	return errors.Wrap(png.Encode(w, s.img), "encode png")
}
