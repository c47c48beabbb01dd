package wavemenu

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrEmptySurface is returned when filling a surface that has no pixels,
// usually because its container has not been laid out yet.
var ErrEmptySurface = errors.New("wavemenu: surface has zero size")

// Surface is the 2D drawing target the animator paints into.
type Surface interface {
	// Resize sets the pixel dimensions. Negative values are treated as zero.
	Resize(width, height int)
	// Size returns the current pixel dimensions.
	Size() (width, height int)
	// Clear paints the whole surface fully transparent.
	Clear()
	// FillPath fills the closed path with a solid color using the rule.
	FillPath(p *Path, rule FillRule, c Color) error
}

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// ensureWhiteSubImage returns the center pixel of a 3x3 white image, the
// source texture for solid triangle fills.
func ensureWhiteSubImage() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// ImageSurface is a Surface backed by an offscreen *ebiten.Image. A zero
// sized surface holds no image at all.
type ImageSurface struct {
	image *ebiten.Image
	w, h  int

	// AntiAlias smooths the wave's curved edge.
	AntiAlias bool

	vs []ebiten.Vertex
	is []uint16
}

// NewImageSurface creates an offscreen surface of the given size.
func NewImageSurface(width, height int) *ImageSurface {
	s := &ImageSurface{AntiAlias: true}
	s.Resize(width, height)
	return s
}

// Image returns the underlying image, or nil while the surface is empty.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.image
}

// Size returns the surface dimensions in pixels.
func (s *ImageSurface) Size() (width, height int) {
	return s.w, s.h
}

// Resize deallocates the old image and creates a new one at the given
// dimensions. A resize to the current size keeps the image and its content.
func (s *ImageSurface) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.w && height == s.h && (s.image != nil || width == 0 || height == 0) {
		return
	}
	if s.image != nil {
		s.image.Deallocate()
		s.image = nil
	}
	s.w, s.h = width, height
	if width > 0 && height > 0 {
		s.image = ebiten.NewImage(width, height)
	}
}

// Clear fills the surface with transparent black.
func (s *ImageSurface) Clear() {
	if s.image != nil {
		s.image.Clear()
	}
}

// FillPath tessellates p and draws it with a single DrawTriangles call.
func (s *ImageSurface) FillPath(p *Path, rule FillRule, c Color) error {
	if s.image == nil {
		return ErrEmptySurface
	}
	if p.Len() == 0 {
		return nil
	}

	s.vs, s.is = p.vectorPath().AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	r, g, b, a := float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A)
	for i := range s.vs {
		v := &s.vs[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}

	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = s.AntiAlias
	op.FillRule = rule.ebitenFillRule()
	s.image.DrawTriangles(s.vs, s.is, ensureWhiteSubImage(), &op)
	return nil
}

// Dispose deallocates the underlying image. The surface may be resized
// again afterwards.
func (s *ImageSurface) Dispose() {
	if s.image != nil {
		s.image.Deallocate()
		s.image = nil
	}
	s.w, s.h = 0, 0
}

func (r FillRule) ebitenFillRule() ebiten.FillRule {
	if r == FillRuleEvenOdd {
		return ebiten.FillRuleEvenOdd
	}
	return ebiten.FillRuleNonZero
}
