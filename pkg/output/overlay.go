package output

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/vini-fda/luz/pkg/core"
	"github.com/vini-fda/luz/pkg/geometry"
	"github.com/vini-fda/luz/pkg/renderer"
	"github.com/vini-fda/luz/pkg/scene"
)

// Overlay strokes the outline of every primitive in a scene over a render
type Overlay struct {
	Viewport  renderer.Viewport
	Color     string // Hex color, e.g. "#ff4040"
	LineWidth float64
}

// Draw returns a copy of img with the scene's circles and polygons outlined.
// CSG operands are drawn in full; the overlay shows construction geometry.
func (o Overlay) Draw(img image.Image, s *scene.Scene) image.Image {
	dc := gg.NewContextForImage(img)
	bounds := img.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())

	vp := o.Viewport
	scaleX := width / (vp.Max.X - vp.Min.X)
	scaleY := height / (vp.Max.Y - vp.Min.Y)
	toPixel := func(p core.Vec2) (float64, float64) {
		return (p.X - vp.Min.X) * scaleX, (p.Y - vp.Min.Y) * scaleY
	}

	dc.SetHexColor(o.Color)
	dc.SetLineWidth(o.LineWidth)

	for _, entity := range s.Entities {
		entity.Shape.Walk(func(primitive geometry.Shape) {
			if c, ok := primitive.Circle(); ok {
				x, y := toPixel(c.Center)
				dc.NewSubPath()
				dc.DrawEllipse(x, y, c.Radius*scaleX, c.Radius*scaleY)
				return
			}
			if p, ok := primitive.Polygon(); ok && len(p.Points) > 0 {
				dc.NewSubPath()
				x, y := toPixel(p.Points[0])
				dc.MoveTo(x, y)
				for _, point := range p.Points[1:] {
					x, y = toPixel(point)
					dc.LineTo(x, y)
				}
				dc.ClosePath()
			}
		})
	}
	dc.Stroke()

	return dc.Image()
}
