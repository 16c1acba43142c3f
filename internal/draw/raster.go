package draw

import (
	"image"
	"io"

	"github.com/fogleman/gg"
)

// rasterBackground matches the dark arena of the terminal renderer.
const rasterBackground = "#0b0e14"

// Raster is an image Surface backed by gg. Logical coordinates are scaled
// uniformly to the image size.
type Raster struct {
	dc     *gg.Context
	scaleX float64
	scaleY float64
}

// NewRaster creates a width x height image mapping the given logical size.
func NewRaster(width, height int, logicalWidth, logicalHeight float64) *Raster {
	return &Raster{
		dc:     gg.NewContext(width, height),
		scaleX: float64(width) / logicalWidth,
		scaleY: float64(height) / logicalHeight,
	}
}

// Clear fills the image with the background color.
func (r *Raster) Clear() {
	r.dc.SetHexColor(rasterBackground)
	r.dc.Clear()
}

// FillCircle fills a circle given in logical coordinates.
func (r *Raster) FillCircle(x, y, radius float64, ink Ink) {
	r.dc.SetColor(ink.NRGBA())
	r.dc.DrawEllipse(x*r.scaleX, y*r.scaleY, radius*r.scaleX, radius*r.scaleY)
	r.dc.Fill()
}

// FillRect fills a rectangle given in logical coordinates.
func (r *Raster) FillRect(x, y, w, h float64, ink Ink) {
	r.dc.SetColor(ink.NRGBA())
	r.dc.DrawRectangle(x*r.scaleX, y*r.scaleY, w*r.scaleX, h*r.scaleY)
	r.dc.Fill()
}

// StrokeRect outlines a rectangle given in logical coordinates.
func (r *Raster) StrokeRect(x, y, w, h float64, ink Ink) {
	r.dc.SetColor(ink.NRGBA())
	r.dc.SetLineWidth(2)
	r.dc.DrawRectangle(x*r.scaleX, y*r.scaleY, w*r.scaleX, h*r.scaleY)
	r.dc.Stroke()
}

// Tint blends a translucent ink over the whole image.
func (r *Raster) Tint(ink Ink) {
	r.dc.SetColor(ink.NRGBA())
	r.dc.DrawRectangle(0, 0, float64(r.dc.Width()), float64(r.dc.Height()))
	r.dc.Fill()
}

// Text draws a string centered on a logical position using gg's default face.
func (r *Raster) Text(x, y float64, s string, ink Ink) {
	r.dc.SetColor(ink.NRGBA())
	r.dc.DrawStringAnchored(s, x*r.scaleX, y*r.scaleY, 0.5, 0.5)
}

// Image returns the rendered image.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// SavePNG writes the image to a PNG file.
func (r *Raster) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}
