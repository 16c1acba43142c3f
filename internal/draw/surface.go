package draw

// Surface is a 2D drawing target in logical (arena) coordinates.
// Implemented by the terminal Canvas and the image Raster.
type Surface interface {
	FillCircle(x, y, r float64, ink Ink)
	FillRect(x, y, w, h float64, ink Ink)
	StrokeRect(x, y, w, h float64, ink Ink)
	// Tint covers the whole surface with a translucent overlay.
	Tint(ink Ink)
}

var (
	_ Surface = (*Canvas)(nil)
	_ Surface = (*Raster)(nil)
)
