package draw

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func TestRasterFillCircle(t *testing.T) {
	r := NewRaster(96, 54, 960, 540)
	r.Clear()
	r.FillCircle(480, 270, 50, InkHazard)

	got := color.NRGBAModel.Convert(r.Image().At(48, 27)).(color.NRGBA)
	want := InkHazard.NRGBA()
	if got.R != want.R || got.G != want.G || got.B != want.B {
		t.Errorf("center color = %v, want %v", got, want)
	}
}

func TestRasterTintIsTranslucent(t *testing.T) {
	r := NewRaster(10, 10, 10, 10)
	r.Clear()
	r.FillRect(0, 0, 10, 10, InkHazard)
	r.Tint(InkSlowTint)

	got := color.NRGBAModel.Convert(r.Image().At(5, 5)).(color.NRGBA)
	hazard := InkHazard.NRGBA()
	if got.R < hazard.R-20 {
		t.Errorf("tint should only lightly blend, red channel %d vs %d", got.R, hazard.R)
	}
	if got == hazard {
		t.Error("tint should change the pixel")
	}
}

func TestRasterEncodePNG(t *testing.T) {
	r := NewRaster(8, 8, 8, 8)
	r.Clear()

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("width = %d, want 8", img.Bounds().Dx())
	}
}

func TestInkNRGBA(t *testing.T) {
	if InkNone.NRGBA().A != 0 {
		t.Error("InkNone should be transparent")
	}
	if InkSlowTint.NRGBA().A == 0 || InkSlowTint.NRGBA().A == 0xff {
		t.Error("slow tint should be translucent")
	}
	if InkOrb.Hex() != "#ffd166" {
		t.Errorf("InkOrb hex = %s", InkOrb.Hex())
	}
}
