package draw

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Ink is a palette entry. The zero value is an empty pixel.
type Ink uint8

const (
	InkNone Ink = iota
	InkPlayer
	InkPlayerInvuln
	InkOrb
	InkOrbDim
	InkHazard
	InkPowerSlow
	InkPowerOther
	InkBorder
	InkSlowTint
	InkText

	inkCount
)

type inkDef struct {
	color colorful.Color
	alpha uint8 // Used by Raster; the terminal ignores alpha
	fg    string
	bg    string
}

var palette [inkCount]inkDef

func init() {
	defs := [inkCount]struct {
		hex   string
		alpha uint8
	}{
		InkNone:         {"#000000", 0x00},
		InkPlayer:       {"#5aa9ff", 0xff},
		InkPlayerInvuln: {"#6fffd3", 0xff},
		InkOrb:          {"#ffd166", 0xff},
		InkOrbDim:       {"#b8913f", 0xff},
		InkHazard:       {"#ff6363", 0xff},
		InkPowerSlow:    {"#7afcff", 0xff},
		InkPowerOther:   {"#baffc9", 0xff},
		InkBorder:       {"#3a3f4b", 0x14},
		InkSlowTint:     {"#7afcff", 0x0f},
		InkText:         {"#e6e6e6", 0xff},
	}
	for i, d := range defs {
		c := mustParseHex(d.hex)
		tc := termenv.ANSI256.FromColor(c)
		palette[i] = inkDef{
			color: c,
			alpha: d.alpha,
			fg:    tc.Sequence(false),
			bg:    tc.Sequence(true),
		}
	}
	// The border is drawn as an opaque dim line in the image renderer too.
	palette[InkBorder].alpha = 0xff
}

// Hex returns the ink as a "#rrggbb" string.
func (i Ink) Hex() string {
	if i >= inkCount {
		return palette[InkNone].color.Hex()
	}
	return palette[i].color.Hex()
}

// NRGBA returns the ink color including its overlay alpha.
func (i Ink) NRGBA() color.NRGBA {
	if i >= inkCount {
		return color.NRGBA{}
	}
	r, g, b := palette[i].color.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: palette[i].alpha}
}

// sgr returns the SGR parameters for foreground (and optional background) inks.
func sgr(fg, bg Ink) string {
	if bg == InkNone {
		return "0;" + palette[fg].fg
	}
	return "0;" + palette[fg].fg + ";" + palette[bg].bg
}

// mustParseHex parses a "#rrggbb" color and panics if it is malformed.
func mustParseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
