package loop

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/orbrunner/internal/draw"
	"github.com/tomz197/orbrunner/internal/object"
)

// worldSnapshot copies every value Render could touch.
type worldSnapshot struct {
	Player   object.Player
	Orbs     []object.Orb
	Hazards  []object.Hazard
	PowerUps []object.PowerUp
	Counters [6]int
}

func snapshot(w *World) worldSnapshot {
	s := worldSnapshot{
		Player:   *w.Player,
		Counters: [6]int{w.Score, w.Level, w.Lives, w.SlowTimer, w.Frame, w.HazardCadence},
	}
	for _, o := range w.Orbs {
		s.Orbs = append(s.Orbs, *o)
	}
	for _, h := range w.Hazards {
		s.Hazards = append(s.Hazards, *h)
	}
	for _, p := range w.PowerUps {
		s.PowerUps = append(s.PowerUps, *p)
	}
	return s
}

func busyWorld() *World {
	w := newQuietWorld()
	w.Orbs = []*object.Orb{{X: 500, Y: 200, Radius: object.OrbRadius, Age: 1.3}}
	w.Hazards = []*object.Hazard{{X: 700, Y: 300, VX: -2, Radius: 12, Ink: draw.InkHazard}}
	w.PowerUps = []*object.PowerUp{{X: 300, Y: 400, Radius: object.PowerUpRadius, Kind: object.PowerSlow, TTL: 100}}
	w.SlowTimer = 120
	w.Score = 40
	return w
}

func countInk(c *draw.Canvas, ink draw.Ink) int {
	n := 0
	for y := 0; y < c.TerminalHeight()*2; y++ {
		for x := 0; x < c.TerminalWidth(); x++ {
			if c.Pixel(x, y) == ink {
				n++
			}
		}
	}
	return n
}

func TestRenderDoesNotMutateWorld(t *testing.T) {
	w := busyWorld()
	before := snapshot(w)

	c := draw.NewScaledCanvas(96, 27, testArena.Width, testArena.Height)
	if err := Render(c, w); err != nil {
		t.Fatalf("Render: %v", err)
	}
	r := draw.NewRaster(320, 180, testArena.Width, testArena.Height)
	if err := Render(r, w); err != nil {
		t.Fatalf("Render raster: %v", err)
	}

	if after := snapshot(w); !reflect.DeepEqual(before, after) {
		t.Errorf("Render mutated the world:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestRenderDrawsEntities(t *testing.T) {
	w := busyWorld()
	c := draw.NewScaledCanvas(96, 27, testArena.Width, testArena.Height)
	if err := Render(c, w); err != nil {
		t.Fatal(err)
	}

	for _, ink := range []draw.Ink{draw.InkPlayer, draw.InkHazard, draw.InkPowerSlow, draw.InkBorder, draw.InkSlowTint} {
		if countInk(c, ink) == 0 {
			t.Errorf("no pixels drawn with ink %d", ink)
		}
	}

	c.Clear()
	w.SlowTimer = 0
	if err := Render(c, w); err != nil {
		t.Fatal(err)
	}
	if countInk(c, draw.InkSlowTint) != 0 {
		t.Error("slow overlay drawn without slow motion")
	}
}

func newTestScreen(buf *bytes.Buffer) *screen {
	sc := newScreen(buf, NewTermRenderer(buf))
	sc.resize(100, 30)
	return sc
}

func TestDrawFrameTitle(t *testing.T) {
	var buf bytes.Buffer
	sc := newTestScreen(&buf)
	s, _ := newTestSession(nil)

	if err := sc.drawFrame(s); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "O R B") {
		t.Error("title screen not drawn")
	}
	if !strings.Contains(buf.String(), "Press SPACE to Start") {
		t.Error("start prompt not drawn")
	}
}

func TestDrawFrameRunningShowsHUD(t *testing.T) {
	var buf bytes.Buffer
	sc := newTestScreen(&buf)
	s := NewSession(SessionOptions{Arena: testArena, HUD: sc.hud})
	s.Start(time.Unix(0, 0))
	s.World.Score = 0

	if err := sc.drawFrame(s); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Score 0") || !strings.Contains(out, "Lives 3") {
		t.Errorf("HUD missing from output")
	}
	if strings.Contains(out, "PAUSED") {
		t.Error("pause panel drawn while running")
	}
}

func TestDrawFrameGameOver(t *testing.T) {
	var buf bytes.Buffer
	sc := newTestScreen(&buf)
	s, c := newTestSession(nil)
	startQuiet(s, c)
	s.World.Lives = 1
	s.World.Score = 70
	hit(s, c)

	if err := sc.drawFrame(s); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Final score: 70") {
		t.Error("final score not drawn")
	}
}

func TestDrawFrameDiffsUnchangedFrames(t *testing.T) {
	var buf bytes.Buffer
	sc := newTestScreen(&buf)
	s, c := newTestSession(nil)
	startQuiet(s, c)
	s.TogglePause(c.tick())

	if err := sc.drawFrame(s); err != nil {
		t.Fatal(err)
	}
	first := buf.Len()
	buf.Reset()
	if err := sc.drawFrame(s); err != nil {
		t.Fatal(err)
	}
	if buf.Len() >= first {
		t.Errorf("second identical frame wrote %d bytes, first wrote %d", buf.Len(), first)
	}
}
