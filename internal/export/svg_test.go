package export

import (
	"strings"
	"testing"

	"github.com/san-kum/emberfx/internal/emitter"
	"github.com/san-kum/emberfx/internal/vecmath"
	"github.com/san-kum/emberfx/internal/viz"
)

func TestCanvasToSVGDecodesLitDots(t *testing.T) {
	c := viz.NewCanvas(4, 2)
	c.Set(0, 0)
	c.Set(1, 0) // same glyph, second column
	c.Set(7, 7) // bottom-right glyph, last dot

	svg := CanvasToSVG(c, 4, "#ff6b35")

	if got := strings.Count(svg, "<circle"); got != 3 {
		t.Errorf("expected 3 circles for 3 lit dots, got %d", got)
	}
	if !strings.Contains(svg, `fill="#ff6b35"`) {
		t.Error("fill color not applied")
	}
	// 4 glyph columns x 2 dots x scale 4 = 32 px wide.
	if !strings.Contains(svg, `width="32" height="32"`) {
		t.Errorf("unexpected dimensions:\n%s", svg)
	}
	// First dot sits at the center of cell (0,0).
	if !strings.Contains(svg, `cx="2.0" cy="2.0"`) {
		t.Errorf("dot (0,0) misplaced:\n%s", svg)
	}
	// Last dot at cell (7,7).
	if !strings.Contains(svg, `cx="30.0" cy="30.0"`) {
		t.Errorf("dot (7,7) misplaced:\n%s", svg)
	}
}

func TestCanvasToSVGEmptyInputs(t *testing.T) {
	if CanvasToSVG(nil, 4, "#fff") != "" {
		t.Error("nil canvas should render nothing")
	}
	if CanvasToSVG(viz.NewCanvas(2, 2), 0, "#fff") != "" {
		t.Error("non-positive scale should render nothing")
	}
	empty := CanvasToSVG(viz.NewCanvas(2, 2), 4, "#fff")
	if strings.Contains(empty, "<circle") {
		t.Error("blank canvas should contain no circles")
	}
}

func TestScatterSVG(t *testing.T) {
	views := []emitter.View{
		{Position: vecmath.Vec3{X: -1, Y: 0}, Size: 1, LifeFraction: 1},
		{Position: vecmath.Vec3{X: 1, Y: 2}, Size: 2, LifeFraction: 0.5},
		{Position: vecmath.Vec3{X: 0, Y: 1}, Size: 1, LifeFraction: 0},
	}

	svg := ScatterSVG(views, 200, 100, "#00ffcc")

	if got := strings.Count(svg, "<circle"); got != 3 {
		t.Errorf("expected 3 circles, got %d", got)
	}
	if !strings.Contains(svg, `fill="#00ffcc"`) {
		t.Error("fill color not applied")
	}
	// Expired particles keep a floor opacity instead of vanishing.
	if !strings.Contains(svg, `fill-opacity="0.05"`) {
		t.Error("opacity floor not applied")
	}
	if ScatterSVG(nil, 200, 100, "#fff") != "" {
		t.Error("no views should render nothing")
	}
}
