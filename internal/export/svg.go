package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/emberfx/internal/emitter"
	"github.com/san-kum/emberfx/internal/viz"
)

// brailleDotMask maps a dot cell (row, col) inside one braille glyph to
// its bit in the pattern relative to U+2800.
var brailleDotMask = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func svgOpen(sb *strings.Builder, w, h float64, fill string) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="%s">
`, w, h, w, h, fill)
}

func svgClose(sb *strings.Builder) {
	sb.WriteString("</g>\n</svg>")
}

// CanvasToSVG rasterizes a braille canvas into SVG, one circle per lit
// dot, preserving the projected view exactly as the TUI shows it.
// scale is the pixel size of a single dot cell.
func CanvasToSVG(canvas *viz.Canvas, scale float64, fillColor string) string {
	if canvas == nil || scale <= 0 {
		return ""
	}

	w := float64(canvas.Width) * scale * 2
	h := float64(canvas.Height) * scale * 4
	dotRadius := scale * 0.4

	var sb strings.Builder
	svgOpen(&sb, w, h, fillColor)

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			pattern := int(canvas.Grid[row][col]) - 0x2800
			if pattern <= 0 {
				continue
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&brailleDotMask[dy][dx] == 0 {
						continue
					}
					cx := (float64(col*2+dx) + 0.5) * scale
					cy := (float64(row*4+dy) + 0.5) * scale
					fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius)
				}
			}
		}
	}

	svgClose(&sb)
	return sb.String()
}

// ScatterSVG renders particle views as a 2D scatter plot of the X/Y
// plane. Circle radius follows particle size and opacity follows the
// remaining life fraction, so young particles read brighter.
func ScatterSVG(views []emitter.View, width, height int, fillColor string) string {
	if len(views) == 0 {
		return ""
	}

	minX, maxX := views[0].Position.X, views[0].Position.X
	minY, maxY := views[0].Position.Y, views[0].Position.Y
	maxSize := views[0].Size
	for _, v := range views {
		if v.Position.X < minX {
			minX = v.Position.X
		}
		if v.Position.X > maxX {
			maxX = v.Position.X
		}
		if v.Position.Y < minY {
			minY = v.Position.Y
		}
		if v.Position.Y > maxY {
			maxY = v.Position.Y
		}
		if v.Size > maxSize {
			maxSize = v.Size
		}
	}

	// Pad the bounds so edge particles do not clip.
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	if maxSize == 0 {
		maxSize = 1
	}
	maxRadius := float64(minInt(width, height)) * 0.02

	var sb strings.Builder
	svgOpen(&sb, float64(width), float64(height), fillColor)

	for _, v := range views {
		x := (v.Position.X - minX) / rangeX * float64(width)
		y := float64(height) - (v.Position.Y-minY)/rangeY*float64(height)
		r := v.Size / maxSize * maxRadius
		if r < 0.5 {
			r = 0.5
		}
		opacity := v.LifeFraction
		if opacity < 0.05 {
			opacity = 0.05
		}
		fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill-opacity=\"%.2f\"/>\n", x, y, r, opacity)
	}

	svgClose(&sb)
	return sb.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
