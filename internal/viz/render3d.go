package viz

import (
	"math"
	"sort"

	"github.com/san-kum/emberfx/internal/emitter"
	"github.com/san-kum/emberfx/internal/vecmath"
)

// Camera manages 3D projection to a 2D plane.
type Camera struct {
	Position         vecmath.Vec3
	Near             float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Position: vecmath.Vec3{Z: 30}, Near: 0.1, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// RotatePoint rotates a point around the camera's axes.
func (c *Camera) RotatePoint(p vecmath.Vec3) vecmath.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project converts 3D world coordinates to 2D screen coordinates.
// Returns x, y, depth, and visibility. The screen size is in canvas
// sub-pixels.
func (c *Camera) Project(p vecmath.Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	dist := c.Position.Z
	if rot.Z >= dist-c.Near {
		return 0, 0, 0, false
	}
	scale := dist / (dist - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 24.0
	sx := int(rot.X*scale*pScale) + sw/2
	sy := int(-rot.Y*scale*pScale) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type projectedPoint struct {
	x, y   int
	depth  float64
	radius int
}

// RenderParticles draws particle views to the canvas back-to-front.
// Size maps to disc radius and perspective shrinks distant particles.
func RenderParticles(c *Canvas, views []emitter.View, cam *Camera) {
	if c == nil || cam == nil {
		return
	}
	cw, ch := c.Width*2, c.Height*4
	proj := make([]projectedPoint, 0, len(views))
	for _, v := range views {
		x, y, depth, visible := cam.Project(v.Position, cw, ch)
		if !visible {
			continue
		}
		r := int(v.Size * cam.Zoom)
		if r > 4 {
			r = 4
		}
		proj = append(proj, projectedPoint{x, y, depth, r})
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, p := range proj {
		c.SetDisc(p.x, p.y, p.radius)
	}
}

// RenderAxes draws the world axes as reference lines of the given length.
func RenderAxes(c *Canvas, cam *Camera, l float64) {
	if c == nil || cam == nil {
		return
	}
	cw, ch := c.Width*2, c.Height*4
	o := vecmath.Vec3{}
	ends := []vecmath.Vec3{{X: l}, {Y: l}, {Z: l}}
	ox, oy, _, ov := cam.Project(o, cw, ch)
	for _, end := range ends {
		ex, ey, _, ev := cam.Project(end, cw, ch)
		if ov || ev {
			c.DrawLine(ox, oy, ex, ey)
		}
	}
}

// RenderBounds draws a wire box centered on the origin, handy for
// judging the extent of an emission volume.
func RenderBounds(c *Canvas, cam *Camera, half vecmath.Vec3) {
	if c == nil || cam == nil {
		return
	}
	cw, ch := c.Width*2, c.Height*4
	v := [8]vecmath.Vec3{
		{X: -half.X, Y: -half.Y, Z: -half.Z}, {X: half.X, Y: -half.Y, Z: -half.Z},
		{X: half.X, Y: half.Y, Z: -half.Z}, {X: -half.X, Y: half.Y, Z: -half.Z},
		{X: -half.X, Y: -half.Y, Z: half.Z}, {X: half.X, Y: -half.Y, Z: half.Z},
		{X: half.X, Y: half.Y, Z: half.Z}, {X: -half.X, Y: half.Y, Z: half.Z},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		x1, y1, _, v1 := cam.Project(v[e[0]], cw, ch)
		x2, y2, _, v2 := cam.Project(v[e[1]], cw, ch)
		if v1 || v2 {
			c.DrawLine(x1, y1, x2, y2)
		}
	}
}
