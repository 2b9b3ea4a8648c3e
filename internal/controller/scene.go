package controller

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/bloch/internal/model"
)

const (
	cameraDistance = 4.0
	orbitStep      = 0.1
	dragSpeed      = 0.05
	maxPitch       = math.Pi/2 - 0.05
	wireSegments   = 96
)

var (
	colorSphereFront = lipgloss.Color("63")
	colorSphereBack  = lipgloss.Color("237")
	colorAxisX       = lipgloss.Color("9")
	colorAxisY       = lipgloss.Color("10")
	colorAxisZ       = lipgloss.Color("12")
	colorKet0        = lipgloss.Color("51")
	colorKet1        = lipgloss.Color("201")
	colorArrow       = lipgloss.Color("11")
)

type vec3 struct {
	x, y, z float64
}

// camera orbits the sphere: yaw turns around the z axis, pitch raises the eye.
type camera struct {
	yaw   float64
	pitch float64
}

func (c camera) orbit(dYaw, dPitch float64) camera {
	c.yaw += dYaw
	c.pitch = math.Max(-maxPitch, math.Min(maxPitch, c.pitch+dPitch))

	return c
}

// view maps Bloch coordinates (z up) to screen right, screen up and depth
// toward the viewer.
func (c camera) view(v vec3) (right, up, depth float64) {
	sy, cy := math.Sincos(c.yaw)
	sp, cp := math.Sincos(c.pitch)

	right = v.x*cy - v.y*sy
	toward := v.x*sy + v.y*cy

	up = v.z*cp - toward*sp
	depth = toward*cp + v.z*sp

	return right, up, depth
}

// projector turns scene points into canvas dots with a weak perspective.
type projector struct {
	cam    camera
	cx, cy float64
	scale  float64
}

func newProjector(cv *canvas, cam camera) projector {
	w, h := cv.pixels()

	return projector{
		cam:   cam,
		cx:    float64(w) / 2,
		cy:    float64(h) / 2,
		scale: math.Min(float64(w), float64(h)) / 2 / 1.7,
	}
}

func (p projector) project(v vec3) (int, int, float64) {
	right, up, depth := p.cam.view(v)
	f := cameraDistance / (cameraDistance - depth)

	x := p.cx + right*p.scale*f
	y := p.cy - up*p.scale*f

	return int(math.Round(x)), int(math.Round(y)), depth
}

func (p projector) segment(cv *canvas, a, b vec3, color lipgloss.Color) {
	x0, y0, _ := p.project(a)
	x1, y1, _ := p.project(b)
	cv.line(x0, y0, x1, y1, color)
}

func (p projector) label(cv *canvas, at vec3, text string, color lipgloss.Color) {
	x, y, _ := p.project(at)
	cv.label(x, y, text, color)
}

// circle draws a unit circle given a point generator, dimming the far half.
func (p projector) circle(cv *canvas, point func(t float64) vec3) {
	prev := point(0)

	for i := 1; i <= wireSegments; i++ {
		next := point(2 * math.Pi * float64(i) / wireSegments)

		_, _, depth := p.cam.view(vec3{(prev.x + next.x) / 2, (prev.y + next.y) / 2, (prev.z + next.z) / 2})

		color := colorSphereFront
		if depth < 0 {
			color = colorSphereBack
		}

		p.segment(cv, prev, next, color)
		prev = next
	}
}

// drawScene renders the Bloch sphere, its axes and the state arrow.
func drawScene(cv *canvas, cam camera, bloch m.BlochVector) {
	p := newProjector(cv, cam)

	p.circle(cv, func(t float64) vec3 { return vec3{math.Cos(t), math.Sin(t), 0} })
	p.circle(cv, func(t float64) vec3 { return vec3{math.Cos(t), 0, math.Sin(t)} })
	p.circle(cv, func(t float64) vec3 { return vec3{0, math.Cos(t), math.Sin(t)} })

	p.segment(cv, vec3{-1.2, 0, 0}, vec3{1.2, 0, 0}, colorAxisX)
	p.segment(cv, vec3{0, -1.2, 0}, vec3{0, 1.2, 0}, colorAxisY)
	p.segment(cv, vec3{0, 0, -1.2}, vec3{0, 0, 1.2}, colorAxisZ)

	tip := vec3{bloch.X, bloch.Y, bloch.Z}
	p.segment(cv, vec3{}, tip, colorArrow)

	p.label(cv, vec3{1.4, 0, 0}, "X", colorAxisX)
	p.label(cv, vec3{0, 1.4, 0}, "Y", colorAxisY)
	p.label(cv, vec3{0, 0, 1.4}, "|0⟩", colorKet0)
	p.label(cv, vec3{0, 0, -1.4}, "|1⟩", colorKet1)
	p.label(cv, tip, "●", colorArrow)
}
