package lollipop

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// Transformed holds the cube corners after rotation and scaling, in the
// centered screen frame: x right, y down, z used only for culling and depth.
type Transformed [8]mgl32.Vec3

// viewCorrection turns the widget half way around the up axis so that its
// camera convention matches the main view's.
var viewCorrection = mgl32.QuatRotate(math.Pi, mgl32.Vec3{0, 1, 0})

// ViewRotation returns the rotation applied to the canonical cube for the
// given view orientation: 180 degrees about +Y composed with the inverse of
// orientation. orientation must be a unit quaternion.
func ViewRotation(orientation mgl32.Quat) mgl32.Quat {
	return viewCorrection.Mul(orientation.Inverse())
}

// TransformCube rotates every cube corner by ViewRotation(orientation) and
// multiplies it by scale.
func TransformCube(orientation mgl32.Quat, scale float32) Transformed {
	rot := ViewRotation(orientation)
	var out Transformed
	for i, v := range cubeVertices {
		out[i] = rot.Rotate(v).Mul(scale)
	}
	return out
}

// Scale returns the pixel scale for a viewport, leaving margin pixels free on
// each side for the labels. The smaller dimension is halved with integer
// division. The result never goes below zero.
func Scale(width, height int, margin float32) float32 {
	sc := float32(min(width, height)/2) - margin
	if sc < 0 {
		return 0
	}
	return sc
}

// IsVisible reports whether the face spanned by v0, v1, v2 points towards
// the viewer. The vertices must be taken in face table order.
func IsVisible(v0, v1, v2 mgl32.Vec3) bool {
	n := v1.Sub(v0).Cross(v2.Sub(v0))
	return n.Z() < 0
}

// Visible reports whether face f is front-facing in t.
func (t *Transformed) Visible(f Face) bool {
	return IsVisible(t[f.Vertices[0]], t[f.Vertices[1]], t[f.Vertices[2]])
}

// Depth returns the mean z of the four corners of f. Larger values are
// nearer to the viewer.
func (t *Transformed) Depth(f Face) float32 {
	var z float32
	for _, idx := range f.Vertices {
		z += t[idx].Z()
	}
	return z / 4
}

// Quad returns the projected 2D corners of f in table order.
func (t *Transformed) Quad(f Face) [4]mgl32.Vec2 {
	var q [4]mgl32.Vec2
	for i, idx := range f.Vertices {
		q[i] = t[idx].Vec2()
	}
	return q
}

// Centroid returns the mean of the projected corners of f.
func (t *Transformed) Centroid(f Face) mgl32.Vec2 {
	var c mgl32.Vec2
	for _, p := range t.Quad(f) {
		c = c.Add(p)
	}
	return c.Mul(0.25)
}

// DepthFace pairs a visible face with its depth key.
type DepthFace struct {
	Face  Face
	Depth float32
}

// VisibleFaces returns the front-facing faces of t in paint order: ascending
// depth, so the farthest face comes first. Equal depths keep table order.
func (t *Transformed) VisibleFaces() []DepthFace {
	faces := make([]DepthFace, 0, 3)
	for _, f := range cubeFaces {
		if !t.Visible(f) {
			continue
		}
		faces = append(faces, DepthFace{Face: f, Depth: t.Depth(f)})
	}
	sort.SliceStable(faces, func(i, j int) bool {
		return faces[i].Depth < faces[j].Depth
	})
	return faces
}
