package lollipop

import "github.com/go-gl/mathgl/mgl32"

// HitTest returns the first visible face of t, in table order, whose
// projected quad contains p. p is in the same centered frame as t.
func (t *Transformed) HitTest(p mgl32.Vec2) (FaceID, bool) {
	for _, f := range cubeFaces {
		if !t.Visible(f) {
			continue
		}
		if pointInQuad(p, t.Quad(f)) {
			return f.ID, true
		}
	}
	return 0, false
}

// pointInQuad splits q into (q0,q1,q2) and (q0,q2,q3).
func pointInQuad(p mgl32.Vec2, q [4]mgl32.Vec2) bool {
	return pointInTriangle(p, q[0], q[1], q[2]) || pointInTriangle(p, q[0], q[2], q[3])
}

// pointInTriangle is boundary-inclusive and accepts either winding.
func pointInTriangle(p, a, b, c mgl32.Vec2) bool {
	d1 := edgeSign(p, a, b)
	d2 := edgeSign(p, b, c)
	d3 := edgeSign(p, c, a)
	allNeg := d1 <= 0 && d2 <= 0 && d3 <= 0
	allPos := d1 >= 0 && d2 >= 0 && d3 >= 0
	return allNeg || allPos
}

func edgeSign(p1, p2, p3 mgl32.Vec2) float32 {
	return (p1.X()-p3.X())*(p2.Y()-p3.Y()) - (p2.X()-p3.X())*(p1.Y()-p3.Y())
}
