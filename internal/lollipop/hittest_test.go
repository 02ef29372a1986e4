package lollipop

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPointInTriangle(t *testing.T) {
	a := mgl32.Vec2{0, 0}
	b := mgl32.Vec2{10, 0}
	c := mgl32.Vec2{0, 10}

	tests := []struct {
		name string
		p    mgl32.Vec2
		want bool
	}{
		{"inside", mgl32.Vec2{2, 2}, true},
		{"vertex", mgl32.Vec2{10, 0}, true},
		{"edge midpoint", mgl32.Vec2{5, 0}, true},
		{"hypotenuse", mgl32.Vec2{5, 5}, true},
		{"outside", mgl32.Vec2{6, 6}, false},
		{"behind vertex", mgl32.Vec2{-1, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pointInTriangle(tt.p, a, b, c), "counter-clockwise")
			assert.Equal(t, tt.want, pointInTriangle(tt.p, a, c, b), "clockwise")
		})
	}
}

func TestPointInQuad(t *testing.T) {
	q := [4]mgl32.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	assert.True(t, pointInQuad(mgl32.Vec2{0, 0}, q))
	assert.True(t, pointInQuad(mgl32.Vec2{0.9, -0.9}, q), "first triangle only")
	assert.True(t, pointInQuad(mgl32.Vec2{-0.9, 0.9}, q), "second triangle only")
	assert.True(t, pointInQuad(mgl32.Vec2{1, 0}, q), "on the boundary")
	assert.False(t, pointInQuad(mgl32.Vec2{1.01, 0}, q))
}

func TestHitTestOnlyReturnsVisibleFaces(t *testing.T) {
	const sc = 40
	for _, q := range randomOrientations(100) {
		tr := TransformCube(q, sc)
		for y := float32(-50); y <= 50; y += 2.5 {
			for x := float32(-50); x <= 50; x += 2.5 {
				id, ok := tr.HitTest(mgl32.Vec2{x, y})
				if !ok {
					continue
				}
				assert.True(t, tr.Visible(Faces()[id]), "face %v hit but culled (orientation %v, point %v,%v)", id, q, x, y)
			}
		}
	}
}

func TestHitTestMissesOutsideCube(t *testing.T) {
	const sc = 40
	// The projected cube never reaches past its circumscribed radius.
	radius := float32(HalfExtent*sc) * 1.7321
	for _, q := range randomOrientations(50) {
		tr := TransformCube(q, sc)
		for _, p := range []mgl32.Vec2{{radius + 1, 0}, {0, -radius - 1}, {-radius, radius}} {
			_, ok := tr.HitTest(p)
			assert.False(t, ok, "point %v", p)
		}
	}
}

func TestHitTestCenterFollowsFrontFace(t *testing.T) {
	for i := 0; i < NumFaces; i++ {
		id := FaceID(i)
		t.Run(id.String(), func(t *testing.T) {
			tr := TransformCube(id.ViewOrientation(), 50)
			got, ok := tr.HitTest(mgl32.Vec2{})
			assert.True(t, ok)
			assert.Equal(t, id, got)

			faces := tr.VisibleFaces()
			if assert.NotEmpty(t, faces) {
				assert.Equal(t, id, faces[len(faces)-1].Face.ID)
			}
		})
	}
}
