// Package lollipop implements the axes lollipop: a small cube that shows the
// current view orientation, with one colored and labeled face per signed axis.
//
// The package owns the geometry, hit-testing and drawing of the cube. Drawing
// surfaces, text layout and event delivery are supplied by the host through
// the DrawTarget and TextLayout interfaces and plain method calls on Widget.
package lollipop

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Axis identifies one of the three coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis letter.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// FaceID is the stable identifier of a cube face.
// Consumers of selection events key off these values, so they never change.
type FaceID int

const (
	FacePosX FaceID = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
)

// NumFaces is the number of cube faces.
const NumFaces = 6

var faceNames = [NumFaces]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}

// String returns the canonical signed label ("+X", "-X", ...).
func (id FaceID) String() string {
	if id < 0 || int(id) >= NumFaces {
		return fmt.Sprintf("FaceID(%d)", int(id))
	}
	return faceNames[id]
}

// Valid reports whether id names one of the six faces.
func (id FaceID) Valid() bool {
	return id >= 0 && int(id) < NumFaces
}

// ParseFaceID parses a canonical label. A missing sign is read as positive.
func ParseFaceID(s string) (FaceID, error) {
	switch s {
	case "X":
		return FacePosX, nil
	case "Y":
		return FacePosY, nil
	case "Z":
		return FacePosZ, nil
	}
	for i, name := range faceNames {
		if name == s {
			return FaceID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown face %q", s)
}

// Face is one planar quad of the cube.
type Face struct {
	// Vertices index into the cube vertex table. The winding order decides
	// visibility and must not be changed.
	Vertices [4]int
	Axis     Axis
	Positive bool
	Label    string
	ID       FaceID
}

// HalfExtent is the half edge length of the canonical cube.
const HalfExtent = 0.9

var cubeVertices = [8]mgl32.Vec3{
	{-HalfExtent, -HalfExtent, -HalfExtent},
	{HalfExtent, -HalfExtent, -HalfExtent},
	{HalfExtent, HalfExtent, -HalfExtent},
	{-HalfExtent, HalfExtent, -HalfExtent},
	{-HalfExtent, -HalfExtent, HalfExtent},
	{HalfExtent, -HalfExtent, HalfExtent},
	{HalfExtent, HalfExtent, HalfExtent},
	{-HalfExtent, HalfExtent, HalfExtent},
}

// Table order is axis-then-sign and doubles as the hit-test priority.
var cubeFaces = [NumFaces]Face{
	{Vertices: [4]int{1, 5, 6, 2}, Axis: AxisX, Positive: true, Label: "X", ID: FacePosX},
	{Vertices: [4]int{4, 0, 3, 7}, Axis: AxisX, Positive: false, Label: "-X", ID: FaceNegX},
	{Vertices: [4]int{3, 2, 6, 7}, Axis: AxisY, Positive: true, Label: "Y", ID: FacePosY},
	{Vertices: [4]int{4, 5, 1, 0}, Axis: AxisY, Positive: false, Label: "-Y", ID: FaceNegY},
	{Vertices: [4]int{5, 4, 7, 6}, Axis: AxisZ, Positive: true, Label: "Z", ID: FacePosZ},
	{Vertices: [4]int{0, 1, 2, 3}, Axis: AxisZ, Positive: false, Label: "-Z", ID: FaceNegZ},
}

// Faces returns a copy of the face table in table order.
func Faces() [NumFaces]Face {
	return cubeFaces
}

// CubeVertices returns a copy of the canonical, untransformed cube corners.
func CubeVertices() [8]mgl32.Vec3 {
	return cubeVertices
}

// FaceFor returns the face with the given axis and sign.
func FaceFor(axis Axis, positive bool) Face {
	id := FaceID(int(axis) * 2)
	if !positive {
		id++
	}
	return cubeFaces[id]
}
