package lollipop

import "github.com/go-gl/mathgl/mgl32"

var (
	axisUnitX = mgl32.Vec3{1, 0, 0}
	axisUnitY = mgl32.Vec3{0, 1, 0}
	axisUnitZ = mgl32.Vec3{0, 0, 1}
)

// FromEuler builds an orientation from yaw (about Y), pitch (about X) and
// roll (about Z), in degrees, applied in that order.
func FromEuler(yaw, pitch, roll float32) mgl32.Quat {
	q := mgl32.QuatRotate(mgl32.DegToRad(yaw), axisUnitY).
		Mul(mgl32.QuatRotate(mgl32.DegToRad(pitch), axisUnitX)).
		Mul(mgl32.QuatRotate(mgl32.DegToRad(roll), axisUnitZ))
	return q.Normalize()
}

// Rotate returns q turned by deg degrees about axis, in view space.
func Rotate(q mgl32.Quat, axis Axis, deg float32) mgl32.Quat {
	var a mgl32.Vec3
	switch axis {
	case AxisX:
		a = axisUnitX
	case AxisY:
		a = axisUnitY
	default:
		a = axisUnitZ
	}
	return mgl32.QuatRotate(mgl32.DegToRad(deg), a).Mul(q).Normalize()
}

// ViewAngles returns the yaw and pitch, in degrees, that put face id square
// in front of the viewer.
func (id FaceID) ViewAngles() (yaw, pitch float32) {
	switch id {
	case FacePosX:
		return -90, 0
	case FaceNegX:
		return 90, 0
	case FacePosY:
		return 0, 90
	case FaceNegY:
		return 0, -90
	case FacePosZ:
		return 180, 0
	}
	return 0, 0
}

// ViewOrientation returns the orientation for ViewAngles. The identity
// orientation shows -Z.
func (id FaceID) ViewOrientation() mgl32.Quat {
	yaw, pitch := id.ViewAngles()
	return FromEuler(yaw, pitch, 0)
}
