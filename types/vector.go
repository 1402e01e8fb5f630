package types

import "golang.org/x/image/math/f32"

type Vec2 f32.Vec2
type Vec3 f32.Vec3
type Vec4 f32.Vec4

// Define a 2 component vector.
func XY(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Define a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Define a 4 component vector.
func XYZW(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// Expand a 3 component vector to a Vec4.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// Flatten a vertex list into a tightly packed coordinate slice.
func Flatten(list []Vec3) []float32 {
	out := make([]float32, 0, len(list)*3)
	for _, v := range list {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}
