package math

/**
 * @brief ComposeTransform builds a model matrix from per-object scale,
 * rotation and translation parameters as T * Rz * Ry * Rx * S: translation
 * outermost, then the z, y and x axis rotations, then scale innermost.
 * Rotation angles are given in degrees, one per axis. The composition order
 * is load-bearing: reversing the rotation order changes the orientation of
 * any object rotated around more than one axis.
 *
 * Pure function of its three inputs; the scene has no retained transform
 * graph, so this is recomputed for every object on every frame.
 */
func ComposeTransform(scale Vec3, rotation_degrees Vec3, translation Vec3) Mat4 {
	s := NewMat4Scale(scale)
	r := NewMat4EulerXYZ(
		DegToRad(rotation_degrees.X),
		DegToRad(rotation_degrees.Y),
		DegToRad(rotation_degrees.Z),
	)
	t := NewMat4Translation(translation)

	// Mul chains innermost-first, so this reads S, then R, then T.
	return s.Mul(r).Mul(t)
}
