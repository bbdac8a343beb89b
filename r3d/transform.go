package r3d

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ComposeTransform builds the model matrix T * Rz * Ry * Rx * S and its normal matrix.
// Rotations are in degrees and applied about X, then Y, then Z.
//
// Zero or negative scale is accepted. When the upper-left 3x3 block is
// singular the returned normal matrix is zero.
func ComposeTransform(scale, rotationDegrees, position mgl32.Vec3) (model mgl32.Mat4, normal mgl32.Mat3) {
	rotation := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotationDegrees.Z())).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotationDegrees.Y()))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotationDegrees.X())))

	model = mgl32.Translate3D(position.Elem()).
		Mul4(rotation).
		Mul4(mgl32.Scale3D(scale.Elem()))
	return model, NormalMatrix(model)
}

// NormalMatrix is transpose(inverse(mat3(model))).
func NormalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	// Inv returns the zero matrix for determinant 0
	return model.Mat3().Inv().Transpose()
}

// SetTransform composes the transform and writes it as the model and normal uniforms.
func SetTransform(u Uniforms, scale, rotationDegrees, position mgl32.Vec3) (mgl32.Mat4, mgl32.Mat3) {
	model, normal := ComposeTransform(scale, rotationDegrees, position)
	u.SetMat4(UModel, model)
	u.SetMat3(UNormal, normal)
	return model, normal
}
