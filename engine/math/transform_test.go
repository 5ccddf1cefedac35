package math_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/atelier/engine/math"
)

const tolerance = 1e-5

func TestComposeTransformIdentity(t *testing.T) {
	m := math.ComposeTransform(math.NewVec3One(), math.NewVec3Zero(), math.NewVec3Zero())
	assert.True(t, m.Compare(math.NewMat4Identity(), tolerance))
}

func TestComposeTransformTranslationLandsInLastColumn(t *testing.T) {
	m := math.ComposeTransform(math.NewVec3One(), math.NewVec3Zero(), math.NewVec3(5, 6, 7))

	assert.InDelta(t, 5.0, m.Data[12], tolerance)
	assert.InDelta(t, 6.0, m.Data[13], tolerance)
	assert.InDelta(t, 7.0, m.Data[14], tolerance)
}

func TestComposeTransformScaleThenTranslate(t *testing.T) {
	m := math.ComposeTransform(math.NewVec3(2, 3, 4), math.NewVec3Zero(), math.NewVec3(5, 6, 7))

	// the origin is unaffected by scale, only moved
	origin := math.NewVec3Zero().Transform(m)
	assert.InDelta(t, 5.0, origin.X, tolerance)
	assert.InDelta(t, 6.0, origin.Y, tolerance)
	assert.InDelta(t, 7.0, origin.Z, tolerance)

	// a unit point is scaled first, then moved
	unit := math.NewVec3(1, 1, 1).Transform(m)
	assert.InDelta(t, 7.0, unit.X, tolerance)
	assert.InDelta(t, 9.0, unit.Y, tolerance)
	assert.InDelta(t, 11.0, unit.Z, tolerance)
}

func TestComposeTransformRotatesBeforeTranslating(t *testing.T) {
	// 90 degrees about Y sends +X to -Z; the translation applies afterwards
	m := math.ComposeTransform(math.NewVec3One(), math.NewVec3(0, 90, 0), math.NewVec3(10, 0, 0))

	p := math.NewVec3(1, 0, 0).Transform(m)
	assert.InDelta(t, 10.0, p.X, tolerance)
	assert.InDelta(t, 0.0, p.Y, tolerance)
	assert.InDelta(t, -1.0, p.Z, tolerance)
}

func TestComposeTransformRotationOrder(t *testing.T) {
	// the per-axis rotations apply X first, then Y, then Z; with
	// rx=90, ry=90 the point +Y must go +Y -> +Z -> +X, while the
	// reversed order would leave it at +Z
	m := math.ComposeTransform(math.NewVec3One(), math.NewVec3(90, 90, 0), math.NewVec3Zero())

	p := math.NewVec3(0, 1, 0).Transform(m)
	assert.InDelta(t, 1.0, p.X, tolerance)
	assert.InDelta(t, 0.0, p.Y, tolerance)
	assert.InDelta(t, 0.0, p.Z, tolerance)
}

func TestComposeTransformRotationsDoNotCommute(t *testing.T) {
	aboutX := math.ComposeTransform(math.NewVec3One(), math.NewVec3(90, 0, 0), math.NewVec3Zero())
	aboutY := math.ComposeTransform(math.NewVec3One(), math.NewVec3(0, 90, 0), math.NewVec3Zero())

	xy := aboutX.Mul(aboutY)
	yx := aboutY.Mul(aboutX)
	assert.False(t, xy.Compare(yx, tolerance))
}

func TestComposeTransformMatchesExplicitProduct(t *testing.T) {
	scale := math.NewVec3(2, 2, 2)
	rotation := math.NewVec3(30, 45, 60)
	position := math.NewVec3(1, 2, 3)

	s := math.NewMat4Scale(scale)
	r := math.NewMat4EulerXYZ(
		math.DegToRad(rotation.X), math.DegToRad(rotation.Y), math.DegToRad(rotation.Z))
	tr := math.NewMat4Translation(position)
	expected := s.Mul(r).Mul(tr)

	got := math.ComposeTransform(scale, rotation, position)
	assert.True(t, got.Compare(expected, tolerance))
}

func TestComposeTransformAnglesAreDegrees(t *testing.T) {
	quarter := math.ComposeTransform(math.NewVec3One(), math.NewVec3(0, 0, 90), math.NewVec3Zero())

	p := math.NewVec3(1, 0, 0).Transform(quarter)
	assert.InDelta(t, 0.0, p.X, tolerance)
	assert.InDelta(t, 1.0, p.Y, tolerance)
}
