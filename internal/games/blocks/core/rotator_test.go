package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotatorNextShapeDoesNotMutate(t *testing.T) {
	var r Rotator
	r.SetBrick(BrickOf(KindJ))

	next := r.NextShape()
	assert.Equal(t, 1, next.Position)
	assert.Equal(t, BrickOf(KindJ).Shape(1), next.Shape)
	assert.Equal(t, 0, r.Index())
}

func TestRotatorWraps(t *testing.T) {
	var r Rotator
	r.SetBrick(BrickOf(KindI))

	r.SetCurrentShape(r.NextShape().Position)
	assert.Equal(t, 1, r.Index())
	r.SetCurrentShape(r.NextShape().Position)
	assert.Equal(t, 0, r.Index())

	r.SetBrick(BrickOf(KindO))
	assert.Equal(t, 0, r.NextShape().Position)
}

func TestRotatorSetBrickResetsIndex(t *testing.T) {
	var r Rotator
	r.SetBrick(BrickOf(KindT))
	r.SetCurrentShape(3)

	r.SetBrick(BrickOf(KindL))
	assert.Equal(t, 0, r.Index())
	assert.Equal(t, BrickOf(KindL).Shape(0), r.CurrentShape())
}

func TestRotatorWithoutBrick(t *testing.T) {
	var r Rotator
	assert.Nil(t, r.CurrentShape())
	assert.Nil(t, r.NextShape().Shape)
}
