package core

// Rotator tracks the active brick and its rotation index.
type Rotator struct {
	brick *Brick
	index int
}

// SetBrick assigns a new brick and resets rotation to its spawn state.
func (r *Rotator) SetBrick(b *Brick) {
	r.brick = b
	r.index = 0
}

// Brick returns the assigned brick.
func (r *Rotator) Brick() *Brick {
	return r.brick
}

// Index returns the current rotation index.
func (r *Rotator) Index() int {
	return r.index
}

// CurrentShape returns a copy of the current rotation state.
func (r *Rotator) CurrentShape() Matrix {
	if r.brick == nil {
		return nil
	}
	return r.brick.Shape(r.index)
}

// NextShape computes the following rotation state without committing it.
func (r *Rotator) NextShape() NextShapeInfo {
	if r.brick == nil {
		return NextShapeInfo{}
	}
	next := (r.index + 1) % r.brick.StateCount()
	return NextShapeInfo{Shape: r.brick.Shape(next), Position: next}
}

// SetCurrentShape commits a rotation index directly.
func (r *Rotator) SetCurrentShape(i int) {
	r.index = i
}
