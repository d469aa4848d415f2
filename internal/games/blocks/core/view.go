package core

// Point is an integer offset into the background matrix.
type Point struct {
	X, Y int
}

// EventSource tags who issued a downward move.
// Only user soft drops earn points; timer-driven gravity does not.
type EventSource int

const (
	SourceTimer EventSource = iota
	SourceUser
)

// String returns a human-readable name for the source.
func (s EventSource) String() string {
	switch s {
	case SourceTimer:
		return "timer"
	case SourceUser:
		return "user"
	default:
		return "unknown"
	}
}

// ClearRow summarizes a row-clear pass.
type ClearRow struct {
	LinesRemoved int
	Matrix       Matrix // compacted background, owned by the receiver
	ScoreBonus   int
}

// NextShapeInfo is the rotation state a brick would move to.
type NextShapeInfo struct {
	Shape    Matrix
	Position int
}

// ViewData is a snapshot of everything a renderer needs about the active
// brick and the side panels. All matrices are independent copies.
type ViewData struct {
	Brick Matrix   // active brick in its current rotation
	X, Y  int      // active brick offset
	Ghost int      // landing row for the active brick at X
	Next  []Matrix // upcoming bricks, spawn rotation
	Held  Matrix   // held brick, or an all-empty 4x4 grid
}

// DownData is returned by downward moves. ClearRow is nil unless the move
// locked the brick.
type DownData struct {
	ClearRow *ClearRow
	View     ViewData
	Locked   bool
	GameOver bool
	NewHigh  bool
}
