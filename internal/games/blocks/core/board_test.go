package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(kinds ...Kind) *Board {
	return NewBoard(DefaultConfig(), newFixedGenerator(kinds...), NewScore(nil))
}

func TestCreateNewBrickOnEmptyBoard(t *testing.T) {
	b := newTestBoard(KindT)

	assert.False(t, b.CreateNewBrick())
	assert.Equal(t, KindT, b.Active().Kind())
	assert.Equal(t, Point{X: 3, Y: -3}, b.Offset())
	assert.False(t, b.HoldUsed())
}

func TestCreateNewBrickSignalsGameOver(t *testing.T) {
	b := newTestBoard(KindT, KindO)
	b.background[0][4] = 1

	assert.True(t, b.CreateNewBrick())
	// The spawn is not rolled back.
	assert.Equal(t, KindT, b.Active().Kind())
	assert.Equal(t, Point{X: 3, Y: -3}, b.Offset())
}

func TestMoveLeftRightRoundTrip(t *testing.T) {
	b := newTestBoard(KindT)
	b.CreateNewBrick()
	start := b.Offset()

	require.True(t, b.MoveLeft())
	require.True(t, b.MoveRight())
	assert.Equal(t, start, b.Offset())
}

func TestMoveLeftStopsAtWall(t *testing.T) {
	b := newTestBoard(KindT)
	b.CreateNewBrick()

	for i := 0; i < 3; i++ {
		require.True(t, b.MoveLeft(), "move %d", i)
	}
	assert.False(t, b.MoveLeft())
	assert.Equal(t, 0, b.Offset().X)
}

func TestMoveDownStopsAtFloor(t *testing.T) {
	b := newTestBoard(KindO)
	b.CreateNewBrick()

	moves := 0
	for b.MoveDown() {
		moves++
	}
	assert.Equal(t, 20, moves)
	assert.Equal(t, 17, b.Offset().Y)
	assert.False(t, b.MoveDown(), "blocked move leaves state unchanged")
	assert.Equal(t, 17, b.Offset().Y)
}

func TestRotateFourTimesRestoresIndex(t *testing.T) {
	b := newTestBoard(KindT)
	b.CreateNewBrick()
	for i := 0; i < 5; i++ {
		b.MoveDown()
	}
	start := b.Offset()

	for i := 0; i < 4; i++ {
		require.True(t, b.RotateLeft(), "rotation %d", i)
	}
	assert.Equal(t, 0, b.Rotation())
	assert.Equal(t, start, b.Offset())
}

func placeActive(b *Board, k Kind, rotation int, at Point) {
	b.rotator.SetBrick(BrickOf(k))
	b.rotator.SetCurrentShape(rotation)
	b.offset = at
}

func TestRotateKickPrefersLeft(t *testing.T) {
	b := newTestBoard(KindI)
	placeActive(b, KindI, 1, Point{X: 3, Y: 10})
	b.background[11][6] = 1 // blocks the horizontal state in place and at +1

	require.True(t, b.RotateLeft())
	assert.Equal(t, 0, b.Rotation())
	assert.Equal(t, Point{X: 2, Y: 10}, b.Offset())
}

func TestRotateKickOffLeftWall(t *testing.T) {
	b := newTestBoard(KindI)
	placeActive(b, KindI, 1, Point{X: -1, Y: 10})

	// In place and -1 both leave the board; +1 is the first fit.
	require.True(t, b.RotateLeft())
	assert.Equal(t, 0, b.Rotation())
	assert.Equal(t, Point{X: 0, Y: 10}, b.Offset())
}

func TestRotateKickTriesMinusTwoBeforePlusTwo(t *testing.T) {
	b := newTestBoard(KindI)
	placeActive(b, KindI, 1, Point{X: 4, Y: 10})
	// Horizontal state spans columns x..x+3 on row 11.
	b.background[11][6] = 1 // blocks x=3, x=4 and x=5

	require.True(t, b.RotateLeft())
	assert.Equal(t, Point{X: 2, Y: 10}, b.Offset())
}

func TestRotateFailsWhenEveryKickIsBlocked(t *testing.T) {
	b := newTestBoard(KindI)
	placeActive(b, KindI, 1, Point{X: 3, Y: 10})
	fillRow(b.background, 11, 4)

	assert.False(t, b.RotateLeft())
	assert.Equal(t, 1, b.Rotation())
	assert.Equal(t, Point{X: 3, Y: 10}, b.Offset())
}

func TestHoldOnEmptySlot(t *testing.T) {
	b := newTestBoard(KindT, KindI, KindO)
	b.CreateNewBrick()
	b.MoveDown()
	b.MoveLeft()

	require.True(t, b.HoldBrick())
	assert.Equal(t, KindT, b.Held().Kind())
	assert.Equal(t, KindI, b.Active().Kind())
	assert.Equal(t, Point{X: 3, Y: -3}, b.Offset())
	assert.True(t, b.HoldUsed())

	assert.False(t, b.HoldBrick(), "hold is allowed once per spawn")

	b.ClearHold()
	assert.Nil(t, b.Held())
	assert.True(t, b.HoldBrick())
	assert.Equal(t, KindI, b.Held().Kind())
	assert.Equal(t, KindO, b.Active().Kind())
}

func TestHoldSwapsAfterNewSpawn(t *testing.T) {
	b := newTestBoard(KindT, KindI, KindO)
	b.CreateNewBrick()
	require.True(t, b.HoldBrick())

	b.CreateNewBrick()
	require.Equal(t, KindO, b.Active().Kind())
	require.False(t, b.HoldUsed())

	require.True(t, b.HoldBrick())
	assert.Equal(t, KindT, b.Active().Kind())
	assert.Equal(t, KindO, b.Held().Kind())
	assert.Equal(t, 0, b.Rotation())
}

func TestHoldRollsBackOnSpawnCollision(t *testing.T) {
	b := newTestBoard(KindT)
	b.CreateNewBrick()
	b.held = BrickOf(KindI)
	for i := 0; i < 8; i++ {
		require.True(t, b.MoveDown())
	}
	require.True(t, b.RotateLeft())
	// The held I needs column 6 of the top row at spawn; T does not.
	b.background[0][6] = 1

	before := b.Offset()
	assert.False(t, b.HoldBrick())
	assert.Equal(t, KindT, b.Active().Kind())
	assert.Equal(t, 1, b.Rotation())
	assert.Equal(t, before, b.Offset())
	assert.Equal(t, KindI, b.Held().Kind())
	assert.False(t, b.HoldUsed())
}

func TestHoldRollsBackWhenDrawnBrickCollides(t *testing.T) {
	b := newTestBoard(KindO, KindI)
	b.CreateNewBrick()
	for i := 0; i < 5; i++ {
		b.MoveDown()
	}
	b.background[0][6] = 1

	assert.False(t, b.HoldBrick())
	assert.Nil(t, b.Held())
	assert.Equal(t, KindO, b.Active().Kind())
	assert.Equal(t, Point{X: 3, Y: 2}, b.Offset())
}

func TestMergeAndClearRows(t *testing.T) {
	b := newTestBoard(KindO)
	b.CreateNewBrick()
	fillRow(b.background, 18, 4, 5)
	fillRow(b.background, 19, 4, 5)
	for b.MoveDown() {
	}

	b.MergeBrickToBackground()
	cr := b.ClearRows()

	assert.Equal(t, 2, cr.LinesRemoved)
	assert.Equal(t, 200, cr.ScoreBonus)
	assert.True(t, b.Matrix().Equal(NewMatrix(20, 10)))

	cr.Matrix[19][0] = 9
	assert.Equal(t, 0, b.Matrix()[19][0], "returned matrix is independent of the board")
}

func TestNewGameResetsEverything(t *testing.T) {
	b := newTestBoard(KindT, KindI)
	b.CreateNewBrick()
	b.HoldBrick()
	b.background[19][0] = 3
	b.Score().Add(100)
	b.Score().AddLines(12)

	assert.False(t, b.NewGame())

	assert.True(t, b.Matrix().Equal(NewMatrix(20, 10)))
	assert.Nil(t, b.Held())
	assert.False(t, b.HoldUsed())
	assert.Equal(t, 0, b.Score().Value())
	assert.Equal(t, 1, b.Score().Level())
	assert.Equal(t, KindT, b.Active().Kind(), "generator restarts")
}

func TestViewData(t *testing.T) {
	b := newTestBoard(KindT, KindI, KindO, KindS)
	b.CreateNewBrick()

	v := b.ViewData()
	assert.Equal(t, BrickOf(KindT).Shape(0), v.Brick)
	assert.Equal(t, 3, v.X)
	assert.Equal(t, -3, v.Y)
	require.Len(t, v.Next, 3)
	assert.Equal(t, BrickOf(KindI).Shape(0), v.Next[0])
	assert.Equal(t, BrickOf(KindO).Shape(0), v.Next[1])
	assert.Equal(t, BrickOf(KindS).Shape(0), v.Next[2])
	assert.Equal(t, NewMatrix(4, 4), v.Held)

	v.Brick[1][0] = 0
	assert.Equal(t, BrickOf(KindT).Shape(0), b.ViewData().Brick)
}

func TestGhostY(t *testing.T) {
	b := newTestBoard(KindO)
	b.CreateNewBrick()
	assert.Equal(t, 17, b.GhostY())

	b.background[15][4] = 2
	assert.Equal(t, 12, b.GhostY())
	assert.Equal(t, -3, b.Offset().Y, "ghost does not move the brick")
}
