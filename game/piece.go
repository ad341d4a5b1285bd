package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Piece is a falling or held tetromino. Pieces are values: every move or
// rotation produces a new Piece.
type Piece struct {
	Shape    Shape
	Origin   Point
	Rotation int
}

func (piece Piece) String() string {
	return fmt.Sprintf("%v@%v/r%d", piece.Shape, piece.Origin, piece.Rotation)
}

func (piece Piece) Cells() []Point {
	return PieceCells(piece)
}

func (piece Piece) moved(dx, dy int) Piece {
	piece.Origin = piece.Origin.Add(Point{dx, dy})
	return piece
}

// respawned returns the piece back at the spawn point, unrotated
func (piece Piece) respawned(board *Board) Piece {
	piece.Origin = SpawnOrigin(board)
	piece.Rotation = 0
	return piece
}

// Randomizer is the source of piece choices. *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// NewRandomizer returns a seeded source; seed 0 seeds from the clock
func NewRandomizer(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func SpawnOrigin(board *Board) Point {
	return Point{board.width / 2, 0}
}

// SpawnPiece picks a shape uniformly at random and places it at the spawn
// point. It does not check for collisions.
func SpawnPiece(board *Board, rng Randomizer) Piece {
	return Piece{
		Shape:  Shapes[rng.Intn(len(Shapes))],
		Origin: SpawnOrigin(board),
	}
}

// TryMove returns piece translated by (dx, dy), or false if it would collide
func TryMove(board *Board, piece Piece, dx, dy int) (Piece, bool) {
	moved := piece.moved(dx, dy)
	if board.Collides(moved.Cells()) {
		return piece, false
	}
	return moved, true
}

// TryRotate returns piece turned one step, or false if it would collide.
// No alternative positions are tried.
func TryRotate(board *Board, piece Piece) (Piece, bool) {
	rotated := piece
	rotated.Rotation = (piece.Rotation + 1) % 4
	if board.Collides(rotated.Cells()) {
		return piece, false
	}
	return rotated, true
}

// HardDrop returns the lowest position piece can fall to. It does not lock.
func HardDrop(board *Board, piece Piece) Piece {
	for {
		next, ok := TryMove(board, piece, 0, 1)
		if !ok {
			return piece
		}
		piece = next
	}
}
