package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// shapeSequence hands out shapes in order, repeating from the start
type shapeSequence struct {
	shapes []Shape
	drawn  int
}

func newShapeSequence(shapes ...Shape) *shapeSequence {
	return &shapeSequence{shapes: shapes}
}

func (sequence *shapeSequence) Intn(n int) int {
	shape := sequence.shapes[sequence.drawn%len(sequence.shapes)]
	sequence.drawn++
	return int(shape) % n
}

// boardFromRows builds a board from snapshot rows, top row first
func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()

	snapshot := BoardSnapshot{SerializedBoard: strings.Join(rows, "\n")}
	board, err := snapshot.CreateBoard()
	require.NoError(t, err)
	return board
}

// emptyRows returns n rows of width empty cells
func emptyRows(n, width int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = strings.Repeat(".", width)
	}
	return rows
}
