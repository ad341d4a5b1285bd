package game

// Frame is a read-only picture of a game for drawing
type Frame struct {
	Width, Height int

	// Locked cell values, indexed [y][x]
	Cells [][]int

	Active      []Point
	ActiveShape Shape

	Next Preview
	// nil while nothing is held
	Held *Preview

	Score    int
	Lines    int
	Level    int
	GameOver bool
}

// Preview is a piece drawn outside the board, offsets normalized to start at 0
type Preview struct {
	Shape Shape
	Cells []Point
}

func newPreview(shape Shape) Preview {
	return Preview{Shape: shape, Cells: PreviewCells(shape)}
}

func (state State) Frame() Frame {
	frame := Frame{
		Width:       state.Board.width,
		Height:      state.Board.height,
		Cells:       state.Board.Rows(),
		Active:      state.Current.Cells(),
		ActiveShape: state.Current.Shape,
		Next:        newPreview(state.Next.Shape),
		Score:       state.Score,
		Lines:       state.Lines,
		Level:       state.Level(),
		GameOver:    state.GameOver,
	}

	if held, ok := state.Held.(Held); ok {
		preview := newPreview(held.Piece.Shape)
		frame.Held = &preview
	}

	return frame
}

// ValueAt returns what to draw at (x, y): the active piece over locked cells
func (frame Frame) ValueAt(x, y int) int {
	for _, cell := range frame.Active {
		if cell.X == x && cell.Y == y {
			return frame.ActiveShape.Value()
		}
	}
	return frame.Cells[y][x]
}
