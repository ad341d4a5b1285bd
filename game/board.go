package game

type Board struct {
	width, height int // in number of cells

	// grid[y][x]; 0 is empty, otherwise Shape.Value() of the locked piece
	grid [][]int
}

// NewBoard creates an empty board. Both dimensions must be positive.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 {
		return nil, &ConfigurationError{Field: "width", Value: width}
	}
	if height <= 0 {
		return nil, &ConfigurationError{Field: "height", Value: height}
	}

	board := Board{
		width:  width,
		height: height,
		grid:   make([][]int, height),
	}
	for y := range board.grid {
		board.grid[y] = make([]int, width)
	}
	return &board, nil
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) Inside(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < board.width && p.Y < board.height
}

// Cell returns the value stored at (x, y). Panics outside the board.
func (board *Board) Cell(x, y int) int {
	return board.grid[y][x]
}

// Collides reports whether any of cells lies outside the board or on a
// locked cell.
func (board *Board) Collides(cells []Point) bool {
	for _, cell := range cells {
		if !board.Inside(cell) || board.grid[cell.Y][cell.X] != 0 {
			return true
		}
	}
	return false
}

// Lock writes piece into the grid. The caller must already know the piece
// does not collide.
func (board *Board) Lock(piece Piece) {
	for _, cell := range PieceCells(piece) {
		board.grid[cell.Y][cell.X] = piece.Shape.Value()
	}
}

// ClearLines removes every full row, shifting the rows above down, and
// returns how many were removed.
func (board *Board) ClearLines() int {
	kept := make([][]int, 0, board.height)
	for _, row := range board.grid {
		if !isFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := board.height - len(kept)
	if cleared == 0 {
		return 0
	}

	rows := make([][]int, 0, board.height)
	for i := 0; i < cleared; i++ {
		rows = append(rows, make([]int, board.width))
	}
	board.grid = append(rows, kept...)

	return cleared
}

func isFull(row []int) bool {
	for _, value := range row {
		if value == 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the board
func (board *Board) Clone() *Board {
	clone := Board{
		width:  board.width,
		height: board.height,
		grid:   make([][]int, board.height),
	}
	for y, row := range board.grid {
		clone.grid[y] = append([]int(nil), row...)
	}
	return &clone
}

// Rows returns a copy of the grid, indexed [y][x]
func (board *Board) Rows() [][]int {
	return board.Clone().grid
}

// ColumnHeights returns, per column, the number of rows from the highest
// locked cell down to the floor (0 for an empty column).
func (board *Board) ColumnHeights() []int {
	heights := make([]int, board.width)
	for x := 0; x < board.width; x++ {
		for y := 0; y < board.height; y++ {
			if board.grid[y][x] != 0 {
				heights[x] = board.height - y
				break
			}
		}
	}
	return heights
}
