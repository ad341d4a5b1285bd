package game

import "fmt"

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

var shapeNames = [...]string{"I", "O", "T", "S", "Z", "J", "L"}

// Cell offsets of every shape at rotation 0. Never mutated; ShapeCells hands
// out copies.
var shapeTable = [...][4]Point{
	I: {{-2, 0}, {-1, 0}, {0, 0}, {1, 0}},
	O: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	T: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
	S: {{0, 0}, {1, 0}, {-1, 1}, {0, 1}},
	Z: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
	J: {{-1, 0}, {-1, 1}, {0, 0}, {1, 0}},
	L: {{1, 1}, {-1, 0}, {0, 0}, {1, 0}},
}

func (shape Shape) String() string {
	if shape.Valid() {
		return shapeNames[shape]
	}
	return fmt.Sprintf("Shape(%d)", int(shape))
}

func (shape Shape) Valid() bool {
	return shape >= I && shape <= L
}

// Value is the number stored in the board grid for a locked cell of this shape
func (shape Shape) Value() int {
	return int(shape) + 1
}

// ParseShape returns the shape named by a single letter, e.g. "T"
func ParseShape(name string) (Shape, error) {
	for i, shapeName := range shapeNames {
		if shapeName == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// ShapeCells returns the four cell offsets of shape at rotation 0
func ShapeCells(shape Shape) []Point {
	cells := shapeTable[shape]
	return cells[:]
}

// Rotate turns p a quarter turn around the origin r times, (x, y) -> (-y, x)
// per step. Negative r is normalized into 0..3.
func Rotate(p Point, r int) Point {
	x, y := p.X, p.Y
	for i := 0; i < ((r%4)+4)%4; i++ {
		x, y = -y, x
	}
	return Point{x, y}
}

// PieceCells returns the absolute board cells covered by piece
func PieceCells(piece Piece) []Point {
	offsets := shapeTable[piece.Shape]
	cells := make([]Point, len(offsets))
	for i, offset := range offsets {
		cells[i] = Rotate(offset, piece.Rotation).Add(piece.Origin)
	}
	return cells
}

// PreviewCells returns the offsets of shape shifted so the smallest x and y
// are both 0, for drawing held/next pieces outside the board.
func PreviewCells(shape Shape) []Point {
	offsets := shapeTable[shape]

	minX, minY := offsets[0].X, offsets[0].Y
	for _, offset := range offsets[1:] {
		minX = min(minX, offset.X)
		minY = min(minY, offset.Y)
	}

	cells := make([]Point, len(offsets))
	for i, offset := range offsets {
		cells[i] = Point{offset.X - minX, offset.Y - minY}
	}
	return cells
}
