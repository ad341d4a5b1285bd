package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/goblocks/util/collections"
)

func TestShapeCells(t *testing.T) {
	expected := map[Shape][]Point{
		I: {{-2, 0}, {-1, 0}, {0, 0}, {1, 0}},
		O: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		T: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
		S: {{0, 0}, {1, 0}, {-1, 1}, {0, 1}},
		Z: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		J: {{-1, 0}, {-1, 1}, {0, 0}, {1, 0}},
		L: {{1, 1}, {-1, 0}, {0, 0}, {1, 0}},
	}

	require.Len(t, Shapes, len(expected))
	for _, shape := range Shapes {
		cells := ShapeCells(shape)
		assert.Equal(t, expected[shape], cells, "shape %v", shape)
		assert.Len(t, collections.NewSet(cells...), 4, "shape %v has repeated cells", shape)
	}
}

func TestShapeCellsReturnsCopy(t *testing.T) {
	cells := ShapeCells(T)
	cells[0] = Point{100, 100}

	assert.Equal(t, Point{-1, 0}, ShapeCells(T)[0])
}

func TestRotate(t *testing.T) {
	p := Point{2, 1}

	assert.Equal(t, p, Rotate(p, 0))
	assert.Equal(t, Point{-1, 2}, Rotate(p, 1))
	assert.Equal(t, Point{-2, -1}, Rotate(p, 2))
	assert.Equal(t, Point{1, -2}, Rotate(p, 3))
	assert.Equal(t, Rotate(p, 3), Rotate(p, -1))
	assert.Equal(t, Rotate(p, 1), Rotate(p, 5))
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, shape := range Shapes {
		for _, p := range ShapeCells(shape) {
			for r := -6; r <= 6; r++ {
				rotated := p
				for i := 0; i < 4; i++ {
					rotated = Rotate(rotated, r)
				}
				assert.Equal(t, p, rotated, "%v rotated by %d", p, r)
			}
		}
	}
}

func TestPieceCells(t *testing.T) {
	piece := Piece{Shape: I, Origin: Point{5, 0}}
	assert.Equal(t, []Point{{3, 0}, {4, 0}, {5, 0}, {6, 0}}, PieceCells(piece))

	piece.Rotation = 1
	assert.Equal(t, []Point{{5, -2}, {5, -1}, {5, 0}, {5, 1}}, piece.Cells())
}

func TestPreviewCells(t *testing.T) {
	assert.Equal(t, []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, PreviewCells(I))
	assert.Equal(t, []Point{{1, 0}, {2, 0}, {0, 1}, {1, 1}}, PreviewCells(S))
	assert.Equal(t, []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, PreviewCells(O))
}

func TestParseShape(t *testing.T) {
	for _, shape := range Shapes {
		parsed, err := ParseShape(shape.String())
		require.NoError(t, err)
		assert.Equal(t, shape, parsed)
	}

	_, err := ParseShape("X")
	assert.Error(t, err)
}

func TestShapeValue(t *testing.T) {
	for _, shape := range Shapes {
		value := shape.Value()
		assert.GreaterOrEqual(t, value, 1)
		assert.LessOrEqual(t, value, 7)

		back, ok := ShapeOf(value)
		assert.True(t, ok)
		assert.Equal(t, shape, back)
	}

	_, ok := ShapeOf(0)
	assert.False(t, ok)
}

func TestColorIndex(t *testing.T) {
	_, ok := ColorIndex(0)
	assert.False(t, ok)

	for value := 1; value <= 7; value++ {
		colour, ok := ColorIndex(value)
		assert.True(t, ok)
		assert.Equal(t, value-1, colour)
	}
}
