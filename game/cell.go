package game

// ShapeOf returns the shape whose locked cells hold value, or false for an
// empty cell.
func ShapeOf(value int) (Shape, bool) {
	shape := Shape(value - 1)
	if !shape.Valid() {
		return 0, false
	}
	return shape, true
}

// ColorIndex selects one of seven colours for a cell value. Empty cells have
// no colour and draw as background.
func ColorIndex(value int) (int, bool) {
	if value == 0 {
		return 0, false
	}
	return (value - 1 + numShapeColours) % numShapeColours, true
}

func cellRune(value int) rune {
	if shape, ok := ShapeOf(value); ok {
		return rune(shapeNames[shape][0])
	}
	return '.'
}

func parseCellRune(c rune) (int, bool) {
	if c == '.' {
		return 0, true
	}
	shape, err := ParseShape(string(c))
	if err != nil {
		return 0, false
	}
	return shape.Value(), true
}
