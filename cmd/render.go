package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/they4kman/goblocks/game"
)

// Letters drawn per colour index; the board only stores shape values, so the
// colour picks the letter.
var colourGlyphs = []byte("IOTSZJL")

func glyph(value int) byte {
	if colour, ok := game.ColorIndex(value); ok {
		return colourGlyphs[colour]
	}
	return '.'
}

func previewRows(preview *game.Preview) []string {
	if preview == nil {
		return nil
	}

	width, height := 0, 0
	for _, cell := range preview.Cells {
		width = max(width, cell.X+1)
		height = max(height, cell.Y+1)
	}

	rows := make([][]byte, height)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(" ", width))
	}
	for _, cell := range preview.Cells {
		rows[cell.Y][cell.X] = glyph(preview.Shape.Value())
	}

	lines := make([]string, height)
	for y, row := range rows {
		lines[y] = string(row)
	}
	return lines
}

// printFrame writes the board as text, with the next and held pieces beside it
func printFrame(out io.Writer, frame game.Frame) error {
	side := []string{"next:"}
	side = append(side, previewRows(&frame.Next)...)
	if frame.Held != nil {
		side = append(side, "", "held:")
		side = append(side, previewRows(frame.Held)...)
	}

	var text strings.Builder
	for y := 0; y < frame.Height; y++ {
		text.WriteByte('|')
		for x := 0; x < frame.Width; x++ {
			text.WriteByte(glyph(frame.ValueAt(x, y)))
		}
		text.WriteByte('|')
		if y < len(side) {
			text.WriteString("  " + side[y])
		}
		text.WriteByte('\n')
	}
	text.WriteString("+" + strings.Repeat("-", frame.Width) + "+\n")

	status := fmt.Sprintf("score %d  lines %d  level %d", frame.Score, frame.Lines, frame.Level)
	if frame.GameOver {
		status += "  GAME OVER"
	}
	text.WriteString(status + "\n")

	_, err := io.WriteString(out, text.String())
	return err
}
