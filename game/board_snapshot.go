package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot records the locked cells of a board, one text row per board
// row: '.' for empty, the shape letter for a locked cell.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	Score           int    `yaml:"score,omitempty"`
	Lines           int    `yaml:"lines,omitempty"`
	SerializedBoard string `yaml:"board"`
}

func NewBoardSnapshot(board *Board) *BoardSnapshot {
	var rows strings.Builder
	for y, row := range board.grid {
		if y > 0 {
			rows.WriteByte('\n')
		}
		for _, value := range row {
			rows.WriteRune(cellRune(value))
		}
	}
	return &BoardSnapshot{SerializedBoard: rows.String()}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// CreateBoard rebuilds the snapshotted board. Its size is taken from the
// snapshot rows.
func (snapshot *BoardSnapshot) CreateBoard() (*Board, error) {
	rows := strings.Fields(snapshot.SerializedBoard)
	if len(rows) == 0 {
		return nil, &ConfigurationError{Field: "height", Value: 0}
	}

	board, err := NewBoard(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		if len(row) != board.width {
			return nil, fmt.Errorf("board row %d has %d cells, expected %d", y, len(row), board.width)
		}
		for x, c := range row {
			value, ok := parseCellRune(c)
			if !ok {
				return nil, fmt.Errorf("unknown cell %q at (%d, %d)", c, x, y)
			}
			board.grid[y][x] = value
		}
	}

	return board, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
