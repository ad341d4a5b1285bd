package heuristic

import (
	"fmt"
	"math"

	"github.com/they4kman/goblocks/game"
	"github.com/they4kman/goblocks/util/collections"
)

// Weights of each board feature in a placement's rating
type Weights struct {
	AggregateHeight float64
	Lines           float64
	Holes           float64
	Bumpiness       float64
}

var DefaultWeights = Weights{
	AggregateHeight: -0.51,
	Lines:           0.76,
	Holes:           -0.36,
	Bumpiness:       -0.18,
}

// Soft drops tried before rotating, since some shapes cannot turn on the
// spawn row.
const maxDropsBeforeRotate = 2

// Director tries every reachable resting place of the current piece and plays
// the one leaving the best-rated board.
type Director struct {
	Weights Weights

	session *game.Session
}

// Placement is one way of playing a piece: soft drops, then rotations, then
// sideways moves, then a hard drop.
type Placement struct {
	Drops     int
	Rotations int
	Shift     int

	Final  game.Piece
	Rating float64
}

func (placement Placement) String() string {
	return fmt.Sprintf("Placement[d%d r%d s%+d -> %v = %.3f]",
		placement.Drops, placement.Rotations, placement.Shift, placement.Final, placement.Rating)
}

func (placement Placement) Commands() []game.Command {
	var commands []game.Command
	for i := 0; i < placement.Drops; i++ {
		commands = append(commands, game.CommandSoftDrop)
	}
	for i := 0; i < placement.Rotations; i++ {
		commands = append(commands, game.CommandRotate)
	}

	shift := game.CommandMoveRight
	if placement.Shift < 0 {
		shift = game.CommandMoveLeft
	}
	for i := 0; i < abs(placement.Shift); i++ {
		commands = append(commands, shift)
	}

	return append(commands, game.CommandHardDrop)
}

func New() *Director {
	return &Director{Weights: DefaultWeights}
}

func (director *Director) Init(session *game.Session) {
	director.session = session
}

func (director *Director) Act(commands chan<- game.Command) {
	defer close(commands)

	state := director.session.State()
	if state.GameOver {
		return
	}

	best, ok := director.Best(state.Board, state.Current)
	if !ok {
		commands <- game.CommandHardDrop
		return
	}

	for _, command := range best.Commands() {
		commands <- command
	}
}

func (director *Director) End() {}

// Best returns the highest-rated placement of piece on board, or false if the
// piece cannot reach any resting place.
func (director *Director) Best(board *game.Board, piece game.Piece) (Placement, bool) {
	best := Placement{Rating: math.Inf(-1)}
	found := false

	for _, placement := range director.Placements(board, piece) {
		if placement.Rating > best.Rating {
			best = placement
			found = true
		}
	}

	return best, found
}

// Placements lists every distinct resting place reachable from piece, rated
func (director *Director) Placements(board *game.Board, piece game.Piece) []Placement {
	var placements []Placement
	seen := make(collections.Set[game.Piece])

	dropped := piece
	for drops := 0; drops <= maxDropsBeforeRotate; drops++ {
		if drops > 0 {
			var ok bool
			if dropped, ok = game.TryMove(board, dropped, 0, 1); !ok {
				break
			}
		}

		rotated := dropped
		for rotations := 0; rotations < 4; rotations++ {
			if rotations > 0 {
				var ok bool
				if rotated, ok = game.TryRotate(board, rotated); !ok {
					break
				}
			}

			for _, direction := range []int{-1, 1} {
				shifted := rotated
				for shift := 0; ; shift += direction {
					if shift != 0 {
						var ok bool
						if shifted, ok = game.TryMove(board, shifted, direction, 0); !ok {
							break
						}
					} else if direction > 0 {
						// shift 0 was already tried going left
						continue
					}

					final := game.HardDrop(board, shifted)
					if seen.Contains(final) {
						continue
					}
					seen.Add(final)

					placements = append(placements, Placement{
						Drops:     drops,
						Rotations: rotations,
						Shift:     shift,
						Final:     final,
						Rating:    director.rate(board, final),
					})
				}
			}
		}
	}

	return placements
}

func (director *Director) rate(board *game.Board, final game.Piece) float64 {
	result := board.Clone()
	result.Lock(final)
	lines := result.ClearLines()

	heights := result.ColumnHeights()
	aggregateHeight, bumpiness := 0, 0
	for x, height := range heights {
		aggregateHeight += height
		if x > 0 {
			bumpiness += abs(height - heights[x-1])
		}
	}

	weights := director.Weights
	return weights.AggregateHeight*float64(aggregateHeight) +
		weights.Lines*float64(lines) +
		weights.Holes*float64(len(result.Holes())) +
		weights.Bumpiness*float64(bumpiness)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
