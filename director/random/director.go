package random

import (
	"math/rand"

	"github.com/they4kman/goblocks/game"
)

// Moves made before each hard drop are chosen from these
var moves = []game.Command{
	game.CommandMoveLeft,
	game.CommandMoveRight,
	game.CommandRotate,
}

// Director shuffles each piece around at random, then hard-drops it
type Director struct {
	// Most moves made per piece
	MaxMoves int

	rand    *rand.Rand
	session *game.Session
}

func New(seed int64) *Director {
	return &Director{
		MaxMoves: 8,
		rand:     game.NewRandomizer(seed),
	}
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	if director.rand == nil {
		director.rand = game.NewRandomizer(0)
	}
}

func (director *Director) Act(commands chan<- game.Command) {
	defer close(commands)

	if director.session.GameOver() {
		return
	}

	numMoves := 0
	if director.MaxMoves > 0 {
		numMoves = director.rand.Intn(director.MaxMoves + 1)
	}
	for i := 0; i < numMoves; i++ {
		commands <- moves[director.rand.Intn(len(moves))]
	}
	commands <- game.CommandHardDrop
}

func (director *Director) End() {}
