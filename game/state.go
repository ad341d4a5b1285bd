package game

// State is the complete state of one game. Transitions take a State and
// return the next one; the board is cloned before it is written to, so a
// State handed out is never modified afterwards.
type State struct {
	Board   *Board
	Current Piece
	Next    Piece
	Held    HeldSlot
	CanHold bool

	Score    int
	Lines    int
	GameOver bool
}

// Outcome describes what a gravity step did
type Outcome struct {
	Locked   bool
	Cleared  int
	Points   int
	GameOver bool
}

// NewState starts a game on board. A board with no room for the first piece
// starts out over.
func NewState(board *Board, rng Randomizer) State {
	state := State{
		Board:   board,
		Current: SpawnPiece(board, rng),
		Next:    SpawnPiece(board, rng),
		Held:    NoHeld{},
		CanHold: true,
	}
	state.GameOver = board.Collides(state.Current.Cells())
	return state
}

func (state State) Level() int {
	return LevelFor(state.Lines)
}

func (state State) Phase() GameState {
	if state.GameOver {
		return GameOver
	}
	return Falling
}

// LevelFor returns the level reached after clearing lines
func LevelFor(lines int) int {
	return 1 + lines/linesPerLevel
}

// LineScore returns the points for clearing cleared lines at once on level 1
func LineScore(cleared int) int {
	if cleared < 0 || cleared >= len(lineScores) {
		return 0
	}
	return lineScores[cleared]
}

// GravityStep moves the current piece down one row. If it cannot move, it is
// locked, full lines are cleared and scored, and the next piece takes its
// place. If that piece already collides the game is over.
func GravityStep(state State, rng Randomizer) (State, Outcome) {
	if state.GameOver {
		return state, Outcome{GameOver: true}
	}

	if moved, ok := TryMove(state.Board, state.Current, 0, 1); ok {
		state.Current = moved
		return state, Outcome{}
	}

	board := state.Board.Clone()
	board.Lock(state.Current)
	cleared := board.ClearLines()

	outcome := Outcome{
		Locked:  true,
		Cleared: cleared,
		Points:  LineScore(cleared) * state.Level(),
	}

	state.Board = board
	state.Score += outcome.Points
	state.Lines += cleared
	state.Current = state.Next
	state.Next = SpawnPiece(board, rng)
	state.CanHold = true

	if board.Collides(state.Current.Cells()) {
		state.GameOver = true
		outcome.GameOver = true
	}

	return state, outcome
}

// MovePiece shifts the current piece, if it fits
func MovePiece(state State, dx, dy int) (State, bool) {
	if state.GameOver {
		return state, false
	}
	var ok bool
	state.Current, ok = TryMove(state.Board, state.Current, dx, dy)
	return state, ok
}

// RotatePiece turns the current piece, if it fits
func RotatePiece(state State) (State, bool) {
	if state.GameOver {
		return state, false
	}
	var ok bool
	state.Current, ok = TryRotate(state.Board, state.Current)
	return state, ok
}

// DropPiece moves the current piece as far down as it goes. Locking is left
// to the next gravity step.
func DropPiece(state State) (State, bool) {
	if state.GameOver {
		return state, false
	}
	dropped := HardDrop(state.Board, state.Current)
	moved := dropped != state.Current
	state.Current = dropped
	return state, moved
}
