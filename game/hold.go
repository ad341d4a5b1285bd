package game

// HeldSlot is either NoHeld or Held
type HeldSlot interface {
	isHeldSlot()
}

type NoHeld struct{}

type Held struct {
	Piece Piece
}

func (NoHeld) isHeldSlot() {}
func (Held) isHeldSlot()   {}

// HoldPiece sets the current piece aside. With an empty slot the next piece
// is promoted and a new one drawn; otherwise the held piece is swapped in and
// the next piece is left alone. Both pieces return to the spawn point
// unrotated, without a collision check. Only allowed once per piece.
func HoldPiece(state State, rng Randomizer) State {
	if state.GameOver || !state.CanHold {
		return state
	}

	outgoing := state.Current.respawned(state.Board)

	switch slot := state.Held.(type) {
	case Held:
		state.Current = slot.Piece.respawned(state.Board)
	case NoHeld, nil:
		state.Current = state.Next.respawned(state.Board)
		state.Next = SpawnPiece(state.Board, rng)
	}

	state.Held = Held{Piece: outgoing}
	state.CanHold = false
	return state
}
