package game

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Session is one game shared between the tick driver and the input path.
// Every operation holds the session lock for the whole transition, so readers
// only ever see complete states.
type Session struct {
	config GameConfig
	rng    Randomizer
	log    logrus.FieldLogger

	lock  sync.Mutex
	state State
}

func NewSession(config GameConfig) (*Session, error) {
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	rng := config.Randomizer
	if rng == nil {
		rng = NewRandomizer(config.Seed)
	}

	session := &Session{
		config: config,
		rng:    rng,
		log:    config.logger(),
	}

	state, err := session.newState()
	if err != nil {
		return nil, err
	}
	session.state = state

	return session, nil
}

func (session *Session) newState() (State, error) {
	board, err := session.config.createBoard()
	if err != nil {
		return State{}, err
	}
	return NewState(board, session.rng), nil
}

// TickInterval is the gravity delay the driver should wait on level
func TickInterval(level int) time.Duration {
	millis := max(minTickMillis, baseTickMillis-(level-1)*tickStepMillis)
	return time.Duration(millis) * time.Millisecond
}

// Tick performs one gravity step
func (session *Session) Tick() Outcome {
	session.lock.Lock()
	state, outcome := GravityStep(session.state, session.rng)
	session.state = state
	session.lock.Unlock()

	if outcome.Locked {
		session.log.WithFields(logrus.Fields{
			"cleared": outcome.Cleared,
			"score":   state.Score,
			"lines":   state.Lines,
			"level":   state.Level(),
		}).Debug("piece locked")

		if outcome.Points > 0 && session.config.OnScoreChange != nil {
			session.config.OnScoreChange(state.Score)
		}
	}

	if outcome.Locked && outcome.GameOver {
		session.log.WithFields(logrus.Fields{
			"score": state.Score,
			"lines": state.Lines,
		}).Info("game over")

		session.config.onGameOver(state)
	}

	return outcome
}

// Apply runs a player command, returning whether it changed anything.
// Rejected moves are not errors.
func (session *Session) Apply(command Command) bool {
	switch command {
	case CommandMoveLeft:
		return session.MoveLeft()
	case CommandMoveRight:
		return session.MoveRight()
	case CommandSoftDrop:
		return session.SoftDrop()
	case CommandRotate:
		return session.Rotate()
	case CommandHardDrop:
		return session.HardDrop()
	case CommandHold:
		return session.Hold()
	case CommandReset:
		if err := session.Reset(); err != nil {
			session.log.WithError(err).Error("reset failed")
			return false
		}
		return true
	default:
		session.log.WithField("command", command).Warn("unknown command")
		return false
	}
}

func (session *Session) update(transition func(State) (State, bool)) bool {
	session.lock.Lock()
	defer session.lock.Unlock()

	state, changed := transition(session.state)
	session.state = state
	return changed
}

func (session *Session) move(dx, dy int) bool {
	return session.update(func(state State) (State, bool) {
		return MovePiece(state, dx, dy)
	})
}

func (session *Session) MoveLeft() bool {
	return session.move(-1, 0)
}

func (session *Session) MoveRight() bool {
	return session.move(1, 0)
}

func (session *Session) SoftDrop() bool {
	return session.move(0, 1)
}

func (session *Session) Rotate() bool {
	return session.update(RotatePiece)
}

func (session *Session) HardDrop() bool {
	return session.update(DropPiece)
}

func (session *Session) Hold() bool {
	return session.update(func(state State) (State, bool) {
		held := HoldPiece(state, session.rng)
		return held, !held.CanHold && state.CanHold
	})
}

// Reset throws the current game away and starts a new one
func (session *Session) Reset() error {
	session.lock.Lock()
	defer session.lock.Unlock()

	state, err := session.newState()
	if err != nil {
		return err
	}
	session.state = state

	session.log.Info("game reset")
	return nil
}

// State returns the current state. It is never modified afterwards.
func (session *Session) State() State {
	session.lock.Lock()
	defer session.lock.Unlock()
	return session.state
}

func (session *Session) Frame() Frame {
	return session.State().Frame()
}

func (session *Session) Score() int {
	return session.State().Score
}

func (session *Session) Lines() int {
	return session.State().Lines
}

func (session *Session) Level() int {
	return session.State().Level()
}

func (session *Session) GameOver() bool {
	return session.State().GameOver
}

// Seed is the seed pieces are drawn with, resolved from the clock if the
// config left it at 0
func (session *Session) Seed() int64 {
	return session.config.Seed
}

func (session *Session) TickInterval() time.Duration {
	return TickInterval(session.Level())
}
