package game

import (
	"context"
	"sync"
	"time"

	"github.com/gammazero/deque"
)

// Runner drives a session: it applies gravity on a level-dependent interval
// and applies queued commands between ticks. Everything happens on the
// goroutine calling Run.
type Runner struct {
	session  *Session
	director Director

	// Interval returns the delay before the next tick; defaults to TickInterval
	Interval func(level int) time.Duration
	// Stop after this many pieces have locked; 0 means no limit
	MaxPieces int

	queueLock sync.Mutex
	queue     deque.Deque
	wake      chan struct{}

	pieces int
}

// NewRunner creates a runner for session. director may be nil, in which case
// only commands passed to Send are played.
func NewRunner(session *Session, director Director) *Runner {
	return &Runner{
		session:  session,
		director: director,
		Interval: TickInterval,
		wake:     make(chan struct{}, 1),
	}
}

// Send queues a command. It never blocks.
func (runner *Runner) Send(command Command) {
	runner.queueLock.Lock()
	runner.queue.PushBack(command)
	runner.queueLock.Unlock()

	select {
	case runner.wake <- struct{}{}:
	default:
	}
}

func (runner *Runner) pop() (Command, bool) {
	runner.queueLock.Lock()
	defer runner.queueLock.Unlock()

	if runner.queue.Len() == 0 {
		return 0, false
	}
	return runner.queue.PopFront().(Command), true
}

// drain applies every queued command, returning whether the game was reset
func (runner *Runner) drain() bool {
	reset := false
	for {
		command, ok := runner.pop()
		if !ok {
			return reset
		}
		runner.session.Apply(command)
		if command == CommandReset {
			reset = true
		}
	}
}

func (runner *Runner) plan() {
	commands := make(chan Command)
	go runner.director.Act(commands)

	for command := range commands {
		runner.Send(command)
	}
}

// Pieces returns how many pieces locked during the last Run. Only valid once
// Run has returned.
func (runner *Runner) Pieces() int {
	return runner.pieces
}

// Run plays until the game is over, MaxPieces pieces have locked, or ctx is
// done. Only the last case returns an error.
func (runner *Runner) Run(ctx context.Context) error {
	if runner.director != nil {
		runner.director.Init(runner.session)
		defer runner.director.End()
	}

	runner.pieces = 0
	needsPlan := true

	timer := time.NewTimer(runner.Interval(runner.session.Level()))
	defer timer.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if runner.session.GameOver() {
			return nil
		}
		if runner.MaxPieces > 0 && runner.pieces >= runner.MaxPieces {
			return nil
		}

		if needsPlan && runner.director != nil {
			runner.plan()
			needsPlan = false
		}
		if runner.drain() {
			needsPlan = true
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-runner.wake:
		case <-timer.C:
			outcome := runner.session.Tick()
			if outcome.Locked {
				runner.pieces++
				needsPlan = true
			}
			timer.Reset(runner.Interval(runner.session.Level()))
		}
	}
}
