package game

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(rng Randomizer) (GameConfig, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	config := NewGameConfig()
	config.Randomizer = rng
	config.Logger = logger
	return config, hook
}

func messages(hook *test.Hook) []string {
	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	return messages
}

// openRowSnapshot is a 10x20 board whose bottom row has its right four cells
// open
func openRowSnapshot() *BoardSnapshot {
	rows := append(emptyRows(19, 10), "IIIIII....")
	return &BoardSnapshot{SerializedBoard: strings.Join(rows, "\n")}
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	config, _ := newTestConfig(newShapeSequence(T))
	config.Width = 0

	session, err := NewSession(config)
	assert.Nil(t, session)

	var configErr *ConfigurationError
	assert.True(t, errors.As(err, &configErr))
}

func TestSessionCommands(t *testing.T) {
	config, _ := newTestConfig(newShapeSequence(T))
	session, err := NewSession(config)
	require.NoError(t, err)

	assert.True(t, session.Apply(CommandMoveLeft))
	assert.True(t, session.Apply(CommandSoftDrop))
	assert.True(t, session.Apply(CommandRotate))
	assert.Equal(t, Piece{Shape: T, Origin: Point{4, 1}, Rotation: 1}, session.State().Current)

	assert.True(t, session.Apply(CommandMoveRight))
	assert.True(t, session.Apply(CommandHardDrop))
	assert.False(t, session.Apply(CommandHardDrop))
	assert.False(t, session.Apply(CommandSoftDrop))

	assert.True(t, session.Apply(CommandHold))
	assert.False(t, session.Apply(CommandHold))

	assert.False(t, session.Apply(Command(42)))
}

func TestSessionScoring(t *testing.T) {
	config, hook := newTestConfig(newShapeSequence(I))
	config.Snapshot = openRowSnapshot()

	var scores []int
	config.OnScoreChange = func(score int) {
		scores = append(scores, score)
	}

	session, err := NewSession(config)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.True(t, session.MoveRight())
	}
	require.True(t, session.HardDrop())

	outcome := session.Tick()
	assert.True(t, outcome.Locked)
	assert.Equal(t, 1, outcome.Cleared)

	assert.Equal(t, 100, session.Score())
	assert.Equal(t, 1, session.Lines())
	assert.Equal(t, 1, session.Level())
	assert.Equal(t, []int{100}, scores)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "piece locked", hook.LastEntry().Message)
	assert.Equal(t, 1, hook.LastEntry().Data["cleared"])
}

func TestSessionGameOver(t *testing.T) {
	config, hook := newTestConfig(newShapeSequence(O))
	config.Width, config.Height = 4, 2
	config.Seed = 5
	config.SavedSnapshotsDir = filepath.Join(t.TempDir(), "boards")

	var final *State
	config.OnGameOver = func(state State) {
		final = &state
	}

	session, err := NewSession(config)
	require.NoError(t, err)
	require.False(t, session.GameOver())

	outcome := session.Tick()
	assert.True(t, outcome.GameOver)
	assert.True(t, session.GameOver())
	require.NotNil(t, final)
	assert.True(t, final.GameOver)
	assert.Contains(t, messages(hook), "game over")

	files, err := os.ReadDir(config.SavedSnapshotsDir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, strings.HasSuffix(files[0].Name(), "_5_over.yaml"), files[0].Name())

	in, err := os.ReadFile(filepath.Join(config.SavedSnapshotsDir, files[0].Name()))
	require.NoError(t, err)
	snapshot, err := LoadSnapshot(string(in))
	require.NoError(t, err)
	assert.EqualValues(t, 5, snapshot.Seed)

	board, err := snapshot.CreateBoard()
	require.NoError(t, err)
	assert.Equal(t, final.Board.Rows(), board.Rows())

	// Only reset gets out of a finished game
	assert.False(t, session.MoveLeft())
	assert.Equal(t, Outcome{GameOver: true}, session.Tick())
	require.True(t, session.Apply(CommandReset))
	assert.False(t, session.GameOver())
}

func TestSessionRecordsClockSeed(t *testing.T) {
	config, _ := newTestConfig(newShapeSequence(O))
	config.Width, config.Height = 4, 2
	config.SavedSnapshotsDir = filepath.Join(t.TempDir(), "boards")
	require.Zero(t, config.Seed)

	session, err := NewSession(config)
	require.NoError(t, err)
	require.NotZero(t, session.Seed())

	require.True(t, session.Tick().GameOver)

	files, err := os.ReadDir(config.SavedSnapshotsDir)
	require.NoError(t, err)
	require.Len(t, files, 1)

	in, err := os.ReadFile(filepath.Join(config.SavedSnapshotsDir, files[0].Name()))
	require.NoError(t, err)
	snapshot, err := LoadSnapshot(string(in))
	require.NoError(t, err)
	assert.Equal(t, session.Seed(), snapshot.Seed)
}

func TestSnapshotFilenameIncludesSeed(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 30, 45, 123000000, time.UTC)

	config := NewGameConfig()
	config.Seed = 41
	first := config.generateSnapshotFilename(at)
	config.Seed = 42
	second := config.generateSnapshotFilename(at)

	assert.Equal(t, "20240301_123045.123_41_over.yaml", first)
	assert.NotEqual(t, first, second)
}

func TestSessionReset(t *testing.T) {
	config, _ := newTestConfig(newShapeSequence(I))
	config.Snapshot = openRowSnapshot()

	session, err := NewSession(config)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		session.MoveRight()
	}
	session.HardDrop()
	session.Tick()
	session.Hold()
	require.Equal(t, 100, session.Score())

	require.NoError(t, session.Reset())

	state := session.State()
	assert.Zero(t, state.Score)
	assert.Zero(t, state.Lines)
	assert.Equal(t, NoHeld{}, state.Held)
	assert.True(t, state.CanHold)
	assert.False(t, state.GameOver)
	assert.Equal(t, I.Value(), state.Board.Cell(0, 19))
	assert.Zero(t, state.Board.Cell(9, 19))
}

func TestSessionFrame(t *testing.T) {
	config, _ := newTestConfig(newShapeSequence(T, L, S))
	session, err := NewSession(config)
	require.NoError(t, err)

	frame := session.Frame()
	assert.Equal(t, 10, frame.Width)
	assert.Equal(t, 20, frame.Height)
	assert.Equal(t, T, frame.ActiveShape)
	assert.Equal(t, []Point{{4, 0}, {5, 0}, {6, 0}, {5, 1}}, frame.Active)
	assert.Equal(t, L, frame.Next.Shape)
	assert.Equal(t, PreviewCells(L), frame.Next.Cells)
	assert.Nil(t, frame.Held)
	assert.Equal(t, T.Value(), frame.ValueAt(5, 1))
	assert.Zero(t, frame.ValueAt(0, 0))

	session.Hold()
	frame = session.Frame()
	require.NotNil(t, frame.Held)
	assert.Equal(t, T, frame.Held.Shape)
	assert.Equal(t, L, frame.ActiveShape)

	// Frames are copies
	frame.Cells[0][0] = 7
	assert.Zero(t, session.State().Board.Cell(0, 0))
}

func TestTickInterval(t *testing.T) {
	assert.Equal(t, 600*time.Millisecond, TickInterval(1))
	assert.Equal(t, 560*time.Millisecond, TickInterval(2))
	assert.Equal(t, 160*time.Millisecond, TickInterval(12))
	assert.Equal(t, 120*time.Millisecond, TickInterval(13))
	assert.Equal(t, 120*time.Millisecond, TickInterval(40))

	config, _ := newTestConfig(newShapeSequence(T))
	session, err := NewSession(config)
	require.NoError(t, err)
	assert.Equal(t, 600*time.Millisecond, session.TickInterval())
}

func TestSessionConcurrentUse(t *testing.T) {
	config, _ := newTestConfig(NewRandomizer(3))
	session, err := NewSession(config)
	require.NoError(t, err)

	wg := sync.WaitGroup{}
	for _, command := range []Command{CommandMoveLeft, CommandMoveRight, CommandRotate, CommandHold} {
		wg.Add(1)
		go func(command Command) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				session.Apply(command)
				frame := session.Frame()
				assert.Len(t, frame.Active, 4)
			}
		}(command)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			session.Tick()
		}
	}()

	wg.Wait()

	state := session.State()
	for y := 0; y < state.Board.Height(); y++ {
		for x := 0; x < state.Board.Width(); x++ {
			value := state.Board.Cell(x, y)
			assert.True(t, value >= 0 && value <= 7)
		}
	}
}
