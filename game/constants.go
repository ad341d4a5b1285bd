package game

type Shape int
type GameState int

const (
	I Shape = iota
	O
	T
	S
	Z
	J
	L
)

var Shapes = []Shape{
	I,
	O,
	T,
	S,
	Z,
	J,
	L,
}

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

const (
	Falling GameState = iota
	GameOver
)

// Points awarded per lock, indexed by number of lines cleared. Multiplied by
// the level at the time of the lock.
var lineScores = [...]int{0, 100, 300, 500, 800}

const (
	linesPerLevel = 10

	baseTickMillis  = 600
	tickStepMillis  = 40
	minTickMillis   = 120
	numShapeColours = 7
)
