package game

import "math"

// Direction doubles as the action type: every action is a move in one
// direction, or Stop.
type Direction int

const (
	Stop Direction = iota
	North
	South
	East
	West
)

type Action = Direction

// Actions lists every action in enumeration order.
var Actions = []Action{North, South, East, West, Stop}

var directionNames = map[Direction]string{
	Stop:  "Stop",
	North: "North",
	South: "South",
	East:  "East",
	West:  "West",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "Unknown"
}

// ParseDirection is the inverse of String.
func ParseDirection(name string) (Direction, bool) {
	for d, n := range directionNames {
		if n == name {
			return d, true
		}
	}
	return Stop, false
}

// Reverse returns the opposite direction. Stop is its own reverse.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return Stop
}

// Vector returns the unit displacement for d. North increases y.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// Cell is a discrete grid location.
type Cell struct {
	X, Y int
}

func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Vector()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) Position() Position {
	return Position{X: float64(c.X), Y: float64(c.Y)}
}

// Manhattan returns the grid distance ignoring walls.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Position is a possibly fractional location; engines that animate moves
// in sub-steps can report agents between two cells.
type Position struct {
	X, Y float64
}

// Nearest rounds the position to the closest cell.
func (p Position) Nearest() Cell {
	return Cell{X: int(math.Floor(p.X + 0.5)), Y: int(math.Floor(p.Y + 0.5))}
}

// OnLattice reports whether the position lies exactly on a cell.
func (p Position) OnLattice() bool {
	return p.Nearest().Position() == p
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
