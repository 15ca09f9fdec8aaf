package game

import "errors"

// Team identifies one side of the board. Red agents have even indices and
// defend the western half, blue agents have odd indices and defend the
// eastern half.
type Team int

const (
	Red Team = iota
	Blue
)

func (t Team) String() string {
	if t == Red {
		return "red"
	}
	return "blue"
}

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == Red {
		return Blue
	}
	return Red
}

// TeamOf returns the team of the agent with the given index.
func TeamOf(index int) Team {
	if index%2 == 0 {
		return Red
	}
	return Blue
}

// AgentState is what a snapshot reveals about a single agent.
type AgentState struct {
	Position    Position
	Known       bool      // False when the agent is outside sensor range
	Pacman      bool      // True while the agent is on the opponent's half
	ScaredTimer int       // Ticks left during which the agent is vulnerable as a ghost
	Facing      Direction // Direction of the agent's last move
}

// State is an immutable view of the game at one tick. Operations never
// mutate the receiver; Successor returns a new copy.
type State interface {
	Width() int
	Height() int
	NumAgents() int
	LegalActions(index int) []Action
	Successor(index int, action Action) State
	Agent(index int) AgentState
	// Food returns the remaining food cells located on side's half of the board.
	Food(side Team) []Cell
	// Score returns the game score from team's perspective.
	Score(team Team) int
}

// Distancer answers shortest-path queries that respect maze walls.
type Distancer interface {
	Distance(a, b Cell) (int, error)
}

var ErrUnreachable = errors.New("cells are not connected")

// OnSide reports whether cell lies on team's own half of a board of the
// given width.
func OnSide(team Team, width int, cell Cell) bool {
	mid := width / 2
	if team == Red {
		return cell.X < mid
	}
	return cell.X >= mid
}

// Opponents returns the indices of every agent not on index's team.
func Opponents(s State, index int) []int {
	team := TeamOf(index)
	var opponents []int
	for i := 0; i < s.NumAgents(); i++ {
		if TeamOf(i) != team {
			opponents = append(opponents, i)
		}
	}
	return opponents
}

// Teammates returns the indices of every agent on team.
func Teammates(s State, team Team) []int {
	var mates []int
	for i := 0; i < s.NumAgents(); i++ {
		if TeamOf(i) == team {
			mates = append(mates, i)
		}
	}
	return mates
}
