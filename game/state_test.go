package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const capsuleCorridor = `
%%%%%%%%%%
%1  .o. 2%
%%%%%%%%%%
`

const corridor = `
%%%%%%%%%%
%1  . . 2%
%%%%%%%%%%
`

// Three food on each side of a corridor wide enough to carry one back.
const haulCorridor = `
%%%%%%%%%%%%%%
%1 ...  ... 2%
%%%%%%%%%%%%%%
`

func newState(t *testing.T, text string) *GameState {
	t.Helper()
	l, err := ParseLayout(text)
	require.NoError(t, err)
	return NewGameState(l)
}

func at(x, y int) Position {
	return Cell{X: x, Y: y}.Position()
}

func TestLegalActions(t *testing.T) {
	s := newState(t, corridor)

	require.Equal(t, []Action{East, Stop}, s.LegalActions(0))
	require.Equal(t, []Action{West, Stop}, s.LegalActions(1))

	hidden := s.WithAgent(1, AgentState{Known: false})
	require.Empty(t, hidden.LegalActions(1), "Agents with unknown positions should have no legal actions")
}

func TestSuccessor(t *testing.T) {
	t.Run("moving leaves the original untouched", func(t *testing.T) {
		s := newState(t, corridor)

		next := s.Successor(0, East).(*GameState)

		require.Equal(t, at(2, 1), next.Agent(0).Position)
		require.Equal(t, East, next.Agent(0).Facing)
		require.Equal(t, at(1, 1), s.Agent(0).Position, "State should be immutable")
		require.Equal(t, Stop, s.Agent(0).Facing, "State should be immutable")
	})

	t.Run("stopping keeps the facing direction", func(t *testing.T) {
		s := newState(t, corridor).Successor(0, East).(*GameState)

		next := s.Successor(0, Stop)

		require.Equal(t, at(2, 1), next.Agent(0).Position)
		require.Equal(t, East, next.Agent(0).Facing)
	})

	t.Run("panics on illegal action", func(t *testing.T) {
		s := newState(t, corridor)

		require.Panics(t, func() {
			s.Successor(0, North)
		}, "Should panic when walking into a wall")
	})

	t.Run("capsule scares the opponents", func(t *testing.T) {
		s := newState(t, capsuleCorridor).WithAgent(0, AgentState{Position: at(4, 1), Known: true, Facing: East})

		next := s.Successor(0, East).(*GameState)

		require.True(t, next.Agent(0).Pacman, "Agent should be a pacman on the opponent's half")
		require.Equal(t, ScaredTime, next.Agent(1).ScaredTimer)
		require.Empty(t, next.Capsules())

		next = next.Successor(1, West).(*GameState)
		require.Equal(t, ScaredTime-1, next.Agent(1).ScaredTimer, "Scared timer should tick down on the agent's own moves")
	})

	t.Run("carrying food home scores it", func(t *testing.T) {
		s := newState(t, capsuleCorridor).WithAgent(0, AgentState{Position: at(5, 1), Known: true, Pacman: true})

		s = s.Successor(0, East).(*GameState)
		require.Equal(t, 1, s.Carrying(0))
		require.Empty(t, s.Food(Blue))
		require.Equal(t, 0, s.Score(Red), "Food should only score once home")

		s = s.Successor(0, West).(*GameState)
		s = s.Successor(0, West).(*GameState)

		require.False(t, s.Agent(0).Pacman)
		require.Equal(t, 0, s.Carrying(0))
		require.Equal(t, 1, s.Score(Red))
		require.Equal(t, -1, s.Score(Blue))
		require.Len(t, s.Food(Red), 1, "Agents should not eat food on their own half")
	})

	t.Run("ghost captures pacman", func(t *testing.T) {
		s := newState(t, corridor).WithAgent(0, AgentState{Position: at(5, 1), Known: true, Pacman: true, Facing: East})
		s = s.Successor(0, East).(*GameState)
		require.Equal(t, 1, s.Carrying(0))

		s = s.Successor(1, West).(*GameState)
		s = s.Successor(1, West).(*GameState)

		require.Equal(t, at(1, 1), s.Agent(0).Position, "Captured pacman should respawn at its start")
		require.False(t, s.Agent(0).Pacman)
		require.Equal(t, Stop, s.Agent(0).Facing)
		require.Equal(t, 0, s.Carrying(0))
		require.Equal(t, []Cell{{X: 6, Y: 1}}, s.Food(Blue), "Carried food should be dropped back")
		require.Equal(t, at(6, 1), s.Agent(1).Position)
	})

	t.Run("pacman eats scared ghost", func(t *testing.T) {
		s := newState(t, corridor).WithAgent(0, AgentState{Position: at(5, 1), Known: true, Pacman: true, Facing: East})
		s = s.Successor(0, East).(*GameState)
		s = s.WithAgent(1, AgentState{Position: at(7, 1), Known: true, ScaredTimer: 10, Facing: West})

		s = s.Successor(1, West).(*GameState)

		require.Equal(t, at(8, 1), s.Agent(1).Position, "Scared ghost should respawn at its start")
		require.Equal(t, 0, s.Agent(1).ScaredTimer)
		require.Equal(t, at(6, 1), s.Agent(0).Position)
		require.Equal(t, 1, s.Carrying(0))
	})
}

func TestObserve(t *testing.T) {
	s := NewGameState(CreateLayout())

	view := s.Observe(Red)
	require.False(t, view.Agent(1).Known, "Distant opponents should be hidden")
	require.Equal(t, Position{}, view.Agent(1).Position)
	require.True(t, view.Agent(2).Known, "Teammates should always be visible")
	require.True(t, s.Agent(1).Known, "Observing should not change the full state")

	near := s.WithAgent(1, AgentState{Position: at(4, 1), Known: true, Pacman: true})
	view = near.Observe(Red)
	require.True(t, view.Agent(1).Known)
	require.Equal(t, at(4, 1), view.Agent(1).Position)
}

func TestOutcome(t *testing.T) {
	s := NewGameState(CreateLayout())

	require.False(t, s.IsOver())
	require.Equal(t, "", s.Winner())
	require.Equal(t, "red", s.WithScore(Red, 3).Winner())

	blue := s.WithScore(Blue, 2)
	require.Equal(t, "blue", blue.Winner())
	require.Equal(t, -2, blue.Score(Red))

	l, err := ParseLayout(corridor)
	require.NoError(t, err)
	require.True(t, NewGameState(l).IsOver(), "Game should be over once a side has no more than MinFood")

	t.Run("ends once the last haul is banked", func(t *testing.T) {
		s := newState(t, haulCorridor)
		for i := 0; i < 7; i++ {
			s = s.Successor(0, East).(*GameState)
		}
		require.Len(t, s.Food(Blue), MinFood)
		require.Equal(t, 1, s.Carrying(0))
		require.False(t, s.IsOver(), "Food still carried should keep the game going")

		s = s.Successor(0, West).(*GameState)
		require.True(t, s.Agent(0).Pacman)
		require.False(t, s.IsOver())

		s = s.Successor(0, West).(*GameState)
		require.Zero(t, s.Carrying(0))
		require.Equal(t, 1, s.Score(Red))
		require.True(t, s.IsOver())
		require.Equal(t, "red", s.Winner())
	})

	t.Run("food dropped on capture reopens the side", func(t *testing.T) {
		s := newState(t, haulCorridor)
		for i := 0; i < 7; i++ {
			s = s.Successor(0, East).(*GameState)
		}
		for i := 0; i < 4; i++ {
			s = s.Successor(1, West).(*GameState)
		}

		require.Equal(t, at(1, 1), s.Agent(0).Position, "Pacman should be sent home")
		require.Len(t, s.Food(Blue), 3)
		require.False(t, s.IsOver())
	})
}

func TestPosition(t *testing.T) {
	require.True(t, at(3, 2).OnLattice())
	half := Position{X: 3.5, Y: 2}
	require.False(t, half.OnLattice())
	require.Equal(t, Cell{X: 4, Y: 2}, half.Nearest())
	require.Equal(t, South, North.Reverse())
	require.Equal(t, Stop, Stop.Reverse(), "Stop should be its own reverse")
}
