package agent

import (
	"testing"

	"capture/game"

	"github.com/stretchr/testify/require"
)

// Five-cell red corridor with food beyond the midline.
const corridorBoard = `
%%%%%%%%%%%%
%1   2    .%
%%%%%%%%%%%%
`

// Long corridor for placing a ghost at chosen distances.
const ghostBoard = `
%%%%%%%%%%%%%%%%%%%%
%1          .     2%
%%%%%%%%%%%%%%%%%%%%
`

// Open board whose food is mirrored around the agent's row.
const mirroredBoard = `
%%%%%%%%%%
%    .  .%
%   1   2%
%    .  .%
%%%%%%%%%%
`

// Three opponent food cells, one right across the midline.
const borderBoard = `
%%%%%%%%%%
%   1. . %
%.     .2%
%%%%%%%%%%
`

// Two opponent food cells left.
const endgameBoard = `
%%%%%%%%%%
%1     ..%
%       2%
%%%%%%%%%%
`

// A row of five opponent food cells.
const foodRowBoard = `
%%%%%%%%%%%%%%
%1      .....%
%           2%
%%%%%%%%%%%%%%
`

// Opponent food walled off from the rest of the board.
const pocketBoard = `
%%%%%%%%%%
%1  2%...%
%%%%%%%%%%
`

func board(t *testing.T, text string) (*game.GameState, *game.MazeDistancer) {
	t.Helper()
	l, err := game.ParseLayout(text)
	require.NoError(t, err)
	return game.NewGameState(l), game.NewMazeDistancer(l)
}

func at(x, y int) game.Position {
	return game.Cell{X: x, Y: y}.Position()
}

func hidden() game.AgentState {
	return game.AgentState{Known: false}
}

// halfStep animates moves in two engine steps: the first leaves the agent
// halfway between cells.
type halfStep struct {
	*game.GameState
	mid    bool
	index  int
	action game.Action
	steps  *int
}

func (h halfStep) Successor(index int, action game.Action) game.State {
	*h.steps++
	if h.mid {
		return h.GameState.Successor(index, action)
	}
	return halfStep{GameState: h.GameState, mid: true, index: index, action: action, steps: h.steps}
}

func (h halfStep) Agent(index int) game.AgentState {
	a := h.GameState.Agent(index)
	if h.mid && index == h.index {
		dx, dy := h.action.Vector()
		a.Position.X += float64(dx) / 2
		a.Position.Y += float64(dy) / 2
	}
	return a
}
