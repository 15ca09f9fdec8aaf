package game

import (
	"fmt"
	"maps"

	"capture/utils"
)

const (
	ScaredTime = 40 // Ticks a team stays scared after its capsule is eaten
	SightRange = 5  // Manhattan distance within which opponents are observed
	MinFood    = 2  // A side is cleared once no more food than this is left and none is carried
)

type agent struct {
	AgentState
	start   Cell
	carried []Cell // Food picked up and not yet returned home
}

// GameState represents the dynamic state of a capture game at one tick. The
// layout is static and shared between copies; everything else is copied on
// Successor.
type GameState struct {
	layout   *Layout
	food     map[Cell]bool
	capsules map[Cell]bool
	agents   []agent
	score    int // From red's perspective
}

// NewGameState places every agent at its start with the layout's food and
// capsules.
func NewGameState(l *Layout) *GameState {
	gs := &GameState{
		layout:   l,
		food:     make(map[Cell]bool, len(l.Food)),
		capsules: make(map[Cell]bool, len(l.Capsules)),
		agents:   make([]agent, len(l.Starts)),
	}
	for _, c := range l.Food {
		gs.food[c] = true
	}
	for _, c := range l.Capsules {
		gs.capsules[c] = true
	}
	for i, start := range l.Starts {
		gs.agents[i] = agent{
			AgentState: AgentState{Position: start.Position(), Known: true, Facing: Stop},
			start:      start,
		}
	}
	return gs
}

func (gs *GameState) Copy() *GameState {
	agents := make([]agent, len(gs.agents))
	for i, a := range gs.agents {
		agents[i] = a
		agents[i].carried = append([]Cell(nil), a.carried...)
	}
	return &GameState{
		layout:   gs.layout, // Layout is immutable
		food:     maps.Clone(gs.food),
		capsules: maps.Clone(gs.capsules),
		agents:   agents,
		score:    gs.score,
	}
}

func (gs *GameState) Layout() *Layout { return gs.layout }
func (gs *GameState) Width() int      { return gs.layout.Width }
func (gs *GameState) Height() int     { return gs.layout.Height }
func (gs *GameState) NumAgents() int  { return len(gs.agents) }

func (gs *GameState) Agent(index int) AgentState {
	return gs.agents[index].AgentState
}

func (gs *GameState) Score(team Team) int {
	if team == Red {
		return gs.score
	}
	return -gs.score
}

func (gs *GameState) Food(side Team) []Cell {
	var cells []Cell
	for _, c := range gs.layout.OpenCells() {
		if gs.food[c] && OnSide(side, gs.layout.Width, c) {
			cells = append(cells, c)
		}
	}
	return cells
}

func (gs *GameState) Capsules() []Cell {
	var cells []Cell
	for _, c := range gs.layout.OpenCells() {
		if gs.capsules[c] {
			cells = append(cells, c)
		}
	}
	return cells
}

// Carrying returns how much uncashed food the agent holds.
func (gs *GameState) Carrying(index int) int {
	return len(gs.agents[index].carried)
}

// LegalActions lists every move that does not run into a wall, followed by
// Stop. Agents with unknown positions have no legal actions.
func (gs *GameState) LegalActions(index int) []Action {
	a := gs.agents[index]
	if !a.Known {
		return nil
	}
	from := a.Position.Nearest()
	var actions []Action
	for _, action := range Actions {
		if action == Stop || !gs.layout.IsWall(from.Add(action)) {
			actions = append(actions, action)
		}
	}
	return actions
}

func (gs *GameState) Successor(index int, action Action) State {
	if !utils.Contains(gs.LegalActions(index), action) {
		panic(fmt.Sprintf("illegal action %s for agent %d", action, index))
	}
	next := gs.Copy()
	next.move(index, action)
	return next
}

func (gs *GameState) move(index int, action Action) {
	team := TeamOf(index)
	a := &gs.agents[index]

	if a.ScaredTimer > 0 {
		a.ScaredTimer--
	}
	cell := a.Position.Nearest().Add(action)
	a.Position = cell.Position()
	if action != Stop {
		a.Facing = action
	}
	a.Pacman = !OnSide(team, gs.layout.Width, cell)

	if a.Pacman {
		if gs.food[cell] {
			delete(gs.food, cell)
			a.carried = append(a.carried, cell)
		}
		if gs.capsules[cell] {
			delete(gs.capsules, cell)
			for _, o := range gs.opponents(index) {
				gs.agents[o].ScaredTimer = ScaredTime
			}
		}
	} else if len(a.carried) > 0 {
		gs.bank(team, len(a.carried))
		a.carried = nil
	}

	gs.resolveCollisions(index)
}

func (gs *GameState) bank(team Team, food int) {
	if team == Red {
		gs.score += food
	} else {
		gs.score -= food
	}
}

// resolveCollisions settles captures between the moved agent and any known
// opponent sharing its cell.
func (gs *GameState) resolveCollisions(index int) {
	a := &gs.agents[index]
	for _, o := range gs.opponents(index) {
		opp := &gs.agents[o]
		if !opp.Known || opp.Position != a.Position {
			continue
		}
		switch {
		case a.Pacman && !opp.Pacman:
			if opp.ScaredTimer > 0 {
				gs.respawn(o)
			} else {
				gs.respawn(index)
				return
			}
		case !a.Pacman && opp.Pacman:
			if a.ScaredTimer > 0 {
				gs.respawn(index)
				return
			}
			gs.respawn(o)
		}
	}
}

// respawn sends a captured agent back to its start and drops its food back
// where it was picked up.
func (gs *GameState) respawn(index int) {
	a := &gs.agents[index]
	for _, c := range a.carried {
		gs.food[c] = true
	}
	a.carried = nil
	a.Position = a.start.Position()
	a.Pacman = false
	a.ScaredTimer = 0
	a.Facing = Stop
}

func (gs *GameState) opponents(index int) []int {
	return Opponents(gs, index)
}

// Observe returns the view of the game available to team: opponents farther
// than SightRange from every teammate lose their position.
func (gs *GameState) Observe(team Team) *GameState {
	view := gs.Copy()
	mates := Teammates(gs, team)
	for i := range view.agents {
		if TeamOf(i) == team || !view.agents[i].Known {
			continue
		}
		target := view.agents[i].Position.Nearest()
		seen := false
		for _, m := range mates {
			if gs.agents[m].Known && gs.agents[m].Position.Nearest().Manhattan(target) <= SightRange {
				seen = true
				break
			}
		}
		if !seen {
			view.agents[i].Known = false
			view.agents[i].Position = Position{}
			view.agents[i].carried = nil
		}
	}
	return view
}

// IsOver reports whether either side has been cleared.
func (gs *GameState) IsOver() bool {
	return gs.cleared(Red) || gs.cleared(Blue)
}

// cleared reports whether side is down to MinFood or less with everything
// taken from it banked. Food still carried can be dropped back on capture.
func (gs *GameState) cleared(side Team) bool {
	if len(gs.Food(side)) > MinFood {
		return false
	}
	for i, a := range gs.agents {
		if TeamOf(i) != side && len(a.carried) > 0 {
			return false
		}
	}
	return true
}

// Winner returns the leading team's name, or "" on a tie.
func (gs *GameState) Winner() string {
	switch {
	case gs.score > 0:
		return Red.String()
	case gs.score < 0:
		return Blue.String()
	}
	return ""
}

// WithAgent returns a copy of the state with agent index replaced by s.
func (gs *GameState) WithAgent(index int, s AgentState) *GameState {
	next := gs.Copy()
	next.agents[index].AgentState = s
	return next
}

// WithScore returns a copy of the state with the score set from team's
// perspective.
func (gs *GameState) WithScore(team Team, score int) *GameState {
	next := gs.Copy()
	next.score = 0
	next.bank(team, score)
	return next
}
