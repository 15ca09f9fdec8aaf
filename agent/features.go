package agent

import (
	"fmt"

	"capture/game"
)

// Feature names.
const (
	OnDefense             = "on_defense"
	NumInvaders           = "num_invaders"
	InvaderDistance       = "invader_distance"
	Flee                  = "flee"
	DistanceToStart       = "distance_to_start"
	Stop                  = "stop"
	Reverse               = "reverse"
	SuccessorScore        = "successor_score"
	DistanceToFood        = "distance_to_food"
	ScaredGhostTime       = "scared_ghost_time"
	DistanceToScaredGhost = "distance_to_scared_ghost"
	GhostReallyClose      = "ghost_really_close"
	GhostClose            = "ghost_close"
	GhostFar              = "ghost_far"
	GetOutOfThere         = "getoutofthere"
)

const (
	fleeRange       = 10 // Invaders closer than this make a scared ghost flee
	scaredThreshold = 5  // Ghosts scared for longer than this are prey
	reallyClose     = 3
	nearby          = 8
)

// Features maps feature names to values. Unset features are zero.
type Features map[string]float64

// successor applies action once, and once more if the agent ends up between
// two cells.
func successor(s game.State, index int, action game.Action) game.State {
	next := s.Successor(index, action)
	if !next.Agent(index).Position.OnLattice() {
		return next.Successor(index, action)
	}
	return next
}

// Extract computes the feature vector for taking action in s. Opponents
// with unknown positions are left out of every distance.
func Extract(s game.State, index int, action game.Action, mem Memory, dist game.Distancer) (Features, error) {
	f := Features{}
	next := successor(s, index, action)
	me := next.Agent(index)
	pos := me.Position.Nearest()
	team := game.TeamOf(index)

	if !me.Pacman {
		f[OnDefense] = 1
	}

	invaders := 0
	nearest := -1
	for _, o := range game.Opponents(next, index) {
		a := next.Agent(o)
		if !a.Pacman || !a.Known {
			continue
		}
		invaders++
		d, err := dist.Distance(pos, a.Position.Nearest())
		if err != nil {
			return nil, fmt.Errorf("distance to invader %d: %w", o, err)
		}
		nearest = closest(nearest, d)
	}
	f[NumInvaders] = float64(invaders)
	if nearest >= 0 {
		f[InvaderDistance] = float64(nearest)
		if nearest < fleeRange {
			f[Flee] = 1
		}
	}

	if me.Pacman {
		d, err := dist.Distance(pos, mem.Home)
		if err != nil {
			return nil, fmt.Errorf("distance to start: %w", err)
		}
		f[DistanceToStart] = float64(d)
	}

	if action == game.Stop {
		f[Stop] = 1
	}
	if action == s.Agent(index).Facing.Reverse() {
		f[Reverse] = 1
	}

	food := next.Food(team.Opponent())
	f[SuccessorScore] = -float64(len(food))
	if len(food) > 0 {
		nearestFood := -1
		for _, c := range food {
			d, err := dist.Distance(pos, c)
			if err != nil {
				return nil, fmt.Errorf("distance to food: %w", err)
			}
			nearestFood = closest(nearestFood, d)
		}
		f[DistanceToFood] = float64(nearestFood)
	}

	if err := ghostFeatures(f, s, index, pos, dist); err != nil {
		return nil, err
	}
	return f, nil
}

// ghostFeatures describes the opponents defending their half in the current
// snapshot, measured from the agent's successor cell. Ghosts scared for long
// enough are targets, the rest are threats.
func ghostFeatures(f Features, s game.State, index int, pos game.Cell, dist game.Distancer) error {
	maxScared := 0
	prey, threat := -1, -1
	for _, o := range game.Opponents(s, index) {
		a := s.Agent(o)
		if a.Pacman {
			continue
		}
		maxScared = max(maxScared, a.ScaredTimer)
		if !a.Known {
			continue
		}
		d, err := dist.Distance(pos, a.Position.Nearest())
		if err != nil {
			return fmt.Errorf("distance to ghost %d: %w", o, err)
		}
		if a.ScaredTimer > scaredThreshold {
			prey = closest(prey, d)
		} else {
			threat = closest(threat, d)
		}
	}

	f[ScaredGhostTime] = float64(maxScared)
	if prey >= 0 {
		f[DistanceToScaredGhost] = float64(prey)
	}
	switch {
	case threat < 0:
	case threat < reallyClose:
		f[GhostReallyClose] = float64(reallyClose - threat)
		f[GetOutOfThere] = 1
	case threat < nearby:
		f[GhostClose] = float64(threat)
		f[GetOutOfThere] = 1
	default:
		f[GhostFar] = float64(threat)
	}
	return nil
}

// closest keeps the smaller of two distances, treating a negative best as
// unset.
func closest(best, d int) int {
	if best < 0 || d < best {
		return d
	}
	return best
}
