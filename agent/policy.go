package agent

import (
	"errors"
	"fmt"
	"math"

	"capture/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// EndgameFood is the opponent-side food count at or below which agents stop
// scoring actions and head home.
const EndgameFood = 2

var (
	ErrNoLegalAction     = errors.New("no legal action")
	ErrEpisodeNotStarted = errors.New("episode not started")
)

// Config holds the per-agent tuning of the shared policy.
type Config struct {
	ScoreThreshold int // Team score at which the agent turns defensive
	CarryCap       int // Carried food above which the agent turns defensive
}

// Decision is the outcome of one tick.
type Decision struct {
	Action  game.Action
	Role    Role
	Endgame bool                    // Chosen by the return-home override
	Scores  map[game.Action]float64 // Weighted score per legal action, nil in the endgame
}

// Decide picks the action for agent index in s. It returns the memory to
// carry into the next tick; on error the input memory is returned as is.
func Decide(s game.State, index int, mem Memory, cfg Config, dist game.Distancer, rng *rand.Rand) (Decision, Memory, error) {
	if !mem.HomeSet {
		return Decision{}, mem, ErrEpisodeNotStarted
	}
	actions := s.LegalActions(index)
	if len(actions) == 0 {
		return Decision{}, mem, fmt.Errorf("agent %d: %w", index, ErrNoLegalAction)
	}

	team := game.TeamOf(index)
	me := s.Agent(index)
	target := s.Food(team.Opponent())
	onOwnSide := game.OnSide(team, s.Width(), me.Position.Nearest())

	next := mem.Track(len(target))
	if onOwnSide {
		next = next.Bank()
	}
	role := ResolveRole(RoleInputs{
		Score:       s.Score(team),
		Threshold:   cfg.ScoreThreshold,
		Carried:     next.Carried,
		CarryCap:    cfg.CarryCap,
		ScaredTimer: me.ScaredTimer,
		OnOwnSide:   onOwnSide,
		Invaders:    visibleInvaders(s, index),
	})
	if role != next.Role {
		log.Debug().Int("agent", index).Stringer("from", next.Role).Stringer("to", role).Msg("role changed")
	}
	next.Role = role

	if len(target) <= EndgameFood {
		action, err := returnHome(s, index, actions, next.Home, dist)
		if err != nil {
			return Decision{}, mem, err
		}
		return Decision{Action: action, Role: role, Endgame: true}, next, nil
	}

	weights := SelectWeights(role, me.Pacman, me.ScaredTimer)
	scores := make(map[game.Action]float64, len(actions))
	best := math.Inf(-1)
	var candidates []game.Action
	for _, action := range actions {
		f, err := Extract(s, index, action, next, dist)
		if err != nil {
			return Decision{}, mem, fmt.Errorf("features for %s: %w", action, err)
		}
		score := f.Dot(weights)
		scores[action] = score
		switch {
		case score > best:
			best = score
			candidates = []game.Action{action}
		case score == best:
			candidates = append(candidates, action)
		}
	}

	// Random among equals so opponents cannot predict ties
	action := candidates[rng.Intn(len(candidates))]
	return Decision{Action: action, Role: role, Scores: scores}, next, nil
}

// returnHome picks the action whose successor is closest to home. Ties go
// to the first action enumerated.
func returnHome(s game.State, index int, actions []game.Action, home game.Cell, dist game.Distancer) (game.Action, error) {
	bestAction := actions[0]
	bestDist := math.MaxInt
	for _, action := range actions {
		pos := successor(s, index, action).Agent(index).Position.Nearest()
		d, err := dist.Distance(pos, home)
		if err != nil {
			return game.Stop, fmt.Errorf("distance home after %s: %w", action, err)
		}
		if d < bestDist {
			bestAction = action
			bestDist = d
		}
	}
	return bestAction, nil
}

func visibleInvaders(s game.State, index int) int {
	n := 0
	for _, o := range game.Opponents(s, index) {
		if a := s.Agent(o); a.Pacman && a.Known {
			n++
		}
	}
	return n
}
