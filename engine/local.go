package engine

import (
	"errors"
	"fmt"
	"time"

	"capture/experiments/metrics"
	"capture/game"
	"capture/utils"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State    *game.GameState
	Players  []Player // Indexed by agent index
	budget   time.Duration
	maxTicks int
	metrics  metrics.Collector
}

func LocalEngine(layout *game.Layout, players []Player, options ...Option) *Engine {
	if len(players) != len(layout.Starts) {
		panic("number of players does not match number of starts in the layout")
	}
	if len(players) < 2 {
		panic("need at least two players")
	}

	e := &Engine{ // Default values
		State:    game.NewGameState(layout),
		Players:  players,
		budget:   DefaultTimeBudget,
		maxTicks: DefaultMaxTicks,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays the game until one side runs out of food or the tick limit is
// reached. Agents take turns in index order.
func (e *Engine) Run() (metrics.GameMetric, error) {
	start := time.Now()
	e.metrics.Start()

	for i, p := range e.Players {
		view := e.State.Observe(game.TeamOf(i))
		if err := p.OnEpisodeStart(view); err != nil {
			return metrics.GameMetric{}, fmt.Errorf("starting agent %d: %w", i, err)
		}
	}
	log.Info().Int("agents", len(e.Players)).Int("max_ticks", e.maxTicks).Msg("game started")

	tick := 0
	for !e.State.IsOver() && tick < e.maxTicks {
		index := tick % len(e.Players)
		if err := e.turn(tick, index); err != nil {
			return metrics.GameMetric{}, err
		}
		tick++
	}

	end := time.Now()
	gm := metrics.GameMetric{
		Winner:    e.State.Winner(),
		Score:     e.State.Score(game.Red),
		Ticks:     tick,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
	log.Info().Str("winner", gm.Winner).Int("score", gm.Score).Int("ticks", tick).Msg("game over")
	return gm, nil
}

// turn asks one agent for its action. Errors, overruns and illegal actions
// fall back to Stop; a disconnected board aborts the game.
func (e *Engine) turn(tick, index int) error {
	player := e.Players[index]
	view := e.State.Observe(game.TeamOf(index))

	started := time.Now()
	action, err := player.ChooseAction(view)
	elapsed := time.Since(started)

	fallback := false
	switch {
	case errors.Is(err, game.ErrUnreachable):
		return fmt.Errorf("agent %d at tick %d: %w", index, tick, err)
	case err != nil:
		log.Warn().Err(err).Int("agent", index).Int("tick", tick).Msg("agent failed, stopping instead")
		fallback = true
	case elapsed > e.budget:
		log.Warn().Dur("elapsed", elapsed).Dur("budget", e.budget).Int("agent", index).Msg("agent over time budget, stopping instead")
		fallback = true
	case !utils.Contains(e.State.LegalActions(index), action):
		log.Warn().Stringer("action", action).Int("agent", index).Msg("illegal action, stopping instead")
		fallback = true
	}
	if fallback {
		action = game.Stop
	}

	metric := metrics.DecisionMetric{
		Tick:     tick,
		Agent:    index,
		Action:   action.String(),
		Fallback: fallback,
		Duration: elapsed,
	}
	if r, ok := player.(reporter); ok && !fallback {
		d := r.LastDecision()
		metric.Role = d.Role.String()
		metric.Endgame = d.Endgame
		metric.Carried = r.Memory().Carried
	}
	e.metrics.AddDecision(metric)

	e.State = e.State.Successor(index, action).(*game.GameState)
	return nil
}
