package engine

import (
	"time"

	"capture/agent"
	"capture/experiments/metrics"
	"capture/game"
)

const (
	DefaultMaxTicks   = 1200
	DefaultTimeBudget = time.Second
)

// Player is the contract an agent offers the engine.
type Player interface {
	OnEpisodeStart(state game.State) error
	ChooseAction(state game.State) (game.Action, error)
}

// reporter is implemented by players that expose their last decision for
// metrics.
type reporter interface {
	LastDecision() agent.Decision
	Memory() agent.Memory
}

// Option configures an Engine. Invalid values keep the defaults.
type Option func(e *Engine)

// WithTimeBudget sets the time an agent may spend on one decision before the
// engine substitutes Stop.
func WithTimeBudget(budget time.Duration) Option {
	return func(e *Engine) {
		if budget > 0 {
			e.budget = budget
		}
	}
}

// WithMaxTicks bounds the number of agent turns in a game.
func WithMaxTicks(ticks int) Option {
	return func(e *Engine) {
		if ticks > 0 {
			e.maxTicks = ticks
		}
	}
}

// WithMetrics records every decision in collector.
func WithMetrics(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}
