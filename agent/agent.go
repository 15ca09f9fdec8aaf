package agent

import (
	"errors"
	"fmt"
	"time"

	"capture/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ErrEpisodeStarted is returned when an agent is started a second time.
var ErrEpisodeStarted = errors.New("episode already started")

// Option configures an Agent. Options run after the kind's defaults.
type Option func(a *Agent)

// WithScoreThreshold overrides the kind's score threshold. Negative values
// are ignored.
func WithScoreThreshold(threshold int) Option {
	return func(a *Agent) {
		if threshold >= 0 {
			a.config.ScoreThreshold = threshold
		}
	}
}

// WithCarryCap overrides the kind's carry cap. Negative values are ignored.
func WithCarryCap(limit int) Option {
	return func(a *Agent) {
		if limit >= 0 {
			a.config.CarryCap = limit
		}
	}
}

// WithSeed makes tie-breaking reproducible. Agents with different indices
// draw different streams from the same seed.
func WithSeed(seed uint64) Option {
	return func(a *Agent) {
		a.rng = rand.New(rand.NewSource(seed + uint64(a.index)))
	}
}

// Agent plays one index of a team with the reflex policy.
type Agent struct {
	kind   string
	index  int
	config Config
	dist   game.Distancer
	rng    *rand.Rand
	memory Memory
	last   Decision
}

func newAgent(kind string, index int, config Config, dist game.Distancer, options ...Option) *Agent {
	if dist == nil {
		panic("agent needs a distancer")
	}
	a := &Agent{ // Default values
		kind:   kind,
		index:  index,
		config: config,
		dist:   dist,
		rng:    rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *Agent) Kind() string           { return a.kind }
func (a *Agent) Index() int             { return a.index }
func (a *Agent) Config() Config         { return a.config }
func (a *Agent) Memory() Memory         { return a.memory }
func (a *Agent) LastDecision() Decision { return a.last }

// OnEpisodeStart records the agent's start cell. It may only be called once.
func (a *Agent) OnEpisodeStart(s game.State) error {
	if a.memory.HomeSet {
		return fmt.Errorf("agent %d: %w", a.index, ErrEpisodeStarted)
	}
	home := s.Agent(a.index).Position.Nearest()
	food := len(s.Food(game.TeamOf(a.index).Opponent()))
	a.memory = NewMemory(home, food)
	log.Debug().Int("agent", a.index).Str("kind", a.kind).Interface("home", home).Msg("episode started")
	return nil
}

// ChooseAction decides this tick's action and keeps the updated memory.
func (a *Agent) ChooseAction(s game.State) (game.Action, error) {
	decision, memory, err := Decide(s, a.index, a.memory, a.config, a.dist, a.rng)
	if err != nil {
		return game.Stop, err
	}
	a.memory = memory
	a.last = decision
	log.Debug().
		Int("agent", a.index).
		Stringer("role", decision.Role).
		Stringer("action", decision.Action).
		Bool("endgame", decision.Endgame).
		Int("carried", memory.Carried).
		Msg("chose action")
	return decision.Action, nil
}
