package config

import (
	"fmt"
	"os"

	"capture/agent"
	"capture/game"

	"gopkg.in/yaml.v3"
)

// Team is the YAML description of one team.
type Team struct {
	Name   string      `yaml:"name"`
	Agents []AgentSpec `yaml:"agents"`
}

// AgentSpec selects a registered agent kind. Nil fields keep the kind's
// defaults.
type AgentSpec struct {
	Kind           string  `yaml:"kind"`
	ScoreThreshold *int    `yaml:"score_threshold"`
	CarryCap       *int    `yaml:"carry_cap"`
	Seed           *uint64 `yaml:"seed"`
}

// Default is the stock team: a Hybrid1 and a Hybrid2.
func Default() Team {
	return Team{
		Name:   "hybrid",
		Agents: []AgentSpec{{Kind: agent.Hybrid1}, {Kind: agent.Hybrid2}},
	}
}

func Load(path string) (Team, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Team{}, err
	}
	t, err := Parse(raw)
	if err != nil {
		return Team{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func Parse(raw []byte) (Team, error) {
	var t Team
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return Team{}, err
	}
	if len(t.Agents) == 0 {
		t.Agents = Default().Agents
	}
	if err := t.Validate(); err != nil {
		return Team{}, err
	}
	return t, nil
}

func (t Team) Validate() error {
	if len(t.Agents) != 2 {
		return fmt.Errorf("team %q needs exactly 2 agents, got %d", t.Name, len(t.Agents))
	}
	for i, spec := range t.Agents {
		if spec.Kind == "" {
			return fmt.Errorf("agent %d: missing kind", i)
		}
		if spec.ScoreThreshold != nil && *spec.ScoreThreshold < 0 {
			return fmt.Errorf("agent %d: score_threshold must not be negative", i)
		}
		if spec.CarryCap != nil && *spec.CarryCap < 0 {
			return fmt.Errorf("agent %d: carry_cap must not be negative", i)
		}
	}
	return nil
}

// Options converts the overrides into agent options.
func (s AgentSpec) Options() []agent.Option {
	var options []agent.Option
	if s.ScoreThreshold != nil {
		options = append(options, agent.WithScoreThreshold(*s.ScoreThreshold))
	}
	if s.CarryCap != nil {
		options = append(options, agent.WithCarryCap(*s.CarryCap))
	}
	if s.Seed != nil {
		options = append(options, agent.WithSeed(*s.Seed))
	}
	return options
}

// Build creates the team's agents for the given indices, in order. Extra
// options are applied after each spec's own overrides.
func (t Team) Build(indices []int, dist game.Distancer, extra ...agent.Option) ([]*agent.Agent, error) {
	if len(indices) != len(t.Agents) {
		return nil, fmt.Errorf("team %q has %d agents for %d indices", t.Name, len(t.Agents), len(indices))
	}
	agents := make([]*agent.Agent, len(indices))
	for i, spec := range t.Agents {
		options := append(spec.Options(), extra...)
		a, err := agent.New(spec.Kind, indices[i], dist, options...)
		if err != nil {
			return nil, fmt.Errorf("team %q: %w", t.Name, err)
		}
		agents[i] = a
	}
	return agents, nil
}
