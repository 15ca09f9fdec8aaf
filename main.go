package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"capture/agent"
	"capture/config"
	"capture/engine"
	"capture/experiments/metrics"
	"capture/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	layoutPath := flag.String("layout", "", "Layout file (default: built-in board)")
	redPath := flag.String("red", "", "Red team YAML config (default: hybrid1 + hybrid2)")
	bluePath := flag.String("blue", "", "Blue team YAML config (default: hybrid1 + hybrid2)")
	games := flag.Int("games", 1, "Number of games to play")
	seed := flag.Uint64("seed", 0, "Seed for tie-breaking, 0 for time-based")
	maxTicks := flag.Int("max-ticks", engine.DefaultMaxTicks, "Maximum agent turns per game")
	budget := flag.Duration("budget", engine.DefaultTimeBudget, "Time budget per decision")
	out := flag.String("out", "", "Directory for CSV records, empty to skip")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	layout, err := loadLayout(*layoutPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load layout")
	}
	red, err := loadTeam(*redPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load red team")
	}
	blue, err := loadTeam(*bluePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load blue team")
	}

	m := match{
		layout:   layout,
		red:      red,
		blue:     blue,
		maxTicks: *maxTicks,
		budget:   *budget,
		seed:     *seed,
	}
	if err := m.run(*games, *out); err != nil {
		log.Fatal().Err(err).Msg("match failed")
	}
}

func loadLayout(path string) (*game.Layout, error) {
	if path == "" {
		return game.CreateLayout(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return game.ParseLayout(string(raw))
}

func loadTeam(path string) (config.Team, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

type match struct {
	layout   *game.Layout
	red      config.Team
	blue     config.Team
	maxTicks int
	budget   time.Duration
	seed     uint64
}

func (m match) run(games int, out string) error {
	dist := game.NewMazeDistancer(m.layout)
	gameRecords := []metrics.GameRecord{}
	decisionRecords := []metrics.DecisionRecord{}
	var configs []metrics.AgentConfig

	log.Info().Msgf("starting %d games between %s and %s...", games, m.red.Name, m.blue.Name)
	for g := 1; g <= games; g++ {
		var extra []agent.Option
		if m.seed != 0 {
			extra = append(extra, agent.WithSeed(m.seed+uint64(g)*100))
		}
		players, agentConfigs, err := m.players(dist, extra)
		if err != nil {
			return err
		}
		configs = agentConfigs

		collector := metrics.NewCollector()
		e := engine.LocalEngine(m.layout, players,
			engine.WithMaxTicks(m.maxTicks),
			engine.WithTimeBudget(m.budget),
			engine.WithMetrics(collector),
		)
		gm, err := e.Run()
		if err != nil {
			return fmt.Errorf("game %d: %w", g, err)
		}
		gameRecords = append(gameRecords, metrics.GameRecord{ID: g, Red: m.red.Name, Blue: m.blue.Name, GameMetric: gm})
		for _, dm := range collector.Complete() {
			decisionRecords = append(decisionRecords, metrics.DecisionRecord{Game: g, DecisionMetric: dm})
		}
		log.Info().Msgf("completed game %d of %d with winner: %q", g, games, gm.Winner)
	}

	if out == "" {
		return nil
	}
	writer, err := metrics.NewWriter(out, "matches")
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteDecisionRecords(decisionRecords); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored match records")
	return nil
}

// players builds both teams, placing red agents on even indices and blue
// agents on odd ones.
func (m match) players(dist game.Distancer, extra []agent.Option) ([]engine.Player, []metrics.AgentConfig, error) {
	n := len(m.layout.Starts)
	players := make([]engine.Player, n)
	var configs []metrics.AgentConfig
	for _, side := range []struct {
		team game.Team
		cfg  config.Team
	}{{game.Red, m.red}, {game.Blue, m.blue}} {
		var indices []int
		for i := 0; i < n; i++ {
			if game.TeamOf(i) == side.team {
				indices = append(indices, i)
			}
		}
		agents, err := side.cfg.Build(indices, dist, extra...)
		if err != nil {
			return nil, nil, err
		}
		for _, a := range agents {
			players[a.Index()] = a
			configs = append(configs, metrics.AgentConfig{
				Team:           side.team.String(),
				Index:          a.Index(),
				Kind:           a.Kind(),
				ScoreThreshold: a.Config().ScoreThreshold,
				CarryCap:       a.Config().CarryCap,
			})
		}
	}
	return players, configs, nil
}
