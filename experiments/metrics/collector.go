package metrics

import (
	"time"
)

// AgentConfig describes one agent taking part in an experiment.
type AgentConfig struct {
	Team           string
	Index          int
	Kind           string
	ScoreThreshold int
	CarryCap       int
}

type DecisionMetric struct {
	Tick     int
	Agent    int // Agent index
	Role     string
	Action   string
	Carried  int
	Endgame  bool
	Fallback bool // Engine replaced the agent's choice with Stop
	Duration time.Duration
}

type GameMetric struct {
	Winner    string // Team name, "" on a tie
	Score     int    // From red's perspective
	Ticks     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type Collector interface {
	Start()
	AddDecision(metric DecisionMetric)
	Complete() []DecisionMetric
}

type collector struct {
	startTime time.Time
	decisions []DecisionMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.decisions = nil
}

func (m *collector) AddDecision(metric DecisionMetric) {
	m.decisions = append(m.decisions, metric)
}

func (m *collector) Complete() []DecisionMetric {
	decisions := m.decisions
	m.decisions = nil
	return decisions
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                     {}
func (m *dummyCollector) AddDecision(DecisionMetric) {}
func (m *dummyCollector) Complete() []DecisionMetric { return nil }
