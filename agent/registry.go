package agent

import (
	"errors"
	"fmt"
	"sort"

	"capture/game"
)

// Agent kinds.
const (
	Hybrid1 = "hybrid1"
	Hybrid2 = "hybrid2"
)

// ErrUnknownKind is returned for kinds missing from the registry.
var ErrUnknownKind = errors.New("unknown agent kind")

// Constructor builds an agent of one registered kind.
type Constructor func(index int, dist game.Distancer, options ...Option) *Agent

var registry = map[string]Constructor{
	Hybrid1: NewHybrid1,
	Hybrid2: NewHybrid2,
}

// NewHybrid1 plays offense until the team leads by 18 or it carries more
// than 2 food.
func NewHybrid1(index int, dist game.Distancer, options ...Option) *Agent {
	return newAgent(Hybrid1, index, Config{ScoreThreshold: 18, CarryCap: 2}, dist, options...)
}

// NewHybrid2 is the more cautious partner: it settles at a lead of 10 and
// carries up to 3 food.
func NewHybrid2(index int, dist game.Distancer, options ...Option) *Agent {
	return newAgent(Hybrid2, index, Config{ScoreThreshold: 10, CarryCap: 3}, dist, options...)
}

// Kinds lists the registered agent kinds in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for kind := range registry {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// New builds an agent of the named kind.
func New(kind string, index int, dist game.Distancer, options ...Option) (*Agent, error) {
	constructor, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return constructor(index, dist, options...), nil
}

// CreateTeam builds the two agents of a team. Empty kinds default to
// Hybrid1 and Hybrid2.
func CreateTeam(firstIndex, secondIndex int, dist game.Distancer, first, second string, options ...Option) ([]*Agent, error) {
	if first == "" {
		first = Hybrid1
	}
	if second == "" {
		second = Hybrid2
	}
	a, err := New(first, firstIndex, dist, options...)
	if err != nil {
		return nil, err
	}
	b, err := New(second, secondIndex, dist, options...)
	if err != nil {
		return nil, err
	}
	return []*Agent{a, b}, nil
}
