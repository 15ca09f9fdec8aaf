package agent

import "capture/game"

// Memory is the only agent state that outlives a tick. Decision functions
// take it by value and return the updated copy.
type Memory struct {
	Home          game.Cell // Start cell, set once when the episode starts
	HomeSet       bool
	Carried       int // Food taken since the agent last stood on its own side
	LastFoodCount int // Opponent-side food remaining at the previous tick
	Role          Role
}

// NewMemory starts an episode for an agent standing at home with food
// remaining on the opponent's side.
func NewMemory(home game.Cell, food int) Memory {
	return Memory{
		Home:          home,
		HomeSet:       true,
		LastFoodCount: food,
		Role:          Defensive,
	}
}

// Track credits the agent with any drop in the opponent-side food count
// since the previous tick.
func (m Memory) Track(remaining int) Memory {
	if eaten := m.LastFoodCount - remaining; eaten > 0 {
		m.Carried += eaten
	}
	m.LastFoodCount = remaining
	return m
}

// Bank clears the carried count once the agent is back on its own side.
func (m Memory) Bank() Memory {
	m.Carried = 0
	return m
}
