package agent

import "maps"

// Weights maps feature names to linear coefficients.
type Weights map[string]float64

// DistanceEnemyMostFood only ever appears as a weight; no feature sets it.
const DistanceEnemyMostFood = "distance_enemy_most_food"

var (
	// Defending while on the opponent's half: get home, keep clear of ghosts.
	defensiveIntrudingWeights = Weights{
		OnDefense:             100,
		InvaderDistance:       -500,
		Stop:                  -200,
		Reverse:               -1,
		DistanceToStart:       -30,
		GhostReallyClose:      -500,
		GhostClose:            100,
		GetOutOfThere:         -100,
		DistanceEnemyMostFood: -100,
	}

	defensiveGuardingWeights = Weights{
		NumInvaders:           -5000,
		OnDefense:             100,
		InvaderDistance:       -500,
		Stop:                  -200,
		Reverse:               -1,
		DistanceEnemyMostFood: -50,
	}

	// A scared ghost can only run.
	fleeWeights = Weights{
		Flee:    -500,
		Stop:    -200,
		Reverse: -1,
	}

	offensiveGuardingWeights = Weights{
		SuccessorScore:        100,
		DistanceToFood:        -2,
		GhostReallyClose:      -200,
		GhostClose:            50,
		Stop:                  -200,
		GhostFar:              20,
		GetOutOfThere:         -100,
		DistanceToScaredGhost: -500,
	}

	offensiveIntrudingWeights = Weights{
		SuccessorScore:        100,
		DistanceToFood:        -2,
		GhostReallyClose:      -2000,
		GhostClose:            200,
		Stop:                  -200,
		GhostFar:              500,
		GetOutOfThere:         -100,
		DistanceToScaredGhost: -500,
	}
)

// SelectWeights returns a copy of the table for the agent's role, whether it
// is currently a pacman, and its own scared timer.
func SelectWeights(role Role, intruding bool, scaredTimer int) Weights {
	var w Weights
	switch {
	case role == Defensive && intruding:
		w = defensiveIntrudingWeights
	case role == Defensive && scaredTimer > 0:
		w = fleeWeights
	case role == Defensive:
		w = defensiveGuardingWeights
	case intruding:
		w = offensiveIntrudingWeights
	default:
		w = offensiveGuardingWeights
	}
	return maps.Clone(w)
}

// Dot returns the weighted sum of the features. Keys missing from either
// side contribute nothing.
func (f Features) Dot(w Weights) float64 {
	total := 0.0
	for name, value := range f {
		total += value * w[name]
	}
	return total
}
