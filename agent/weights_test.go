package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectWeights(t *testing.T) {
	tests := []struct {
		name      string
		role      Role
		intruding bool
		scared    int
		want      Weights
	}{
		{"defending while intruding", Defensive, true, 0, defensiveIntrudingWeights},
		{"defending while intruding and scared", Defensive, true, 7, defensiveIntrudingWeights},
		{"guarding", Defensive, false, 0, defensiveGuardingWeights},
		{"guarding while scared", Defensive, false, 7, fleeWeights},
		{"attacking from home", Offensive, false, 0, offensiveGuardingWeights},
		{"attacking from home while scared", Offensive, false, 7, offensiveGuardingWeights},
		{"attacking as an intruder", Offensive, true, 0, offensiveIntrudingWeights},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SelectWeights(tt.role, tt.intruding, tt.scared))
		})
	}
}

func TestWeightValues(t *testing.T) {
	t.Run("guarding table", func(t *testing.T) {
		w := SelectWeights(Defensive, false, 0)
		require.Equal(t, -5000.0, w[NumInvaders])
		require.Equal(t, 100.0, w[OnDefense])
		require.Equal(t, -500.0, w[InvaderDistance])
		require.Equal(t, -200.0, w[Stop])
		require.Equal(t, -1.0, w[Reverse])
		require.Equal(t, -50.0, w[DistanceEnemyMostFood])
	})

	t.Run("flee table", func(t *testing.T) {
		require.Equal(t, Weights{Flee: -500, Stop: -200, Reverse: -1}, SelectWeights(Defensive, false, 1))
	})

	t.Run("defensive intruding table", func(t *testing.T) {
		w := SelectWeights(Defensive, true, 0)
		require.Equal(t, -30.0, w[DistanceToStart])
		require.Equal(t, -500.0, w[GhostReallyClose])
		require.Equal(t, 100.0, w[GhostClose])
		require.Equal(t, -100.0, w[GetOutOfThere])
		require.Equal(t, -100.0, w[DistanceEnemyMostFood])
		require.NotContains(t, w, NumInvaders)
	})

	t.Run("offensive tables differ only in ghost caution", func(t *testing.T) {
		home := SelectWeights(Offensive, false, 0)
		away := SelectWeights(Offensive, true, 0)
		for _, w := range []Weights{home, away} {
			require.Equal(t, 100.0, w[SuccessorScore])
			require.Equal(t, -2.0, w[DistanceToFood])
			require.Equal(t, -200.0, w[Stop])
			require.Equal(t, -100.0, w[GetOutOfThere])
			require.Equal(t, -500.0, w[DistanceToScaredGhost])
		}
		require.Equal(t, -200.0, home[GhostReallyClose])
		require.Equal(t, 50.0, home[GhostClose])
		require.Equal(t, 20.0, home[GhostFar])
		require.Equal(t, -2000.0, away[GhostReallyClose])
		require.Equal(t, 200.0, away[GhostClose])
		require.Equal(t, 500.0, away[GhostFar])
	})

	t.Run("tables cannot be changed through the result", func(t *testing.T) {
		w := SelectWeights(Defensive, false, 1)
		w[Flee] = 1

		require.Equal(t, -500.0, SelectWeights(Defensive, false, 1)[Flee])
	})
}
