package agent

// Role decides which weight tables an agent plays with.
type Role int

const (
	Defensive Role = iota
	Offensive
)

func (r Role) String() string {
	if r == Offensive {
		return "offensive"
	}
	return "defensive"
}

// RoleInputs are the signals the role is resolved from each tick.
type RoleInputs struct {
	Score       int  // Team score
	Threshold   int  // Score at which the agent settles into defense
	Carried     int  // Food carried since last on the own side
	CarryCap    int  // Carried food above which the agent heads back
	ScaredTimer int  // Own vulnerability timer
	OnOwnSide   bool // Whether the agent stands on its own half
	Invaders    int  // Visible opponents on the own half
}

// ResolveRole applies the transition rules in order; the first match wins.
// Being scared suppresses the score and carry rule, since a scared ghost
// cannot defend.
func ResolveRole(in RoleInputs) Role {
	carried := in.Carried
	if in.OnOwnSide {
		carried = 0
	}
	if (in.Score >= in.Threshold || carried > in.CarryCap) && in.ScaredTimer == 0 {
		return Defensive
	}
	if in.OnOwnSide && in.Invaders > 0 {
		return Defensive
	}
	return Offensive
}
