// internal/component/status_effect.go
package component

// StatusType — тип эффекта, висящего на враге.
type StatusType int

const (
	StatusBurn StatusType = iota
	StatusFreeze
	StatusPoison
	StatusSlow
)

func (t StatusType) String() string {
	switch t {
	case StatusBurn:
		return "burn"
	case StatusFreeze:
		return "freeze"
	case StatusPoison:
		return "poison"
	case StatusSlow:
		return "slow"
	}
	return "unknown"
}

// StatusEffect is a timed condition on an enemy. At most one per type.
type StatusEffect struct {
	Type     StatusType
	Duration float64 // seconds remaining
	Damage   float64 // damage per tick, 0 for pure slows
	// TickTimer counts down to the next damage tick while HasTick is set.
	TickTimer float64
	HasTick   bool
}

// Slows reports whether the effect halves movement speed.
func (s StatusEffect) Slows() bool {
	return s.Type == StatusSlow || s.Type == StatusFreeze
}
