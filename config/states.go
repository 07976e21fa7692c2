package config

// StateID names an animation or behaviour state.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Attacking
	Hurt
	Dashing
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Attacking:
		return "attack"
	case Hurt:
		return "hurt"
	case Dashing:
		return "dash"
	default:
		return "none"
	}
}

// MatchStateID is the lifecycle state of a match.
type MatchStateID int

const (
	MatchStatePlaying MatchStateID = iota
	MatchStateGameOver
	MatchStateCleared
)

func (m MatchStateID) String() string {
	switch m {
	case MatchStateGameOver:
		return "game_over"
	case MatchStateCleared:
		return "cleared"
	default:
		return "playing"
	}
}

// Terminal reports whether the match has ended.
func (m MatchStateID) Terminal() bool {
	return m != MatchStatePlaying
}
