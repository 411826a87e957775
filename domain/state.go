package domain

// PresenceState is a transient indicator pushed to other users.
type PresenceState string

const (
	StateOnline PresenceState = "online"
	StateTyping PresenceState = "typing"
	StateAway   PresenceState = "away"
	StateIdle   PresenceState = "idle"
)

func (s PresenceState) IsValid() bool {
	switch s {
	case StateOnline, StateTyping, StateAway, StateIdle:
		return true
	}
	return false
}
