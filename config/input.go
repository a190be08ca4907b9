package config

// ActionID represents a logical viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionLaunch
	ActionPause
	ActionToggleAutoLaunch
	ActionToggleHUD
	ActionSpeedUp
	ActionSpeedDown
	ActionBack
	ActionCount // Must be last - used for array sizing
)
