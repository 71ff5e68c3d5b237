package types

import (
	"snake/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventStart
	UIEventTogglePause
	UIEventPause
	UIEventRestart
	UIEventSteer
	UIEventSpeed
	UIEventSave
	UIEventLoad
	UIEventQuit
	UIEventShowMenu
)

type SteerData struct {
	Direction domain.Direction
}

type SpeedData struct {
	DelayMs int32
}
