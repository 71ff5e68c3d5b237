package game

import "snake/internal/domain"

type EventType int

const (
	EventStateUpdated EventType = iota
	EventGameOver
	EventSaved
	EventLoaded
	EventError
)

type Event struct {
	Type    EventType
	Payload interface{}
}

type GameOverPayload struct {
	Score     int
	Reason    domain.LossReason
	TopScores []int
}

type ErrorPayload struct {
	Message string
}
