package game

import "snake/internal/domain"

type SessionStore interface {
	Save(saved domain.SavedSession) error
	Load() (domain.SavedSession, error)
}

type ScoreLedger interface {
	Append(score int) error
	Top(n int) ([]int, error)
}
