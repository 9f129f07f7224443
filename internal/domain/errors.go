package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidIndex    = errors.New("hand index out of range")
	ErrEmptySlot       = errors.New("hand slot is empty")
	ErrAlreadyPlayed   = errors.New("a card is already selected for this round")
	ErrNoPendingPlay   = errors.New("no card selected for this round")
	ErrEmptyDeck       = errors.New("deck is empty")
	ErrMatchFinished   = errors.New("match is already finished")
	ErrRoundInProgress = errors.New("round has a pending selection")
)
