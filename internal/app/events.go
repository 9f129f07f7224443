package app

import (
	"cardgame/internal/domain"

	"github.com/google/uuid"
)

// EventKind identifies emitted domain events for host dispatch.
type EventKind string

const (
	EventUserCreated   EventKind = "user_created"
	EventGameStarted   EventKind = "game_started"
	EventCardPlayed    EventKind = "card_played"
	EventRoundResolved EventKind = "round_resolved"
	EventGameFinished  EventKind = "game_finished"
	EventGameEnded     EventKind = "game_ended"
)

// Event is an app event addressed to the acting user.
type Event struct {
	ID         string    `json:"id"`
	Kind       EventKind `json:"kind"`
	Payload    any       `json:"payload"`
	Recipients []string  `json:"-"` // user IDs; empty means the acting user only
}

func newEvent(kind EventKind, payload any, recipients ...string) Event {
	return Event{
		ID:         uuid.NewString(),
		Kind:       kind,
		Payload:    payload,
		Recipients: recipients,
	}
}

type UserCreatedPayload struct {
	Name string `json:"name"`
}

type GameStartedPayload struct {
	Hand       domain.Hand `json:"hand"`
	DeckSize   int         `json:"deck_size"`
	LifePlayer int         `json:"life_player"`
	LifeAI     int         `json:"life_ai"`
}

type CardPlayedPayload struct {
	Slot int           `json:"slot"`
	Card domain.CardID `json:"card"`
}

type RoundResolvedPayload struct {
	PlayerCard     domain.CardID `json:"player_card"`
	AICard         domain.CardID `json:"ai_card"`
	Strategy       string        `json:"strategy,omitempty"`
	DamageToPlayer int           `json:"damage_player"`
	DamageToAI     int           `json:"damage_ai"`
	LifePlayer     int           `json:"life_player"`
	LifeAI         int           `json:"life_ai"`
}

type GameFinishedPayload struct {
	Status domain.Status `json:"status"`
	Result string        `json:"result"`
}

type GameEndedPayload struct {
	Status    domain.Status `json:"status"`
	WinCount  uint64        `json:"win_count"`
	LossCount uint64        `json:"loss_count"`
}
