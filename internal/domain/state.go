package domain

import "math/rand"

// DefaultStartingLife is the life total each side starts a match with.
const DefaultStartingLife = 5

// Status is the outcome of a match from the player's point of view.
type Status int

const (
	// StatusOngoing means the match has not been decided.
	StatusOngoing Status = 0
	// StatusPlayerWon means the AI ran out of life (or cards ran out with the player ahead).
	StatusPlayerWon Status = 1
	// StatusPlayerLost means the player ran out of life (or cards ran out with the AI ahead).
	StatusPlayerLost Status = -1
)

func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusPlayerWon:
		return "player_won"
	case StatusPlayerLost:
		return "player_lost"
	default:
		return "unknown"
	}
}

// IsFinished reports whether the match has a winner.
func (s Status) IsFinished() bool {
	return s == StatusPlayerWon || s == StatusPlayerLost
}

// MatchState is the authoritative snapshot of one player's game against the AI.
type MatchState struct {
	Status             Status `json:"status"`
	LifePlayer         int    `json:"life_player"`
	LifeAI             int    `json:"life_ai"`
	SelectedCardPlayer CardID `json:"selected_card_player"`
	SelectedCardAI     CardID `json:"selected_card_ai"`
	LifeLostPlayer     int    `json:"life_lost_player"`
	LifeLostAI         int    `json:"life_lost_ai"`
	DeckPlayer         Deck   `json:"deck_player"`
	DeckAI             Deck   `json:"deck_ai"`
	HandPlayer         Hand   `json:"hand_player"`
	HandAI             Hand   `json:"hand_ai"`
}

// User is the identity-keyed record holding tallies and the current match.
type User struct {
	Name      string     `json:"name"`
	WinCount  uint64     `json:"win_count"`
	LossCount uint64     `json:"loss_count"`
	GameData  MatchState `json:"game_data"`
}

// NewBaselineMatch returns an undealt match: ordered full decks, empty hands.
func NewBaselineMatch(poolSize, startingLife int) MatchState {
	return MatchState{
		Status:     StatusOngoing,
		LifePlayer: startingLife,
		LifeAI:     startingLife,
		DeckPlayer: NewOrderedDeck(poolSize),
		DeckAI:     NewOrderedDeck(poolSize),
	}
}

// NewStartedMatch returns a match with freshly shuffled decks and both hands dealt.
func NewStartedMatch(poolSize, startingLife int, rng *rand.Rand) MatchState {
	m := MatchState{
		Status:     StatusOngoing,
		LifePlayer: startingLife,
		LifeAI:     startingLife,
		DeckPlayer: NewDeck(poolSize, rng),
		DeckAI:     NewDeck(poolSize, rng),
	}
	m.HandPlayer.FillEmptySlots(&m.DeckPlayer)
	m.HandAI.FillEmptySlots(&m.DeckAI)
	return m
}

// NewUser returns a user with zero tallies and a baseline match.
func NewUser(name string, poolSize, startingLife int) *User {
	return &User{
		Name:     name,
		GameData: NewBaselineMatch(poolSize, startingLife),
	}
}

// HasPendingPlay reports whether the player has committed a card this round.
func (m MatchState) HasPendingPlay() bool {
	return m.SelectedCardPlayer != EmptyCard
}

// Clone returns a deep copy of the match.
func (m MatchState) Clone() MatchState {
	out := m
	out.DeckPlayer = m.DeckPlayer.Clone()
	out.DeckAI = m.DeckAI.Clone()
	return out
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	out := *u
	out.GameData = u.GameData.Clone()
	return &out
}

// CardsInPlay counts the player's cards still in the match: deck, hand and pending selection.
func (m MatchState) CardsInPlay() int {
	n := m.DeckPlayer.Size() + m.HandPlayer.Count()
	if m.SelectedCardPlayer != EmptyCard {
		n++
	}
	return n
}

// AICardsInPlay is CardsInPlay for the AI side.
func (m MatchState) AICardsInPlay() int {
	n := m.DeckAI.Size() + m.HandAI.Count()
	if m.SelectedCardAI != EmptyCard {
		n++
	}
	return n
}
