package domain

import (
	"encoding/json"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestNewBaselineMatch(t *testing.T) {
	m := NewBaselineMatch(DefaultPoolSize, DefaultStartingLife)
	if m.Status != StatusOngoing {
		t.Fatalf("status = %v, want ongoing", m.Status)
	}
	if m.LifePlayer != 5 || m.LifeAI != 5 {
		t.Fatalf("lives = %d/%d, want 5/5", m.LifePlayer, m.LifeAI)
	}
	if !reflect.DeepEqual(m.DeckPlayer, NewOrderedDeck(DefaultPoolSize)) {
		t.Fatalf("deck_player = %v, want ordered full deck", m.DeckPlayer)
	}
	if !m.HandPlayer.IsEmpty() || !m.HandAI.IsEmpty() {
		t.Fatalf("baseline hands should be empty: %v %v", m.HandPlayer, m.HandAI)
	}
}

func TestNewStartedMatchDealsFourCards(t *testing.T) {
	m := NewStartedMatch(DefaultPoolSize, DefaultStartingLife, newTestRand())
	if m.DeckPlayer.Size() != 13 || m.DeckAI.Size() != 13 {
		t.Fatalf("deck sizes = %d/%d, want 13/13", m.DeckPlayer.Size(), m.DeckAI.Size())
	}
	if m.HandPlayer.Count() != 4 || m.HandAI.Count() != 4 {
		t.Fatalf("hand counts = %d/%d, want 4/4", m.HandPlayer.Count(), m.HandAI.Count())
	}
	if m.CardsInPlay() != DefaultPoolSize || m.AICardsInPlay() != DefaultPoolSize {
		t.Fatalf("cards in play = %d/%d, want %d", m.CardsInPlay(), m.AICardsInPlay(), DefaultPoolSize)
	}
	for _, id := range m.HandPlayer {
		for _, deckID := range m.DeckPlayer {
			if id == deckID {
				t.Fatalf("card %d is both in hand and deck", id)
			}
		}
	}
}

func TestMatchStateJSONRoundTrip(t *testing.T) {
	m := NewStartedMatch(DefaultPoolSize, DefaultStartingLife, newTestRand())
	m.SelectedCardPlayer, _ = m.HandPlayer.Take(2)
	m.ApplyDamage(Damage{Player: 1})
	user := &User{Name: "alice", WinCount: 2, LossCount: 1, GameData: m}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	var got User
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if !reflect.DeepEqual(&got, user) {
		t.Fatalf("round trip drift:\n got %+v\nwant %+v", got, *user)
	}
}

func TestUserJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(NewUser("bob", DefaultPoolSize, DefaultStartingLife))
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	for _, field := range []string{
		`"name"`, `"win_count"`, `"loss_count"`, `"game_data"`, `"status"`, `"life_player"`, `"life_ai"`,
		`"selected_card_player"`, `"selected_card_ai"`, `"life_lost_player"`, `"life_lost_ai"`,
		`"deck_player"`, `"deck_ai"`, `"hand_player"`, `"hand_ai"`,
	} {
		if !strings.Contains(string(data), field) {
			t.Fatalf("record JSON missing %s: %s", field, data)
		}
	}
	if !strings.Contains(string(data), `"hand_player":[0,0,0,0]`) {
		t.Fatalf("hand should encode as four slots: %s", data)
	}
}

func TestUserCloneIsDeep(t *testing.T) {
	u := NewUser("carol", DefaultPoolSize, DefaultStartingLife)
	c := u.Clone()
	c.GameData.DeckPlayer[0] = 99
	c.GameData.HandPlayer[0] = 3
	if u.GameData.DeckPlayer[0] == 99 || u.GameData.HandPlayer[0] == 3 {
		t.Fatal("clone shares state with the original")
	}
}
