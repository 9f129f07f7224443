package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// EndGamePolicy controls whether EndGame may finalize a match with a pending selection.
type EndGamePolicy string

const (
	// EndGameAllow finalizes regardless of a pending selection.
	EndGameAllow EndGamePolicy = "allow"
	// EndGameRejectPending refuses to finalize while a card is committed but unresolved.
	EndGameRejectPending EndGamePolicy = "reject_pending"
)

type GameConfig struct {
	PoolSize     int    `json:"pool_size"`
	StartingLife int    `json:"starting_life"`
	DamageRule   string `json:"damage_rule"`
	// EndGamePolicy is "allow" or "reject_pending".
	EndGamePolicy EndGamePolicy `json:"end_game_policy"`
	// CardsPath optionally points at a YAML card catalog; empty uses the built-in pool.
	CardsPath        string `json:"cards_path"`
	TicketIssuer     string `json:"ticket_issuer"`
	TicketTTLSeconds int    `json:"ticket_ttl_seconds"`
}

// Default returns the configuration the game ships with.
func Default() GameConfig {
	return GameConfig{
		PoolSize:         17,
		StartingLife:     5,
		DamageRule:       "elemental",
		EndGamePolicy:    EndGameAllow,
		TicketIssuer:     "cardgame",
		TicketTTLSeconds: 86400,
	}
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path once per process.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		c, err := ReadGameConfig(path)
		if err != nil {
			loadErr = err
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or the defaults if none was loaded.
func GetGameConfig() GameConfig {
	if cfg == nil {
		return Default()
	}
	return *cfg
}

// ReadGameConfig reads a configuration file, filling unset fields with defaults.
func ReadGameConfig(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("failed to read game config: %w", err)
	}

	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return GameConfig{}, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return GameConfig{}, err
	}
	return c, nil
}

// ApplyEnv overrides fields from a Nakama runtime env map.
func (c *GameConfig) ApplyEnv(env map[string]string) {
	if val, ok := env["cardgame_damage_rule"]; ok && val != "" {
		c.DamageRule = val
	}
	if val, ok := env["cardgame_end_game_policy"]; ok && val != "" {
		c.EndGamePolicy = EndGamePolicy(val)
	}
	if val, ok := env["cardgame_cards_path"]; ok && val != "" {
		c.CardsPath = val
	}
}

// Validate reports configuration values the engine cannot run with.
func (c GameConfig) Validate() error {
	if c.PoolSize < 1 {
		return fmt.Errorf("pool_size must be positive, got %d", c.PoolSize)
	}
	if c.StartingLife < 1 {
		return fmt.Errorf("starting_life must be positive, got %d", c.StartingLife)
	}
	switch c.EndGamePolicy {
	case EndGameAllow, EndGameRejectPending:
	default:
		return fmt.Errorf("unknown end_game_policy: %s", c.EndGamePolicy)
	}
	return nil
}
