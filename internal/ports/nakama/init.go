package nakama

import (
	"context"
	"database/sql"

	"cardgame/internal/app"
	"cardgame/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires the game service, RPCs and hooks for the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)

	if path := env[envConfigPath]; path != "" {
		if err := config.LoadGameConfig(path); err != nil {
			logger.Error("Failed to load game config from %s: %v", path, err)
			return err
		}
	}
	cfg := config.GetGameConfig()
	cfg.ApplyEnv(env)

	svc, err := app.NewServiceFromConfig(NewNakamaStorageAdapter(nk), cfg, logger, nil)
	if err != nil {
		logger.Error("Failed to build game service: %v", err)
		return err
	}

	if err := RegisterRPCs(initializer, svc); err != nil {
		return err
	}
	if err := initializer.RegisterAfterAuthenticateDevice(newAfterAuthenticateDevice(svc)); err != nil {
		return err
	}

	logger.Info("Card game Go module loaded (damage rule %s, end game policy %s).", cfg.DamageRule, cfg.EndGamePolicy)
	return nil
}
