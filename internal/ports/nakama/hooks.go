package nakama

import (
	"context"
	"database/sql"

	"cardgame/internal/app/onboarding"
	"cardgame/internal/auth"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

type afterAuthenticateDeviceFn func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, out *api.Session, in *api.AuthenticateDeviceRequest) error

// newAfterAuthenticateDevice returns the hook run after device authentication.
// For new accounts it creates the game record and a friendly display name.
func newAfterAuthenticateDevice(players onboarding.Enroller) afterAuthenticateDeviceFn {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, out *api.Session, in *api.AuthenticateDeviceRequest) error {
		if out == nil || !out.Created {
			return nil
		}

		grant, err := auth.FromContext(ctx)
		if err != nil {
			// The hook context has no user yet; take it from the session just issued.
			grant, err = auth.FromIssuedSession(out.Token)
			if err != nil {
				logger.Error("AfterAuthenticateDevice: Failed to resolve user: %v", err)
				return err
			}
		}
		userID := grant.Subject()

		logger.Info("Onboarding new user %s", userID)

		service := onboarding.NewService(NewNakamaAccountAdapter(nk), players, nil)
		result, err := service.OnboardNewUser(ctx, grant)
		if err != nil {
			logger.Error("AfterAuthenticateDevice: Onboarding failed for user %s: %v", userID, err)
			return err
		}
		if result.ProfileUpdateErr != nil {
			logger.Warn("AfterAuthenticateDevice: Failed to update profile for user %s: %v", userID, result.ProfileUpdateErr)
		}

		forwardEvents(ctx, logger, NewNakamaNotifyAdapter(nk), userID, result.Events)
		return nil
	}
}
