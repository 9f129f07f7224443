package nakama

import (
	"errors"

	"cardgame/internal/auth"
	"cardgame/internal/domain"
	"cardgame/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/grpc/codes"
)

// toRuntimeError maps app errors to Nakama runtime errors carrying gRPC status codes.
// Errors without a mapping become INTERNAL with a generic message.
func toRuntimeError(err error) *runtime.Error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return runtime.NewError(err.Error(), int(codes.NotFound))
	case errors.Is(err, domain.ErrInvalidIndex):
		return runtime.NewError(err.Error(), int(codes.InvalidArgument))
	case errors.Is(err, domain.ErrEmptySlot),
		errors.Is(err, domain.ErrAlreadyPlayed),
		errors.Is(err, domain.ErrNoPendingPlay),
		errors.Is(err, domain.ErrMatchFinished),
		errors.Is(err, domain.ErrRoundInProgress),
		errors.Is(err, domain.ErrEmptyDeck):
		return runtime.NewError(err.Error(), int(codes.FailedPrecondition))
	case errors.Is(err, auth.ErrForbidden):
		return runtime.NewError("not permitted to act for this user", int(codes.PermissionDenied))
	case errors.Is(err, auth.ErrNoSession):
		return runtime.NewError("authentication required", int(codes.Unauthenticated))
	case errors.Is(err, ports.ErrVersionConflict):
		return runtime.NewError("record changed concurrently, retry", int(codes.Aborted))
	}
	return runtime.NewError("internal error", int(codes.Internal))
}

var errInvalidPayload = runtime.NewError("invalid payload", int(codes.InvalidArgument))
