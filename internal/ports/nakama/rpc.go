package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"cardgame/internal/app"
	"cardgame/internal/auth"
	"cardgame/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/grpc/codes"
)

// actionRequest is the common RPC payload. Name defaults to the session user;
// naming anyone else is rejected by the grant check.
type actionRequest struct {
	Name      string `json:"name,omitempty"`
	CardIndex *int   `json:"card_index,omitempty"`
}

// ActionResponse is returned by every game RPC.
type ActionResponse struct {
	User   *domain.User `json:"user"`
	Events []app.Event  `json:"events"`
}

type action func(ctx context.Context, grant auth.Grant, identity string, req actionRequest) (*domain.User, []app.Event, error)

type rpcHandlers struct {
	svc *app.Service
}

// RegisterRPCs registers the game RPC endpoints backed by svc.
func RegisterRPCs(initializer runtime.Initializer, svc *app.Service) error {
	h := &rpcHandlers{svc: svc}
	rpcs := map[string]func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error){
		RpcLogin:     h.wrap(RpcLogin, h.login),
		RpcStartGame: h.wrap(RpcStartGame, h.startGame),
		RpcPlayCard:  h.wrap(RpcPlayCard, h.playCard),
		RpcNextRound: h.wrap(RpcNextRound, h.nextRound),
		RpcEndGame:   h.wrap(RpcEndGame, h.endGame),
		RpcShow:      h.wrap(RpcShow, h.show),
	}
	for id, fn := range rpcs {
		if err := initializer.RegisterRpc(id, fn); err != nil {
			return err
		}
	}
	return nil
}

func (h *rpcHandlers) login(ctx context.Context, grant auth.Grant, identity string, _ actionRequest) (*domain.User, []app.Event, error) {
	return h.svc.Login(ctx, grant, identity)
}

func (h *rpcHandlers) startGame(ctx context.Context, grant auth.Grant, identity string, _ actionRequest) (*domain.User, []app.Event, error) {
	return h.svc.StartGame(ctx, grant, identity)
}

func (h *rpcHandlers) playCard(ctx context.Context, grant auth.Grant, identity string, req actionRequest) (*domain.User, []app.Event, error) {
	if req.CardIndex == nil {
		return nil, nil, errMissingCardIndex
	}
	return h.svc.PlayCard(ctx, grant, identity, *req.CardIndex)
}

func (h *rpcHandlers) nextRound(ctx context.Context, grant auth.Grant, identity string, _ actionRequest) (*domain.User, []app.Event, error) {
	return h.svc.NextRound(ctx, grant, identity)
}

func (h *rpcHandlers) endGame(ctx context.Context, grant auth.Grant, identity string, _ actionRequest) (*domain.User, []app.Event, error) {
	return h.svc.EndGame(ctx, grant, identity)
}

func (h *rpcHandlers) show(ctx context.Context, grant auth.Grant, identity string, _ actionRequest) (*domain.User, []app.Event, error) {
	user, err := h.svc.Show(ctx, grant, identity)
	return user, nil, err
}

var errMissingCardIndex = errors.New("card_index is required")

// wrap resolves the caller's grant, decodes the payload, runs fn and forwards its events.
func (h *rpcHandlers) wrap(rpcID string, fn action) func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		grant, err := auth.FromContext(ctx)
		if err != nil {
			logger.Warn("%s: %v", rpcID, err)
			return "", toRuntimeError(err)
		}
		userID := grant.Subject()

		var req actionRequest
		if strings.TrimSpace(payload) != "" {
			if err := json.Unmarshal([]byte(payload), &req); err != nil {
				logger.Warn("%s [User:%s]: invalid payload: %v", rpcID, userID, err)
				return "", errInvalidPayload
			}
		}
		identity := req.Name
		if identity == "" {
			identity = userID
		}

		user, events, err := fn(ctx, grant, identity, req)
		if errors.Is(err, errMissingCardIndex) {
			return "", errInvalidPayload
		}
		if err != nil {
			rtErr := toRuntimeError(err)
			if rtErr.Code == int(codes.Internal) {
				logger.Error("%s [User:%s]: %v", rpcID, userID, err)
			} else {
				logger.Debug("%s [User:%s]: rejected: %v", rpcID, userID, err)
			}
			return "", rtErr
		}

		forwardEvents(ctx, logger, NewNakamaNotifyAdapter(nk), userID, events)

		if events == nil {
			events = []app.Event{}
		}
		out, err := json.Marshal(ActionResponse{User: user, Events: events})
		if err != nil {
			logger.Error("%s [User:%s]: failed to marshal response: %v", rpcID, userID, err)
			return "", toRuntimeError(err)
		}
		return string(out), nil
	}
}
