package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"cardgame/internal/app"
	"cardgame/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// NakamaNotifyAdapter implements ports.NotifierPort with in-app notifications.
// Notifications are not persisted; the RPC response already carries the state.
type NakamaNotifyAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaNotifyAdapter creates a new notification adapter.
func NewNakamaNotifyAdapter(nk runtime.NakamaModule) *NakamaNotifyAdapter {
	return &NakamaNotifyAdapter{nk: nk}
}

func (a *NakamaNotifyAdapter) Notify(ctx context.Context, userID string, n ports.Notification) error {
	if err := a.nk.NotificationSend(ctx, userID, n.Subject, n.Content, n.Code, "", false); err != nil {
		return fmt.Errorf("failed to send notification %s to %s: %w", n.Subject, userID, err)
	}
	return nil
}

var _ ports.NotifierPort = (*NakamaNotifyAdapter)(nil)

var eventCodes = map[app.EventKind]int{
	app.EventUserCreated:   NotifyUserCreated,
	app.EventGameStarted:   NotifyGameStarted,
	app.EventCardPlayed:    NotifyCardPlayed,
	app.EventRoundResolved: NotifyRoundResolved,
	app.EventGameFinished:  NotifyGameFinished,
	app.EventGameEnded:     NotifyGameEnded,
}

// eventToNotification flattens an event payload into notification content.
func eventToNotification(ev app.Event) (ports.Notification, error) {
	code, ok := eventCodes[ev.Kind]
	if !ok {
		return ports.Notification{}, fmt.Errorf("no notification code for event %s", ev.Kind)
	}

	data, err := json.Marshal(ev.Payload)
	if err != nil {
		return ports.Notification{}, fmt.Errorf("failed to marshal %s payload: %w", ev.Kind, err)
	}
	content := map[string]interface{}{}
	if err := json.Unmarshal(data, &content); err != nil {
		return ports.Notification{}, fmt.Errorf("failed to flatten %s payload: %w", ev.Kind, err)
	}
	content["event_id"] = ev.ID

	return ports.Notification{Subject: string(ev.Kind), Content: content, Code: code}, nil
}

// forwardEvents notifies each event's recipients, or actorID when an event names none.
// Delivery is best-effort: failures are logged and never fail the action.
func forwardEvents(ctx context.Context, logger runtime.Logger, notifier ports.NotifierPort, actorID string, events []app.Event) {
	for _, ev := range events {
		n, err := eventToNotification(ev)
		if err != nil {
			logger.Warn("forwardEvents [User:%s]: %v", actorID, err)
			continue
		}
		recipients := ev.Recipients
		if len(recipients) == 0 {
			recipients = []string{actorID}
		}
		for _, userID := range recipients {
			if err := notifier.Notify(ctx, userID, n); err != nil {
				logger.Warn("forwardEvents [User:%s]: %v", actorID, err)
			}
		}
	}
}
