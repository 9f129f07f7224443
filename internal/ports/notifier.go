package ports

import "context"

// Notification is a message pushed to a single user outside the action's response.
type Notification struct {
	Subject string
	Content map[string]interface{}
	Code    int
}

// NotifierPort delivers notifications to users.
type NotifierPort interface {
	Notify(ctx context.Context, userID string, n Notification) error
}
