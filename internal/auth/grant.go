// Package auth models caller authorization as an explicit capability.
//
// A Grant is only ever produced by a verifier (a Nakama session context or a
// signed ticket), and the app layer checks it against the identity an action
// targets before any state is loaded.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"
)

var (
	ErrForbidden     = errors.New("grant does not permit acting for this identity")
	ErrNoSession     = errors.New("no authenticated session in context")
	ErrInvalidTicket = errors.New("invalid ticket")
)

// Source records how a grant was verified.
type Source string

const (
	SourceSession Source = "session"
	SourceTicket  Source = "ticket"
)

// Grant is a verified capability to act as one identity.
type Grant struct {
	subject string
	source  Source
}

// Subject returns the identity the grant was verified for.
func (g Grant) Subject() string {
	return g.subject
}

// Source returns how the grant was verified.
func (g Grant) Source() Source {
	return g.source
}

// Permits returns ErrForbidden unless the grant was issued for identity.
func (g Grant) Permits(identity string) error {
	if g.subject == "" || g.subject != identity {
		return fmt.Errorf("%w: %q acting for %q", ErrForbidden, g.subject, identity)
	}
	return nil
}

// FromContext builds a grant from the authenticated Nakama session user.
func FromContext(ctx context.Context) (Grant, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return Grant{}, ErrNoSession
	}
	return Grant{subject: userID, source: SourceSession}, nil
}
