package auth

import (
	"fmt"

	"github.com/form3tech-oss/jwt-go"
)

// FromIssuedSession builds a grant from a session token the host has just
// minted, as seen by after-authentication hooks where the context carries no
// user yet. The signature is not checked: the token never left the server.
func FromIssuedSession(token string) (Grant, error) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return Grant{}, fmt.Errorf("failed to parse session token: %w", err)
	}

	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return Grant{}, fmt.Errorf("%w: session token missing uid", ErrNoSession)
	}
	return Grant{subject: uid, source: SourceSession}, nil
}
