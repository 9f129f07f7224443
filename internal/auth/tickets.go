package auth

import (
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

// DefaultTicketTTL bounds how long a ticket stays valid.
const DefaultTicketTTL = 24 * time.Hour

// Tickets issues and verifies HS256 capability tickets.
type Tickets struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTickets constructs a ticket issuer. A zero ttl uses DefaultTicketTTL.
func NewTickets(secret, issuer string, ttl time.Duration) (*Tickets, error) {
	if secret == "" {
		return nil, fmt.Errorf("ticket secret is required")
	}
	if issuer == "" {
		return nil, fmt.Errorf("ticket issuer is required")
	}
	if ttl <= 0 {
		ttl = DefaultTicketTTL
	}
	return &Tickets{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}, nil
}

// Issue mints a ticket granting the right to act as identity.
func (t *Tickets) Issue(identity string) (string, error) {
	if t == nil {
		return "", fmt.Errorf("tickets issuer is nil")
	}
	if identity == "" {
		return "", fmt.Errorf("identity is required")
	}

	now := t.now()
	claims := jwt.StandardClaims{
		Issuer:    t.issuer,
		Subject:   identity,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(t.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks a ticket's signature, issuer and expiry and returns its grant.
func (t *Tickets) Verify(ticket string) (Grant, error) {
	if t == nil {
		return Grant{}, fmt.Errorf("tickets issuer is nil")
	}

	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(ticket, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return Grant{}, fmt.Errorf("%w: %v", ErrInvalidTicket, err)
	}
	if !token.Valid {
		return Grant{}, ErrInvalidTicket
	}
	if !claims.VerifyIssuer(t.issuer, true) {
		return Grant{}, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidTicket, claims.Issuer)
	}
	if claims.Subject == "" {
		return Grant{}, fmt.Errorf("%w: missing subject", ErrInvalidTicket)
	}

	return Grant{subject: claims.Subject, source: SourceTicket}, nil
}
