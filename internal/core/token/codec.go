// Package token signs and verifies the session tokens handed out at login.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sirene/bombeiros-api/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// Config holds the process-wide token settings.
type Config struct {
	Secret string
	TTL    time.Duration
}

// Claims is the payload embedded in every token.
type Claims struct {
	ID        string        `json:"id"`
	Matricula string        `json:"matricula"`
	Nome      string        `json:"nome"`
	Cargo     domain.Perfil `json:"cargo"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256 tokens. It holds no mutable state.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec builds a Codec. An empty secret is rejected.
func NewCodec(cfg Config) (*Codec, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token: empty secret")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(cfg.Secret), ttl: ttl, now: time.Now}, nil
}

// WithClock returns a copy of c that reads time from now. Used by tests.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	clone := *c
	clone.now = now
	return &clone
}

// TTL reports how long issued tokens stay valid.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Issue signs the identity claims with issued-at and expiry stamps.
func (c *Codec) Issue(m *domain.Militar) (string, error) {
	now := c.now().UTC()
	claims := Claims{
		ID:        m.ID,
		Matricula: m.Matricula,
		Nome:      m.Nome,
		Cargo:     m.PerfilAcesso,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   m.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, structure and expiry. Every failure is reported
// as domain.ErrInvalidToken.
func (c *Codec) Verify(raw string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)

	claims := &Claims{}
	tkn, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !tkn.Valid || claims.ID == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
