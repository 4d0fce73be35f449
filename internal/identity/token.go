package identity

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
)

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  timeutil.Clock
}

func NewTokenIssuer(secret string, ttl time.Duration, clock timeutil.Clock) *TokenIssuer {
	if clock == nil {
		clock = timeutil.SystemClock{}
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, clock: clock}
}

func (i *TokenIssuer) Issue(actor Actor) (string, error) {
	now := i.clock.Now()
	c := claims{
		Role: string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (i *TokenIssuer) Parse(tokenString string) (Actor, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.clock.Now))
	if err != nil || !token.Valid {
		return Actor{}, ErrInvalidToken
	}

	actor := Actor{Role: Role(c.Role), ID: c.Subject}
	if !actor.Role.Valid() || actor.ID == "" {
		return Actor{}, ErrInvalidToken
	}
	return actor, nil
}
