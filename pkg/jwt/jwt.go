package jwt

import (
	"errors"
	"time"

	"Atrium/types"

	"github.com/golang-jwt/jwt/v5"
)

const TokenTypeSession = "session"

type Claims struct {
	UserID    int64      `json:"user_id"`
	FirstName string     `json:"first_name"`
	Role      types.Role `json:"role"`
	SessionID string     `json:"session_id"`
	Type      string     `json:"type"`
	jwt.RegisteredClaims
}

func GenerateToken(secret []byte, actor *types.Actor, tokenType string, expire time.Duration) (string, error) {
	claims := Claims{
		UserID:    actor.ID,
		FirstName: actor.FirstName,
		Role:      actor.Role,
		SessionID: actor.SessionID,
		Type:      tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(secret []byte, expectedType string, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if claims.Type != expectedType {
		return nil, errors.New("invalid token type")
	}

	return claims, nil
}

// Actor rebuilds the request actor carried by the claims.
func (c *Claims) Actor() *types.Actor {
	return &types.Actor{
		ID:        c.UserID,
		FirstName: c.FirstName,
		Role:      c.Role,
		SessionID: c.SessionID,
	}
}
