package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Tokens are issued by the external identity provider; this service only
// verifies them and exposes the caller's identity to the rest of the API.

var ErrMissingIdentity = errors.New("token is missing identity claims")

// Identity is the acting user as asserted by the identity provider.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	IdentityFromContext(ctx context.Context) (Identity, error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(algorithm, secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New(algorithm, []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// IdentityFromContext extracts the verified identity claims placed in the
// request context by the jwtauth verifier middleware.
func (j *JWTService) IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, err
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, ErrMissingIdentity
	}

	identity := Identity{UserID: userID}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		identity.Role = role
	}

	return identity, nil
}
