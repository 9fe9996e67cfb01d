package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const TokenTypeAccess = "access"

var ErrInvalidTokenType = errors.New("invalid token type")

// Identity is the subject an access token is issued for.
type Identity struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

// AccessClaims is what a decoded access token carries.
type AccessClaims struct {
	Identity
	TokenID   string
	ExpiresAt time.Time
}

type Service interface {
	GenerateAccessToken(identity Identity) (token string, expiresAt int64, err error)
	ParseAccessToken(tokenString string) (*AccessClaims, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpiration time.Duration
	tokenAuth             *jwtauth.JWTAuth
	now                   func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// NewJWTService builds an HS256 token service. accessTokenExpirationTime is a Go duration string.
func NewJWTService(secretKey string, accessTokenExpirationTime string) (Service, error) {
	expDuration, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, err
	}
	return &JWTService{
		accessTokenExpiration: expDuration,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                   time.Now,
	}, nil
}

func (j *JWTService) GenerateAccessToken(identity Identity) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpiration).Unix()

	claims := map[string]interface{}{
		"user_id": identity.UserID,
		"email":   identity.Email,
		"name":    identity.Name,
		"role":    identity.Role,
		"jti":     uuid.NewString(),
		"type":    TokenTypeAccess,
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// ParseAccessToken verifies signature and expiry and returns the access claims.
func (j *JWTService) ParseAccessToken(tokenString string) (*AccessClaims, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return nil, err
	}

	claims := token.PrivateClaims()
	if tokenType, _ := claims["type"].(string); tokenType != TokenTypeAccess {
		return nil, ErrInvalidTokenType
	}

	out := &AccessClaims{
		TokenID:   token.JwtID(),
		ExpiresAt: token.Expiration(),
	}
	out.UserID, _ = claims["user_id"].(string)
	out.Email, _ = claims["email"].(string)
	out.Name, _ = claims["name"].(string)
	out.Role, _ = claims["role"].(string)

	if out.UserID == "" {
		return nil, jwt.ErrInvalidJWT()
	}
	return out, nil
}
