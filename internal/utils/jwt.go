package utils

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken: единственный исход неудачной проверки: причина наружу не отдаётся.
var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService подписывает и проверяет токены. Ключи неизменяемы после создания.
type TokenService struct {
	method    jwt.SigningMethod
	signKey   any
	verifyKey any
	ttl       time.Duration
	now       func() time.Time
}

// NewRSATokenService: RS384 по паре PEM-ключей.
func NewRSATokenService(privatePEM, publicPEM []byte, ttl time.Duration) (*TokenService, error) {
	priv, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	pub, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return &TokenService{
		method:    jwt.SigningMethodRS384,
		signKey:   priv,
		verifyKey: pub,
		ttl:       ttl,
		now:       time.Now,
	}, nil
}

// NewRSATokenServiceFromFiles читает ключи с диска.
func NewRSATokenServiceFromFiles(privatePath, publicPath string, ttl time.Duration) (*TokenService, error) {
	priv, err := os.ReadFile(privatePath)
	if err != nil {
		return nil, err
	}
	pub, err := os.ReadFile(publicPath)
	if err != nil {
		return nil, err
	}
	return NewRSATokenService(priv, pub, ttl)
}

// NewHMACTokenService: HS256 с общим секретом.
func NewHMACTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		method:    jwt.SigningMethodHS256,
		signKey:   []byte(secret),
		verifyKey: []byte(secret),
		ttl:       ttl,
		now:       time.Now,
	}
}

// WithClock подменяет часы (для тестов истечения срока).
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	cp := *s
	cp.now = now
	return &cp
}

func (s *TokenService) Issue(userID int64) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(s.method, claims).SignedString(s.signKey)
}

func (s *TokenService) Verify(tokenString string) (int64, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (interface{}, error) { return s.verifyKey, nil },
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
