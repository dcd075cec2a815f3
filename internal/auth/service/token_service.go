package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/koobs97/BonsCore-sub000/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Generate(accountID, role string) (string, string, time.Time, error)
	VerifyAccessToken(tokenString string) (*JWTCustomClaims, error)
	VerifyRefreshToken(tokenString string) (*JWTCustomClaims, error)
	ClaimsIgnoringExpiry(tokenString string) (*JWTCustomClaims, error)
	SubjectOf(tokenString string) (string, error)
}

type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
}

func NewTokenService(accessSecret, refreshSecret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

func (ts *TokenService) Generate(accountID, role string) (string, string, time.Time, error) {
	now := time.Now()

	accessClaims := JWTCustomClaims{
		AccountID: accountID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	refreshClaims := JWTCustomClaims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.RefreshTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(ts.AccessTokenSecret))
	if err != nil {
		return "", "", time.Time{}, err
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		refreshClaims).SignedString([]byte(ts.RefreshTokenSecret))
	if err != nil {
		return "", "", time.Time{}, err
	}

	return accessToken, refreshToken, now.Add(ts.AccessTokenExpiry), nil
}

// VerifyAccessToken parses and validates the given access token string.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*JWTCustomClaims, error) {
	return ts.verify(tokenString, ts.AccessTokenSecret)
}

// VerifyRefreshToken parses and validates the given refresh token string.
func (ts *TokenService) VerifyRefreshToken(tokenString string) (*JWTCustomClaims, error) {
	return ts.verify(tokenString, ts.RefreshTokenSecret)
}

func (ts *TokenService) verify(tokenString, secret string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// ClaimsIgnoringExpiry returns the claims of a well-signed token even when its
// expiry has passed. The signature is still checked against both signing keys,
// so a forged token is rejected. Callers must not use the result to authorize
// a request; it exists for the blacklist compaction sweep, which has to read
// expiries that are already in the past.
func (ts *TokenService) ClaimsIgnoringExpiry(tokenString string) (*JWTCustomClaims, error) {
	claims, err := ts.parseIgnoringExpiry(tokenString, ts.AccessTokenSecret)
	if err == nil {
		return claims, nil
	}
	return ts.parseIgnoringExpiry(tokenString, ts.RefreshTokenSecret)
}

func (ts *TokenService) parseIgnoringExpiry(tokenString, secret string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithoutClaimsValidation())

	if err != nil {
		return nil, err
	}

	return claims, nil
}

// SubjectOf extracts the subject without verifying the signature or expiry.
// Never authorize with it.
func (ts *TokenService) SubjectOf(tokenString string) (string, error) {
	claims := &JWTCustomClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return "", err
	}
	return claims.AccountID, nil
}
