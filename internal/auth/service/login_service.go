package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/koobs97/BonsCore-sub000/internal/auth/domain"
	"github.com/koobs97/BonsCore-sub000/internal/auth/dto"
	autherror "github.com/koobs97/BonsCore-sub000/internal/errors"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// LoginService sequences credential check, dormancy check, anomaly check and
// session registration into a single login outcome.
type LoginService struct {
	accounts  domain.AccountRepository
	history   domain.LoginHistoryRepository
	throttle  domain.AttemptThrottle
	locations domain.LocationCache
	registry  *SessionRegistry
	tokens    TokenGenerator
	detector  *AnomalyDetector
	log       zerolog.Logger
}

func NewLoginService(accounts domain.AccountRepository, history domain.LoginHistoryRepository,
	throttle domain.AttemptThrottle, locations domain.LocationCache, registry *SessionRegistry,
	tokens TokenGenerator, detector *AnomalyDetector, log zerolog.Logger) *LoginService {
	return &LoginService{
		accounts:  accounts,
		history:   history,
		throttle:  throttle,
		locations: locations,
		registry:  registry,
		tokens:    tokens,
		detector:  detector,
		log:       log,
	}
}

// Login runs the full login state machine. Every branch is terminal and
// mutually exclusive; an error return means an internal failure on the token
// path, not a rejected login.
func (s *LoginService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResult, error) {
	// A pending session short-circuits before credentials or counters are
	// touched, so the caller can re-submit with force=true.
	if !input.Force && s.registry.IsDuplicateLogin(input.AccountID) {
		return &dto.LoginResult{Outcome: dto.OutcomeDuplicateLogin}, nil
	}

	blocked, err := s.throttle.IsBlocked(ctx, input.AccountID)
	if err != nil {
		s.log.Warn().Err(err).Str("account_id", input.AccountID).Msg("attempt throttle unavailable, allowing login")
	} else if blocked {
		return &dto.LoginResult{Outcome: dto.OutcomeBlocked}, nil
	}

	account, err := s.accounts.GetByID(ctx, input.AccountID)
	if err != nil && !errors.Is(err, autherror.ErrAccountNotFound) {
		return nil, err
	}

	// A missing or withdrawn account is indistinguishable from a wrong
	// password, so the response does not leak which identifiers exist.
	if account == nil || account.Withdrawn ||
		bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)) != nil {
		if throttleErr := s.throttle.OnFailure(ctx, input.AccountID); throttleErr != nil {
			s.log.Warn().Err(throttleErr).Str("account_id", input.AccountID).Msg("failed to record login failure")
		}
		return &dto.LoginResult{Outcome: dto.OutcomeInvalidCredentials}, nil
	}

	if account.Dormant {
		return &dto.LoginResult{Outcome: dto.OutcomeDormantHold}, nil
	}

	if s.detector.Check(ctx, account, input.CountryCode) {
		return &dto.LoginResult{Outcome: dto.OutcomeStepUpRequired}, nil
	}

	if err := s.throttle.OnSuccess(ctx, input.AccountID); err != nil {
		s.log.Warn().Err(err).Str("account_id", input.AccountID).Msg("failed to clear attempt counter")
	}

	accessToken, refreshToken, expiresAt, err := s.tokens.Generate(account.ID, account.Role)
	if err != nil {
		return nil, err
	}

	s.recordLogin(ctx, account, input)
	s.registry.Register(account.ID, accessToken)

	return &dto.LoginResult{
		Outcome:           dto.OutcomeSuccess,
		AccessToken:       accessToken,
		RefreshToken:      refreshToken,
		ExpiresIn:         int64(time.Until(expiresAt).Seconds()),
		ProfileIncomplete: account.ProfileIncomplete(),
	}, nil
}

// recordLogin writes the audit trail of a successful login. Failures here are
// logged and swallowed; an authentication that already succeeded must not be
// undone by a non-critical write.
func (s *LoginService) recordLogin(ctx context.Context, account *domain.Account, input dto.LoginInput) {
	now := time.Now()

	record := &domain.LoginHistoryRecord{
		ID:          uuid.NewString(),
		AccountID:   account.ID,
		IPAddress:   input.IPAddress,
		CountryCode: input.CountryCode,
		CreatedAt:   now,
	}
	if err := s.history.Append(ctx, record); err != nil {
		s.log.Warn().Err(err).Str("account_id", account.ID).Msg("failed to append login history")
	}

	if input.CountryCode != "" {
		if err := s.locations.SetRecentCountry(ctx, account.ID, input.CountryCode); err != nil {
			s.log.Warn().Err(err).Str("account_id", account.ID).Msg("failed to update recent location cache")
		}
	}

	if err := s.accounts.UpdateLastLogin(ctx, account.ID, now); err != nil {
		s.log.Warn().Err(err).Str("account_id", account.ID).Msg("failed to update last login timestamp")
	}
}

// Authenticate admits or rejects a bearer token for the per-request filter.
// The revocation check runs first: a revoked token is rejected even while its
// signature and expiry would still verify.
func (s *LoginService) Authenticate(token string) (*dto.Principal, error) {
	if s.registry.IsRevoked(token) {
		return nil, autherror.ErrTokenRevoked
	}

	claims, err := s.tokens.VerifyAccessToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherror.ErrTokenExpired
		}
		return nil, autherror.ErrTokenMalformed
	}

	return &dto.Principal{AccountID: claims.AccountID, Role: claims.Role}, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The old
// refresh token is blacklisted and the new access token replaces the account's
// active session.
func (s *LoginService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if s.registry.IsRevoked(refreshToken) {
		return nil, autherror.ErrTokenRevoked
	}

	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherror.ErrTokenExpired
		}
		return nil, autherror.ErrTokenMalformed
	}

	account, err := s.accounts.GetByID(ctx, claims.AccountID)
	if err != nil {
		return nil, err
	}

	accessToken, newRefreshToken, expiresAt, err := s.tokens.Generate(account.ID, account.Role)
	if err != nil {
		return nil, err
	}

	s.registry.Revoke(refreshToken)
	s.registry.Register(account.ID, accessToken)

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    int64(time.Until(expiresAt).Seconds()),
	}, nil
}

// Logout tears down the account's session and blacklists both tokens.
func (s *LoginService) Logout(accountID, accessToken, refreshToken string) {
	s.registry.Logout(accountID, accessToken, refreshToken)
}
