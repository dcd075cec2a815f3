package domain

//go:generate mockgen -destination=../../mocks/mock_domain.go -package=mocks github.com/koobs97/BonsCore-sub000/internal/auth/domain AccountRepository,LoginHistoryRepository,AttemptThrottle,LocationCache

import (
	"context"
	"time"
)

type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*Account, error)
	UpdateStepUpFlag(ctx context.Context, id string, requiresStepUp bool) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

type LoginHistoryRepository interface {
	Append(ctx context.Context, record *LoginHistoryRecord) error
	RecentCountries(ctx context.Context, accountID string, limit int) ([]string, error)
}

// AttemptThrottle tracks consecutive failed logins per account inside a
// time-bounded counter held in the shared cache service.
type AttemptThrottle interface {
	OnFailure(ctx context.Context, accountID string) error
	OnSuccess(ctx context.Context, accountID string) error
	IsBlocked(ctx context.Context, accountID string) (bool, error)
}

// LocationCache holds the country code of the last accepted login per account.
type LocationCache interface {
	RecentCountry(ctx context.Context, accountID string) (string, error)
	SetRecentCountry(ctx context.Context, accountID, countryCode string) error
}
