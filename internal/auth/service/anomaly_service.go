package service

import (
	"context"

	"github.com/koobs97/BonsCore-sub000/internal/auth/domain"
	"github.com/koobs97/BonsCore-sub000/pkg/constant"
	"github.com/rs/zerolog"
)

// AnomalyDetector decides whether a login's origin country is consistent with
// the account's history. Infrastructure failures degrade to "normal": a broken
// detector must never lock legitimate users out.
type AnomalyDetector struct {
	accounts  domain.AccountRepository
	history   domain.LoginHistoryRepository
	locations domain.LocationCache
	log       zerolog.Logger
}

func NewAnomalyDetector(accounts domain.AccountRepository, history domain.LoginHistoryRepository,
	locations domain.LocationCache, log zerolog.Logger) *AnomalyDetector {
	return &AnomalyDetector{
		accounts:  accounts,
		history:   history,
		locations: locations,
		log:       log,
	}
}

// Check returns true when the login is anomalous. The step-up flag on the
// account is sticky: once set by a prior detection it stays anomalous until
// cleared by the out-of-band verification flow.
func (d *AnomalyDetector) Check(ctx context.Context, account *domain.Account, originCountry string) bool {
	if account.RequiresStepUp {
		return true
	}

	if originCountry == "" {
		// Geo resolution failed upstream; nothing to compare against.
		d.log.Debug().Str("account_id", account.ID).Msg("no origin country on login, skipping anomaly check")
		return false
	}

	cached, err := d.locations.RecentCountry(ctx, account.ID)
	if err != nil {
		d.log.Warn().Err(err).Str("account_id", account.ID).Msg("recent location cache unavailable")
	} else if cached == originCountry {
		return false
	}

	countries, err := d.history.RecentCountries(ctx, account.ID, constant.RecentCountryLimit)
	if err != nil {
		d.log.Warn().Err(err).Str("account_id", account.ID).Msg("login history unavailable, allowing login")
		return false
	}

	seen := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		seen[c] = struct{}{}
	}
	if _, ok := seen[originCountry]; ok {
		return false
	}

	if err := d.accounts.UpdateStepUpFlag(ctx, account.ID, true); err != nil {
		d.log.Error().Err(err).Str("account_id", account.ID).Msg("failed to persist step-up flag")
	}
	account.RequiresStepUp = true

	return true
}
