package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/koobs97/BonsCore-sub000/internal/auth/domain"
	"github.com/koobs97/BonsCore-sub000/internal/auth/service"
	"github.com/koobs97/BonsCore-sub000/internal/mocks"
	"github.com/koobs97/BonsCore-sub000/pkg/constant"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newDetector(t *testing.T) (*service.AnomalyDetector, *mocks.MockAccountRepository,
	*mocks.MockLoginHistoryRepository, *mocks.MockLocationCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	accounts := mocks.NewMockAccountRepository(ctrl)
	history := mocks.NewMockLoginHistoryRepository(ctrl)
	locations := mocks.NewMockLocationCache(ctrl)

	return service.NewAnomalyDetector(accounts, history, locations, zerolog.Nop()), accounts, history, locations
}

func TestAnomalyDetector_StickyFlag(t *testing.T) {
	d, _, _, _ := newDetector(t)

	account := &domain.Account{ID: "u1", RequiresStepUp: true}

	// No cache or history expectations: the sticky flag short-circuits
	// before any dependency is touched.
	assert.True(t, d.Check(context.Background(), account, "KR"))
}

func TestAnomalyDetector_CacheFastPath(t *testing.T) {
	d, _, _, locations := newDetector(t)

	account := &domain.Account{ID: "u1"}

	// Only the cache is consulted; a history expectation is deliberately
	// absent, so a durable-store read would fail the test.
	locations.EXPECT().RecentCountry(gomock.Any(), "u1").Return("KR", nil)

	assert.False(t, d.Check(context.Background(), account, "KR"))
}

func TestAnomalyDetector_HistoryFallback(t *testing.T) {
	d, _, history, locations := newDetector(t)

	account := &domain.Account{ID: "u1"}

	locations.EXPECT().RecentCountry(gomock.Any(), "u1").Return("", nil)
	history.EXPECT().RecentCountries(gomock.Any(), "u1", constant.RecentCountryLimit).
		Return([]string{"US", "KR", "KR"}, nil)

	assert.False(t, d.Check(context.Background(), account, "KR"))
}

func TestAnomalyDetector_UnknownCountrySetsFlag(t *testing.T) {
	d, accounts, history, locations := newDetector(t)

	account := &domain.Account{ID: "u1"}

	locations.EXPECT().RecentCountry(gomock.Any(), "u1").Return("KR", nil)
	history.EXPECT().RecentCountries(gomock.Any(), "u1", constant.RecentCountryLimit).
		Return([]string{"KR", "KR"}, nil)
	accounts.EXPECT().UpdateStepUpFlag(gomock.Any(), "u1", true).Return(nil)

	assert.True(t, d.Check(context.Background(), account, "FR"))
	assert.True(t, account.RequiresStepUp)
}

func TestAnomalyDetector_FailOpen(t *testing.T) {
	d, _, history, locations := newDetector(t)

	account := &domain.Account{ID: "u1"}

	locations.EXPECT().RecentCountry(gomock.Any(), "u1").Return("", errors.New("cache down"))
	history.EXPECT().RecentCountries(gomock.Any(), "u1", constant.RecentCountryLimit).
		Return(nil, errors.New("store down"))

	// Both dependencies are broken; the login must still be allowed.
	assert.False(t, d.Check(context.Background(), account, "FR"))
	assert.False(t, account.RequiresStepUp)
}

func TestAnomalyDetector_NoOriginCountry(t *testing.T) {
	d, _, _, _ := newDetector(t)

	account := &domain.Account{ID: "u1"}

	assert.False(t, d.Check(context.Background(), account, ""))
}
