package exchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvolkov-dev/autobridge/app/models"
	"github.com/rvolkov-dev/autobridge/internal/pkg/cache"
)

// memoryRateRepo is an in-memory stand-in for the database-backed
// repository.
type memoryRateRepo struct {
	stored  *models.ExchangeRate
	upserts int
}

func (m *memoryRateRepo) GetPair(base, target string) (*models.ExchangeRate, error) {
	if m.stored == nil || m.stored.BaseCurrency != base || m.stored.TargetCurrency != target {
		return nil, nil
	}
	return m.stored, nil
}

func (m *memoryRateRepo) Upsert(rate *models.ExchangeRate) error {
	m.stored = rate
	m.upserts++
	return nil
}

func feedServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()

	// Drop any rate a previous test may have left in Redis.
	_ = cache.Delete(cacheKey)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestEURRUBRateFetchesAndStores(t *testing.T) {
	srv := feedServer(t, `{"Valute":{"EUR":{"Value":104.85}}}`, http.StatusOK)
	t.Setenv("CBR_API_URL", srv.URL)

	repo := &memoryRateRepo{}
	svc := NewService(repo)

	rate, err := svc.EURRUBRate(context.Background())
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("104.85")), "rate %s", rate)
	assert.Equal(t, 1, repo.upserts)
	require.NotNil(t, repo.stored)
	assert.Equal(t, "EUR", repo.stored.BaseCurrency)
	assert.Equal(t, "RUB", repo.stored.TargetCurrency)
}

func TestEURRUBRateServesFreshStoredRate(t *testing.T) {
	srv := feedServer(t, `{"Valute":{"EUR":{"Value":999}}}`, http.StatusOK)
	t.Setenv("CBR_API_URL", srv.URL)

	repo := &memoryRateRepo{stored: &models.ExchangeRate{
		BaseCurrency:   "EUR",
		TargetCurrency: "RUB",
		Rate:           decimal.RequireFromString("101.5"),
		FetchedAt:      time.Now().Add(-time.Hour),
	}}
	svc := NewService(repo)

	rate, err := svc.EURRUBRate(context.Background())
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("101.5")), "fresh stored rate must win, got %s", rate)
	assert.Equal(t, 0, repo.upserts)
}

func TestEURRUBRateRefetchesExpiredRate(t *testing.T) {
	srv := feedServer(t, `{"Valute":{"EUR":{"Value":106.2}}}`, http.StatusOK)
	t.Setenv("CBR_API_URL", srv.URL)

	repo := &memoryRateRepo{stored: &models.ExchangeRate{
		BaseCurrency:   "EUR",
		TargetCurrency: "RUB",
		Rate:           decimal.RequireFromString("101.5"),
		FetchedAt:      time.Now().Add(-7 * time.Hour),
	}}
	svc := NewService(repo)

	rate, err := svc.EURRUBRate(context.Background())
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("106.2")), "rate %s", rate)
	assert.Equal(t, 1, repo.upserts)
}

func TestEURRUBRateFallsBackToStaleOnFeedError(t *testing.T) {
	srv := feedServer(t, "upstream error", http.StatusBadGateway)
	t.Setenv("CBR_API_URL", srv.URL)

	repo := &memoryRateRepo{stored: &models.ExchangeRate{
		BaseCurrency:   "EUR",
		TargetCurrency: "RUB",
		Rate:           decimal.RequireFromString("101.5"),
		FetchedAt:      time.Now().Add(-48 * time.Hour),
	}}
	svc := NewService(repo)

	rate, err := svc.EURRUBRate(context.Background())
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("101.5")), "stale rate expected, got %s", rate)
}

func TestEURRUBRateErrorsWithoutAnyRate(t *testing.T) {
	srv := feedServer(t, "upstream error", http.StatusBadGateway)
	t.Setenv("CBR_API_URL", srv.URL)

	svc := NewService(&memoryRateRepo{})

	_, err := svc.EURRUBRate(context.Background())
	require.Error(t, err)
}

func TestEURRUBRateRejectsFeedWithoutEUR(t *testing.T) {
	srv := feedServer(t, `{"Valute":{"USD":{"Value":92.1}}}`, http.StatusOK)
	t.Setenv("CBR_API_URL", srv.URL)

	svc := NewService(&memoryRateRepo{})

	_, err := svc.EURRUBRate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EUR")
}

func TestRefreshIgnoresTTL(t *testing.T) {
	srv := feedServer(t, `{"Valute":{"EUR":{"Value":107.4}}}`, http.StatusOK)
	t.Setenv("CBR_API_URL", srv.URL)

	repo := &memoryRateRepo{stored: &models.ExchangeRate{
		BaseCurrency:   "EUR",
		TargetCurrency: "RUB",
		Rate:           decimal.RequireFromString("101.5"),
		FetchedAt:      time.Now(),
	}}
	svc := NewService(repo)

	rate, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("107.4")), "rate %s", rate)
	assert.Equal(t, 1, repo.upserts)
}
