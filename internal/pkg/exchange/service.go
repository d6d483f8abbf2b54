package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rvolkov-dev/autobridge/app/models"
	"github.com/rvolkov-dev/autobridge/app/repository"
	"github.com/rvolkov-dev/autobridge/internal/pkg/cache"
	"github.com/rvolkov-dev/autobridge/internal/pkg/env"
)

const (
	BaseCurrency   = "EUR"
	TargetCurrency = "RUB"

	// RateTTL is how long a fetched rate is served before the central
	// bank feed is asked again.
	RateTTL = 6 * time.Hour

	defaultFeedURL = "https://www.cbr-xml-daily.ru/daily_json.js"
	cacheKey       = "exchange:eur_rub"
)

// Service resolves the EUR to RUB conversion rate used by the pricing
// engine. Rates are cached in Redis and persisted in the database so a
// feed outage never takes the calculator down with it.
type Service struct {
	rates  repository.ExchangeRateRepository
	client *http.Client
}

func NewService(rates repository.ExchangeRateRepository) *Service {
	return &Service{
		rates:  rates,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// cbrResponse is the shape of the daily_json.js feed. Only the EUR
// entry is read.
type cbrResponse struct {
	Valute struct {
		EUR *struct {
			Value float64 `json:"Value"`
		} `json:"EUR"`
	} `json:"Valute"`
}

// EURRUBRate returns the current EUR to RUB rate. A fresh cached rate
// wins; otherwise the feed is fetched and persisted. When the feed is
// unreachable a stale persisted rate is served instead of an error.
func (s *Service) EURRUBRate(ctx context.Context) (decimal.Decimal, error) {
	if cached, err := cache.Get(cacheKey); err == nil {
		if rate, parseErr := decimal.NewFromString(cached); parseErr == nil {
			return rate, nil
		}
	}

	stored, err := s.rates.GetPair(BaseCurrency, TargetCurrency)
	if err != nil {
		return decimal.Zero, fmt.Errorf("load stored exchange rate: %w", err)
	}
	if stored != nil && stored.IsFresh(RateTTL) {
		s.cacheRate(stored.Rate)
		return stored.Rate, nil
	}

	fetched, err := s.fetchFeed(ctx)
	if err != nil {
		if stored != nil {
			log.Printf("Exchange rate feed unavailable, serving stale rate from %s: %v", stored.FetchedAt.Format(time.RFC3339), err)
			return stored.Rate, nil
		}
		return decimal.Zero, err
	}

	record := &models.ExchangeRate{
		BaseCurrency:   BaseCurrency,
		TargetCurrency: TargetCurrency,
		Rate:           fetched,
		FetchedAt:      time.Now(),
		Source:         "cbr-xml-daily",
	}
	if err := s.rates.Upsert(record); err != nil {
		return decimal.Zero, fmt.Errorf("store exchange rate: %w", err)
	}
	s.cacheRate(fetched)

	return fetched, nil
}

// Refresh forces a feed fetch regardless of TTL. Used by the admin
// endpoint after a known rate move.
func (s *Service) Refresh(ctx context.Context) (decimal.Decimal, error) {
	fetched, err := s.fetchFeed(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	record := &models.ExchangeRate{
		BaseCurrency:   BaseCurrency,
		TargetCurrency: TargetCurrency,
		Rate:           fetched,
		FetchedAt:      time.Now(),
		Source:         "cbr-xml-daily",
	}
	if err := s.rates.Upsert(record); err != nil {
		return decimal.Zero, fmt.Errorf("store exchange rate: %w", err)
	}
	s.cacheRate(fetched)

	return fetched, nil
}

func (s *Service) fetchFeed(ctx context.Context) (decimal.Decimal, error) {
	feedURL := env.GetEnv("CBR_API_URL", defaultFeedURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("build exchange rate request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fetch exchange rate feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("exchange rate feed returned status %d", resp.StatusCode)
	}

	var payload cbrResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Zero, fmt.Errorf("decode exchange rate feed: %w", err)
	}

	if payload.Valute.EUR == nil || payload.Valute.EUR.Value <= 0 {
		return decimal.Zero, fmt.Errorf("exchange rate feed is missing the EUR rate")
	}

	return decimal.NewFromFloat(payload.Valute.EUR.Value), nil
}

func (s *Service) cacheRate(rate decimal.Decimal) {
	if err := cache.Set(cacheKey, rate.String(), RateTTL); err != nil {
		log.Printf("Warning: could not cache exchange rate: %v", err)
	}
}
