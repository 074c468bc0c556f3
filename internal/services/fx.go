package services

//go:generate mockgen -source=fx.go -destination=mocks/mock_fx.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/denmor86/ya-giftcredits/internal/client"
	"github.com/denmor86/ya-giftcredits/internal/logger"
	"github.com/shopspring/decimal"
)

// ErrRateDeferred - курс сейчас получить нельзя (429), запрос нужно повторить позже
var ErrRateDeferred = errors.New("fx rate request deferred")

type RatesService interface {
	GetRate(ctx context.Context, base string, quote string) (decimal.Decimal, error)
}

type FXService struct {
	Client  *client.Client
	Limiter *client.RateLimiter
}

func NewFXService(baseURL string) RatesService {
	return &FXService{
		Client:  client.NewClient(baseURL, &http.Client{}),
		Limiter: client.NewRateLimiter(),
	}
}

// GetRate - курс пересчёта base→quote
func (s *FXService) GetRate(ctx context.Context, base string, quote string) (decimal.Decimal, error) {
	base = strings.ToUpper(base)
	quote = strings.ToUpper(quote)
	if base == quote {
		return decimal.NewFromInt(1), nil
	}

	if s.Limiter.Blocked() {
		return decimal.Zero, ErrRateDeferred
	}
	if err := s.Limiter.Wait(ctx); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrRateDeferred, err)
	}

	resp, err := s.Client.GetRate(ctx, base, quote)
	if err != nil {
		// проверка большого количеста запросов
		var rateLimitErr *client.RateLimitError
		if errors.As(err, &rateLimitErr) {
			logger.Warn("Too many requests to fx service:", base, quote)
			s.Limiter.BlockFor(rateLimitErr.RetryAfter)
			return decimal.Zero, ErrRateDeferred
		}
		return decimal.Zero, err
	}
	if !strings.EqualFold(resp.Quote, quote) {
		logger.Error("Unexpected quote currency:", resp.Quote)
		return decimal.Zero, fmt.Errorf("unexpected quote currency %s", resp.Quote)
	}
	return decimal.NewFromFloat(resp.Rate), nil
}
