package client

import (
	"errors"
	"net/http"
	"time"
)

// RateResponse - ответ сервиса курсов валют
type RateResponse struct {
	Base  string  `json:"base"`
	Quote string  `json:"quote"`
	Rate  float64 `json:"rate"`
}

var (
	ErrServiceUnavailable   = errors.New("fx service unavailable")
	ErrCurrencyNotSupported = errors.New("currency not supported")
	ErrInvalidRate          = errors.New("invalid fx rate")
)

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
