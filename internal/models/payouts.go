package models

import (
	"time"

	"github.com/denmor86/ya-giftcredits/internal/economy"
	"github.com/shopspring/decimal"
)

// Статусы выплат
const (
	PayoutStatusNew        = "NEW"
	PayoutStatusProcessing = "PROCESSING"
	PayoutStatusProcessed  = "PROCESSED"
	PayoutStatusFailed     = "FAILED"
)

// PayoutRequest - модель запроса на выплату
type PayoutRequest struct {
	Currency string `json:"currency"`
}

// PayoutData - модель хранения выплаты
type PayoutData struct {
	ID          string
	UserID      string
	AmountUSD   decimal.Decimal
	Currency    string
	AmountLocal decimal.Decimal
	Rate        decimal.Decimal
	Status      string
	RetryCount  int // число захватов воркером
	CreatedAt   time.Time
}

// PayoutResponse - структура ответа о выплате
type PayoutResponse struct {
	ID          string  `json:"id"`
	AmountUSD   float64 `json:"amount_usd"`
	Currency    string  `json:"currency"`
	AmountLocal float64 `json:"amount,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

// PayoutQuoteResponse - предварительный расчёт выплаты
type PayoutQuoteResponse struct {
	Credits float64 `json:"credits"`
	economy.PayoutComputation
	Validation economy.PayoutValidation `json:"validation"`
}
