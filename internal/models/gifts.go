package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GiftRequest - модель запроса отправки подарка
type GiftRequest struct {
	RecipientID string `json:"recipient_id"`
	Gift        string `json:"gift"`
}

// GiftData - модель хранения отправленного подарка
type GiftData struct {
	ID            string
	SenderID      string
	RecipientID   string
	Gift          string
	Credits       int64
	RecipientUSD  decimal.Decimal
	CommissionUSD decimal.Decimal
	SentAt        time.Time
}

// GiftResponse - структура ответа об отправленном подарке
type GiftResponse struct {
	ID            string  `json:"id"`
	Gift          string  `json:"gift"`
	Credits       int64   `json:"credits"`
	RecipientUSD  float64 `json:"recipient_usd"`
	CommissionUSD float64 `json:"commission_usd"`
	SentAt        string  `json:"sent_at"`
}

// GiftCatalogItem - подарок и его стоимость
type GiftCatalogItem struct {
	Gift    string `json:"gift"`
	Credits int64  `json:"credits"`
}
