package models

import (
	"github.com/denmor86/ya-giftcredits/internal/economy"
	"github.com/shopspring/decimal"
)

// WalletData - модель кошелька пользователя из хранилища
type WalletData struct {
	UserID        string
	Country       string
	Credits       int64           // кредиты, доступные для подарков
	EarnedCredits int64           // кредиты, полученные в подарках за всё время
	CashBalance   decimal.Decimal // доступно к выплате, USD
	Withdrawn     decimal.Decimal // выплачено, USD
}

// WalletResponse - структура ответа с балансом пользователя
type WalletResponse struct {
	UserID        string                   `json:"user_id"`
	Credits       int64                    `json:"credits"`
	EarnedCredits int64                    `json:"earned_credits"`
	CashBalance   float64                  `json:"cash_balance_usd"`
	Withdrawn     float64                  `json:"withdrawn_usd"`
	Payout        economy.PayoutValidation `json:"payout"`
}
