package models

import (
	"github.com/denmor86/ya-giftcredits/internal/economy"
	"github.com/shopspring/decimal"
)

// PackageData - модель пакета кредитов из хранилища
type PackageData struct {
	ID        string
	Name      string
	Credits   int64
	Currency  string
	Price     decimal.Decimal
	PriceUSD  decimal.Decimal
	Active    bool
	SortOrder int
}

// CreditPackage - преобразование в модель расчётного движка
func (p PackageData) CreditPackage() economy.CreditPackage {
	return economy.CreditPackage{
		ID:           p.ID,
		Name:         p.Name,
		CreditAmount: p.Credits,
		Currency:     p.Currency,
		Price:        p.Price.InexactFloat64(),
		PriceUSD:     p.PriceUSD.InexactFloat64(),
		Active:       p.Active,
		SortOrder:    p.SortOrder,
	}
}

// PackageResponse - модель пакета для выдачи в витрине
type PackageResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Credits         int64   `json:"credits"`
	Currency        string  `json:"currency"`
	Price           float64 `json:"price"`
	PriceUSD        float64 `json:"price_usd"`
	DiscountPercent int     `json:"discount_percent"`
	DisplayPrice    string  `json:"display_price"`
}

// PurchaseRequest - модель запроса зачисления купленного пакета
type PurchaseRequest struct {
	PackageID string `json:"package_id"`
	Country   string `json:"country"`
}

// PurchaseResponse - результат покупки пакета
type PurchaseResponse struct {
	PackageID string                      `json:"package_id"`
	Credits   int64                       `json:"credits"`
	Arbitrage economy.ArbitrageAssessment `json:"arbitrage"`
}
