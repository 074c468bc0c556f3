package economy

// CreditPackage - пакет кредитов, доступный для покупки
type CreditPackage struct {
	ID              string
	Name            string
	CreditAmount    int64
	Currency        string
	Price           float64
	PriceUSD        float64
	Active          bool
	SortOrder       int
	DiscountPercent int
}

// WithDiscount возвращает копию пакета с рассчитанной скидкой
func (p CreditPackage) WithDiscount() CreditPackage {
	p.DiscountPercent = CalculateDiscount(p.CreditAmount, p.PriceUSD)
	return p
}

// PayoutComputation - распределение суммы заработанных кредитов между платформой и пользователем
type PayoutComputation struct {
	TotalUSD              float64 `json:"total_usd"`
	PlatformCommissionUSD float64 `json:"platform_commission_usd"`
	UserPayoutUSD         float64 `json:"user_payout_usd"`
}

// PayoutValidation - результат проверки запроса на выплату
type PayoutValidation struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ArbitrageAssessment - результат проверки соответствия страны и валюты покупки
type ArbitrageAssessment struct {
	Risk    bool   `json:"risk"`
	Message string `json:"message,omitempty"`
}
