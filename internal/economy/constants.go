// Package economy содержит правила кредитной экономики: цены пакетов,
// распределение комиссии при выплатах и проверку арбитража валют.
// Все функции пакета чистые и безопасны для конкурентного вызова.
package economy

import "sort"

// Параметры экономики. Сумма PlatformCommissionRate и UserPayoutRate равна 1.
const (
	PlatformCommissionRate = 0.60
	UserPayoutRate         = 0.40
	MinPayoutUSD           = 10.00
	CreditsPerUSD          = 100
	// BaselinePricePerCredit - базовая цена кредита, используется только для расчёта скидки
	BaselinePricePerCredit = 0.05
)

// GiftType - тип подарка
type GiftType string

// Типы подарков
const (
	GiftRose      GiftType = "rose"
	GiftHeart     GiftType = "heart"
	GiftDiamond   GiftType = "diamond"
	GiftChampagne GiftType = "champagne"
	GiftLuxuryCar GiftType = "luxury_car"
)

var giftCredits = map[GiftType]int64{
	GiftRose:      10,
	GiftHeart:     20,
	GiftDiamond:   50,
	GiftChampagne: 100,
	GiftLuxuryCar: 500,
}

// валюты, в которых символ пишется после суммы
var symbolAfter = map[string]struct{}{
	"CZK": {},
	"PLN": {},
	"HUF": {},
}

// ожидаемая валюта покупки для страны пользователя
var expectedCurrency = map[string]string{
	"CZ": "CZK",
	"US": "USD",
	"GB": "GBP",
	"EU": "EUR",
	"PL": "PLN",
	"CA": "CAD",
	"AU": "AUD",
}

// GiftCredits возвращает стоимость подарка в кредитах
func GiftCredits(gift GiftType) (int64, bool) {
	credits, ok := giftCredits[gift]
	return credits, ok
}

// GiftTypes возвращает все типы подарков, упорядоченные по стоимости
func GiftTypes() []GiftType {
	types := make([]GiftType, 0, len(giftCredits))
	for gift := range giftCredits {
		types = append(types, gift)
	}
	sort.Slice(types, func(i, j int) bool {
		return giftCredits[types[i]] < giftCredits[types[j]]
	})
	return types
}

// ExpectedCurrency возвращает валюту, ожидаемую для страны
func ExpectedCurrency(country string) (string, bool) {
	currency, ok := expectedCurrency[normalizeCode(country)]
	return currency, ok
}
