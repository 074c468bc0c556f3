package economy

import "fmt"

// CheckArbitrageRisk сравнивает валюту покупки с валютой, ожидаемой для страны пользователя.
// Для неизвестной страны риск не выставляется: оценить его нечем.
func CheckArbitrageRisk(userCountry string, purchaseCurrency string) ArbitrageAssessment {
	expected, ok := ExpectedCurrency(userCountry)
	if !ok {
		return ArbitrageAssessment{Risk: false}
	}

	currency := normalizeCode(purchaseCurrency)
	if currency == expected {
		return ArbitrageAssessment{Risk: false}
	}

	return ArbitrageAssessment{
		Risk: true,
		Message: fmt.Sprintf("Possible currency arbitrage: user from %s purchasing in %s (expected %s)",
			normalizeCode(userCountry), currency, expected),
	}
}
