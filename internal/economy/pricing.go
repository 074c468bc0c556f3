package economy

import (
	"math"
	"strconv"
	"strings"
)

// CalculateDiscount возвращает скидку пакета в процентах относительно базовой цены.
// Цена выше базовой даёт 0, отрицательная скидка не возвращается.
func CalculateDiscount(creditAmount int64, priceUSD float64) int {
	baseline := float64(creditAmount) * BaselinePricePerCredit
	if baseline <= 0 {
		return 0
	}
	percent := math.Max(0, (baseline-priceUSD)/baseline*100)
	return int(math.Round(percent))
}

// FormatPrice форматирует цену для отображения, округляя до целых единиц валюты.
func FormatPrice(amount float64, currencyCode string, symbol string) string {
	rounded := strconv.FormatInt(int64(math.Round(amount)), 10)
	if _, ok := symbolAfter[normalizeCode(currencyCode)]; ok {
		return rounded + " " + symbol
	}
	return symbol + rounded
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
