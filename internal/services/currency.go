package services

import "strings"

// символы валют, используемые витриной по умолчанию
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"CZK": "Kč",
	"PLN": "zł",
	"HUF": "Ft",
	"CHF": "CHF",
	"CAD": "C$",
	"AUD": "A$",
}

// CurrencySymbol возвращает символ валюты, для неизвестной валюты - её код
func CurrencySymbol(code string) string {
	code = strings.ToUpper(code)
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return code
}
