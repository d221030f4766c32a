package products

import (
	"github.com/shopspring/decimal"
)

type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// currencyList is the single definition of the supported currencies, in
// display order. Currencies and CurrencyCodes are both derived from it.
var currencyList = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "NOK", Symbol: "kr", Name: "Norwegian Krone"},
}

// Currencies indexes the supported currencies by code.
var Currencies = func() map[string]Currency {
	m := make(map[string]Currency, len(currencyList))
	for _, cur := range currencyList {
		m[cur.Code] = cur
	}
	return m
}()

// CurrencyCodes returns the supported codes in display order.
func CurrencyCodes() []string {
	codes := make([]string, len(currencyList))
	for i, cur := range currencyList {
		codes[i] = cur.Code
	}
	return codes
}

func IsValidCurrency(code string) bool {
	_, ok := Currencies[code]
	return ok
}

// FormatPrice renders a price with its currency symbol. Yen has no
// fractional unit; everything else is shown with two decimals.
func FormatPrice(price decimal.Decimal, code string) string {
	cur, ok := Currencies[code]
	if !ok {
		return price.StringFixed(2)
	}
	if code == "JPY" {
		return cur.Symbol + price.StringFixed(0)
	}
	return cur.Symbol + price.StringFixed(2)
}
