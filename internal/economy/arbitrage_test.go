package economy

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCheckArbitrageRisk(t *testing.T) {
	testCases := []struct {
		Name         string
		Country      string
		Currency     string
		ExpectedRisk bool
	}{
		{Name: "Matching currency #1", Country: "CZ", Currency: "CZK", ExpectedRisk: false},
		{Name: "Mismatching currency #2", Country: "CZ", Currency: "USD", ExpectedRisk: true},
		{Name: "Unknown country #3", Country: "JP", Currency: "JPY", ExpectedRisk: false},
		{Name: "Unknown country any currency #4", Country: "JP", Currency: "USD", ExpectedRisk: false},
		{Name: "US in USD #5", Country: "US", Currency: "USD", ExpectedRisk: false},
		{Name: "GB in EUR #6", Country: "GB", Currency: "EUR", ExpectedRisk: true},
		{Name: "Lowercase codes #7", Country: "pl", Currency: "pln", ExpectedRisk: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := CheckArbitrageRisk(tc.Country, tc.Currency)
			if got.Risk != tc.ExpectedRisk {
				t.Errorf("Expected risk %v, got: %v", tc.ExpectedRisk, got.Risk)
			}
			if !got.Risk && got.Message != "" {
				t.Errorf("Expected empty message without risk, got: '%s'", got.Message)
			}
		})
	}
}

func TestCheckArbitrageRisk_Message(t *testing.T) {
	got := CheckArbitrageRisk("CZ", "USD")
	expected := ArbitrageAssessment{
		Risk:    true,
		Message: "Possible currency arbitrage: user from CZ purchasing in USD (expected CZK)",
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("assessment mismatch:\n %s", diff)
	}
	if !strings.Contains(strings.ToLower(got.Message), "arbitrage") {
		t.Errorf("Expected message to mention arbitrage, got: '%s'", got.Message)
	}
}

func TestGiftTypes(t *testing.T) {
	expected := []GiftType{GiftRose, GiftHeart, GiftDiamond, GiftChampagne, GiftLuxuryCar}
	if diff := cmp.Diff(expected, GiftTypes()); diff != "" {
		t.Errorf("gift types mismatch:\n %s", diff)
	}

	credits, ok := GiftCredits(GiftLuxuryCar)
	if !ok || credits != 500 {
		t.Errorf("Expected luxury_car to cost 500 credits, got: %d (%v)", credits, ok)
	}
	if _, ok := GiftCredits("unicorn"); ok {
		t.Errorf("Expected unknown gift to be missing")
	}
}
