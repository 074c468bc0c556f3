package economy

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCalculatePayoutAmount(t *testing.T) {
	testCases := []struct {
		Name     string
		Credits  float64
		Expected PayoutComputation
	}{
		{Name: "Zero credits #1", Credits: 0, Expected: PayoutComputation{}},
		{Name: "One dollar #2", Credits: 100, Expected: PayoutComputation{TotalUSD: 1.00, PlatformCommissionUSD: 0.60, UserPayoutUSD: 0.40}},
		{Name: "Minimum payout #3", Credits: 2500, Expected: PayoutComputation{TotalUSD: 25, PlatformCommissionUSD: 15, UserPayoutUSD: 10}},
		{Name: "Fractional credits #4", Credits: 12.5, Expected: PayoutComputation{TotalUSD: 0.125, PlatformCommissionUSD: 0.075, UserPayoutUSD: 0.05}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := CalculatePayoutAmount(tc.Credits)
			if diff := cmp.Diff(tc.Expected, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("payout mismatch:\n %s", diff)
			}
		})
	}
}

func TestCalculatePayoutAmount_SplitSumsToTotal(t *testing.T) {
	for _, credits := range []float64{0, 1, 7, 10, 99, 100, 333, 1001, 2500, 123456, 0.5, 9999.99} {
		got := CalculatePayoutAmount(credits)
		if math.Abs(got.PlatformCommissionUSD+got.UserPayoutUSD-got.TotalUSD) > 1e-9 {
			t.Errorf("credits %v: commission %v + payout %v != total %v",
				credits, got.PlatformCommissionUSD, got.UserPayoutUSD, got.TotalUSD)
		}
	}
	if math.Abs(PlatformCommissionRate+UserPayoutRate-1.0) > 1e-12 {
		t.Errorf("Expected rates to sum to 1, got %v", PlatformCommissionRate+UserPayoutRate)
	}
}

func TestValidatePayoutRequest(t *testing.T) {
	testCases := []struct {
		Name          string
		EarnedCredits float64
		CashBalance   float64
		ExpectedValid bool
		ExpectedError string
	}{
		{
			Name:          "Error. Not enough earned credits #1",
			EarnedCredits: 2000,
			CashBalance:   8,
			ExpectedValid: false,
			ExpectedError: "Minimum payout is $10.00. You need 200 more credits.",
		},
		{
			Name:          "Success. Exactly minimum #2",
			EarnedCredits: 2500,
			CashBalance:   10,
			ExpectedValid: true,
		},
		{
			Name:          "Error. Insufficient cash balance #3",
			EarnedCredits: 2500,
			CashBalance:   5,
			ExpectedValid: false,
			ExpectedError: "Insufficient balance: $5.00 available, minimum payout is $10.00.",
		},
		{
			Name:          "Error. Earned credits checked before balance #4",
			EarnedCredits: 1000,
			CashBalance:   0,
			ExpectedValid: false,
			ExpectedError: "Minimum payout is $10.00. You need 600 more credits.",
		},
		{
			Name:          "Error. Nothing earned #5",
			EarnedCredits: 0,
			CashBalance:   50,
			ExpectedValid: false,
			ExpectedError: "Minimum payout is $10.00. You need 1000 more credits.",
		},
		{
			Name:          "Error. Fraction of a credit rounds up #6",
			EarnedCredits: 2499,
			CashBalance:   20,
			ExpectedValid: false,
			ExpectedError: "Minimum payout is $10.00. You need 1 more credits.",
		},
		{
			Name:          "Success. Large balance #7",
			EarnedCredits: 100000,
			CashBalance:   250.75,
			ExpectedValid: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := ValidatePayoutRequest(tc.EarnedCredits, tc.CashBalance)
			expected := PayoutValidation{Valid: tc.ExpectedValid, Error: tc.ExpectedError}
			if diff := cmp.Diff(expected, got); diff != "" {
				t.Errorf("validation mismatch:\n %s", diff)
			}
		})
	}
}

func TestValidatePayoutRequest_MessageMentionsMinimum(t *testing.T) {
	got := ValidatePayoutRequest(2000, 8)
	if got.Valid {
		t.Fatalf("Expected invalid request")
	}
	if !strings.Contains(got.Error, "$10") {
		t.Errorf("Expected message to contain '$10', got: '%s'", got.Error)
	}
	if !strings.Contains(got.Error, "more") {
		t.Errorf("Expected message to mention more credits, got: '%s'", got.Error)
	}
}

func TestEconomy_Idempotent(t *testing.T) {
	if diff := cmp.Diff(CalculatePayoutAmount(1234), CalculatePayoutAmount(1234)); diff != "" {
		t.Errorf("CalculatePayoutAmount not idempotent:\n %s", diff)
	}
	if diff := cmp.Diff(ValidatePayoutRequest(2000, 8), ValidatePayoutRequest(2000, 8)); diff != "" {
		t.Errorf("ValidatePayoutRequest not idempotent:\n %s", diff)
	}
	if diff := cmp.Diff(CheckArbitrageRisk("CZ", "USD"), CheckArbitrageRisk("CZ", "USD")); diff != "" {
		t.Errorf("CheckArbitrageRisk not idempotent:\n %s", diff)
	}
	if CalculateDiscount(100, 4) != CalculateDiscount(100, 4) {
		t.Errorf("CalculateDiscount not idempotent")
	}
	if FormatPrice(9.99, "USD", "$") != FormatPrice(9.99, "USD", "$") {
		t.Errorf("FormatPrice not idempotent")
	}
}
