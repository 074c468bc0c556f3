package economy

import (
	"fmt"
	"math"
)

// CalculatePayoutAmount рассчитывает сумму в USD для заработанных кредитов
// и её распределение между платформой и пользователем.
// Округление не выполняется, оно остаётся на стороне отображения.
// Поведение для отрицательных значений не определено.
func CalculatePayoutAmount(creditsEarned float64) PayoutComputation {
	total := creditsEarned / CreditsPerUSD
	return PayoutComputation{
		TotalUSD:              total,
		PlatformCommissionUSD: total * PlatformCommissionRate,
		UserPayoutUSD:         total * UserPayoutRate,
	}
}

// ValidatePayoutRequest проверяет, может ли пользователь запросить выплату.
// Сначала проверяется сумма по заработанным кредитам, затем фактический остаток.
func ValidatePayoutRequest(earnedCredits float64, cashBalanceUSD float64) PayoutValidation {
	payout := CalculatePayoutAmount(earnedCredits)

	if payout.UserPayoutUSD < MinPayoutUSD {
		return PayoutValidation{
			Valid: false,
			Error: fmt.Sprintf("Minimum payout is $%.2f. You need %d more credits.",
				MinPayoutUSD, creditsNeeded(payout.UserPayoutUSD)),
		}
	}

	if cashBalanceUSD < MinPayoutUSD {
		return PayoutValidation{
			Valid: false,
			Error: fmt.Sprintf("Insufficient balance: $%.2f available, minimum payout is $%.2f.",
				cashBalanceUSD, MinPayoutUSD),
		}
	}

	return PayoutValidation{Valid: true}
}

// creditsNeeded - сколько кредитов не хватает до минимальной выплаты
func creditsNeeded(userPayoutUSD float64) int64 {
	missing := (MinPayoutUSD - userPayoutUSD) * CreditsPerUSD
	// отбрасываем погрешность float64, чтобы 1.0000000000000009 не превращалось в 2
	missing = math.Round(missing*1e6) / 1e6
	return int64(math.Ceil(missing))
}
