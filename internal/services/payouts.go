package services

//go:generate mockgen -source=payouts.go -destination=mocks/mock_payouts.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/denmor86/ya-giftcredits/internal/client"
	"github.com/denmor86/ya-giftcredits/internal/economy"
	"github.com/denmor86/ya-giftcredits/internal/logger"
	"github.com/denmor86/ya-giftcredits/internal/models"
	"github.com/denmor86/ya-giftcredits/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrPayoutRejected - запрос на выплату не прошёл проверку минимальной суммы
var ErrPayoutRejected = errors.New("payout request rejected")

const payoutBaseCurrency = "USD"

type PayoutsService interface {
	Quote(credits float64) models.PayoutQuoteResponse
	GetBalance(ctx context.Context, userID string) (*models.WalletResponse, error)
	RequestPayout(ctx context.Context, userID string, currency string) (*models.PayoutData, economy.PayoutValidation, error)
	GetPayouts(ctx context.Context, userID string) ([]models.PayoutData, error)
	GetProcessingPayouts(ctx context.Context, count int) ([]models.PayoutData, error)
	ReleasePayouts(ctx context.Context, payouts []models.PayoutData) error
	ProcessPayout(ctx context.Context, payout models.PayoutData) error
}

type Payouts struct {
	Wallets storage.WalletsStorage
	Payouts storage.PayoutsStorage
	Rates   RatesService
}

// Создание сервиса
func NewPayouts(wallets storage.WalletsStorage, payouts storage.PayoutsStorage, rates RatesService) PayoutsService {
	return &Payouts{Wallets: wallets, Payouts: payouts, Rates: rates}
}

// Quote - предварительный расчёт выплаты за кредиты, остаток считается равным доле пользователя
func (s *Payouts) Quote(credits float64) models.PayoutQuoteResponse {
	computation := economy.CalculatePayoutAmount(credits)
	return models.PayoutQuoteResponse{
		Credits:           credits,
		PayoutComputation: computation,
		Validation:        economy.ValidatePayoutRequest(credits, computation.UserPayoutUSD),
	}
}

// GetBalance возвращает кошелёк пользователя и возможность выплаты
func (s *Payouts) GetBalance(ctx context.Context, userID string) (*models.WalletResponse, error) {
	wallet, err := s.Wallets.GetWallet(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrWalletNotFound) {
			logger.Warn("Wallet not found", userID)
			return nil, err
		}
		logger.Error("Failed to get wallet", zap.Error(err))
		return nil, err
	}

	cash := wallet.CashBalance.InexactFloat64()
	return &models.WalletResponse{
		UserID:        wallet.UserID,
		Credits:       wallet.Credits,
		EarnedCredits: wallet.EarnedCredits,
		CashBalance:   cash,
		Withdrawn:     wallet.Withdrawn.InexactFloat64(),
		Payout:        economy.ValidatePayoutRequest(float64(wallet.EarnedCredits), cash),
	}, nil
}

// RequestPayout - запрос выплаты всего доступного остатка в указанной валюте
func (s *Payouts) RequestPayout(ctx context.Context, userID string, currency string) (*models.PayoutData, economy.PayoutValidation, error) {
	wallet, err := s.Wallets.GetWallet(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrWalletNotFound) {
			logger.Warn("Wallet not found", userID)
			return nil, economy.PayoutValidation{}, err
		}
		logger.Error("Failed to get wallet", zap.Error(err))
		return nil, economy.PayoutValidation{}, err
	}

	validation := economy.ValidatePayoutRequest(float64(wallet.EarnedCredits), wallet.CashBalance.InexactFloat64())
	if !validation.Valid {
		logger.Info("Payout rejected:", userID, validation.Error)
		return nil, validation, ErrPayoutRejected
	}

	payout := models.PayoutData{
		ID:        uuid.NewString(),
		UserID:    userID,
		AmountUSD: wallet.CashBalance,
		Currency:  strings.ToUpper(currency),
		Status:    models.PayoutStatusNew,
		CreatedAt: time.Now(),
	}
	if err := s.Payouts.AddPayout(ctx, payout); err != nil {
		logger.Error("Failed to add payout", zap.Error(err))
		return nil, validation, err
	}
	return &payout, validation, nil
}

// GetPayouts возвращает список выплат пользователя
func (s *Payouts) GetPayouts(ctx context.Context, userID string) ([]models.PayoutData, error) {
	payouts, err := s.Payouts.GetPayouts(ctx, userID)
	if err != nil {
		logger.Error("Failed to get payouts:", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}

// GetProcessingPayouts - захват выплат для обработки
func (s *Payouts) GetProcessingPayouts(ctx context.Context, count int) ([]models.PayoutData, error) {
	return s.Payouts.ClaimPayoutsForProcessing(ctx, count)
}

// ReleasePayouts - возврат захваченных выплат, до которых не дошла обработка
func (s *Payouts) ReleasePayouts(ctx context.Context, payouts []models.PayoutData) error {
	ids := make([]string, 0, len(payouts))
	for _, payout := range payouts {
		ids = append(ids, payout.ID)
	}
	if err := s.Payouts.ReleasePayouts(ctx, ids); err != nil {
		logger.Error("Failed to release payouts", zap.Error(err))
		return err
	}
	return nil
}

// ProcessPayout - пересчёт выплаты в валюту получателя по текущему курсу
func (s *Payouts) ProcessPayout(ctx context.Context, payout models.PayoutData) error {
	rate, err := s.Rates.GetRate(ctx, payoutBaseCurrency, payout.Currency)
	if err != nil {
		switch {
		case errors.Is(err, ErrRateDeferred):
			// выплата остаётся в PROCESSING, отложенная попытка не засчитывается
			logger.Info("Payout deferred:", payout.ID)
			return s.ReleasePayouts(ctx, []models.PayoutData{payout})
		case errors.Is(err, client.ErrCurrencyNotSupported):
			logger.Warn("Payout currency not supported:", payout.ID, payout.Currency)
			payout.Status = models.PayoutStatusFailed
			return s.Payouts.UpdatePayout(ctx, payout)
		default:
			if payout.RetryCount >= storage.MaxPayoutAttempts {
				// попытки исчерпаны: выплата отменяется, остаток возвращается пользователю
				logger.Errorw("Payout attempts exhausted", "id", payout.ID, "error", err)
				payout.Status = models.PayoutStatusFailed
				if updErr := s.Payouts.UpdatePayout(ctx, payout); updErr != nil {
					logger.Error("Failed to fail payout", zap.Error(updErr))
				}
			}
			return err
		}
	}

	payout.Rate = rate
	payout.AmountLocal = payout.AmountUSD.Mul(rate).Round(2)
	payout.Status = models.PayoutStatusProcessed
	if err := s.Payouts.UpdatePayout(ctx, payout); err != nil {
		logger.Error("Failed to update payout", zap.Error(err))
		return err
	}
	logger.Infow("Payout processed", "id", payout.ID, "currency", payout.Currency, "amount", payout.AmountLocal.String())
	return nil
}
