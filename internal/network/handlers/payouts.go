package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/denmor86/ya-giftcredits/internal/helpers"
	"github.com/denmor86/ya-giftcredits/internal/logger"
	"github.com/denmor86/ya-giftcredits/internal/models"
	"github.com/denmor86/ya-giftcredits/internal/services"
	"github.com/denmor86/ya-giftcredits/internal/storage"
	"github.com/denmor86/ya-giftcredits/internal/validators"
	"go.uber.org/zap"
)

// PayoutQuoteHandler - предварительный расчёт выплаты за кредиты
func PayoutQuoteHandler(s services.PayoutsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		credits, err := strconv.ParseFloat(r.URL.Query().Get("credits"), 64)
		if err != nil || credits < 0 || math.IsNaN(credits) || math.IsInf(credits, 0) {
			logger.Warn("Invalid credits value", r.URL.Query().Get("credits"))
			http.Error(w, "Invalid credits value", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, s.Quote(credits))
	})
}

// GetWalletHandler - баланс пользователя и доступность выплаты
func GetWalletHandler(s services.PayoutsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r)
		if err != nil {
			http.Error(w, "Invalid user id", http.StatusBadRequest)
			return
		}
		wallet, err := s.GetBalance(r.Context(), userID)
		if err != nil {
			if errors.Is(err, storage.ErrWalletNotFound) {
				http.Error(w, "Wallet not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to get wallet:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, wallet)
	})
}

// RequestPayoutHandler - запрос на выплату заработанных средств
func RequestPayoutHandler(s services.PayoutsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r)
		if err != nil {
			http.Error(w, "Invalid user id", http.StatusBadRequest)
			return
		}
		var req models.PayoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		currency := strings.ToUpper(strings.TrimSpace(req.Currency))
		if !validators.CheckCurrency(currency) {
			logger.Warn("Invalid currency format", req.Currency)
			http.Error(w, "Invalid currency format", http.StatusBadRequest)
			return
		}

		payout, validation, err := s.RequestPayout(r.Context(), userID, currency)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPayoutRejected):
				writeJSON(w, http.StatusUnprocessableEntity, validation)
			case errors.Is(err, storage.ErrWalletNotFound):
				http.Error(w, "Wallet not found", http.StatusNotFound)
			case errors.Is(err, storage.ErrInsufficientFunds):
				http.Error(w, "Insufficient funds", http.StatusPaymentRequired)
			default:
				logger.Error("Failed to request payout:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusAccepted, payoutResponse(*payout))
	})
}

// GetPayoutsHandler - список выплат пользователя
func GetPayoutsHandler(s services.PayoutsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r)
		if err != nil {
			http.Error(w, "Invalid user id", http.StatusBadRequest)
			return
		}
		payouts, err := s.GetPayouts(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to get user payouts:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		if len(payouts) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		response := make([]models.PayoutResponse, 0, len(payouts))
		for _, payout := range payouts {
			response = append(response, payoutResponse(payout))
		}
		writeJSON(w, http.StatusOK, response)
	})
}

func payoutResponse(payout models.PayoutData) models.PayoutResponse {
	item := models.PayoutResponse{
		ID:        payout.ID,
		AmountUSD: payout.AmountUSD.InexactFloat64(),
		Currency:  payout.Currency,
		Status:    payout.Status,
		CreatedAt: payout.CreatedAt.Format(time.RFC3339),
	}
	if payout.Status == models.PayoutStatusProcessed {
		item.AmountLocal = payout.AmountLocal.InexactFloat64()
	}
	return item
}
