package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
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

// GiftCatalogHandler - список подарков
func GiftCatalogHandler(s services.GiftsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.GiftCatalog())
	})
}

// SendGiftHandler - отправка подарка другому пользователю
func SendGiftHandler(s services.GiftsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r)
		if err != nil {
			http.Error(w, "Invalid user id", http.StatusBadRequest)
			return
		}
		var req models.GiftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		recipientID, ok := validators.CanonicalUserID(req.RecipientID)
		if !ok {
			logger.Warn("Invalid recipient id", req.RecipientID)
			http.Error(w, "Invalid recipient id", http.StatusBadRequest)
			return
		}

		gift, err := s.SendGift(r.Context(), userID, recipientID, strings.ToLower(req.Gift))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownGift), errors.Is(err, services.ErrSelfGift):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, storage.ErrWalletNotFound):
				http.Error(w, "Wallet not found", http.StatusNotFound)
			case errors.Is(err, storage.ErrInsufficientCredits):
				http.Error(w, "Insufficient credits", http.StatusPaymentRequired)
			default:
				logger.Error("Failed to send gift:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.GiftResponse{
			ID:            gift.ID,
			Gift:          gift.Gift,
			Credits:       gift.Credits,
			RecipientUSD:  gift.RecipientUSD.InexactFloat64(),
			CommissionUSD: gift.CommissionUSD.InexactFloat64(),
			SentAt:        gift.SentAt.Format(time.RFC3339),
		})
	})
}
