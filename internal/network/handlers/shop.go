package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/denmor86/ya-giftcredits/internal/helpers"
	"github.com/denmor86/ya-giftcredits/internal/logger"
	"github.com/denmor86/ya-giftcredits/internal/models"
	"github.com/denmor86/ya-giftcredits/internal/services"
	"github.com/denmor86/ya-giftcredits/internal/validators"
	"go.uber.org/zap"
)

// ListPackagesHandler - витрина пакетов кредитов в валюте пользователя
func ListPackagesHandler(s services.ShopService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		currency := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("currency")))
		if !validators.CheckCurrency(currency) {
			logger.Warn("Invalid currency format", currency)
			http.Error(w, "Invalid currency format", http.StatusBadRequest)
			return
		}
		symbol := r.URL.Query().Get("symbol")

		packages, err := s.ListPackages(r.Context(), currency, symbol)
		if err != nil {
			logger.Error("Failed to get packages:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		if len(packages) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(packages)
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// PurchaseHandler - зачисление купленного пакета кредитов
func PurchaseHandler(s services.ShopService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r)
		if err != nil {
			http.Error(w, "Invalid user id", http.StatusBadRequest)
			return
		}
		var req models.PurchaseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		country := strings.ToUpper(strings.TrimSpace(req.Country))
		if req.PackageID == "" || !validators.CheckCountry(country) {
			logger.Warn("Invalid purchase request", req.PackageID, req.Country)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		response, err := s.Purchase(r.Context(), userID, country, req.PackageID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPackageNotFound):
				http.Error(w, "Package not found", http.StatusNotFound)
			case errors.Is(err, services.ErrArbitrageRisk):
				writeJSON(w, http.StatusForbidden, response)
			default:
				logger.Error("Failed to purchase package:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, response)
	})
}

// writeJSON - запись JSON-ответа с указанным кодом
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
	}
}
