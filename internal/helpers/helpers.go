package helpers

import (
	"fmt"
	"net/http"

	"github.com/denmor86/ya-giftcredits/internal/logger"
	"github.com/denmor86/ya-giftcredits/internal/validators"
	"github.com/go-chi/chi/v5"
)

// GetUserID - извлекает идентификатор пользователя из параметров маршрута
func GetUserID(r *http.Request) (string, error) {
	userID := chi.URLParam(r, "userID")
	canonical, ok := validators.CanonicalUserID(userID)
	if !ok {
		logger.Warn("Invalid user id:", userID)
		return "", fmt.Errorf("invalid user id %q", userID)
	}
	return canonical, nil
}
