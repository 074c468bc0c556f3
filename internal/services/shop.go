package services

//go:generate mockgen -source=shop.go -destination=mocks/mock_shop.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"github.com/denmor86/ya-giftcredits/internal/economy"
	"github.com/denmor86/ya-giftcredits/internal/logger"
	"github.com/denmor86/ya-giftcredits/internal/models"
	"github.com/denmor86/ya-giftcredits/internal/storage"
	"go.uber.org/zap"
)

var (
	ErrPackageNotFound = errors.New("package not found")
	ErrArbitrageRisk   = errors.New("purchase currency does not match user country")
)

type ShopService interface {
	ListPackages(ctx context.Context, currency string, symbol string) ([]models.PackageResponse, error)
	Purchase(ctx context.Context, userID string, country string, packageID string) (*models.PurchaseResponse, error)
}

type Shop struct {
	Packages storage.PackagesStorage
	Wallets  storage.WalletsStorage
}

// Создание сервиса
func NewShop(packages storage.PackagesStorage, wallets storage.WalletsStorage) ShopService {
	return &Shop{Packages: packages, Wallets: wallets}
}

// ListPackages - витрина активных пакетов в валюте со скидкой и ценой для отображения
func (s *Shop) ListPackages(ctx context.Context, currency string, symbol string) ([]models.PackageResponse, error) {
	currency = strings.ToUpper(currency)
	if symbol == "" {
		symbol = CurrencySymbol(currency)
	}

	packages, err := s.Packages.GetPackages(ctx, currency)
	if err != nil {
		logger.Error("Failed to get packages", zap.Error(err))
		return nil, err
	}

	response := make([]models.PackageResponse, 0, len(packages))
	for _, data := range packages {
		pkg := data.CreditPackage().WithDiscount()
		response = append(response, models.PackageResponse{
			ID:              pkg.ID,
			Name:            pkg.Name,
			Credits:         pkg.CreditAmount,
			Currency:        pkg.Currency,
			Price:           pkg.Price,
			PriceUSD:        pkg.PriceUSD,
			DiscountPercent: pkg.DiscountPercent,
			DisplayPrice:    economy.FormatPrice(pkg.Price, pkg.Currency, symbol),
		})
	}
	return response, nil
}

// Purchase - зачисление купленного пакета после проверки на арбитраж валют
func (s *Shop) Purchase(ctx context.Context, userID string, country string, packageID string) (*models.PurchaseResponse, error) {
	pkg, err := s.Packages.GetPackage(ctx, packageID)
	if err != nil {
		if errors.Is(err, storage.ErrPackageNotFound) {
			logger.Warn("Package not found", packageID)
			return nil, ErrPackageNotFound
		}
		logger.Error("Failed to get package", zap.Error(err))
		return nil, err
	}
	if !pkg.Active {
		logger.Warn("Package is not active", packageID)
		return nil, ErrPackageNotFound
	}

	response := &models.PurchaseResponse{
		PackageID: pkg.ID,
		Credits:   pkg.Credits,
		Arbitrage: economy.CheckArbitrageRisk(country, pkg.Currency),
	}
	if response.Arbitrage.Risk {
		logger.Warn("Purchase rejected:", userID, response.Arbitrage.Message)
		return response, ErrArbitrageRisk
	}

	if err := s.Wallets.AddPurchasedCredits(ctx, userID, country, pkg.Credits); err != nil {
		logger.Error("Failed to add purchased credits", zap.Error(err))
		return nil, err
	}
	return response, nil
}
