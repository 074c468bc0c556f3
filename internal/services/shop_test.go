package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/ya-giftcredits/internal/config"
	"github.com/denmor86/ya-giftcredits/internal/economy"
	"github.com/denmor86/ya-giftcredits/internal/logger"
	"github.com/denmor86/ya-giftcredits/internal/models"
	"github.com/denmor86/ya-giftcredits/internal/storage"
	"github.com/denmor86/ya-giftcredits/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestShopService_ListPackages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockPackages := mocks.NewMockPackagesStorage(ctrl)
	mockWallets := mocks.NewMockWalletsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	shop := NewShop(mockPackages, mockWallets)

	czk := models.PackageData{
		ID:       "czk-premium",
		Name:     "Premium",
		Credits:  1000,
		Currency: "CZK",
		Price:    decimal.RequireFromString("999"),
		PriceUSD: decimal.RequireFromString("42.99"),
		Active:   true,
	}
	usd := models.PackageData{
		ID:       "usd-popular",
		Name:     "Popular",
		Credits:  500,
		Currency: "USD",
		Price:    decimal.RequireFromString("19.99"),
		PriceUSD: decimal.RequireFromString("19.99"),
		Active:   true,
	}

	testCases := []struct {
		Name             string
		Currency         string
		Symbol           string
		SetupMocks       func()
		ExpectedError    error
		ExpectedPackages []models.PackageResponse
	}{
		{
			Name:     "Error. Failed get packages #1",
			Currency: "CZK",
			SetupMocks: func() {
				mockPackages.EXPECT().GetPackages(gomock.Any(), "CZK").Return(nil, errors.New("failed to get packages"))
			},
			ExpectedError: errors.New("failed to get packages"),
		},
		{
			Name:     "Success. Empty list #2",
			Currency: "HUF",
			SetupMocks: func() {
				mockPackages.EXPECT().GetPackages(gomock.Any(), "HUF").Return(nil, nil)
			},
			ExpectedPackages: []models.PackageResponse{},
		},
		{
			Name:     "Success. Default symbol after amount #3",
			Currency: "czk",
			SetupMocks: func() {
				mockPackages.EXPECT().GetPackages(gomock.Any(), "CZK").Return([]models.PackageData{czk}, nil)
			},
			ExpectedPackages: []models.PackageResponse{
				{
					ID:              "czk-premium",
					Name:            "Premium",
					Credits:         1000,
					Currency:        "CZK",
					Price:           999,
					PriceUSD:        42.99,
					DiscountPercent: 14,
					DisplayPrice:    "999 Kč",
				},
			},
		},
		{
			Name:     "Success. Custom symbol before amount #4",
			Currency: "USD",
			Symbol:   "US$",
			SetupMocks: func() {
				mockPackages.EXPECT().GetPackages(gomock.Any(), "USD").Return([]models.PackageData{usd}, nil)
			},
			ExpectedPackages: []models.PackageResponse{
				{
					ID:              "usd-popular",
					Name:            "Popular",
					Credits:         500,
					Currency:        "USD",
					Price:           19.99,
					PriceUSD:        19.99,
					DiscountPercent: 20,
					DisplayPrice:    "US$20",
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			packages, err := shop.ListPackages(ctx, tc.Currency, tc.Symbol)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedPackages, packages)
			if len(diff) != 0 {
				t.Errorf("expected packages mismatch:\n %s", diff)
			}
		})
	}
}

func TestShopService_Purchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockPackages := mocks.NewMockPackagesStorage(ctrl)
	mockWallets := mocks.NewMockWalletsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	shop := NewShop(mockPackages, mockWallets)

	czk := &models.PackageData{ID: "czk-premium", Credits: 1000, Currency: "CZK", Active: true}
	inactive := &models.PackageData{ID: "usd-legacy", Credits: 200, Currency: "USD", Active: false}

	testCases := []struct {
		Name             string
		UserID           string
		Country          string
		PackageID        string
		SetupMocks       func()
		ExpectedError    error
		ExpectedResponse *models.PurchaseResponse
	}{
		{
			Name:      "Error. Package not found #1",
			UserID:    "u1",
			Country:   "CZ",
			PackageID: "unknown",
			SetupMocks: func() {
				mockPackages.EXPECT().GetPackage(gomock.Any(), "unknown").Return(nil, storage.ErrPackageNotFound)
			},
			ExpectedError: ErrPackageNotFound,
		},
		{
			Name:      "Error. Package inactive #2",
			UserID:    "u1",
			Country:   "US",
			PackageID: "usd-legacy",
			SetupMocks: func() {
				mockPackages.EXPECT().GetPackage(gomock.Any(), "usd-legacy").Return(inactive, nil)
			},
			ExpectedError: ErrPackageNotFound,
		},
		{
			Name:      "Error. Currency arbitrage #3",
			UserID:    "u1",
			Country:   "US",
			PackageID: "czk-premium",
			SetupMocks: func() {
				mockPackages.EXPECT().GetPackage(gomock.Any(), "czk-premium").Return(czk, nil)
			},
			ExpectedError: ErrArbitrageRisk,
			ExpectedResponse: &models.PurchaseResponse{
				PackageID: "czk-premium",
				Credits:   1000,
				Arbitrage: economy.ArbitrageAssessment{
					Risk:    true,
					Message: "Possible currency arbitrage: user from US purchasing in CZK (expected USD)",
				},
			},
		},
		{
			Name:      "Error. Failed add credits #4",
			UserID:    "u1",
			Country:   "CZ",
			PackageID: "czk-premium",
			SetupMocks: func() {
				mockPackages.EXPECT().GetPackage(gomock.Any(), "czk-premium").Return(czk, nil)
				mockWallets.EXPECT().AddPurchasedCredits(gomock.Any(), "u1", "CZ", int64(1000)).Return(errors.New("failed to add credits"))
			},
			ExpectedError: errors.New("failed to add credits"),
		},
		{
			Name:      "Success. Unknown country is not checked #5",
			UserID:    "u1",
			Country:   "JP",
			PackageID: "czk-premium",
			SetupMocks: func() {
				mockPackages.EXPECT().GetPackage(gomock.Any(), "czk-premium").Return(czk, nil)
				mockWallets.EXPECT().AddPurchasedCredits(gomock.Any(), "u1", "JP", int64(1000)).Return(nil)
			},
			ExpectedResponse: &models.PurchaseResponse{PackageID: "czk-premium", Credits: 1000},
		},
		{
			Name:      "Success. #6",
			UserID:    "u1",
			Country:   "CZ",
			PackageID: "czk-premium",
			SetupMocks: func() {
				mockPackages.EXPECT().GetPackage(gomock.Any(), "czk-premium").Return(czk, nil)
				mockWallets.EXPECT().AddPurchasedCredits(gomock.Any(), "u1", "CZ", int64(1000)).Return(nil)
			},
			ExpectedResponse: &models.PurchaseResponse{PackageID: "czk-premium", Credits: 1000},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			response, err := shop.Purchase(ctx, tc.UserID, tc.Country, tc.PackageID)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedResponse, response)
			if len(diff) != 0 {
				t.Errorf("expected response mismatch:\n %s", diff)
			}
		})
	}
}
