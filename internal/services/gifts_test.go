package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/ya-giftcredits/internal/config"
	"github.com/denmor86/ya-giftcredits/internal/logger"
	"github.com/denmor86/ya-giftcredits/internal/models"
	"github.com/denmor86/ya-giftcredits/internal/storage"
	"github.com/denmor86/ya-giftcredits/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestGiftsService_GiftCatalog(t *testing.T) {
	gifts := NewGifts(nil)

	expected := []models.GiftCatalogItem{
		{Gift: "rose", Credits: 10},
		{Gift: "heart", Credits: 20},
		{Gift: "diamond", Credits: 50},
		{Gift: "champagne", Credits: 100},
		{Gift: "luxury_car", Credits: 500},
	}
	if diff := cmp.Diff(expected, gifts.GiftCatalog()); len(diff) != 0 {
		t.Errorf("expected catalog mismatch:\n %s", diff)
	}
}

func TestGiftsService_SendGift(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWallets := mocks.NewMockWalletsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	gifts := NewGifts(mockWallets)

	testCases := []struct {
		Name          string
		SenderID      string
		RecipientID   string
		Gift          string
		SetupMocks    func()
		ExpectedError error
		ExpectedGift  *models.GiftData
	}{
		{
			Name:          "Error. Unknown gift #1",
			SenderID:      "u1",
			RecipientID:   "u2",
			Gift:          "yacht",
			SetupMocks:    func() {},
			ExpectedError: ErrUnknownGift,
		},
		{
			Name:          "Error. Gift to yourself #2",
			SenderID:      "u1",
			RecipientID:   "u1",
			Gift:          "rose",
			SetupMocks:    func() {},
			ExpectedError: ErrSelfGift,
		},
		{
			Name:          "Error. Gift to yourself with case variant id #3",
			SenderID:      "3F2504E0-4F89-11D3-9A0C-0305E82C3301",
			RecipientID:   "3f2504e0-4f89-11d3-9a0c-0305e82c3301",
			Gift:          "luxury_car",
			SetupMocks:    func() {},
			ExpectedError: ErrSelfGift,
		},
		{
			Name:          "Error. Gift to yourself with urn id #4",
			SenderID:      "3f2504e0-4f89-11d3-9a0c-0305e82c3301",
			RecipientID:   "urn:uuid:3f2504e0-4f89-11d3-9a0c-0305e82c3301",
			Gift:          "rose",
			SetupMocks:    func() {},
			ExpectedError: ErrSelfGift,
		},
		{
			Name:        "Error. Insufficient credits #5",
			SenderID:    "u1",
			RecipientID: "u2",
			Gift:        "luxury_car",
			SetupMocks: func() {
				mockWallets.EXPECT().AddGift(gomock.Any(), gomock.Any()).Return(storage.ErrInsufficientCredits)
			},
			ExpectedError: storage.ErrInsufficientCredits,
		},
		{
			Name:        "Error. Failed add gift #6",
			SenderID:    "u1",
			RecipientID: "u2",
			Gift:        "diamond",
			SetupMocks: func() {
				mockWallets.EXPECT().AddGift(gomock.Any(), gomock.Any()).Return(errors.New("failed to add gift"))
			},
			ExpectedError: errors.New("failed to add gift"),
		},
		{
			Name:        "Success. Split rounded to cents fraction #7",
			SenderID:    "u1",
			RecipientID: "u2",
			Gift:        "rose",
			SetupMocks: func() {
				mockWallets.EXPECT().AddGift(gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedGift: &models.GiftData{
				SenderID:      "u1",
				RecipientID:   "u2",
				Gift:          "rose",
				Credits:       10,
				RecipientUSD:  decimal.RequireFromString("0.04"),
				CommissionUSD: decimal.RequireFromString("0.06"),
			},
		},
		{
			Name:        "Success. #8",
			SenderID:    "u1",
			RecipientID: "u2",
			Gift:        "luxury_car",
			SetupMocks: func() {
				mockWallets.EXPECT().AddGift(gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedGift: &models.GiftData{
				SenderID:      "u1",
				RecipientID:   "u2",
				Gift:          "luxury_car",
				Credits:       500,
				RecipientUSD:  decimal.NewFromInt(2),
				CommissionUSD: decimal.NewFromInt(3),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			gift, err := gifts.SendGift(ctx, tc.SenderID, tc.RecipientID, tc.Gift)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedGift, gift, cmpopts.IgnoreFields(models.GiftData{}, "ID", "SentAt"))
			if len(diff) != 0 {
				t.Errorf("expected gift mismatch:\n %s", diff)
			}
		})
	}
}
