package services

//go:generate mockgen -source=gifts.go -destination=mocks/mock_gifts.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/ya-giftcredits/internal/economy"
	"github.com/denmor86/ya-giftcredits/internal/logger"
	"github.com/denmor86/ya-giftcredits/internal/models"
	"github.com/denmor86/ya-giftcredits/internal/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrUnknownGift = errors.New("unknown gift")
	ErrSelfGift    = errors.New("gift to yourself")
)

// точность хранения сумм в USD
const usdScale = 4

type GiftsService interface {
	GiftCatalog() []models.GiftCatalogItem
	SendGift(ctx context.Context, senderID string, recipientID string, gift string) (*models.GiftData, error)
}

type Gifts struct {
	Wallets storage.WalletsStorage
}

// Создание сервиса
func NewGifts(wallets storage.WalletsStorage) GiftsService {
	return &Gifts{Wallets: wallets}
}

// GiftCatalog - список подарков со стоимостью в кредитах
func (s *Gifts) GiftCatalog() []models.GiftCatalogItem {
	types := economy.GiftTypes()
	items := make([]models.GiftCatalogItem, 0, len(types))
	for _, gift := range types {
		credits, _ := economy.GiftCredits(gift)
		items = append(items, models.GiftCatalogItem{Gift: string(gift), Credits: credits})
	}
	return items
}

// SendGift - отправка подарка: кредиты отправителя переходят получателю,
// платформа удерживает комиссию из долларовой стоимости подарка
func (s *Gifts) SendGift(ctx context.Context, senderID string, recipientID string, gift string) (*models.GiftData, error) {
	credits, ok := economy.GiftCredits(economy.GiftType(gift))
	if !ok {
		logger.Warn("Unknown gift", gift)
		return nil, ErrUnknownGift
	}
	if sameUser(senderID, recipientID) {
		logger.Warn("Gift to yourself", senderID)
		return nil, ErrSelfGift
	}

	split := economy.CalculatePayoutAmount(float64(credits))
	data := models.GiftData{
		ID:            uuid.NewString(),
		SenderID:      senderID,
		RecipientID:   recipientID,
		Gift:          gift,
		Credits:       credits,
		RecipientUSD:  decimal.NewFromFloat(split.UserPayoutUSD).Round(usdScale),
		CommissionUSD: decimal.NewFromFloat(split.PlatformCommissionUSD).Round(usdScale),
		SentAt:        time.Now(),
	}

	if err := s.Wallets.AddGift(ctx, data); err != nil {
		if !errors.Is(err, storage.ErrInsufficientCredits) && !errors.Is(err, storage.ErrWalletNotFound) {
			logger.Error("Failed to send gift", zap.Error(err))
		}
		return nil, err
	}
	return &data, nil
}

// sameUser сравнивает идентификаторы как UUID: разные записи одного UUID
// (регистр, {...}, urn:uuid:) указывают на один кошелёк
func sameUser(a string, b string) bool {
	ua, errA := uuid.Parse(a)
	ub, errB := uuid.Parse(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ua == ub
}
