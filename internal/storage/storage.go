package storage

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks

import (
	"context"
	"errors"

	"github.com/denmor86/ya-giftcredits/internal/models"
)

type PackagesStorage interface {
	UpsertPackages(ctx context.Context, packages []models.PackageData) error
	GetPackages(ctx context.Context, currency string) ([]models.PackageData, error)
	GetPackage(ctx context.Context, id string) (*models.PackageData, error)
}

type WalletsStorage interface {
	GetWallet(ctx context.Context, userID string) (*models.WalletData, error)
	AddPurchasedCredits(ctx context.Context, userID string, country string, credits int64) error
	AddGift(ctx context.Context, gift models.GiftData) error
}

type PayoutsStorage interface {
	AddPayout(ctx context.Context, payout models.PayoutData) error
	GetPayouts(ctx context.Context, userID string) ([]models.PayoutData, error)
	ClaimPayoutsForProcessing(ctx context.Context, count int) ([]models.PayoutData, error)
	ReleasePayouts(ctx context.Context, ids []string) error
	UpdatePayout(ctx context.Context, payout models.PayoutData) error
}

// MaxPayoutAttempts - сколько раз выплата может быть захвачена воркером
const MaxPayoutAttempts = 3

type Storage struct {
	Packages PackagesStorage
	Wallets  WalletsStorage
	Payouts  PayoutsStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{Packages: NewPackagesStorage(db), Wallets: NewWalletsStorage(db), Payouts: NewPayoutsStorage(db)}
}

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrPackageNotFound     = errors.New("package not found")
	ErrPayoutNotFound      = errors.New("payout not found")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrInsufficientFunds   = errors.New("insufficient funds")

	ErrAlreadyExists = errors.New("already exists")
)
