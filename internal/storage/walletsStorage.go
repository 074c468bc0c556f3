package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/ya-giftcredits/internal/logger"
	"github.com/denmor86/ya-giftcredits/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	GetWallet = `SELECT WALLETS.user_id, WALLETS.country, WALLETS.credits, WALLETS.earned_credits, WALLETS.cash_balance,
						COALESCE(SUM(PAYOUTS.amount_usd), 0) AS withdrawn
				  FROM
				      WALLETS
				  LEFT JOIN
				      PAYOUTS ON WALLETS.user_id = PAYOUTS.user_id AND PAYOUTS.status <> 'FAILED'
				  WHERE
				      WALLETS.user_id = $1
				  GROUP BY
				      WALLETS.user_id, WALLETS.country, WALLETS.credits, WALLETS.earned_credits, WALLETS.cash_balance;`
	AddPurchasedCredits = `INSERT INTO WALLETS (user_id, country, credits)
							VALUES ($1, $2, $3)
							ON CONFLICT (user_id) DO UPDATE SET
								credits = WALLETS.credits + EXCLUDED.credits,
								country = EXCLUDED.country;`
	LockSenderCredits = `SELECT credits FROM WALLETS WHERE user_id=$1 FOR UPDATE;`
	DebitCredits      = `UPDATE WALLETS SET credits = credits - $1 WHERE user_id = $2;`
	CreditRecipient   = `INSERT INTO WALLETS (user_id, earned_credits, cash_balance)
							VALUES ($1, $2, $3)
							ON CONFLICT (user_id) DO UPDATE SET
								earned_credits = WALLETS.earned_credits + EXCLUDED.earned_credits,
								cash_balance = WALLETS.cash_balance + EXCLUDED.cash_balance;`
	InsertGift = `INSERT INTO GIFTS (id, sender_id, recipient_id, gift, credits, recipient_usd, commission_usd, sent_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
)

type WalletDatabase struct {
	DB *Database
}

// Создание хранилища
func NewWalletsStorage(db *Database) WalletsStorage {
	return &WalletDatabase{DB: db}
}

// GetWallet - получение кошелька и суммы выплат пользователя
func (s *WalletDatabase) GetWallet(ctx context.Context, userID string) (*models.WalletData, error) {
	var wallet models.WalletData
	err := s.DB.Pool.QueryRow(ctx, GetWallet, userID).Scan(
		&wallet.UserID,
		&wallet.Country,
		&wallet.Credits,
		&wallet.EarnedCredits,
		&wallet.CashBalance,
		&wallet.Withdrawn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

// AddPurchasedCredits - зачисление купленных кредитов, кошелёк создаётся при первой покупке
func (s *WalletDatabase) AddPurchasedCredits(ctx context.Context, userID string, country string, credits int64) error {
	if _, err := s.DB.Pool.Exec(ctx, AddPurchasedCredits, userID, country, credits); err != nil {
		return fmt.Errorf("failed to add credits: %w", err)
	}
	return nil
}

// AddGift - списание кредитов отправителя, начисление получателю и запись подарка в одной транзакции
func (s *WalletDatabase) AddGift(ctx context.Context, gift models.GiftData) (err error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error("Gift. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// 1. Блокируем кошелёк отправителя и проверяем остаток
	var credits int64
	if err = tx.QueryRow(ctx, LockSenderCredits, gift.SenderID).Scan(&credits); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrWalletNotFound
		}
		return fmt.Errorf("lock sender wallet: %w", err)
	}
	if credits < gift.Credits {
		return ErrInsufficientCredits
	}

	// 2. Списываем кредиты отправителя
	if _, err = tx.Exec(ctx, DebitCredits, gift.Credits, gift.SenderID); err != nil {
		return fmt.Errorf("debit sender credits: %w", err)
	}

	// 3. Начисляем заработанные кредиты и долю выплаты получателю
	if _, err = tx.Exec(ctx, CreditRecipient, gift.RecipientID, gift.Credits, gift.RecipientUSD); err != nil {
		return fmt.Errorf("credit recipient: %w", err)
	}

	// 4. Сохраняем подарок
	_, err = tx.Exec(ctx, InsertGift,
		gift.ID,
		gift.SenderID,
		gift.RecipientID,
		gift.Gift,
		gift.Credits,
		gift.RecipientUSD,
		gift.CommissionUSD,
		gift.SentAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return fmt.Errorf("insert gift: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}
