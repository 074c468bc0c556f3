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
	DebitCashBalance = `UPDATE WALLETS
						SET cash_balance = cash_balance - $1
						WHERE user_id = $2 AND cash_balance >= $1;`
	RefundCashBalance = `UPDATE WALLETS
						SET cash_balance = cash_balance + PAYOUTS.amount_usd
						FROM PAYOUTS
						WHERE PAYOUTS.id = $1 AND WALLETS.user_id = PAYOUTS.user_id;`
	InsertPayout = `INSERT INTO PAYOUTS (id, user_id, amount_usd, currency, status, retry_count, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, 0, $6, $6);`
	GetPayouts                = `SELECT id, user_id, amount_usd, currency, amount_local, rate, status, retry_count, created_at FROM PAYOUTS WHERE user_id=$1 ORDER BY created_at;`
	ClaimPayoutsForProcessing = `UPDATE PAYOUTS
								SET status = 'PROCESSING',
								    retry_count = retry_count + 1,
								    updated_at = NOW()
								WHERE id IN (
								    SELECT id FROM PAYOUTS
								    WHERE status = 'NEW' OR (status = 'PROCESSING' AND retry_count < $2)
								    ORDER BY created_at
								    LIMIT $1
								    FOR UPDATE SKIP LOCKED
								)
								RETURNING id, user_id, amount_usd, currency, amount_local, rate, status, retry_count, created_at;`
	ReleasePayouts = `UPDATE PAYOUTS
					  SET retry_count = GREATEST(retry_count - 1, 0),
					      updated_at = NOW()
					  WHERE id::text = ANY($1) AND status = 'PROCESSING';`
	UpdatePayoutStatus = `UPDATE PAYOUTS
						  SET
						      status = $1,
						      amount_local = $2,
						      rate = $3,
						      updated_at = NOW()
						  WHERE id = $4;`
)

type PayoutDatabase struct {
	DB *Database
}

// Создание хранилища
func NewPayoutsStorage(db *Database) PayoutsStorage {
	return &PayoutDatabase{DB: db}
}

// AddPayout - списание остатка и запись выплаты в одной транзакции
func (s *PayoutDatabase) AddPayout(ctx context.Context, payout models.PayoutData) (err error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error("Payout. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// 1. Уменьшаем остаток пользователя, если его хватает
	tag, err := tx.Exec(ctx, DebitCashBalance, payout.AmountUSD, payout.UserID)
	if err != nil {
		return fmt.Errorf("update cash balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInsufficientFunds
	}

	// 2. Добавляем запись о выплате
	_, err = tx.Exec(ctx, InsertPayout,
		payout.ID,
		payout.UserID,
		payout.AmountUSD,
		payout.Currency,
		payout.Status,
		payout.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return fmt.Errorf("insert payout: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

func (s *PayoutDatabase) GetPayouts(ctx context.Context, userID string) ([]models.PayoutData, error) {
	rows, err := s.DB.Pool.Query(ctx, GetPayouts, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payouts: %w", err)
	}
	return collectPayouts(rows)
}

// ClaimPayoutsForProcessing - захват пачки выплат для обработки воркером
func (s *PayoutDatabase) ClaimPayoutsForProcessing(ctx context.Context, count int) ([]models.PayoutData, error) {
	rows, err := s.DB.Pool.Query(ctx, ClaimPayoutsForProcessing, count, MaxPayoutAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to claim payouts: %w", err)
	}
	return collectPayouts(rows)
}

// ReleasePayouts - возврат захваченных, но не обработанных выплат:
// попытка захвата не засчитывается
func (s *PayoutDatabase) ReleasePayouts(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := s.DB.Pool.Exec(ctx, ReleasePayouts, ids); err != nil {
		return fmt.Errorf("failed to release payouts: %w", err)
	}
	return nil
}

// UpdatePayout - обновление статуса выплаты; при неудаче остаток возвращается пользователю
func (s *PayoutDatabase) UpdatePayout(ctx context.Context, payout models.PayoutData) (err error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error("Payout update. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	tag, err := tx.Exec(ctx, UpdatePayoutStatus, payout.Status, payout.AmountLocal, payout.Rate, payout.ID)
	if err != nil {
		return fmt.Errorf("update payout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPayoutNotFound
	}

	if payout.Status == models.PayoutStatusFailed {
		if _, err = tx.Exec(ctx, RefundCashBalance, payout.ID); err != nil {
			return fmt.Errorf("refund cash balance: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

func collectPayouts(rows pgx.Rows) ([]models.PayoutData, error) {
	defer rows.Close()

	var payouts []models.PayoutData
	for rows.Next() {
		var p models.PayoutData
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.AmountUSD,
			&p.Currency,
			&p.AmountLocal,
			&p.Rate,
			&p.Status,
			&p.RetryCount,
			&p.CreatedAt,
		)
		if err != nil {
			return payouts, fmt.Errorf("failed scan payouts data: %w", err)
		}
		payouts = append(payouts, p)
	}
	return payouts, rows.Err()
}
