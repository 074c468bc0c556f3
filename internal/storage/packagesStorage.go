package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/ya-giftcredits/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	UpsertPackage = `INSERT INTO PACKAGES (id, name, credits, currency, price, price_usd, active, sort_order)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
						ON CONFLICT (id) DO UPDATE SET
							name = EXCLUDED.name,
							credits = EXCLUDED.credits,
							currency = EXCLUDED.currency,
							price = EXCLUDED.price,
							price_usd = EXCLUDED.price_usd,
							active = EXCLUDED.active,
							sort_order = EXCLUDED.sort_order;`
	GetPackages = `SELECT id, name, credits, currency, price, price_usd, active, sort_order
					FROM PACKAGES WHERE currency=$1 AND active ORDER BY sort_order, credits;`
	GetPackage = `SELECT id, name, credits, currency, price, price_usd, active, sort_order
					FROM PACKAGES WHERE id=$1;`
)

type PackageDatabase struct {
	DB *Database
}

// Создание хранилища
func NewPackagesStorage(db *Database) PackagesStorage {
	return &PackageDatabase{DB: db}
}

// UpsertPackages - загрузка каталога пакетов одной пачкой запросов
func (s *PackageDatabase) UpsertPackages(ctx context.Context, packages []models.PackageData) error {
	if len(packages) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, p := range packages {
		batch.Queue(UpsertPackage, p.ID, p.Name, p.Credits, p.Currency, p.Price, p.PriceUSD, p.Active, p.SortOrder)
	}

	results := s.DB.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for _, p := range packages {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to upsert package %s: %w", p.ID, err)
		}
	}
	return nil
}

// GetPackages - активные пакеты в указанной валюте
func (s *PackageDatabase) GetPackages(ctx context.Context, currency string) ([]models.PackageData, error) {
	rows, err := s.DB.Pool.Query(ctx, GetPackages, currency)
	if err != nil {
		return nil, fmt.Errorf("failed to get packages: %w", err)
	}
	defer rows.Close()

	var packages []models.PackageData
	for rows.Next() {
		var p models.PackageData
		if err := scanPackage(rows, &p); err != nil {
			return packages, fmt.Errorf("failed scan package data: %w", err)
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

func (s *PackageDatabase) GetPackage(ctx context.Context, id string) (*models.PackageData, error) {
	var p models.PackageData
	err := scanPackage(s.DB.Pool.QueryRow(ctx, GetPackage, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return &p, nil
}

func scanPackage(row pgx.Row, p *models.PackageData) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Credits,
		&p.Currency,
		&p.Price,
		&p.PriceUSD,
		&p.Active,
		&p.SortOrder,
	)
}
