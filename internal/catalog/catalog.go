// Package catalog загружает каталог пакетов кредитов из YAML-файла.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/denmor86/ya-giftcredits/internal/models"
	"github.com/denmor86/ya-giftcredits/internal/validators"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var ErrInvalidPackage = errors.New("invalid package")

type packageFile struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Credits   int64   `yaml:"credits"`
	Currency  string  `yaml:"currency"`
	Price     float64 `yaml:"price"`
	PriceUSD  float64 `yaml:"price_usd"`
	Active    *bool   `yaml:"active"`
	SortOrder int     `yaml:"sort_order"`
}

type catalogFile struct {
	Packages []packageFile `yaml:"packages"`
}

// Load читает каталог из файла
func Load(path string) ([]models.PackageData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(raw)
}

// Parse разбирает каталог и проверяет каждый пакет
func Parse(raw []byte) ([]models.PackageData, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Packages))
	packages := make([]models.PackageData, 0, len(f.Packages))
	for i, p := range f.Packages {
		id := strings.TrimSpace(p.ID)
		currency := strings.ToUpper(strings.TrimSpace(p.Currency))
		switch {
		case id == "":
			return nil, fmt.Errorf("package #%d: empty id: %w", i+1, ErrInvalidPackage)
		case p.Credits <= 0:
			return nil, fmt.Errorf("package %s: credits must be positive: %w", id, ErrInvalidPackage)
		case !validators.CheckCurrency(currency):
			return nil, fmt.Errorf("package %s: bad currency %q: %w", id, p.Currency, ErrInvalidPackage)
		case p.Price < 0 || p.PriceUSD < 0:
			return nil, fmt.Errorf("package %s: negative price: %w", id, ErrInvalidPackage)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("package %s: duplicate id: %w", id, ErrInvalidPackage)
		}
		seen[id] = struct{}{}

		active := true
		if p.Active != nil {
			active = *p.Active
		}
		packages = append(packages, models.PackageData{
			ID:        id,
			Name:      p.Name,
			Credits:   p.Credits,
			Currency:  currency,
			Price:     decimal.NewFromFloat(p.Price),
			PriceUSD:  decimal.NewFromFloat(p.PriceUSD),
			Active:    active,
			SortOrder: p.SortOrder,
		})
	}
	return packages, nil
}
