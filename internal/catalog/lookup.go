// Package catalog resolves named menu products to ids and unit prices.
package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pizzeria-orders/internal/models"
)

// Product is one priced catalog entry.
type Product struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Lookup finds priced products by exact name or id. A nil product with
// a nil error means the product does not exist; callers decide whether
// that is fatal.
type Lookup interface {
	FindByName(ctx context.Context, kind models.ItemKind, name string) (*Product, error)
	FindByID(ctx context.Context, kind models.ItemKind, id uuid.UUID) (*Product, error)
}
