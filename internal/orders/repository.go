// Package orders persists orders and their priced line items.
package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pizzeria-orders/internal/models"
)

// OrderDraft is the data needed to persist a brand new order.
type OrderDraft struct {
	ServiceType     models.ServiceType
	CustomerID      uuid.UUID
	CustomerEmail   string
	Status          models.OrderStatus
	Subtotal        decimal.Decimal
	Total           decimal.Decimal
	Notes           *string
	DeliveryAddress *string
	Items           []models.OrderItem
}

// OrderPatch is a full replacement of an order's mutable state. The
// item list replaces the previous one wholesale.
type OrderPatch struct {
	Status   models.OrderStatus
	Subtotal decimal.Decimal
	Total    decimal.Decimal
	Notes    *string
	Items    []models.OrderItem
}

// Repository provides order persistence. GetByID returns (nil, nil)
// when the order does not exist; Update fails with a not-found error.
type Repository interface {
	Create(ctx context.Context, draft OrderDraft) (*models.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetAll(ctx context.Context, status *models.OrderStatus) ([]models.Order, error)
	Update(ctx context.Context, id uuid.UUID, patch OrderPatch) (*models.Order, error)
}

// UnitOfWork scopes a function to one transaction: commit on nil
// return, rollback on error or panic.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
