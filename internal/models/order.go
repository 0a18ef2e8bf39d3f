package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemKind represents the kind of a product in an order line
type ItemKind string

const (
	KindPizza ItemKind = "pizza"
	KindBeer  ItemKind = "beer"
)

// ServiceType represents the fulfillment channel of an order
type ServiceType string

const (
	DineIn    ServiceType = "dine_in"
	Takeaway  ServiceType = "takeaway"
	Delivery  ServiceType = "delivery"
	LateNight ServiceType = "late_night"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// statusRank orders the non-cancelled statuses along the fulfillment path.
var statusRank = map[OrderStatus]int{
	StatusPending:   0,
	StatusConfirmed: 1,
	StatusPreparing: 2,
	StatusReady:     3,
	StatusDelivered: 4,
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok || s == StatusCancelled
}

// CanTransitionTo reports whether an order may move from s to target.
// Statuses only move forward along the fulfillment path; cancellation
// is allowed from any non-terminal status.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if target == StatusCancelled {
		return true
	}
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[target]
	if !ok {
		return false
	}
	return to >= from
}

// Valid reports whether t is a known service type.
func (t ServiceType) Valid() bool {
	switch t {
	case DineIn, Takeaway, Delivery, LateNight:
		return true
	}
	return false
}

// Valid reports whether k is a known item kind.
func (k ItemKind) Valid() bool {
	return k == KindPizza || k == KindBeer
}

// OrderLine is one requested line before catalog resolution
type OrderLine struct {
	Kind        ItemKind `json:"type"`
	ProductName string   `json:"product_name"`
	Quantity    int      `json:"quantity"`
}

// OrderItem is one priced line attached to a persisted order
type OrderItem struct {
	Kind      ItemKind        `json:"type"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
}

// Order represents a customer order
type Order struct {
	ID              uuid.UUID       `json:"id"`
	ServiceType     ServiceType     `json:"service_type"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	CustomerEmail   string          `json:"customer_email"`
	Status          OrderStatus     `json:"status"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Total           decimal.Decimal `json:"total"`
	Notes           *string         `json:"notes,omitempty"`
	DeliveryAddress *string         `json:"delivery_address,omitempty"`
	Items           []OrderItem     `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderInput is the request to create a new order
type OrderInput struct {
	ServiceType     ServiceType `json:"service_type"`
	Items           []OrderLine `json:"items"`
	Notes           *string     `json:"notes,omitempty"`
	DeliveryAddress *string     `json:"delivery_address,omitempty"`
}

// OrderUpdate is the request to update an existing order
type OrderUpdate struct {
	ServiceType ServiceType `json:"service_type"`
	Items       []OrderLine `json:"items"`
	Notes       *string     `json:"notes,omitempty"`
	Status      OrderStatus `json:"status"`
}

// Requester identifies the authenticated caller of an operation.
// The core never authenticates; it only checks ownership.
type Requester struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}
