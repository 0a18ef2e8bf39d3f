package ordering

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pizzeria-orders/internal/catalog"
	"pizzeria-orders/internal/errs"
	"pizzeria-orders/internal/logger"
	"pizzeria-orders/internal/messaging"
	"pizzeria-orders/internal/models"
	"pizzeria-orders/internal/orders"
)

// EventPublisher emits order lifecycle events. Publishing is best
// effort: the order is already committed when an event goes out.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event messaging.OrderEvent) error
}

// Service runs order lifecycle operations for one service type. Every
// operation executes inside a single unit-of-work scope; any failure
// before the repository write leaves the order untouched.
type Service struct {
	policy    PricingPolicy
	catalog   catalog.Lookup
	repo      orders.Repository
	uow       orders.UnitOfWork
	publisher EventPublisher
	logger    *logger.Logger
	now       func() time.Time
}

// NewService creates a lifecycle service bound to the given pricing policy.
func NewService(policy PricingPolicy, lookup catalog.Lookup, repo orders.Repository, uow orders.UnitOfWork, publisher EventPublisher, log *logger.Logger) *Service {
	return &Service{
		policy:    policy,
		catalog:   lookup,
		repo:      repo,
		uow:       uow,
		publisher: publisher,
		logger:    log,
		now:       time.Now,
	}
}

// CreateOrder validates and prices the requested lines, then persists
// the new order in one transaction. The order starts in status pending.
func (s *Service) CreateOrder(ctx context.Context, input models.OrderInput, requester models.Requester) (*models.Order, error) {
	if input.ServiceType != s.policy.ServiceType() {
		return nil, errs.BusinessRule("Invalid service type for %s service", s.policy.ServiceType())
	}
	if err := validateLines(input.Items); err != nil {
		return nil, err
	}
	if err := s.policy.ValidateCreate(s.now()); err != nil {
		return nil, err
	}

	var created *models.Order
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		items, subtotal, err := s.resolveLines(ctx, input.Items)
		if err != nil {
			return err
		}

		draft := orders.OrderDraft{
			ServiceType:     input.ServiceType,
			CustomerID:      requester.ID,
			CustomerEmail:   requester.Email,
			Status:          models.StatusPending,
			Subtotal:        subtotal,
			Total:           s.policy.Total(subtotal),
			Notes:           input.Notes,
			DeliveryAddress: input.DeliveryAddress,
			Items:           items,
		}

		created, err = s.repo.Create(ctx, draft)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order_created", fmt.Sprintf("Created %s order %s", created.ServiceType, created.ID), "", map[string]interface{}{
		"order_id":    created.ID.String(),
		"customer_id": requester.ID.String(),
		"total":       created.Total.String(),
	})
	s.publish(ctx, "created", created)

	return created, nil
}

// CheckStatus fetches the order and verifies the requester owns it.
// It never mutates the order.
func (s *Service) CheckStatus(ctx context.Context, orderID uuid.UUID, requester models.Requester) (*models.Order, error) {
	var order *models.Order
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.fetchOwned(ctx, orderID, requester, "check")
		return err
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrder replaces the order's lines and status, re-pricing the
// new lines under the service's policy. The service type of an order
// is immutable.
func (s *Service) UpdateOrder(ctx context.Context, orderID uuid.UUID, update models.OrderUpdate, requester models.Requester) (*models.Order, error) {
	if err := validateLines(update.Items); err != nil {
		return nil, err
	}
	if !update.Status.Valid() {
		return nil, errs.Validation("status", "invalid order status: "+string(update.Status))
	}

	var updated *models.Order
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		order, err := s.fetchOwned(ctx, orderID, requester, "update")
		if err != nil {
			return err
		}
		if order.Status.IsTerminal() {
			return errs.BusinessRule("Cannot update order in status %s", order.Status)
		}
		if update.ServiceType != order.ServiceType {
			return errs.BusinessRule("Cannot change service type of an existing order")
		}
		if !order.Status.CanTransitionTo(update.Status) {
			return errs.BusinessRule("Cannot transition order from %s to %s", order.Status, update.Status)
		}

		items, subtotal, err := s.resolveLines(ctx, update.Items)
		if err != nil {
			return err
		}

		patch := orders.OrderPatch{
			Status:   update.Status,
			Subtotal: subtotal,
			Total:    s.policy.Total(subtotal),
			Notes:    update.Notes,
			Items:    items,
		}

		updated, err = s.repo.Update(ctx, orderID, patch)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order_updated", fmt.Sprintf("Updated %s order %s", updated.ServiceType, updated.ID), "", map[string]interface{}{
		"order_id": updated.ID.String(),
		"status":   string(updated.Status),
	})
	s.publish(ctx, "updated", updated)

	return updated, nil
}

// CancelOrder moves the order to status cancelled. Its items are
// re-resolved through the catalog (reverse lookup by product id), the
// totals stay untouched, and the notes record the reason when given.
func (s *Service) CancelOrder(ctx context.Context, orderID uuid.UUID, requester models.Requester, reason *string) (*models.Order, error) {
	var cancelled *models.Order
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		order, err := s.fetchOwned(ctx, orderID, requester, "cancel")
		if err != nil {
			return err
		}

		cancelled, err = s.cancelOne(ctx, order, reason)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order_cancelled", fmt.Sprintf("Cancelled %s order %s", cancelled.ServiceType, cancelled.ID), "", map[string]interface{}{
		"order_id": cancelled.ID.String(),
	})
	s.publish(ctx, "cancelled", cancelled)

	return cancelled, nil
}

// CancelPendingOrders cancels every order currently in status pending.
// The batch is best effort: each order is cancelled in its own
// transaction, and a failing order is logged and skipped without
// rolling back earlier cancellations. Zero pending orders is a no-op.
func (s *Service) CancelPendingOrders(ctx context.Context, requester models.Requester, reason *string) ([]models.Order, error) {
	pendingStatus := models.StatusPending
	pending, err := s.repo.GetAll(ctx, &pendingStatus)
	if err != nil {
		return nil, errs.Unexpected(err)
	}

	var cancelled []models.Order
	for i := range pending {
		order := &pending[i]

		var result *models.Order
		err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
			var err error
			result, err = s.cancelOne(ctx, order, reason)
			return err
		})
		if err != nil {
			s.logger.Error("order_cancel_failed", fmt.Sprintf("Failed to cancel pending order %s", order.ID), "", err, map[string]interface{}{
				"order_id": order.ID.String(),
			})
			continue
		}

		s.publish(ctx, "cancelled", result)
		cancelled = append(cancelled, *result)
	}

	s.logger.Info("pending_orders_cancelled", fmt.Sprintf("Cancelled %d pending orders", len(cancelled)), "", map[string]interface{}{
		"requested_by": requester.ID.String(),
	})
	return cancelled, nil
}

// cancelOne re-resolves the order's persisted items back into named
// lines, then writes the cancelled state. Totals are left unchanged.
func (s *Service) cancelOne(ctx context.Context, order *models.Order, reason *string) (*models.Order, error) {
	if order.Status.IsTerminal() {
		return nil, errs.BusinessRule("Cannot cancel order in status %s", order.Status)
	}

	lines, err := s.reverseResolve(ctx, order.Items)
	if err != nil {
		return nil, err
	}
	items, _, err := s.resolveLines(ctx, lines)
	if err != nil {
		return nil, err
	}

	notes := order.Notes
	if reason != nil {
		cancelNote := "Cancelled: " + *reason
		notes = &cancelNote
	}

	patch := orders.OrderPatch{
		Status:   models.StatusCancelled,
		Subtotal: order.Subtotal,
		Total:    order.Total,
		Notes:    notes,
		Items:    items,
	}

	return s.repo.Update(ctx, order.ID, patch)
}

// fetchOwned loads an order and enforces ownership by the requester.
func (s *Service) fetchOwned(ctx context.Context, orderID uuid.UUID, requester models.Requester, op string) (*models.Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, errs.Unexpected(err)
	}
	if order == nil {
		return nil, errs.NotFound("order", orderID.String())
	}
	if order.CustomerID != requester.ID {
		return nil, errs.BusinessRule("Unauthorized to %s this order", op)
	}
	return order, nil
}

// resolveLines turns named lines into priced items, failing fast on
// the first name the catalog cannot resolve.
func (s *Service) resolveLines(ctx context.Context, lines []models.OrderLine) ([]models.OrderItem, decimal.Decimal, error) {
	subtotal := decimal.Zero
	items := make([]models.OrderItem, 0, len(lines))

	for _, line := range lines {
		product, err := s.catalog.FindByName(ctx, line.Kind, line.ProductName)
		if err != nil {
			return nil, decimal.Zero, errs.Unexpected(err)
		}
		if product == nil {
			return nil, decimal.Zero, errs.NotFound(string(line.Kind), line.ProductName)
		}

		subtotal = subtotal.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, models.OrderItem{
			Kind:      line.Kind,
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		})
	}

	return items, subtotal, nil
}

// reverseResolve maps persisted items back to named lines via catalog
// lookup by product id.
func (s *Service) reverseResolve(ctx context.Context, items []models.OrderItem) ([]models.OrderLine, error) {
	lines := make([]models.OrderLine, 0, len(items))

	for _, item := range items {
		product, err := s.catalog.FindByID(ctx, item.Kind, item.ProductID)
		if err != nil {
			return nil, errs.Unexpected(err)
		}
		if product == nil {
			return nil, errs.NotFound(string(item.Kind), item.ProductID.String())
		}

		lines = append(lines, models.OrderLine{
			Kind:        item.Kind,
			ProductName: product.Name,
			Quantity:    item.Quantity,
		})
	}

	return lines, nil
}

func (s *Service) publish(ctx context.Context, event string, order *models.Order) {
	if s.publisher == nil {
		return
	}

	// Failure here never fails the operation: the write is committed.
	_ = s.publisher.PublishOrderEvent(ctx, messaging.OrderEvent{
		Event:       event,
		OrderID:     order.ID.String(),
		ServiceType: order.ServiceType,
		Status:      order.Status,
		Total:       order.Total.String(),
		OccurredAt:  s.now().UTC(),
	})
}
