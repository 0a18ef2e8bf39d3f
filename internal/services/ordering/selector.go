package ordering

import (
	"context"

	"github.com/google/uuid"

	"pizzeria-orders/internal/catalog"
	"pizzeria-orders/internal/errs"
	"pizzeria-orders/internal/logger"
	"pizzeria-orders/internal/models"
	"pizzeria-orders/internal/orders"
)

// Selector resolves the lifecycle service bound to the right pricing
// policy, either from a service type or from an existing order.
type Selector struct {
	catalog   catalog.Lookup
	repo      orders.Repository
	uow       orders.UnitOfWork
	publisher EventPublisher
	logger    *logger.Logger
}

// NewSelector creates a selector sharing one set of collaborators
// across all service instances.
func NewSelector(lookup catalog.Lookup, repo orders.Repository, uow orders.UnitOfWork, publisher EventPublisher, log *logger.Logger) *Selector {
	return &Selector{
		catalog:   lookup,
		repo:      repo,
		uow:       uow,
		publisher: publisher,
		logger:    log,
	}
}

// ByServiceType returns the service for the given service type.
func (s *Selector) ByServiceType(serviceType models.ServiceType) (*Service, error) {
	policy, err := policyFor(serviceType)
	if err != nil {
		return nil, err
	}
	return NewService(policy, s.catalog, s.repo, s.uow, s.publisher, s.logger), nil
}

// ByOrderID fetches the order to learn its service type, then
// delegates to ByServiceType.
func (s *Selector) ByOrderID(ctx context.Context, orderID uuid.UUID) (*Service, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, errs.Unexpected(err)
	}
	if order == nil {
		return nil, errs.NotFound("order", orderID.String())
	}
	return s.ByServiceType(order.ServiceType)
}
