package ordering

import (
	"context"
	"errors"
	"strings"
	"testing"
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

// fakeLookup serves a fixed menu from memory.
type fakeLookup struct {
	products map[models.ItemKind]map[string]*catalog.Product
}

func newMenu() *fakeLookup {
	menu := &fakeLookup{products: map[models.ItemKind]map[string]*catalog.Product{
		models.KindPizza: {},
		models.KindBeer:  {},
	}}
	menu.add(models.KindPizza, "Margherita", "12.99")
	menu.add(models.KindPizza, "Pepperoni", "14.99")
	menu.add(models.KindPizza, "Quattro Formaggi", "15.99")
	menu.add(models.KindBeer, "Heineken", "5.99")
	return menu
}

func (l *fakeLookup) add(kind models.ItemKind, name, price string) {
	l.products[kind][name] = &catalog.Product{
		ID:    uuid.New(),
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}

func (l *fakeLookup) remove(kind models.ItemKind, name string) {
	delete(l.products[kind], name)
}

func (l *fakeLookup) FindByName(_ context.Context, kind models.ItemKind, name string) (*catalog.Product, error) {
	return l.products[kind][name], nil
}

func (l *fakeLookup) FindByID(_ context.Context, kind models.ItemKind, id uuid.UUID) (*catalog.Product, error) {
	for _, product := range l.products[kind] {
		if product.ID == id {
			return product, nil
		}
	}
	return nil, nil
}

// fakeRepo keeps orders in memory.
type fakeRepo struct {
	orders  map[uuid.UUID]*models.Order
	creates int
	updates int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{orders: make(map[uuid.UUID]*models.Order)}
}

func (r *fakeRepo) Create(_ context.Context, draft orders.OrderDraft) (*models.Order, error) {
	r.creates++
	now := time.Now().UTC()
	order := &models.Order{
		ID:              uuid.New(),
		ServiceType:     draft.ServiceType,
		CustomerID:      draft.CustomerID,
		CustomerEmail:   draft.CustomerEmail,
		Status:          draft.Status,
		Subtotal:        draft.Subtotal,
		Total:           draft.Total,
		Notes:           draft.Notes,
		DeliveryAddress: draft.DeliveryAddress,
		Items:           draft.Items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	r.orders[order.ID] = order
	return copyOrder(order), nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return copyOrder(order), nil
}

func (r *fakeRepo) GetAll(_ context.Context, status *models.OrderStatus) ([]models.Order, error) {
	var result []models.Order
	for _, order := range r.orders {
		if status == nil || order.Status == *status {
			result = append(result, *copyOrder(order))
		}
	}
	return result, nil
}

func (r *fakeRepo) Update(_ context.Context, id uuid.UUID, patch orders.OrderPatch) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errs.NotFound("order", id.String())
	}
	r.updates++
	order.Status = patch.Status
	order.Subtotal = patch.Subtotal
	order.Total = patch.Total
	order.Notes = patch.Notes
	order.Items = patch.Items
	order.UpdatedAt = time.Now().UTC()
	return copyOrder(order), nil
}

func copyOrder(order *models.Order) *models.Order {
	clone := *order
	clone.Items = append([]models.OrderItem(nil), order.Items...)
	return &clone
}

// noopUoW runs the function without any transaction.
type noopUoW struct{}

func (noopUoW) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// recordingPublisher collects published events.
type recordingPublisher struct {
	events []messaging.OrderEvent
}

func (p *recordingPublisher) PublishOrderEvent(_ context.Context, event messaging.OrderEvent) error {
	p.events = append(p.events, event)
	return nil
}

type fixture struct {
	service   *Service
	menu      *fakeLookup
	repo      *fakeRepo
	publisher *recordingPublisher
	requester models.Requester
}

func newFixture(t *testing.T, serviceType models.ServiceType) *fixture {
	t.Helper()

	policy, err := policyFor(serviceType)
	if err != nil {
		t.Fatalf("policyFor(%s): %v", serviceType, err)
	}

	menu := newMenu()
	repo := newFakeRepo()
	publisher := &recordingPublisher{}
	service := NewService(policy, menu, repo, noopUoW{}, publisher, logger.New("test"))

	return &fixture{
		service:   service,
		menu:      menu,
		repo:      repo,
		publisher: publisher,
		requester: models.Requester{ID: uuid.New(), Email: "customer@example.com"},
	}
}

func (f *fixture) createOrder(t *testing.T, input models.OrderInput) *models.Order {
	t.Helper()
	order, err := f.service.CreateOrder(context.Background(), input, f.requester)
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}
	return order
}

func dineInInput(lines ...models.OrderLine) models.OrderInput {
	return models.OrderInput{ServiceType: models.DineIn, Items: lines}
}

func TestCreateDineInOrder(t *testing.T) {
	f := newFixture(t, models.DineIn)

	order := f.createOrder(t, dineInInput(
		models.OrderLine{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 2},
		models.OrderLine{Kind: models.KindBeer, ProductName: "Heineken", Quantity: 1},
	))

	if order.Status != models.StatusPending {
		t.Errorf("status = %s, want pending", order.Status)
	}
	want := decimal.RequireFromString("31.97")
	if !order.Subtotal.Equal(want) {
		t.Errorf("subtotal = %s, want 31.97", order.Subtotal)
	}
	if !order.Total.Equal(want) {
		t.Errorf("total = %s, want 31.97", order.Total)
	}
	if len(order.Items) != 2 {
		t.Errorf("items = %d, want 2", len(order.Items))
	}
	if f.repo.creates != 1 {
		t.Errorf("repository writes = %d, want 1", f.repo.creates)
	}
	if len(f.publisher.events) != 1 || f.publisher.events[0].Event != "created" {
		t.Errorf("expected one created event, got %+v", f.publisher.events)
	}
}

func TestCreateDeliveryOrderAddsFee(t *testing.T) {
	f := newFixture(t, models.Delivery)
	address := "123 Main St, Springfield"

	order := f.createOrder(t, models.OrderInput{
		ServiceType:     models.Delivery,
		Items:           []models.OrderLine{{Kind: models.KindPizza, ProductName: "Pepperoni", Quantity: 1}},
		DeliveryAddress: &address,
	})

	if !order.Subtotal.Equal(decimal.RequireFromString("14.99")) {
		t.Errorf("subtotal = %s, want 14.99", order.Subtotal)
	}
	if !order.Total.Equal(decimal.RequireFromString("19.99")) {
		t.Errorf("total = %s, want 19.99", order.Total)
	}
}

func TestCreateLateNightOrderInsideWindow(t *testing.T) {
	f := newFixture(t, models.LateNight)
	f.service.now = func() time.Time {
		return time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)
	}

	order := f.createOrder(t, models.OrderInput{
		ServiceType: models.LateNight,
		Items:       []models.OrderLine{{Kind: models.KindPizza, ProductName: "Quattro Formaggi", Quantity: 1}},
	})

	if !order.Subtotal.Equal(decimal.RequireFromString("15.99")) {
		t.Errorf("subtotal = %s, want 15.99", order.Subtotal)
	}
	if !order.Total.Equal(decimal.RequireFromString("19.188")) {
		t.Errorf("total = %s, want 19.188", order.Total)
	}
}

func TestCreateLateNightOrderOutsideWindow(t *testing.T) {
	f := newFixture(t, models.LateNight)
	f.service.now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}

	_, err := f.service.CreateOrder(context.Background(), models.OrderInput{
		ServiceType: models.LateNight,
		Items:       []models.OrderLine{{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 1}},
	}, f.requester)

	var businessRule *errs.BusinessRuleViolation
	if !errors.As(err, &businessRule) {
		t.Fatalf("expected BusinessRuleViolation, got %v", err)
	}
	if f.repo.creates != 0 {
		t.Errorf("repository writes = %d, want 0", f.repo.creates)
	}
}

func TestCreateOrderWrongServiceType(t *testing.T) {
	f := newFixture(t, models.DineIn)

	_, err := f.service.CreateOrder(context.Background(), models.OrderInput{
		ServiceType: models.Delivery,
		Items:       []models.OrderLine{{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 1}},
	}, f.requester)

	var businessRule *errs.BusinessRuleViolation
	if !errors.As(err, &businessRule) {
		t.Fatalf("expected BusinessRuleViolation, got %v", err)
	}
}

func TestCreateOrderUnknownPizza(t *testing.T) {
	f := newFixture(t, models.DineIn)

	_, err := f.service.CreateOrder(context.Background(), dineInInput(
		models.OrderLine{Kind: models.KindPizza, ProductName: "InvalidPizza", Quantity: 1},
	), f.requester)

	var notFound *errs.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Error() != "Pizza InvalidPizza not found" {
		t.Errorf("details = %q, want %q", notFound.Error(), "Pizza InvalidPizza not found")
	}
	if f.repo.creates != 0 {
		t.Errorf("repository writes = %d, want 0", f.repo.creates)
	}
}

func TestCheckStatusRoundTrip(t *testing.T) {
	f := newFixture(t, models.DineIn)
	created := f.createOrder(t, dineInInput(
		models.OrderLine{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 2},
	))

	fetched, err := f.service.CheckStatus(context.Background(), created.ID, f.requester)
	if err != nil {
		t.Fatalf("CheckStatus failed: %v", err)
	}

	if fetched.ID != created.ID {
		t.Errorf("id = %s, want %s", fetched.ID, created.ID)
	}
	if !fetched.Subtotal.Equal(created.Subtotal) || !fetched.Total.Equal(created.Total) {
		t.Errorf("totals changed: %s/%s vs %s/%s", fetched.Subtotal, fetched.Total, created.Subtotal, created.Total)
	}
	if len(fetched.Items) != len(created.Items) {
		t.Errorf("items = %d, want %d", len(fetched.Items), len(created.Items))
	}

	// Repeated checks never mutate the order.
	again, err := f.service.CheckStatus(context.Background(), created.ID, f.requester)
	if err != nil {
		t.Fatalf("second CheckStatus failed: %v", err)
	}
	if !again.UpdatedAt.Equal(fetched.UpdatedAt) || again.Status != fetched.Status {
		t.Error("CheckStatus mutated the order")
	}
	if f.repo.updates != 0 {
		t.Errorf("repository updates = %d, want 0", f.repo.updates)
	}
}

func TestCheckStatusNotFound(t *testing.T) {
	f := newFixture(t, models.DineIn)

	_, err := f.service.CheckStatus(context.Background(), uuid.New(), f.requester)

	var notFound *errs.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCheckStatusUnauthorized(t *testing.T) {
	f := newFixture(t, models.DineIn)
	created := f.createOrder(t, dineInInput(
		models.OrderLine{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 1},
	))

	stranger := models.Requester{ID: uuid.New(), Email: "stranger@example.com"}
	_, err := f.service.CheckStatus(context.Background(), created.ID, stranger)

	var businessRule *errs.BusinessRuleViolation
	if !errors.As(err, &businessRule) {
		t.Fatalf("expected BusinessRuleViolation, got %v", err)
	}
}

func TestUpdateOrderRecomputesPricing(t *testing.T) {
	f := newFixture(t, models.Delivery)
	address := "123 Main St, Springfield"
	created := f.createOrder(t, models.OrderInput{
		ServiceType:     models.Delivery,
		Items:           []models.OrderLine{{Kind: models.KindPizza, ProductName: "Pepperoni", Quantity: 1}},
		DeliveryAddress: &address,
	})

	updated, err := f.service.UpdateOrder(context.Background(), created.ID, models.OrderUpdate{
		ServiceType: models.Delivery,
		Items:       []models.OrderLine{{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 2}},
		Status:      models.StatusConfirmed,
	}, f.requester)
	if err != nil {
		t.Fatalf("UpdateOrder failed: %v", err)
	}

	if updated.Status != models.StatusConfirmed {
		t.Errorf("status = %s, want confirmed", updated.Status)
	}
	if !updated.Subtotal.Equal(decimal.RequireFromString("25.98")) {
		t.Errorf("subtotal = %s, want 25.98", updated.Subtotal)
	}
	if !updated.Total.Equal(decimal.RequireFromString("30.98")) {
		t.Errorf("total = %s, want 30.98", updated.Total)
	}
	if len(updated.Items) != 1 {
		t.Errorf("items = %d, want 1 (full replacement)", len(updated.Items))
	}
}

func TestUpdateOrderTerminalStatus(t *testing.T) {
	f := newFixture(t, models.DineIn)
	created := f.createOrder(t, dineInInput(
		models.OrderLine{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 1},
	))
	if _, err := f.service.CancelOrder(context.Background(), created.ID, f.requester, nil); err != nil {
		t.Fatalf("CancelOrder failed: %v", err)
	}

	_, err := f.service.UpdateOrder(context.Background(), created.ID, models.OrderUpdate{
		ServiceType: models.DineIn,
		Items:       []models.OrderLine{{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 1}},
		Status:      models.StatusConfirmed,
	}, f.requester)

	var businessRule *errs.BusinessRuleViolation
	if !errors.As(err, &businessRule) {
		t.Fatalf("expected BusinessRuleViolation, got %v", err)
	}
	if businessRule.Error() != "Cannot update order in status cancelled" {
		t.Errorf("details = %q", businessRule.Error())
	}
}

func TestUpdateOrderServiceTypeImmutable(t *testing.T) {
	f := newFixture(t, models.DineIn)
	created := f.createOrder(t, dineInInput(
		models.OrderLine{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 1},
	))

	_, err := f.service.UpdateOrder(context.Background(), created.ID, models.OrderUpdate{
		ServiceType: models.Takeaway,
		Items:       []models.OrderLine{{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 1}},
		Status:      models.StatusPending,
	}, f.requester)

	var businessRule *errs.BusinessRuleViolation
	if !errors.As(err, &businessRule) {
		t.Fatalf("expected BusinessRuleViolation, got %v", err)
	}
}

func TestUpdateOrderBackwardTransition(t *testing.T) {
	f := newFixture(t, models.DineIn)
	created := f.createOrder(t, dineInInput(
		models.OrderLine{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 1},
	))

	advance := models.OrderUpdate{
		ServiceType: models.DineIn,
		Items:       []models.OrderLine{{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 1}},
		Status:      models.StatusPreparing,
	}
	if _, err := f.service.UpdateOrder(context.Background(), created.ID, advance, f.requester); err != nil {
		t.Fatalf("UpdateOrder failed: %v", err)
	}

	advance.Status = models.StatusConfirmed
	_, err := f.service.UpdateOrder(context.Background(), created.ID, advance, f.requester)

	var businessRule *errs.BusinessRuleViolation
	if !errors.As(err, &businessRule) {
		t.Fatalf("expected BusinessRuleViolation, got %v", err)
	}
}

func TestUpdateOrderUnresolvedLineLeavesOrderUntouched(t *testing.T) {
	f := newFixture(t, models.DineIn)
	created := f.createOrder(t, dineInInput(
		models.OrderLine{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 2},
	))

	_, err := f.service.UpdateOrder(context.Background(), created.ID, models.OrderUpdate{
		ServiceType: models.DineIn,
		Items:       []models.OrderLine{{Kind: models.KindPizza, ProductName: "InvalidPizza", Quantity: 1}},
		Status:      models.StatusConfirmed,
	}, f.requester)

	var notFound *errs.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	current, err := f.service.CheckStatus(context.Background(), created.ID, f.requester)
	if err != nil {
		t.Fatalf("CheckStatus failed: %v", err)
	}
	if current.Status != models.StatusPending || !current.Subtotal.Equal(created.Subtotal) {
		t.Error("failed update mutated the order")
	}
	if f.repo.updates != 0 {
		t.Errorf("repository updates = %d, want 0", f.repo.updates)
	}
}

func TestCancelOrderWithReason(t *testing.T) {
	f := newFixture(t, models.DineIn)
	created := f.createOrder(t, dineInInput(
		models.OrderLine{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 2},
		models.OrderLine{Kind: models.KindBeer, ProductName: "Heineken", Quantity: 1},
	))

	reason := "customer changed their mind"
	cancelled, err := f.service.CancelOrder(context.Background(), created.ID, f.requester, &reason)
	if err != nil {
		t.Fatalf("CancelOrder failed: %v", err)
	}

	if cancelled.Status != models.StatusCancelled {
		t.Errorf("status = %s, want cancelled", cancelled.Status)
	}
	if !cancelled.Total.Equal(created.Total) {
		t.Errorf("total changed on cancel: %s, want %s", cancelled.Total, created.Total)
	}
	if cancelled.Notes == nil || *cancelled.Notes != "Cancelled: customer changed their mind" {
		t.Errorf("notes = %v, want cancellation note", cancelled.Notes)
	}
	if len(cancelled.Items) != len(created.Items) {
		t.Errorf("items = %d, want %d", len(cancelled.Items), len(created.Items))
	}
}

func TestCancelOrderWithoutReasonKeepsNotes(t *testing.T) {
	f := newFixture(t, models.DineIn)
	notes := "Extra cheese please"
	created := f.createOrder(t, models.OrderInput{
		ServiceType: models.DineIn,
		Items:       []models.OrderLine{{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 1}},
		Notes:       &notes,
	})

	cancelled, err := f.service.CancelOrder(context.Background(), created.ID, f.requester, nil)
	if err != nil {
		t.Fatalf("CancelOrder failed: %v", err)
	}

	if cancelled.Notes == nil || *cancelled.Notes != notes {
		t.Errorf("notes = %v, want %q", cancelled.Notes, notes)
	}
}

func TestCancelOrderAlreadyCancelled(t *testing.T) {
	f := newFixture(t, models.DineIn)
	created := f.createOrder(t, dineInInput(
		models.OrderLine{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 1},
	))
	if _, err := f.service.CancelOrder(context.Background(), created.ID, f.requester, nil); err != nil {
		t.Fatalf("CancelOrder failed: %v", err)
	}

	_, err := f.service.CancelOrder(context.Background(), created.ID, f.requester, nil)

	var businessRule *errs.BusinessRuleViolation
	if !errors.As(err, &businessRule) {
		t.Fatalf("expected BusinessRuleViolation, got %v", err)
	}
	if !strings.Contains(businessRule.Error(), "status cancelled") {
		t.Errorf("details = %q", businessRule.Error())
	}
}

func TestCancelOrderUnauthorized(t *testing.T) {
	f := newFixture(t, models.DineIn)
	created := f.createOrder(t, dineInInput(
		models.OrderLine{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 1},
	))

	stranger := models.Requester{ID: uuid.New(), Email: "stranger@example.com"}
	_, err := f.service.CancelOrder(context.Background(), created.ID, stranger, nil)

	var businessRule *errs.BusinessRuleViolation
	if !errors.As(err, &businessRule) {
		t.Fatalf("expected BusinessRuleViolation, got %v", err)
	}
}

func TestCancelPendingOrders(t *testing.T) {
	f := newFixture(t, models.DineIn)
	first := f.createOrder(t, dineInInput(
		models.OrderLine{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 1},
	))
	second := f.createOrder(t, dineInInput(
		models.OrderLine{Kind: models.KindBeer, ProductName: "Heineken", Quantity: 2},
	))
	confirmed := f.createOrder(t, dineInInput(
		models.OrderLine{Kind: models.KindPizza, ProductName: "Pepperoni", Quantity: 1},
	))
	if _, err := f.service.UpdateOrder(context.Background(), confirmed.ID, models.OrderUpdate{
		ServiceType: models.DineIn,
		Items:       []models.OrderLine{{Kind: models.KindPizza, ProductName: "Pepperoni", Quantity: 1}},
		Status:      models.StatusConfirmed,
	}, f.requester); err != nil {
		t.Fatalf("UpdateOrder failed: %v", err)
	}

	reason := "end of day"
	cancelled, err := f.service.CancelPendingOrders(context.Background(), f.requester, &reason)
	if err != nil {
		t.Fatalf("CancelPendingOrders failed: %v", err)
	}

	if len(cancelled) != 2 {
		t.Fatalf("cancelled %d orders, want 2", len(cancelled))
	}
	got := map[uuid.UUID]bool{}
	for _, order := range cancelled {
		got[order.ID] = true
		if order.Status != models.StatusCancelled {
			t.Errorf("order %s status = %s, want cancelled", order.ID, order.Status)
		}
	}
	if !got[first.ID] || !got[second.ID] {
		t.Error("expected both pending orders to be cancelled")
	}

	remaining, err := f.service.CheckStatus(context.Background(), confirmed.ID, f.requester)
	if err != nil {
		t.Fatalf("CheckStatus failed: %v", err)
	}
	if remaining.Status != models.StatusConfirmed {
		t.Errorf("confirmed order status = %s, want confirmed", remaining.Status)
	}
}

func TestCancelPendingOrdersEmpty(t *testing.T) {
	f := newFixture(t, models.DineIn)

	cancelled, err := f.service.CancelPendingOrders(context.Background(), f.requester, nil)
	if err != nil {
		t.Fatalf("CancelPendingOrders failed: %v", err)
	}
	if len(cancelled) != 0 {
		t.Errorf("cancelled %d orders, want 0", len(cancelled))
	}
}

func TestCancelPendingOrdersSkipsFailingOrder(t *testing.T) {
	f := newFixture(t, models.DineIn)
	poisoned := f.createOrder(t, dineInInput(
		models.OrderLine{Kind: models.KindPizza, ProductName: "Quattro Formaggi", Quantity: 1},
	))
	healthy := f.createOrder(t, dineInInput(
		models.OrderLine{Kind: models.KindPizza, ProductName: "Margherita", Quantity: 1},
	))

	// The poisoned order references a product no longer in the catalog.
	f.menu.remove(models.KindPizza, "Quattro Formaggi")

	cancelled, err := f.service.CancelPendingOrders(context.Background(), f.requester, nil)
	if err != nil {
		t.Fatalf("CancelPendingOrders failed: %v", err)
	}

	if len(cancelled) != 1 || cancelled[0].ID != healthy.ID {
		t.Fatalf("expected only the healthy order to be cancelled, got %+v", cancelled)
	}

	stillPending, err := f.service.CheckStatus(context.Background(), poisoned.ID, f.requester)
	if err != nil {
		t.Fatalf("CheckStatus failed: %v", err)
	}
	if stillPending.Status != models.StatusPending {
		t.Errorf("poisoned order status = %s, want pending", stillPending.Status)
	}
}
