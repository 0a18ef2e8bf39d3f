package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"pizzeria-orders/internal/database"
	"pizzeria-orders/internal/errs"
	"pizzeria-orders/internal/models"
)

// PostgresRepository stores orders in the orders and order_items
// tables. All statements join any transaction carried by the context.
type PostgresRepository struct {
	db *database.DB
}

// NewPostgresRepository creates an order repository backed by PostgreSQL.
func NewPostgresRepository(db *database.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// PgUnitOfWork runs functions inside a pgx transaction.
type PgUnitOfWork struct {
	db *database.DB
}

// NewPgUnitOfWork creates a unit of work over the given connection pool.
func NewPgUnitOfWork(db *database.DB) *PgUnitOfWork {
	return &PgUnitOfWork{db: db}
}

func (u *PgUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return u.db.WithinTx(ctx, fn)
}

func (r *PostgresRepository) Create(ctx context.Context, draft OrderDraft) (*models.Order, error) {
	q := r.db.Querier(ctx)

	var (
		idText    string
		createdAt time.Time
		updatedAt time.Time
	)
	err := q.QueryRow(ctx, database.InsertOrderSQL,
		string(draft.ServiceType),
		draft.CustomerID.String(),
		draft.CustomerEmail,
		string(draft.Status),
		draft.Subtotal.String(),
		draft.Total.String(),
		draft.Notes,
		draft.DeliveryAddress,
	).Scan(&idText, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	id, err := uuid.Parse(idText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse order id: %w", err)
	}

	if err := r.insertItems(ctx, id, draft.Items); err != nil {
		return nil, err
	}

	return &models.Order{
		ID:              id,
		ServiceType:     draft.ServiceType,
		CustomerID:      draft.CustomerID,
		CustomerEmail:   draft.CustomerEmail,
		Status:          draft.Status,
		Subtotal:        draft.Subtotal,
		Total:           draft.Total,
		Notes:           draft.Notes,
		DeliveryAddress: draft.DeliveryAddress,
		Items:           draft.Items,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	q := r.db.Querier(ctx)

	order, err := scanOrder(q.QueryRow(ctx, database.GetOrderByIDSQL, id.String()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context, status *models.OrderStatus) ([]models.Order, error) {
	q := r.db.Querier(ctx)

	var (
		rows pgx.Rows
		err  error
	)
	if status != nil {
		rows, err = q.Query(ctx, database.GetOrdersByStatusSQL, string(*status))
	} else {
		rows, err = q.Query(ctx, database.GetAllOrdersSQL)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var result []models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	for i := range result {
		if err := r.loadItems(ctx, &result[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id uuid.UUID, patch OrderPatch) (*models.Order, error) {
	q := r.db.Querier(ctx)

	var (
		idText    string
		createdAt time.Time
		updatedAt time.Time
	)
	err := q.QueryRow(ctx, database.UpdateOrderSQL,
		string(patch.Status),
		patch.Subtotal.String(),
		patch.Total.String(),
		patch.Notes,
		id.String(),
	).Scan(&idText, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFound("order", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	// Full item replacement
	if _, err := q.Exec(ctx, database.DeleteOrderItemsSQL, id.String()); err != nil {
		return nil, fmt.Errorf("failed to delete order items: %w", err)
	}
	if err := r.insertItems(ctx, id, patch.Items); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *PostgresRepository) insertItems(ctx context.Context, orderID uuid.UUID, items []models.OrderItem) error {
	q := r.db.Querier(ctx)
	for _, item := range items {
		_, err := q.Exec(ctx, database.InsertOrderItemSQL,
			orderID.String(),
			string(item.Kind),
			item.ProductID.String(),
			item.Quantity,
			item.UnitPrice.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) loadItems(ctx context.Context, order *models.Order) error {
	q := r.db.Querier(ctx)

	rows, err := q.Query(ctx, database.GetOrderItemsSQL, order.ID.String())
	if err != nil {
		return fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind      string
			idText    string
			quantity  int
			priceText string
		)
		if err := rows.Scan(&kind, &idText, &quantity, &priceText); err != nil {
			return fmt.Errorf("failed to scan order item: %w", err)
		}

		productID, err := uuid.Parse(idText)
		if err != nil {
			return fmt.Errorf("failed to parse product id: %w", err)
		}
		price, err := decimal.NewFromString(priceText)
		if err != nil {
			return fmt.Errorf("failed to parse item price: %w", err)
		}

		order.Items = append(order.Items, models.OrderItem{
			Kind:      models.ItemKind(kind),
			ProductID: productID,
			Quantity:  quantity,
			UnitPrice: price,
		})
	}
	return rows.Err()
}

// scanOrder reads one orders row from either a pgx.Row or pgx.Rows.
func scanOrder(row pgx.Row) (*models.Order, error) {
	var (
		order        models.Order
		idText       string
		customerText string
		serviceType  string
		status       string
		subtotalText string
		totalText    string
	)

	err := row.Scan(
		&idText,
		&serviceType,
		&customerText,
		&order.CustomerEmail,
		&status,
		&subtotalText,
		&totalText,
		&order.Notes,
		&order.DeliveryAddress,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if order.ID, err = uuid.Parse(idText); err != nil {
		return nil, fmt.Errorf("failed to parse order id: %w", err)
	}
	if order.CustomerID, err = uuid.Parse(customerText); err != nil {
		return nil, fmt.Errorf("failed to parse customer id: %w", err)
	}
	if order.Subtotal, err = decimal.NewFromString(subtotalText); err != nil {
		return nil, fmt.Errorf("failed to parse subtotal: %w", err)
	}
	if order.Total, err = decimal.NewFromString(totalText); err != nil {
		return nil, fmt.Errorf("failed to parse total: %w", err)
	}
	order.ServiceType = models.ServiceType(serviceType)
	order.Status = models.OrderStatus(status)

	return &order, nil
}
