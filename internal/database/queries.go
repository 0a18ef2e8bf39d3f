package database

// Order queries
const (
	InsertOrderSQL = `
		INSERT INTO orders (service_type, customer_id, customer_email, status, subtotal, total, notes, delivery_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id::text, created_at, updated_at`

	InsertOrderItemSQL = `
		INSERT INTO order_items (order_id, kind, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`

	DeleteOrderItemsSQL = `
		DELETE FROM order_items WHERE order_id = $1`

	GetOrderByIDSQL = `
		SELECT id::text, service_type, customer_id::text, customer_email, status,
			   subtotal::text, total::text, notes, delivery_address, created_at, updated_at
		FROM orders WHERE id = $1`

	GetAllOrdersSQL = `
		SELECT id::text, service_type, customer_id::text, customer_email, status,
			   subtotal::text, total::text, notes, delivery_address, created_at, updated_at
		FROM orders
		ORDER BY created_at ASC`

	GetOrdersByStatusSQL = `
		SELECT id::text, service_type, customer_id::text, customer_email, status,
			   subtotal::text, total::text, notes, delivery_address, created_at, updated_at
		FROM orders
		WHERE status = $1
		ORDER BY created_at ASC`

	GetOrderItemsSQL = `
		SELECT kind, product_id::text, quantity, unit_price::text
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC`

	UpdateOrderSQL = `
		UPDATE orders
		SET status = $1, subtotal = $2, total = $3, notes = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id::text, created_at, updated_at`
)

// Catalog queries
const (
	GetPizzaByNameSQL = `
		SELECT id::text, name, price::text
		FROM pizzas WHERE name = $1 AND is_available`

	GetPizzaByIDSQL = `
		SELECT id::text, name, price::text
		FROM pizzas WHERE id = $1 AND is_available`

	GetBeerByNameSQL = `
		SELECT id::text, name, price::text
		FROM beers WHERE name = $1 AND is_available`

	GetBeerByIDSQL = `
		SELECT id::text, name, price::text
		FROM beers WHERE id = $1 AND is_available`
)
