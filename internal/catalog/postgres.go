package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"pizzeria-orders/internal/database"
	"pizzeria-orders/internal/models"
)

// PostgresLookup reads the pizzas and beers tables. Queries join any
// transaction carried by the context.
type PostgresLookup struct {
	db *database.DB
}

// NewPostgresLookup creates a catalog lookup backed by PostgreSQL.
func NewPostgresLookup(db *database.DB) *PostgresLookup {
	return &PostgresLookup{db: db}
}

func (l *PostgresLookup) FindByName(ctx context.Context, kind models.ItemKind, name string) (*Product, error) {
	query, err := nameQuery(kind)
	if err != nil {
		return nil, err
	}
	return l.findOne(ctx, query, name)
}

func (l *PostgresLookup) FindByID(ctx context.Context, kind models.ItemKind, id uuid.UUID) (*Product, error) {
	query, err := idQuery(kind)
	if err != nil {
		return nil, err
	}
	return l.findOne(ctx, query, id.String())
}

func (l *PostgresLookup) findOne(ctx context.Context, query, arg string) (*Product, error) {
	var (
		idText    string
		name      string
		priceText string
	)

	err := l.db.Querier(ctx).QueryRow(ctx, query, arg).Scan(&idText, &name, &priceText)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}

	id, err := uuid.Parse(idText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product id: %w", err)
	}

	price, err := decimal.NewFromString(priceText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product price: %w", err)
	}

	return &Product{ID: id, Name: name, Price: price}, nil
}

func nameQuery(kind models.ItemKind) (string, error) {
	switch kind {
	case models.KindPizza:
		return database.GetPizzaByNameSQL, nil
	case models.KindBeer:
		return database.GetBeerByNameSQL, nil
	default:
		return "", fmt.Errorf("unknown item kind: %s", kind)
	}
}

func idQuery(kind models.ItemKind) (string, error) {
	switch kind {
	case models.KindPizza:
		return database.GetPizzaByIDSQL, nil
	case models.KindBeer:
		return database.GetBeerByIDSQL, nil
	default:
		return "", fmt.Errorf("unknown item kind: %s", kind)
	}
}
