package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("order not found")
)

// Repository is the local order store used by create, get and place.
// Create assigns o.ID and the item ids.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id int64) (*Order, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const pgSchema = `
CREATE TABLE IF NOT EXISTS orders (
  id             BIGSERIAL PRIMARY KEY,
  reference      TEXT NOT NULL DEFAULT '',
  customer_name  TEXT NOT NULL,
  customer_email TEXT NOT NULL DEFAULT '',
  total_amount   NUMERIC NOT NULL,
  status         TEXT NOT NULL,
  created_at     TIMESTAMPTZ NOT NULL,
  updated_at     TIMESTAMPTZ
);
CREATE TABLE IF NOT EXISTS order_items (
  id           BIGSERIAL PRIMARY KEY,
  order_id     BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_name TEXT NOT NULL,
  quantity     INT NOT NULL,
  unit_price   NUMERIC NOT NULL
);`

func (r *PGRepo) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := r.db.Exec(ctx, pgSchema)
	return err
}

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.QueryRow(ctx, `
    INSERT INTO orders (reference, customer_name, customer_email, total_amount, status, created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, o.Reference, o.CustomerName, o.CustomerEmail, o.TotalAmount.String(), string(o.Status), o.CreatedAt, o.UpdatedAt).
		Scan(&o.ID); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range o.Items {
		it := &o.Items[i]
		it.OrderID = o.ID
		if err := tx.QueryRow(ctx, `
      INSERT INTO order_items (order_id, product_name, quantity, unit_price)
      VALUES ($1,$2,$3,$4)
      RETURNING id
    `, o.ID, it.ProductName, it.Quantity, it.UnitPrice.String()).Scan(&it.ID); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	var (
		o      Order
		total  string
		status string
	)
	if err := r.db.QueryRow(ctx, `
    SELECT id,reference,customer_name,customer_email,total_amount::text,status,created_at,updated_at
    FROM orders WHERE id=$1
  `, id).Scan(&o.ID, &o.Reference, &o.CustomerName, &o.CustomerEmail, &total, &status, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	o.Status = Status(status)
	var err error
	if o.TotalAmount, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("order %d total: %w", id, err)
	}

	rows, err := r.db.Query(ctx, `
    SELECT id,order_id,product_name,quantity,unit_price::text
    FROM order_items WHERE order_id=$1 ORDER BY id
  `, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			it    Item
			price string
		)
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductName, &it.Quantity, &price); err != nil {
			return nil, err
		}
		if it.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("order item %d price: %w", it.ID, err)
		}
		o.Items = append(o.Items, it)
	}
	return &o, rows.Err()
}
