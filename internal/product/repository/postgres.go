package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/nvasilev/product-catalog-service/internal/model"
	"github.com/nvasilev/product-catalog-service/internal/product"
)

const pgUniqueViolation = "23505"

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            product_id, name, description, price, stock_available, category,
            created_at, updated_at
        )
        VALUES (
            :product_id, :name, :description, :price, :stock_available, :category,
            :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return product.ErrDuplicateID
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	query := `SELECT * FROM products`
	if err := r.DB.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	return products, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int) (*model.Product, error) {
	var p model.Product
	query := `SELECT * FROM products WHERE product_id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select product by id: %w", err)
	}
	return &p, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET name = :name,
            description = :description,
            price = :price,
            stock_available = :stock_available,
            category = :category,
            updated_at = :updated_at
        WHERE product_id = :product_id
    `
	res, err := r.DB.NamedExecContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if rows == 0 {
		return product.ErrNotFound
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE product_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if rows == 0 {
		return product.ErrNotFound
	}
	return nil
}

// AdjustStock applies the delta atomically. The WHERE guard keeps concurrent
// adjustments from driving stock_available below zero.
func (r *PGRepository) AdjustStock(ctx context.Context, id, delta int) error {
	query := `
        UPDATE products
        SET stock_available = stock_available + $1, updated_at = $2
        WHERE product_id = $3 AND stock_available + $1 >= 0
    `
	res, err := r.DB.ExecContext(ctx, query, delta, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if rows > 0 {
		return nil
	}

	// Nothing updated: either the row is missing or the guard rejected it.
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return product.ErrNotFound
	}
	return product.ErrInsufficientStock
}
