package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/product"
	"github.com/pharmatrack/fieldforce-backend-go/internal/pkg/database"
)

type productRepositoryImpl struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) product.ProductRepository {
	return &productRepositoryImpl{db: db}
}

func (r *productRepositoryImpl) Create(ctx context.Context, p product.Product) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO products (
			id, name, composition, pack_size, pts, ptr, mrp, is_active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	p.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		p.ID, p.Name, p.Composition, p.PackSize, p.PTS, p.PTR, p.MRP, p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return product.Product{}, product.ErrProductNameExists
		}
		return product.Product{}, err
	}

	return p, nil
}

func (r *productRepositoryImpl) GetByID(ctx context.Context, id string) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, composition, pack_size, pts, ptr, mrp, is_active,
			   created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var p product.Product
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Composition, &p.PackSize, &p.PTS, &p.PTR, &p.MRP, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return product.Product{}, product.ErrProductNotFound
		}
		return product.Product{}, err
	}

	return p, nil
}

func (r *productRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, composition, pack_size, pts, ptr, mrp, is_active,
			   created_at, updated_at
		FROM products
	`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		var p product.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.Composition, &p.PackSize, &p.PTS, &p.PTR, &p.MRP, &p.IsActive,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE products SET is_active = $2, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return product.ErrProductNotFound
	}
	return nil
}

type promotionRepositoryImpl struct {
	db *database.DB
}

func NewPromotionRepository(db *database.DB) product.PromotionRepository {
	return &promotionRepositoryImpl{db: db}
}

func (r *promotionRepositoryImpl) Create(ctx context.Context, p product.Promotion) (product.Promotion, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO promotions (
			id, product_id, title, message, start_date, end_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	p.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		p.ID, p.ProductID, p.Title, p.Message, p.StartDate, p.EndDate,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return product.Promotion{}, err
	}

	return p, nil
}

func (r *promotionRepositoryImpl) ListByProduct(ctx context.Context, productID string) ([]product.Promotion, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, product_id, title, message, start_date, end_date, created_at, updated_at
		FROM promotions
		WHERE product_id = $1
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promotions []product.Promotion
	for rows.Next() {
		var p product.Promotion
		err := rows.Scan(
			&p.ID, &p.ProductID, &p.Title, &p.Message, &p.StartDate, &p.EndDate,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		promotions = append(promotions, p)
	}
	return promotions, rows.Err()
}
