package product

import "context"

// ProductRepository - interface for products table
type ProductRepository interface {
	Create(ctx context.Context, p Product) (Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	List(ctx context.Context, activeOnly bool) ([]Product, error)
	SetActive(ctx context.Context, id string, active bool) error
}

// PromotionRepository - interface for promotions table
type PromotionRepository interface {
	Create(ctx context.Context, p Promotion) (Promotion, error)
	ListByProduct(ctx context.Context, productID string) ([]Promotion, error)
}
