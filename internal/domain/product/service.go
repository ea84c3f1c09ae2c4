package product

import (
	"context"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
)

type ProductService interface {
	CreateProduct(ctx context.Context, creator leave.Requester, req CreateProductRequest) (ProductResponse, error)
	GetProduct(ctx context.Context, id string) (ProductResponse, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]ProductResponse, error)
	SetProductActive(ctx context.Context, actor leave.Requester, id string, active bool) error
	CreatePromotion(ctx context.Context, creator leave.Requester, productID string, req CreatePromotionRequest) (PromotionResponse, error)
	ListPromotions(ctx context.Context, productID string) ([]PromotionResponse, error)
}
