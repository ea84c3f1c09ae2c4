package product

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/leave"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/product"
	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/user"
)

type ProductServiceImpl struct {
	product.ProductRepository
	product.PromotionRepository
}

func NewProductService(productRepo product.ProductRepository, promotionRepo product.PromotionRepository) product.ProductService {
	return &ProductServiceImpl{
		ProductRepository:   productRepo,
		PromotionRepository: promotionRepo,
	}
}

// CreateProduct implements product.ProductService.
func (p *ProductServiceImpl) CreateProduct(ctx context.Context, creator leave.Requester, req product.CreateProductRequest) (product.ProductResponse, error) {
	if creator.Role != user.RoleAdmin && creator.Role != user.RoleSuperAdmin {
		return product.ProductResponse{}, user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return product.ProductResponse{}, err
	}

	// Validate guarantees the amounts parse
	pts, _ := decimal.NewFromString(req.PTS)
	ptr, _ := decimal.NewFromString(req.PTR)
	mrp, _ := decimal.NewFromString(req.MRP)

	created, err := p.ProductRepository.Create(ctx, product.Product{
		Name:        req.Name,
		Composition: req.Composition,
		PackSize:    req.PackSize,
		PTS:         pts,
		PTR:         ptr,
		MRP:         mrp,
		IsActive:    true,
	})
	if err != nil {
		return product.ProductResponse{}, err
	}

	return product.NewProductResponse(created), nil
}

// GetProduct implements product.ProductService.
func (p *ProductServiceImpl) GetProduct(ctx context.Context, id string) (product.ProductResponse, error) {
	found, err := p.ProductRepository.GetByID(ctx, id)
	if err != nil {
		return product.ProductResponse{}, err
	}
	return product.NewProductResponse(found), nil
}

// ListProducts implements product.ProductService.
func (p *ProductServiceImpl) ListProducts(ctx context.Context, activeOnly bool) ([]product.ProductResponse, error) {
	products, err := p.ProductRepository.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	responses := make([]product.ProductResponse, 0, len(products))
	for _, prd := range products {
		responses = append(responses, product.NewProductResponse(prd))
	}
	return responses, nil
}

// SetProductActive implements product.ProductService.
func (p *ProductServiceImpl) SetProductActive(ctx context.Context, actor leave.Requester, id string, active bool) error {
	if actor.Role != user.RoleAdmin && actor.Role != user.RoleSuperAdmin {
		return user.ErrAdminPrivilegeRequired
	}
	return p.ProductRepository.SetActive(ctx, id, active)
}

// CreatePromotion implements product.ProductService.
func (p *ProductServiceImpl) CreatePromotion(ctx context.Context, creator leave.Requester, productID string, req product.CreatePromotionRequest) (product.PromotionResponse, error) {
	if creator.Role != user.RoleAdmin && creator.Role != user.RoleSuperAdmin {
		return product.PromotionResponse{}, user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return product.PromotionResponse{}, err
	}

	if _, err := p.ProductRepository.GetByID(ctx, productID); err != nil {
		return product.PromotionResponse{}, err
	}

	// Validate guarantees the formats parse
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := p.PromotionRepository.Create(ctx, product.Promotion{
		ProductID: productID,
		Title:     req.Title,
		Message:   req.Message,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return product.PromotionResponse{}, fmt.Errorf("failed to create promotion: %w", err)
	}

	return product.NewPromotionResponse(created), nil
}

// ListPromotions implements product.ProductService.
func (p *ProductServiceImpl) ListPromotions(ctx context.Context, productID string) ([]product.PromotionResponse, error) {
	promotions, err := p.PromotionRepository.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}

	responses := make([]product.PromotionResponse, 0, len(promotions))
	for _, promo := range promotions {
		responses = append(responses, product.NewPromotionResponse(promo))
	}
	return responses, nil
}
