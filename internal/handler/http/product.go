package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pharmatrack/fieldforce-backend-go/internal/domain/product"
	"github.com/pharmatrack/fieldforce-backend-go/internal/handler/http/response"
)

type ProductHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	SetActive(w http.ResponseWriter, r *http.Request)
	CreatePromotion(w http.ResponseWriter, r *http.Request)
	ListPromotions(w http.ResponseWriter, r *http.Request)
}

type ProductHandlerImpl struct {
	productService product.ProductService
}

func NewProductHandler(productService product.ProductService) ProductHandler {
	return &ProductHandlerImpl{productService: productService}
}

// Create implements ProductHandler.
func (p *ProductHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	creator, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req product.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create product decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := p.productService.CreateProduct(r.Context(), creator, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Product created", created)
}

// Get implements ProductHandler.
func (p *ProductHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		response.BadRequest(w, "Product ID is required", nil)
		return
	}

	found, err := p.productService.GetProduct(r.Context(), productID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements ProductHandler.
func (p *ProductHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	products, err := p.productService.ListProducts(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, products)
}

// SetActive implements ProductHandler.
func (p *ProductHandlerImpl) SetActive(w http.ResponseWriter, r *http.Request) {
	actor, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	productID := chi.URLParam(r, "id")
	if productID == "" {
		response.BadRequest(w, "Product ID is required", nil)
		return
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetActive decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := p.productService.SetProductActive(r.Context(), actor, productID, req.Active); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Product updated", nil)
}

// CreatePromotion implements ProductHandler.
func (p *ProductHandlerImpl) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	creator, err := requesterFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	productID := chi.URLParam(r, "id")
	if productID == "" {
		response.BadRequest(w, "Product ID is required", nil)
		return
	}

	var req product.CreatePromotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePromotion decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := p.productService.CreatePromotion(r.Context(), creator, productID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Promotion created", created)
}

// ListPromotions implements ProductHandler.
func (p *ProductHandlerImpl) ListPromotions(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		response.BadRequest(w, "Product ID is required", nil)
		return
	}

	promotions, err := p.productService.ListPromotions(r.Context(), productID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, promotions)
}
