package service

import (
	"context"

	"rentdesk-backend/internal/clock"
	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/idgen"
	"rentdesk-backend/internal/repository"
)

type productService struct {
	productRepo repository.ProductRepository
	clock       clock.Clock
	ids         idgen.Generator
}

func NewProductService(productRepo repository.ProductRepository, clk clock.Clock, ids idgen.Generator) ProductService {
	return &productService{productRepo: productRepo, clock: clk, ids: ids}
}

func (s *productService) AddProduct(ctx context.Context, product *domain.Product) error {
	if product.ID == "" {
		product.ID = s.ids.NewID("prod")
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = s.clock.Now()
	}
	return s.productRepo.Create(ctx, product)
}

func (s *productService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	return s.productRepo.Update(ctx, product)
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *productService) ListProducts(ctx context.Context, vendorID string, page, pageSize int32) ([]domain.Product, int32, error) {
	return s.productRepo.List(ctx, vendorID, page, pageSize)
}
