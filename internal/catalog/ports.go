package catalog

import (
	"context"

	"breadlab/internal/domain"
)

type ListUseCase interface {
	ListProducts(ctx context.Context) (*ListProductsResponse, error)
}

type Service interface {
	ActiveProducts(ctx context.Context) ([]domain.Product, error)
}

type Repository interface {
	FindActive(ctx context.Context) ([]domain.Product, error)
}
