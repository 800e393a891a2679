package catalog

import (
	"context"
)

type listUseCase struct {
	service Service
}

func NewListUseCase(service Service) ListUseCase {
	return &listUseCase{service: service}
}

func (uc *listUseCase) ListProducts(ctx context.Context) (*ListProductsResponse, error) {
	found, err := uc.service.ActiveProducts(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]ProductDTO, 0, len(found))
	for _, p := range found {
		products = append(products, ProductDTO{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.Category,
		})
	}

	return &ListProductsResponse{Products: products}, nil
}
