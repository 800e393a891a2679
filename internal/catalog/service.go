package catalog

import (
	"context"
	"sort"

	"breadlab/internal/domain"
)

type catalogService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &catalogService{repo: repo}
}

func (s *catalogService) ActiveProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(products, func(i, j int) bool {
		if products[i].Category != products[j].Category {
			return products[i].Category < products[j].Category
		}
		return products[i].Name < products[j].Name
	})

	return products, nil
}
